package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/components/savedialog"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/views/compose"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/views/viewer"
	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/logger"
)

var appLog = logger.For("tui")

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView    *menu.View
	viewerView  *viewer.View
	composeView *compose.View
	historyView *history.View

	// dialog is the open save dialog, nil when none is shown.
	dialog *savedialog.Model

	// pending is the payload waiting for the dialog to pick a destination.
	pending domain.JSONPayload

	// statusBar shows the outcome of the last operation.
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s),
		viewerView:  viewer.NewView(s, ports.Persister),
		composeView: compose.NewView(s),
		historyView: history.NewView(s, ports.History),
		statusBar:   status.NewBar(s, keymap.DefaultKeyMap()),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.viewerView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("jsonbridge"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// The dialog handles ctrl+c itself, as cancel.
		if a.currentView == messages.ViewSaveDialog && a.dialog != nil {
			a.dialog, cmd = a.dialog.Update(msg)
			return a, cmd
		}
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateActive(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.SaveRequested:
		return a, a.openDialog(msg.Payload)

	case messages.LocationChosen:
		a.dialog = nil
		a.currentView = messages.ViewCompose
		if msg.Cancelled() {
			a.statusBar.ShowSave(domain.SaveResult{Outcome: domain.SaveCancelled})
			return a, nil
		}
		a.statusBar.Set(status.StateBusy, "Saving...")
		return a, a.save(msg.Location, a.pending)

	case messages.SaveCompleted:
		a.statusBar.ShowSave(msg.Result)
		a.composeView, cmd = a.composeView.Update(msg)
		return a, cmd

	case messages.FileOpenRequested:
		a.currentView = messages.ViewOpen
		return a, a.viewerView.Open(msg.Location)

	case messages.FileLoaded:
		a.statusBar.ShowLoad(msg.Result)
		a.viewerView, cmd = a.viewerView.Update(msg)
		return a, cmd

	case messages.HistoryLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.Set(status.StateError, msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages, such as cursor blinks, to the active view.
	return a.updateActive(msg)
}

// updateActive forwards msg to the active view.
func (a *App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewOpen:
		a.viewerView, cmd = a.viewerView.Update(msg)
	case messages.ViewCompose:
		a.composeView, cmd = a.composeView.Update(msg)
	case messages.ViewSaveDialog:
		if a.dialog != nil {
			a.dialog, cmd = a.dialog.Update(msg)
		}
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewHelp:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			a.currentView = messages.ViewMenu
		}
	}

	return a, cmd
}

// switchTo activates view and runs its initial command.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	a.statusBar.Clear()

	switch view {
	case messages.ViewOpen:
		return a.viewerView.Init()
	case messages.ViewCompose:
		a.statusBar.SetBindings(keymap.DefaultKeyMap().EditorHelp())
		return a.composeView.Init()
	case messages.ViewHistory:
		return a.historyView.Init()
	case messages.ViewMenu, messages.ViewSaveDialog, messages.ViewHelp:
	}
	return nil
}

// openDialog shows the save dialog for payload.
func (a *App) openDialog(payload domain.JSONPayload) tea.Cmd {
	a.pending = payload
	a.dialog = savedialog.New(a.styles, a.ports.Fs, a.dialogOptions())
	if a.ready {
		a.dialog.SetDimensions(a.width, a.height)
	}
	a.currentView = messages.ViewSaveDialog
	a.statusBar.SetBindings(keymap.DefaultKeyMap().DialogHelp())
	return a.dialog.Init()
}

// dialogOptions builds dialog options from settings.
func (a *App) dialogOptions() domain.SaveDialogOptions {
	settings := domain.DefaultBridgeSettings()
	if a.ports.Settings != nil {
		if stored, err := a.ports.Settings.Get(); err == nil && stored != nil {
			settings = *stored
		} else if err != nil {
			appLog.Warn("reading settings failed, using defaults: %v", err)
		}
	}

	home, err := a.ports.HomeDir()
	if err != nil {
		appLog.Debug("home directory unavailable: %v", err)
		home = ""
	}
	return settings.DialogOptions(home)
}

// save writes payload to location off the update loop.
func (a *App) save(location domain.FileLocation, payload domain.JSONPayload) tea.Cmd {
	persister, ctx := a.ports.Persister, a.ctx
	return func() tea.Msg {
		return messages.SaveCompleted{Result: persister.SaveTo(ctx, location, payload)}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewOpen:
		body = a.viewerView.View()
	case messages.ViewCompose:
		body = a.composeView.View()
	case messages.ViewSaveDialog:
		if a.dialog != nil {
			body = a.dialog.View()
		}
	case messages.ViewHistory:
		body = a.historyView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	case messages.ViewMenu:
		return a.menuView.View()
	}

	return body + "\n\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Open file:
  (type)      Path or file:// URL
  enter       Load
  ctrl+r      Reload
  ↑/↓ PgUp/Dn Scroll

Compose & save:
  (type)      Edit the JSON document
  ctrl+s      Choose where to save it

Save dialog:
  ↑/↓         Highlight an entry
  tab         Enter directory or copy file name
  enter       Save, or open a directory
  esc         Cancel

Anywhere:
  esc         Back to menu
  ctrl+c      Quit

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Dialog returns the open save dialog, or nil.
func (a *App) Dialog() *savedialog.Model {
	return a.dialog
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.statusBar
}

// Pending returns the payload waiting to be saved.
func (a *App) Pending() domain.JSONPayload {
	return a.pending
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.menuView.SetDimensions(width, height)
	a.viewerView.SetDimensions(width, height)
	a.composeView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
	if a.dialog != nil {
		a.dialog.SetDimensions(width, height)
	}
}
