// Package history provides the recent activity view for the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
)

const timeLayout = "2006-01-02 15:04:05"

// View lists recent save and load requests.
type View struct {
	styles  *styles.Styles
	history driving.HistoryService
	ctx     context.Context

	activities []domain.Activity
	selected   int
	offset     int
	loading    bool
	err        error
	width      int
	height     int
}

// NewView creates a new history view. history may be nil.
func NewView(s *styles.Styles, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		history: history,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for queries.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the journal.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	if v.history == nil {
		return nil
	}
	v.loading = true
	history, ctx := v.history, v.ctx
	return func() tea.Msg {
		activities, err := history.Recent(ctx, 0)
		return messages.HistoryLoaded{Activities: activities, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.HistoryLoaded:
		v.loading = false
		v.err = msg.Err
		v.activities = msg.Activities
		v.selected = 0
		v.offset = 0

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "up", "k":
			v.move(-1)
		case "down", "j":
			v.move(1)
		case "ctrl+r", "r":
			return v, v.load()
		case "enter":
			return v, v.open()
		}
	}

	return v, nil
}

// open shows the selected file in the viewer.
func (v *View) open() tea.Cmd {
	if v.selected >= len(v.activities) {
		return nil
	}
	path := v.activities[v.selected].Path
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		return messages.FileOpenRequested{Location: domain.FileLocation(path)}
	}
}

func (v *View) move(delta int) {
	if len(v.activities) == 0 {
		return
	}
	v.selected += delta
	if v.selected < 0 {
		v.selected = 0
	}
	if v.selected >= len(v.activities) {
		v.selected = len(v.activities) - 1
	}

	visible := v.visibleRows()
	if v.selected < v.offset {
		v.offset = v.selected
	}
	if v.selected >= v.offset+visible {
		v.offset = v.selected - visible + 1
	}
}

func (v *View) visibleRows() int {
	rows := v.height - 8
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the activity list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Recent Activity"))
	b.WriteString("\n\n")

	switch {
	case v.history == nil:
		b.WriteString(v.styles.Muted.Render("History is not available."))
		b.WriteString("\n")
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case len(v.activities) == 0:
		b.WriteString(v.styles.Muted.Render("No activity recorded yet."))
		b.WriteString("\n")
	default:
		end := v.offset + v.visibleRows()
		if end > len(v.activities) {
			end = len(v.activities)
		}
		for i := v.offset; i < end; i++ {
			b.WriteString(v.renderRow(i))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] open  [r] refresh  [esc] back"))

	return b.String()
}

func (v *View) renderRow(i int) string {
	a := v.activities[i]

	path := a.Path
	if path == "" {
		path = "-"
	}
	line := fmt.Sprintf("%s  %-4s  %-20s  %7d  %s",
		a.At.Local().Format(timeLayout), a.Operation, a.Outcome, a.Bytes, path)

	switch {
	case i == v.selected:
		return v.styles.Selected.Render("> " + line)
	case a.Succeeded():
		return "  " + v.styles.Normal.Render(line)
	default:
		return "  " + v.styles.Warning.Render(line)
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Activities returns the loaded records.
func (v *View) Activities() []domain.Activity {
	return v.activities
}

// Selected returns the highlighted row.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
