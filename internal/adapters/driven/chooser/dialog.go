package chooser

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/components/savedialog"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
)

// Ensure Dialog implements the interface.
var _ driven.SaveLocationChooser = (*Dialog)(nil)

// Dialog shows the save dialog as a modal full-screen program and blocks
// until the user picks a file or dismisses it.
type Dialog struct {
	fs      afero.Fs
	options []tea.ProgramOption
}

// NewDialog creates a dialog chooser browsing fs.
// Program options are passed to bubbletea, e.g. tea.WithInput in tests.
func NewDialog(fs afero.Fs, options ...tea.ProgramOption) *Dialog {
	return &Dialog{fs: fs, options: options}
}

// ChooseSaveLocation runs the dialog until it closes.
func (d *Dialog) ChooseSaveLocation(
	ctx context.Context,
	opts domain.SaveDialogOptions,
) (domain.FileLocation, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	model := &modal{dialog: savedialog.New(nil, d.fs, opts)}
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, d.options...)

	final, err := tea.NewProgram(model, options...).Run()
	if err != nil {
		return "", fmt.Errorf("save dialog: %w", err)
	}

	location := final.(*modal).dialog.Location()
	if location.IsEmpty() {
		return "", domain.ErrCancelled
	}
	return location, nil
}

// modal hosts the dialog and quits as soon as it closes.
type modal struct {
	dialog *savedialog.Model
}

func (m *modal) Init() tea.Cmd {
	return m.dialog.Init()
}

func (m *modal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(messages.LocationChosen); ok {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	return m, cmd
}

func (m *modal) View() string {
	if m.dialog.Done() {
		return ""
	}
	return m.dialog.View()
}
