// Package compose provides the JSON editor view for the TUI.
package compose

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

// View edits a JSON document and asks for it to be saved.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	editor textarea.Model

	lastSaved string
	width     int
	height    int
}

// NewView creates a new compose view with a focused editor.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = `{"key": "value"}`
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(76)
	ta.SetHeight(16)
	ta.Focus()

	return &View{
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		editor: ta,
		width:  80,
		height: 24,
	}
}

// Init starts the cursor blinking.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.editor.Focus(), textarea.Blink)
}

// Update handles messages for the compose view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case keymap.Matches(msg.String(), v.keymap.Save):
			payload := v.Payload()
			return v, func() tea.Msg {
				return messages.SaveRequested{Payload: payload}
			}
		case keymap.Matches(msg.String(), v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}

	case messages.SaveCompleted:
		if msg.Result.Written() {
			v.lastSaved = msg.Result.Path
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

// View renders the editor.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Compose JSON"))
	if v.lastSaved != "" {
		b.WriteString("  ")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("last saved to %s", v.lastSaved)))
	}
	b.WriteString("\n\n")
	b.WriteString(v.editor.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render(keymap.HelpLine(v.keymap.EditorHelp())))

	return b.String()
}

// SetDimensions resizes the editor to the screen.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	editorHeight := height - 8 // title, help, status bar
	if editorHeight < 3 {
		editorHeight = 3
	}
	v.editor.SetWidth(width - 4)
	v.editor.SetHeight(editorHeight)
}

// Payload returns the editor content as a JSON payload.
func (v *View) Payload() domain.JSONPayload {
	return domain.JSONPayload(v.editor.Value())
}

// SetPayload replaces the editor content.
func (v *View) SetPayload(payload domain.JSONPayload) {
	v.editor.SetValue(string(payload))
}

// LastSaved returns the path of the last successful save.
func (v *View) LastSaved() string {
	return v.lastSaved
}
