// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/styles"
)

// PathInput wraps a bubbles textinput for entering file paths and URLs.
type PathInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewPathInput creates a focused path input with the given label.
func NewPathInput(s *styles.Styles, label, placeholder string) *PathInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 50

	return &PathInput{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// Init starts the cursor blinking.
func (p *PathInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (p *PathInput) Update(msg tea.Msg) (*PathInput, tea.Cmd) {
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return p, cmd
}

// View renders the label and the input field.
func (p *PathInput) View() string {
	field := p.styles.InputField.Render(p.textinput.View())
	if p.label == "" {
		return field
	}
	label := p.styles.Title.Render(p.label + " ")
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (p *PathInput) Value() string {
	return p.textinput.Value()
}

// SetValue replaces the input value and moves the cursor to the end.
func (p *PathInput) SetValue(value string) {
	p.textinput.SetValue(value)
	p.textinput.CursorEnd()
}

// Focus sets focus on the input.
func (p *PathInput) Focus() tea.Cmd {
	return p.textinput.Focus()
}

// Blur removes focus from the input.
func (p *PathInput) Blur() {
	p.textinput.Blur()
}

// Focused returns whether the input is focused.
func (p *PathInput) Focused() bool {
	return p.textinput.Focused()
}

// SetWidth sets the total width including the label.
func (p *PathInput) SetWidth(width int) {
	p.width = width
	inputWidth := width - len(p.label) - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.textinput.Width = inputWidth
}

// Width returns the current width.
func (p *PathInput) Width() int {
	return p.width
}

// Reset clears the input.
func (p *PathInput) Reset() {
	p.textinput.Reset()
}
