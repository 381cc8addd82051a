// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

// State represents the last operation outcome for display.
type State string

// Status bar states.
const (
	StateReady   State = "ready"
	StateBusy    State = "busy"
	StateSuccess State = "success"
	StateWarning State = "warning"
	StateError   State = "error"
)

// Bar displays the last outcome on the left and key hints on the right.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	bindings []key.Binding
	state    State
	message  string
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:   s,
		keymap:   km,
		bindings: km.ShortHelp(),
		state:    StateReady,
		width:    80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.styles.Muted.Render(keymap.HelpLine(b.bindings))

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (b *Bar) renderLeft() string {
	msg := b.message
	switch b.state {
	case StateBusy:
		if msg == "" {
			msg = "Working..."
		}
		return b.styles.Muted.Render(msg)
	case StateSuccess:
		return b.styles.Success.Render(msg)
	case StateWarning:
		return b.styles.Warning.Render(msg)
	case StateError:
		if msg == "" {
			return b.styles.Error.Render("Error")
		}
		return b.styles.Error.Render("Error: " + msg)
	case StateReady:
	}
	if msg != "" {
		return b.styles.Normal.Render(msg)
	}
	return b.styles.Muted.Render("Ready")
}

// ShowSave sets the bar from a save result.
func (b *Bar) ShowSave(r domain.SaveResult) {
	switch r.Outcome {
	case domain.SaveWritten:
		b.Set(StateSuccess, fmt.Sprintf("Saved %d bytes to %s", r.BytesWritten, r.Path))
	case domain.SaveCancelled:
		b.Set(StateWarning, "Save cancelled")
	case domain.SaveMalformedInput:
		if r.Written() {
			b.Set(StateWarning, fmt.Sprintf("Not valid JSON, wrote placeholder to %s", r.Path))
		} else {
			b.Set(StateWarning, "Not valid JSON, no content saved")
		}
	case domain.SaveOpenFailed, domain.SaveWriteFailed:
		b.Set(StateError, describe(r.Err, "save failed"))
	}
}

// ShowLoad sets the bar from a load result.
func (b *Bar) ShowLoad(r domain.LoadResult) {
	if r.OK() {
		b.Set(StateSuccess, fmt.Sprintf("Loaded %d bytes from %s", len(r.Content), r.Path))
		return
	}
	b.Set(StateError, describe(r.Err, string(r.Outcome)))
}

func describe(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	return err.Error()
}

// Set sets state and message together.
func (b *Bar) Set(state State, message string) {
	b.state = state
	b.message = message
}

// SetBindings replaces the key hints.
func (b *Bar) SetBindings(bindings []key.Binding) {
	b.bindings = bindings
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear resets the status bar to its default state.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.bindings = b.keymap.ShortHelp()
}
