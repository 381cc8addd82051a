// Package menu provides the start screen of the TUI.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/styles"
)

// Item is one menu entry. An entry with Quit set ends the program.
type Item struct {
	Label       string
	Description string
	View        messages.ViewType
	Quit        bool
}

// View lists the screens the app offers.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates the menu.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		items: []Item{
			{Label: "Open file", Description: "read a file by path or file URL", View: messages.ViewOpen},
			{Label: "Compose & save", Description: "write JSON and save it pretty-printed", View: messages.ViewCompose},
			{Label: "Recent activity", Description: "saves and loads, newest first", View: messages.ViewHistory},
			{Label: "Help", Description: "key bindings", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

func (v *View) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and activates entries. Digits 1-9 activate
// the matching entry directly.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			v.selected = max(v.selected-1, 0)
		case key.Matches(msg, v.keys.Down):
			v.selected = min(v.selected+1, len(v.items)-1)
		case key.Matches(msg, v.keys.Select):
			return v, v.activate(v.selected)
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		default:
			if n, ok := digit(msg); ok && n <= len(v.items) {
				v.selected = n - 1
				return v, v.activate(v.selected)
			}
		}
	}

	return v, nil
}

func (v *View) activate(i int) tea.Cmd {
	item := v.items[i]
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// digit returns the value of a single 1-9 key press.
func digit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("jsonbridge"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Subtitle.Render("Save and load JSON documents"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(label))
		}
		if item.Description != "" {
			b.WriteString("  " + v.styles.Muted.Render(item.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter/1-5] Select  [q] Quit"))
	return b.String()
}

// SetDimensions records the terminal size and marks the view ready.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the highlighted index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu entries.
func (v *View) Items() []Item {
	return v.items
}
