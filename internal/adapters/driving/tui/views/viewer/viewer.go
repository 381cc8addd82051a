// Package viewer provides the open-file view for the TUI.
package viewer

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
)

// View reads a file by path or file URL and shows its content.
type View struct {
	styles    *styles.Styles
	persister driving.FilePersister
	ctx       context.Context

	input    *input.PathInput
	location domain.FileLocation
	result   *domain.LoadResult

	lines        []string
	scrollOffset int
	width        int
	height       int
	loading      bool
}

// NewView creates a new viewer.
func NewView(s *styles.Styles, persister driving.FilePersister) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		persister: persister,
		ctx:       context.Background(),
		input:     input.NewPathInput(s, "Location:", "/path/to/file.json or file:///..."),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for loads.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init focuses the location input.
func (v *View) Init() tea.Cmd {
	return v.input.Focus()
}

// Open loads location and shows it in the input.
func (v *View) Open(location domain.FileLocation) tea.Cmd {
	v.input.SetValue(location.String())
	return v.load(location)
}

func (v *View) load(location domain.FileLocation) tea.Cmd {
	if v.persister == nil {
		return func() tea.Msg {
			return messages.ErrorOccurred{Err: fmt.Errorf("file persister not available")}
		}
	}

	v.location = location
	v.loading = true
	persister, ctx := v.persister, v.ctx
	return func() tea.Msg {
		return messages.FileLoaded{
			Location: location,
			Result:   persister.Load(ctx, location),
		}
	}
}

// Update handles messages for the viewer.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FileLoaded:
		if msg.Location != v.location {
			return v, nil
		}
		v.loading = false
		result := msg.Result
		v.result = &result
		v.scrollOffset = 0
		v.wrapContent()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg handles key presses. Scrolling keys never reach the input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "enter":
		location := domain.FileLocation(strings.TrimSpace(v.input.Value()))
		if location.IsEmpty() {
			return v, nil
		}
		return v, v.load(location)
	case "ctrl+r":
		if v.location.IsEmpty() {
			return v, nil
		}
		return v, v.load(v.location)
	case "up":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
		return v, nil
	case "down":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
		return v, nil
	case "pgup":
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
		return v, nil
	case "pgdown":
		v.scrollOffset += v.visibleLines()
		if v.scrollOffset > v.maxScrollOffset() {
			v.scrollOffset = v.maxScrollOffset()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// wrapContent wraps the content to fit the view width.
func (v *View) wrapContent() {
	if v.result == nil || v.result.Content == "" {
		v.lines = nil
		return
	}

	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	rawLines := strings.Split(strings.TrimSuffix(v.result.Content, "\n"), "\n")
	v.lines = make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		runes := []rune(line)
		for len(runes) > contentWidth {
			v.lines = append(v.lines, string(runes[:contentWidth]))
			runes = runes[contentWidth:]
		}
		v.lines = append(v.lines, string(runes))
	}
}

// visibleLines returns the number of content lines that fit.
func (v *View) visibleLines() int {
	// title, input box, separator, scroll indicator, help, status bar
	available := v.height - 11
	if available < 1 {
		available = 1
	}
	return available
}

func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the viewer.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Open File"))
	b.WriteString("\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case v.result == nil:
		b.WriteString(v.styles.Muted.Render("Enter a path or file URL and press enter."))
		b.WriteString("\n")
	case !v.result.OK():
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Could not load %s (%s)", v.location, v.result.Outcome)))
		b.WriteString("\n")
	case len(v.lines) == 0:
		b.WriteString(v.styles.Muted.Render("(empty file)"))
		b.WriteString("\n")
	default:
		visible := v.visibleLines()
		for i := v.scrollOffset; i < len(v.lines) && i < v.scrollOffset+visible; i++ {
			b.WriteString(v.styles.Normal.Render(v.lines[i]))
			b.WriteString("\n")
		}
		if len(v.lines) > visible {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  Line %d-%d of %d",
				v.scrollOffset+1,
				minInt(v.scrollOffset+visible, len(v.lines)),
				len(v.lines))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] load  [ctrl+r] reload  [↑/↓/PgUp/PgDn] scroll  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width - 4)
	v.wrapContent()
}

// Location returns the location last loaded.
func (v *View) Location() domain.FileLocation {
	return v.location
}

// Content returns the loaded content, empty on failure.
func (v *View) Content() string {
	if v.result == nil {
		return ""
	}
	return v.result.Content
}

// Result returns the last load result, or nil before the first load.
func (v *View) Result() *domain.LoadResult {
	return v.result
}

// Lines returns the wrapped content lines.
func (v *View) Lines() []string {
	return v.lines
}

// ScrollOffset returns the first visible line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
