// Package savedialog provides a terminal save-file dialog.
//
// The dialog lists directories and files matching the JSON filter, lets the
// user walk the tree and type a file name, and reports the chosen location
// with a messages.LocationChosen. It runs embedded in the TUI and standalone
// as a SaveLocationChooser.
package savedialog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

const parentEntry = ".."

// Entry is one row of the directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// Model is the save dialog.
type Model struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	fs     afero.Fs
	opts   domain.SaveDialogOptions

	dir      string
	entries  []Entry
	selected int
	offset   int
	input    *input.PathInput

	err      error
	done     bool
	location domain.FileLocation

	width  int
	height int
}

// New creates a dialog opened at opts.StartDir.
func New(s *styles.Styles, fs afero.Fs, opts domain.SaveDialogOptions) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if opts.Title == "" {
		opts.Title = "Save File"
	}

	m := &Model{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		fs:       fs,
		opts:     opts,
		selected: -1,
		input:    input.NewPathInput(s, "File name:", "name.json"),
		width:    80,
		height:   24,
	}

	start := opts.StartDir
	if start == "" {
		start = "."
	}
	if abs, err := filepath.Abs(start); err == nil {
		start = abs
	}
	m.chdir(start)
	return m
}

// Init starts the input cursor.
func (m *Model) Init() tea.Cmd {
	return m.input.Init()
}

// Update handles key presses.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m.finish("")
		case "up":
			m.move(-1)
			return m, nil
		case "down":
			m.move(1)
			return m, nil
		case "tab":
			m.complete()
			return m, nil
		case "enter":
			return m.confirm()
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.err = nil
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// move changes the highlighted entry.
func (m *Model) move(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.entries) {
		m.selected = len(m.entries) - 1
	}

	visible := m.visibleEntries()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
}

// complete enters the highlighted directory or copies the highlighted file name.
func (m *Model) complete() {
	entry, ok := m.highlighted()
	if !ok {
		return
	}
	if entry.IsDir {
		m.chdir(m.join(entry.Name))
		return
	}
	m.input.SetValue(entry.Name)
}

// confirm accepts the typed name, or enters a highlighted directory.
func (m *Model) confirm() (*Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	if value == "" {
		if entry, ok := m.highlighted(); ok {
			if entry.IsDir {
				m.chdir(m.join(entry.Name))
				return m, nil
			}
			value = entry.Name
		}
	}
	if value == "" {
		m.err = errors.New("enter a file name")
		return m, nil
	}

	location := domain.FileLocation(value)
	path, err := location.LocalPath()
	if err != nil {
		m.err = err
		return m, nil
	}
	if !filepath.IsAbs(path) {
		path = m.join(path)
	}

	if isDir, _ := afero.IsDir(m.fs, path); isDir {
		m.chdir(path)
		m.input.Reset()
		return m, nil
	}

	return m.finish(domain.FileLocation(m.opts.ApplySuffix(path)))
}

func (m *Model) finish(location domain.FileLocation) (*Model, tea.Cmd) {
	m.done = true
	m.location = location
	return m, func() tea.Msg {
		return messages.LocationChosen{Location: location}
	}
}

// chdir lists dir, keeping the previous directory on failure.
func (m *Model) chdir(dir string) {
	dir = filepath.Clean(dir)
	infos, err := afero.ReadDir(m.fs, dir)
	if err != nil {
		m.err = fmt.Errorf("cannot open %s: %w", dir, err)
		if m.dir == "" {
			m.dir = dir
		}
		return
	}

	m.dir = dir
	m.entries = nil
	if filepath.Dir(dir) != dir {
		m.entries = append(m.entries, Entry{Name: parentEntry, IsDir: true})
	}

	var dirs, files []Entry
	for _, info := range infos {
		name := info.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		switch {
		case info.IsDir():
			dirs = append(dirs, Entry{Name: name, IsDir: true})
		case info.Mode()&os.ModeType == 0 && m.opts.Filter.Matches(name):
			files = append(files, Entry{Name: name})
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	m.entries = append(m.entries, dirs...)
	m.entries = append(m.entries, files...)

	m.selected = -1
	m.offset = 0
	m.err = nil
}

func (m *Model) join(name string) string {
	if name == parentEntry {
		return filepath.Dir(m.dir)
	}
	return filepath.Join(m.dir, name)
}

func (m *Model) highlighted() (Entry, bool) {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[m.selected], true
}

func (m *Model) visibleEntries() int {
	// title, directory, blank, input (3 rows), filter, help, frame
	n := m.height - 14
	if n < 3 {
		n = 3
	}
	return n
}

// View renders the dialog.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.opts.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Look in: "))
	b.WriteString(m.styles.Path.Render(m.dir))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(m.styles.Muted.Render("  (empty)"))
		b.WriteString("\n")
	}
	end := m.offset + m.visibleEntries()
	if end > len(m.entries) {
		end = len(m.entries)
	}
	for i := m.offset; i < end; i++ {
		entry := m.entries[i]
		name := entry.Name
		if entry.IsDir {
			name += string(filepath.Separator)
		}
		if i == m.selected {
			b.WriteString(m.styles.Selected.Render("> " + name))
		} else {
			b.WriteString("  " + m.styles.Normal.Render(name))
		}
		b.WriteString("\n")
	}
	if end < len(m.entries) {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  ... %d more", len(m.entries)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Files of type: " + m.opts.Filter.String()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(keymap.HelpLine(m.keymap.DialogHelp())))

	return m.styles.Dialog.Render(b.String())
}

// SetDimensions sets the available screen size.
func (m *Model) SetDimensions(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(width - 10)
}

// Done reports whether the dialog has closed.
func (m *Model) Done() bool {
	return m.done
}

// Location returns the chosen location, empty when cancelled.
func (m *Model) Location() domain.FileLocation {
	return m.location
}

// Dir returns the directory being shown.
func (m *Model) Dir() string {
	return m.dir
}

// Entries returns the current listing.
func (m *Model) Entries() []Entry {
	return m.entries
}

// Err returns the last validation error.
func (m *Model) Err() error {
	return m.err
}
