package chooser

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

func testOptions() domain.SaveDialogOptions {
	return domain.SaveDialogOptions{
		Title:         "Save File",
		StartDir:      "/home/user",
		Filter:        domain.JSONFilter(),
		DefaultSuffix: "json",
	}
}

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestPrompt_ChooseSaveLocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.FileLocation
	}{
		{"relative name gets start dir and suffix", "report\n", "/home/user/report.json"},
		{"existing extension is kept", "report.txt\n", "/home/user/report.txt"},
		{"absolute path", "/tmp/out.json\n", "/tmp/out.json"},
		{"file URL", "file:///tmp/a%20b.json\n", "/tmp/a b.json"},
		{"surrounding space is trimmed", "  data  \n", "/home/user/data.json"},
		{"answer without newline", "last", "/home/user/last.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPromptFrom(strings.NewReader(tt.input), &out)

			location, err := p.ChooseSaveLocation(context.Background(), testOptions())

			require.NoError(t, err)
			assert.Equal(t, tt.expected, location)
		})
	}
}

func TestPrompt_PrintsDialogHeader(t *testing.T) {
	var out bytes.Buffer
	p := NewPromptFrom(strings.NewReader("x\n"), &out)

	_, err := p.ChooseSaveLocation(context.Background(), testOptions())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Save File")
	assert.Contains(t, out.String(), "/home/user")
	assert.Contains(t, out.String(), "Json (*.json)")
	assert.Contains(t, out.String(), "File name: ")
}

func TestPrompt_EmptyAnswerCancels(t *testing.T) {
	for _, input := range []string{"\n", "   \n", ""} {
		p := NewPromptFrom(strings.NewReader(input), &bytes.Buffer{})

		location, err := p.ChooseSaveLocation(context.Background(), testOptions())

		assert.ErrorIs(t, err, domain.ErrCancelled)
		assert.Empty(t, location)
	}
}

func TestPrompt_UnsupportedScheme(t *testing.T) {
	p := NewPromptFrom(strings.NewReader("https://example.com/x.json\n"), &bytes.Buffer{})

	_, err := p.ChooseSaveLocation(context.Background(), testOptions())

	assert.ErrorIs(t, err, domain.ErrUnsupportedScheme)
}

func TestPrompt_CancelledContext(t *testing.T) {
	p := NewPromptFrom(strings.NewReader("x\n"), &bytes.Buffer{})

	_, err := p.ChooseSaveLocation(cancelledContext(), testOptions())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPrompt_NonTerminalIsUnavailable(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()

	p := NewPrompt(f, &bytes.Buffer{})

	_, err = p.ChooseSaveLocation(context.Background(), testOptions())
	assert.ErrorIs(t, err, domain.ErrChooserUnavailable)
}

func TestPreset_ChooseSaveLocation(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	location, err := Preset("out").ChooseSaveLocation(context.Background(), testOptions())
	require.NoError(t, err)
	assert.Equal(t, domain.FileLocation(filepath.Join(cwd, "out.json")), location,
		"relative preset resolves against the working directory")
	assert.NotEqual(t, domain.FileLocation("/home/user/out.json"), location)

	location, err = Preset("file:///abs/url.json").ChooseSaveLocation(context.Background(), testOptions())
	require.NoError(t, err)
	assert.Equal(t, domain.FileLocation("/abs/url.json"), location)

	location, err = Preset("/abs/out.json").ChooseSaveLocation(context.Background(), testOptions())
	require.NoError(t, err)
	assert.Equal(t, domain.FileLocation("/abs/out.json"), location)
}

func TestPreset_EmptyCancels(t *testing.T) {
	_, err := Preset("").ChooseSaveLocation(context.Background(), testOptions())
	assert.ErrorIs(t, err, domain.ErrCancelled)
}

func TestPreset_CancelledContext(t *testing.T) {
	_, err := Preset("out").ChooseSaveLocation(cancelledContext(), testOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func newDialogFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/home/user", 0755))
	require.NoError(t, afero.WriteFile(fs, "/home/user/existing.json", []byte("{}"), 0644))
	return fs
}

func runDialog(t *testing.T, input string) (domain.FileLocation, error) {
	t.Helper()
	d := NewDialog(newDialogFs(t),
		tea.WithInput(strings.NewReader(input)),
		tea.WithOutput(&bytes.Buffer{}),
		tea.WithoutSignalHandler(),
	)
	return d.ChooseSaveLocation(context.Background(), testOptions())
}

func TestDialog_TypedName(t *testing.T) {
	location, err := runDialog(t, "export\r")

	require.NoError(t, err)
	assert.Equal(t, domain.FileLocation("/home/user/export.json"), location)
}

func TestDialog_CtrlCCancels(t *testing.T) {
	location, err := runDialog(t, "abc\x03")

	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.Empty(t, location)
}

func TestDialog_CancelledContext(t *testing.T) {
	d := NewDialog(newDialogFs(t))

	_, err := d.ChooseSaveLocation(cancelledContext(), testOptions())

	assert.ErrorIs(t, err, context.Canceled)
}
