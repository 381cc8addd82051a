package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{
			name:       "Empty input returns default",
			input:      "",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Valid choice within range",
			input:      "3",
			maxVal:     5,
			defaultVal: 1,
			expected:   3,
		},
		{
			name:       "Choice below minimum returns default",
			input:      "0",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Choice above maximum returns default",
			input:      "6",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Invalid input returns default",
			input:      "abc",
			maxVal:     5,
			defaultVal: 2,
			expected:   2,
		},
		{
			name:       "Negative number returns default",
			input:      "-1",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Whitespace returns default",
			input:      "   ",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Maximum value is valid",
			input:      "5",
			maxVal:     5,
			defaultVal: 1,
			expected:   5,
		},
		{
			name:       "Minimum value is valid",
			input:      "1",
			maxVal:     5,
			defaultVal: 3,
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseChoice(tt.input, tt.maxVal, tt.defaultVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSettingsCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range settingsCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["show"])
	assert.True(t, names["set"])
	assert.True(t, names["reset"])
	assert.True(t, names["wizard"])
}

func TestSettingsShow_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Dialog]")
	assert.Contains(t, out, "Title: Save File")
	assert.Contains(t, out, "Start directory: (home)")
	assert.Contains(t, out, "Default suffix: json")
	assert.Contains(t, out, "Indent: 4 spaces")
	assert.Contains(t, out, "Malformed input: Write null")
	assert.Contains(t, out, "Limit: 100 records")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsCmd_DefaultsToShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsSet_ChangesValue(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings", "set", "format.indent", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `Set format.indent to "2"`)

	out, err = execute(t, "", "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Indent: 2 spaces")
}

func TestSettingsSet_InvalidValue(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "settings", "set", "format.indent", "wide")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set format.indent")
}

func TestSettingsSet_UnknownKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "settings", "set", "search.mode", "hybrid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
}

func TestSettingsSet_RequiresTwoArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "settings", "set", "format.indent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsReset_RestoresDefault(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "settings", "set", "dialog.title", "Export")
	require.NoError(t, err)

	out, err := execute(t, "", "settings", "reset", "dialog.title")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset dialog.title to its default")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "Save File", settings.Dialog.Title)
}

func TestSettingsWizard_SavesAnswers(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	// keep title, start dir and suffix; indent 2; skip policy; no history
	out, err := execute(t, "\n\n.txt\n2\n3\nn\n", "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "Settings saved.")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "Save File", settings.Dialog.Title)
	assert.Equal(t, "txt", settings.Dialog.DefaultSuffix)
	assert.Equal(t, 2, settings.Format.Indent)
	assert.Equal(t, "skip", settings.Save.Malformed.String())
	assert.False(t, settings.History.Enabled)
}

func TestSettingsWizard_RejectsInvalidIndent(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "\n\n\n99\n\n\n\n", "settings", "wizard")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save settings")
}

func TestSettingsCmd_WithoutService(t *testing.T) {
	_, err := execute(t, "", "settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
