package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

func TestNewBar_Defaults(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Contains(t, bar.View(), "Ready")
	assert.Contains(t, bar.View(), "quit")
}

func TestBar_ShowSave(t *testing.T) {
	tests := []struct {
		name    string
		result  domain.SaveResult
		state   State
		message string
	}{
		{
			name:    "written",
			result:  domain.SaveResult{Outcome: domain.SaveWritten, Path: "/tmp/a.json", BytesWritten: 12},
			state:   StateSuccess,
			message: "Saved 12 bytes to /tmp/a.json",
		},
		{
			name:    "cancelled",
			result:  domain.SaveResult{Outcome: domain.SaveCancelled},
			state:   StateWarning,
			message: "Save cancelled",
		},
		{
			name:    "malformed with placeholder",
			result:  domain.SaveResult{Outcome: domain.SaveMalformedInput, Path: "/tmp/a.json", BytesWritten: 5},
			state:   StateWarning,
			message: "Not valid JSON, wrote placeholder to /tmp/a.json",
		},
		{
			name:    "malformed skipped",
			result:  domain.SaveResult{Outcome: domain.SaveMalformedInput},
			state:   StateWarning,
			message: "Not valid JSON, no content saved",
		},
		{
			name:    "open failed",
			result:  domain.SaveResult{Outcome: domain.SaveOpenFailed, Err: errors.New("permission denied")},
			state:   StateError,
			message: "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)

			bar.ShowSave(tt.result)

			assert.Equal(t, tt.state, bar.State())
			assert.Equal(t, tt.message, bar.Message())
		})
	}
}

func TestBar_ShowLoad(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.ShowLoad(domain.LoadResult{Outcome: domain.LoadOK, Content: "abc", Path: "/tmp/x"})
	assert.Equal(t, StateSuccess, bar.State())
	assert.Equal(t, "Loaded 3 bytes from /tmp/x", bar.Message())

	bar.ShowLoad(domain.LoadResult{Outcome: domain.LoadOpenFailed})
	assert.Equal(t, StateError, bar.State())
	assert.Equal(t, "open_failed", bar.Message())
	assert.Contains(t, bar.View(), "Error: open_failed")
}

func TestBar_Bindings(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)

	bar.SetBindings(km.EditorHelp())
	assert.Contains(t, bar.View(), "ctrl+s")

	bar.Set(StateError, "boom")
	bar.Clear()
	assert.Equal(t, StateReady, bar.State())
	assert.NotContains(t, bar.View(), "ctrl+s")
}

func TestBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	assert.Equal(t, 120, bar.width)
}
