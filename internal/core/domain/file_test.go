package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileFilter_String(t *testing.T) {
	assert.Equal(t, "Json (*.json)", JSONFilter().String())
	assert.Equal(t, "All", FileFilter{Name: "All"}.String())
	assert.Equal(t, "Text (*.txt *.md)", FileFilter{Name: "Text", Patterns: []string{"*.txt", "*.md"}}.String())
}

func TestFileFilter_Matches(t *testing.T) {
	filter := JSONFilter()

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"JSON file", "/tmp/data.json", true},
		{"Nested JSON file", "/a/b/c/settings.json", true},
		{"Text file", "/tmp/data.txt", false},
		{"No extension", "/tmp/data", false},
		{"Extension is case sensitive", "/tmp/DATA.JSON", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.Matches(tt.path))
		})
	}
}

func TestFileFilter_Matches_EmptyFilter(t *testing.T) {
	assert.True(t, FileFilter{}.Matches("/anything/at/all"))
}

func TestSaveDialogOptions_ApplySuffix(t *testing.T) {
	opts := SaveDialogOptions{DefaultSuffix: "json"}

	assert.Equal(t, "/tmp/out.json", opts.ApplySuffix("/tmp/out"))
	assert.Equal(t, "/tmp/out.json", opts.ApplySuffix("/tmp/out.json"))
	assert.Equal(t, "/tmp/out.txt", opts.ApplySuffix("/tmp/out.txt"))
	assert.Equal(t, "", opts.ApplySuffix(""))

	dotted := SaveDialogOptions{DefaultSuffix: ".json"}
	assert.Equal(t, "/tmp/out.json", dotted.ApplySuffix("/tmp/out"))

	none := SaveDialogOptions{}
	assert.Equal(t, "/tmp/out", none.ApplySuffix("/tmp/out"))
}

func TestSaveResult_Written(t *testing.T) {
	tests := []struct {
		name     string
		result   SaveResult
		expected bool
	}{
		{"Written", SaveResult{Outcome: SaveWritten, BytesWritten: 10}, true},
		{"Cancelled", SaveResult{Outcome: SaveCancelled}, false},
		{"Open failed", SaveResult{Outcome: SaveOpenFailed, Err: ErrOpenFailed}, false},
		{"Write failed", SaveResult{Outcome: SaveWriteFailed, Err: ErrWriteFailed}, false},
		{"Malformed with placeholder", SaveResult{Outcome: SaveMalformedInput, Path: "/tmp/a.json", BytesWritten: 5}, true},
		{"Malformed empty placeholder", SaveResult{Outcome: SaveMalformedInput, Path: "/tmp/a.json"}, true},
		{"Malformed skipped", SaveResult{Outcome: SaveMalformedInput, Err: ErrMalformedJSON}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.Written())
		})
	}
}

func TestLoadResult_OK(t *testing.T) {
	assert.True(t, LoadResult{Outcome: LoadOK, Content: "x"}.OK())
	assert.True(t, LoadResult{Outcome: LoadOK}.OK())
	assert.False(t, LoadResult{Outcome: LoadOpenFailed, Err: errors.New("boom")}.OK())
	assert.False(t, LoadResult{}.OK())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "written", SaveWritten.String())
	assert.Equal(t, "cancelled", SaveCancelled.String())
	assert.Equal(t, "loaded", LoadOK.String())
	assert.Equal(t, "unsupported_location", LoadUnsupportedLocation.String())
}
