package domain

import (
	"path/filepath"
	"strings"
)

// JSONPayload is text the caller asserts is a JSON document.
// It is not retained after a save completes.
type JSONPayload string

// FileFilter restricts which names a save dialog offers or accepts.
type FileFilter struct {
	// Name is the human-readable label, e.g. "Json".
	Name string

	// Patterns are glob patterns, e.g. "*.json".
	Patterns []string
}

// String renders the filter the way desktop dialogs label it: "Json (*.json)".
func (f FileFilter) String() string {
	if len(f.Patterns) == 0 {
		return f.Name
	}
	return f.Name + " (" + strings.Join(f.Patterns, " ") + ")"
}

// Matches returns true if the base name of path matches any pattern.
// An empty filter matches everything.
func (f FileFilter) Matches(path string) bool {
	if len(f.Patterns) == 0 {
		return true
	}
	base := filepath.Base(path)
	for _, pattern := range f.Patterns {
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// JSONFilter is the filter offered by the save dialog.
func JSONFilter() FileFilter {
	return FileFilter{Name: "Json", Patterns: []string{"*.json"}}
}

// SaveDialogOptions parameterises the file-selection dialog.
type SaveDialogOptions struct {
	// Title is shown in the dialog header.
	Title string

	// StartDir is the directory the dialog opens in.
	StartDir string

	// Filter limits selectable and typed names.
	Filter FileFilter

	// DefaultSuffix is appended (without dot) to names that have no extension.
	DefaultSuffix string
}

// ApplySuffix appends the default suffix when path has no extension.
func (o SaveDialogOptions) ApplySuffix(path string) string {
	if path == "" || o.DefaultSuffix == "" {
		return path
	}
	if filepath.Ext(path) != "" {
		return path
	}
	return path + "." + strings.TrimPrefix(o.DefaultSuffix, ".")
}

// SaveOutcome classifies how a save request ended.
type SaveOutcome string

// Possible save outcomes.
const (
	// SaveWritten means the formatted document was written.
	SaveWritten SaveOutcome = "written"

	// SaveCancelled means the user dismissed the dialog. Nothing was touched.
	SaveCancelled SaveOutcome = "cancelled"

	// SaveOpenFailed means the destination could not be opened. Nothing was written.
	SaveOpenFailed SaveOutcome = "open_failed"

	// SaveWriteFailed means the destination opened but writing or closing failed.
	SaveWriteFailed SaveOutcome = "write_failed"

	// SaveMalformedInput means the payload was not valid JSON and the
	// malformed-input policy was applied instead.
	SaveMalformedInput SaveOutcome = "malformed_input"
)

// String returns the string representation.
func (o SaveOutcome) String() string {
	return string(o)
}

// SaveResult is the explicit outcome of a save request.
type SaveResult struct {
	// Outcome classifies the result.
	Outcome SaveOutcome

	// Path is the resolved destination. Empty when cancelled or when a
	// malformed payload was skipped.
	Path string

	// BytesWritten is the number of bytes written to Path.
	BytesWritten int

	// Err carries the underlying cause for failure outcomes.
	Err error
}

// Written returns true if a document reached the disk.
// A malformed payload still counts when its placeholder was written,
// even an empty one.
func (r SaveResult) Written() bool {
	return r.Outcome == SaveWritten || (r.Outcome == SaveMalformedInput && r.Path != "")
}

// LoadOutcome classifies how a load request ended.
type LoadOutcome string

// Possible load outcomes.
const (
	// LoadOK means the full content was read.
	LoadOK LoadOutcome = "loaded"

	// LoadOpenFailed means the file could not be opened.
	LoadOpenFailed LoadOutcome = "open_failed"

	// LoadReadFailed means the file opened but could not be read.
	LoadReadFailed LoadOutcome = "read_failed"

	// LoadUnsupportedLocation means the location does not resolve to a local path.
	LoadUnsupportedLocation LoadOutcome = "unsupported_location"
)

// String returns the string representation.
func (o LoadOutcome) String() string {
	return string(o)
}

// LoadResult is the explicit outcome of a load request.
// Content is always empty unless Outcome is LoadOK.
type LoadResult struct {
	// Content is the full text of the file.
	Content string

	// Path is the resolved local path, if resolution succeeded.
	Path string

	// Outcome classifies the result.
	Outcome LoadOutcome

	// Err carries the underlying cause for failure outcomes.
	Err error
}

// OK returns true if the content was read.
func (r LoadResult) OK() bool {
	return r.Outcome == LoadOK
}
