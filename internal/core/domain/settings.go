package domain

import (
	"errors"
	"fmt"
)

const unknownDescription = "Unknown"

// Indentation bounds for the pretty-printer.
const (
	MinIndent = 1
	MaxIndent = 16
)

// MalformedPolicy decides what a save writes when the payload is not valid JSON.
type MalformedPolicy string

// Available malformed-input policies.
const (
	// MalformedWriteNull writes the JSON null document.
	MalformedWriteNull MalformedPolicy = "null"

	// MalformedWriteEmpty writes a zero-byte file.
	MalformedWriteEmpty MalformedPolicy = "empty"

	// MalformedSkip leaves the destination untouched.
	MalformedSkip MalformedPolicy = "skip"
)

// IsValid returns true if the policy is recognised.
func (p MalformedPolicy) IsValid() bool {
	switch p {
	case MalformedWriteNull, MalformedWriteEmpty, MalformedSkip:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p MalformedPolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p MalformedPolicy) Description() string {
	switch p {
	case MalformedWriteNull:
		return "Write null (file contains the JSON null document)"
	case MalformedWriteEmpty:
		return "Write empty (file is truncated to zero bytes)"
	case MalformedSkip:
		return "Skip (destination is left untouched)"
	default:
		return unknownDescription
	}
}

// Placeholder returns the bytes written in place of a malformed payload.
// It returns nil for MalformedSkip.
func (p MalformedPolicy) Placeholder() []byte {
	switch p {
	case MalformedWriteNull:
		return []byte("null\n")
	case MalformedWriteEmpty:
		return []byte{}
	default:
		return nil
	}
}

// AllMalformedPolicies returns all available policies.
func AllMalformedPolicies() []MalformedPolicy {
	return []MalformedPolicy{
		MalformedWriteNull,
		MalformedWriteEmpty,
		MalformedSkip,
	}
}

// DialogSettings holds file-selection dialog configuration.
type DialogSettings struct {
	// Title is the dialog header.
	Title string

	// StartDir is where the dialog opens. Empty means the user's home directory.
	StartDir string

	// DefaultSuffix is appended to chosen names without an extension.
	DefaultSuffix string
}

// FormatSettings holds pretty-printer configuration.
type FormatSettings struct {
	// Indent is the number of spaces per nesting level.
	Indent int
}

// SaveSettings holds save behaviour configuration.
type SaveSettings struct {
	// Malformed decides what happens to invalid JSON payloads.
	Malformed MalformedPolicy
}

// HistorySettings holds activity journal configuration.
type HistorySettings struct {
	// Enabled turns journaling on.
	Enabled bool

	// Limit is how many records are kept.
	Limit int
}

// BridgeSettings holds all application settings.
type BridgeSettings struct {
	Dialog  DialogSettings
	Format  FormatSettings
	Save    SaveSettings
	History HistorySettings
}

// DefaultBridgeSettings returns settings with sensible defaults.
func DefaultBridgeSettings() BridgeSettings {
	return BridgeSettings{
		Dialog: DialogSettings{
			Title:         "Save File",
			StartDir:      "", // resolved to the home directory at dialog time
			DefaultSuffix: "json",
		},
		Format: FormatSettings{
			Indent: 4,
		},
		Save: SaveSettings{
			Malformed: MalformedWriteNull,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   100,
		},
	}
}

// Validate checks that every setting is within range.
func (s BridgeSettings) Validate() error {
	var errs []error

	if s.Format.Indent < MinIndent || s.Format.Indent > MaxIndent {
		errs = append(errs, fmt.Errorf("format.indent must be between %d and %d, got %d",
			MinIndent, MaxIndent, s.Format.Indent))
	}
	if !s.Save.Malformed.IsValid() {
		errs = append(errs, fmt.Errorf("save.malformed %q is not one of null, empty, skip", s.Save.Malformed))
	}
	if s.History.Limit < 1 {
		errs = append(errs, fmt.Errorf("history.limit must be positive, got %d", s.History.Limit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

// DialogOptions builds dialog options, falling back to home when no start
// directory is configured.
func (s BridgeSettings) DialogOptions(home string) SaveDialogOptions {
	start := s.Dialog.StartDir
	if start == "" {
		start = home
	}
	return SaveDialogOptions{
		Title:         s.Dialog.Title,
		StartDir:      start,
		Filter:        JSONFilter(),
		DefaultSuffix: s.Dialog.DefaultSuffix,
	}
}
