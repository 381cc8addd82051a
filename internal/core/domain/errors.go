package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// File Operation Errors.

	// ErrCancelled indicates the user dismissed the file-selection dialog.
	// It is never reported as a failure.
	ErrCancelled = errors.New("selection cancelled")

	// ErrOpenFailed indicates the filesystem refused to open a location.
	ErrOpenFailed = errors.New("open failed")

	// ErrReadFailed indicates an opened file could not be read to the end.
	ErrReadFailed = errors.New("read failed")

	// ErrWriteFailed indicates the formatted document could not be written.
	ErrWriteFailed = errors.New("write failed")

	// ErrMalformedJSON indicates the payload is not syntactically valid JSON.
	ErrMalformedJSON = errors.New("malformed JSON")

	// Location Errors.

	// ErrEmptyLocation indicates no location was supplied.
	ErrEmptyLocation = errors.New("empty location")

	// ErrUnsupportedScheme indicates a URL whose scheme does not refer to the
	// local filesystem.
	ErrUnsupportedScheme = errors.New("unsupported location scheme")

	// Infrastructure Availability Errors.

	// ErrChooserUnavailable indicates no interactive dialog can be shown,
	// for example when stdin is not a terminal.
	ErrChooserUnavailable = errors.New("file chooser unavailable")

	// ErrHistoryDisabled indicates the activity journal is switched off.
	ErrHistoryDisabled = errors.New("history disabled")
)
