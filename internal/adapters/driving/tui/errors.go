package tui

import "errors"

// ErrMissingPersister is returned when the file persister is not provided.
var ErrMissingPersister = errors.New("tui: file persister is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
