// Package tui provides an interactive terminal user interface for jsonbridge.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"os"

	"github.com/spf13/afero"

	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
)

// Ports aggregates the services and resources the TUI needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Persister saves and loads files. Required.
	Persister driving.FilePersister

	// History lists recent activity. Optional.
	History driving.HistoryService

	// Settings supplies dialog defaults. Optional.
	Settings driving.SettingsService

	// Fs is the filesystem the save dialog browses. Defaults to the OS filesystem.
	Fs afero.Fs

	// HomeDir locates the dialog's fallback directory. Defaults to os.UserHomeDir.
	HomeDir func() (string, error)
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	persister driving.FilePersister,
	history driving.HistoryService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Persister: persister,
		History:   history,
		Settings:  settings,
	}
}

// Validate ensures all required ports are set and fills optional defaults.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Persister == nil {
		return ErrMissingPersister
	}
	if p.Fs == nil {
		p.Fs = afero.NewOsFs()
	}
	if p.HomeDir == nil {
		p.HomeDir = os.UserHomeDir
	}
	return nil
}
