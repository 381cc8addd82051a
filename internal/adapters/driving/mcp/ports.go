package mcp

import (
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Persister saves and loads files. Its chooser must never read stdin,
	// which carries the protocol; save_json without a path calls Save.
	Persister driving.FilePersister

	// History lists recent activity. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Persister == nil {
		return ErrMissingPersister
	}
	return nil
}
