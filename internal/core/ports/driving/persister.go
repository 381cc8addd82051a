package driving

import (
	"context"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

// FilePersister saves JSON documents and loads file content.
//
// Neither method returns an error: every failure is reported through the
// result's Outcome and Err so a UI thread is never interrupted.
type FilePersister interface {
	// Save asks the configured chooser for a destination, then pretty-prints
	// jsonText and writes it there. A cancelled dialog is a silent no-op.
	Save(ctx context.Context, jsonText domain.JSONPayload) domain.SaveResult

	// SaveTo pretty-prints jsonText and writes it to location without asking.
	SaveTo(ctx context.Context, location domain.FileLocation, jsonText domain.JSONPayload) domain.SaveResult

	// Load reads the full text content at location.
	// Content is empty on any failure.
	Load(ctx context.Context, location domain.FileLocation) domain.LoadResult
}
