package driving

import (
	"context"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

// HistoryService exposes the activity journal.
type HistoryService interface {
	// Recent returns up to limit records, most recent first.
	// A non-positive limit uses the configured history limit.
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)

	// Prune keeps only the most recent keep records.
	Prune(ctx context.Context, keep int) error
}
