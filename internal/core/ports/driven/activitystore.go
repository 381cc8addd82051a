package driven

import (
	"context"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

// ActivityStore persists the journal of save and load requests.
type ActivityStore interface {
	// Record appends an activity record.
	Record(ctx context.Context, activity domain.Activity) error

	// Recent returns up to limit records, most recent first.
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)

	// Prune removes all but the most recent keep records.
	Prune(ctx context.Context, keep int) error
}
