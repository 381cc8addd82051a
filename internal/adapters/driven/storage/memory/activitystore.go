package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
)

// Ensure ActivityStore implements the interface.
var _ driven.ActivityStore = (*ActivityStore)(nil)

// ActivityStore is an in-memory implementation of driven.ActivityStore.
type ActivityStore struct {
	mu      sync.RWMutex
	records []domain.Activity
}

// NewActivityStore creates a new in-memory activity store.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{}
}

// Record appends an activity, assigning an ID when it has none.
func (s *ActivityStore) Record(_ context.Context, activity domain.Activity) error {
	if !activity.Operation.IsValid() {
		return domain.ErrInvalidInput
	}
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, activity)
	return nil
}

// Recent returns up to limit activities, newest first.
// A non-positive limit returns everything.
func (s *ActivityStore) Recent(_ context.Context, limit int) ([]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := s.newestFirst()
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Prune keeps the newest keep activities.
func (s *ActivityStore) Prune(_ context.Context, keep int) error {
	if keep < 0 {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.newestFirst()
	if len(kept) > keep {
		kept = kept[:keep]
	}
	// records are kept oldest first
	s.records = make([]domain.Activity, len(kept))
	for i := range kept {
		s.records[len(kept)-1-i] = kept[i]
	}
	return nil
}

// newestFirst returns a sorted copy. Caller holds the lock.
func (s *ActivityStore) newestFirst() []domain.Activity {
	result := make([]domain.Activity, len(s.records))
	for i := range s.records {
		result[len(s.records)-1-i] = s.records[i]
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].At.After(result[j].At) })
	return result
}
