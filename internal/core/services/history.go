package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads and trims the activity journal.
type HistoryService struct {
	store    driven.ActivityStore
	settings driving.SettingsService
}

// NewHistoryService creates a new history service. A nil store disables history.
func NewHistoryService(store driven.ActivityStore, settings driving.SettingsService) *HistoryService {
	return &HistoryService{
		store:    store,
		settings: settings,
	}
}

// Recent returns up to limit records, most recent first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = s.configuredLimit()
	}

	activities, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	return activities, nil
}

// Prune keeps only the most recent keep records.
func (s *HistoryService) Prune(ctx context.Context, keep int) error {
	if s.store == nil {
		return domain.ErrHistoryDisabled
	}
	if keep < 0 {
		return fmt.Errorf("%w: keep must not be negative, got %d", domain.ErrInvalidInput, keep)
	}

	if err := s.store.Prune(ctx, keep); err != nil {
		return fmt.Errorf("pruning activity: %w", err)
	}
	return nil
}

func (s *HistoryService) configuredLimit() int {
	defaults := domain.DefaultBridgeSettings()
	if s.settings == nil {
		return defaults.History.Limit
	}
	settings, err := s.settings.Get()
	if err != nil || settings == nil {
		return defaults.History.Limit
	}
	return settings.History.Limit
}
