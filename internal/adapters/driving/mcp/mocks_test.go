package mcp

import (
	"context"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

// mockPersister is a mock implementation of driving.FilePersister.
type mockPersister struct {
	files   map[string]string
	saved   map[string]string
	savedTo []domain.FileLocation
	saves   int
}

func newMockPersister() *mockPersister {
	return &mockPersister{
		files: map[string]string{},
		saved: map[string]string{},
	}
}

func (m *mockPersister) Save(_ context.Context, _ domain.JSONPayload) domain.SaveResult {
	m.saves++
	return domain.SaveResult{Outcome: domain.SaveCancelled}
}

func (m *mockPersister) SaveTo(
	_ context.Context,
	location domain.FileLocation,
	text domain.JSONPayload,
) domain.SaveResult {
	m.savedTo = append(m.savedTo, location)
	path, err := location.LocalPath()
	if err != nil {
		return domain.SaveResult{Outcome: domain.SaveOpenFailed, Err: err}
	}
	m.saved[path] = string(text)
	return domain.SaveResult{Outcome: domain.SaveWritten, Path: path, BytesWritten: len(text)}
}

func (m *mockPersister) Load(_ context.Context, location domain.FileLocation) domain.LoadResult {
	path, err := location.LocalPath()
	if err != nil {
		return domain.LoadResult{Outcome: domain.LoadUnsupportedLocation, Err: err}
	}
	content, ok := m.files[path]
	if !ok {
		return domain.LoadResult{Path: path, Outcome: domain.LoadOpenFailed, Err: domain.ErrOpenFailed}
	}
	return domain.LoadResult{Path: path, Content: content, Outcome: domain.LoadOK}
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	activities []domain.Activity
	err        error
	limits     []int
}

func (m *mockHistoryService) Recent(_ context.Context, limit int) ([]domain.Activity, error) {
	m.limits = append(m.limits, limit)
	return m.activities, m.err
}

func (m *mockHistoryService) Prune(_ context.Context, _ int) error {
	return m.err
}
