package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
)

// MockPersister implements driving.FilePersister for testing.
type MockPersister struct {
	mu      sync.Mutex
	SavedTo []domain.FileLocation
	Saved   []domain.JSONPayload

	SaveToFunc func(ctx context.Context, location domain.FileLocation, text domain.JSONPayload) domain.SaveResult
	LoadFunc   func(ctx context.Context, location domain.FileLocation) domain.LoadResult
}

func (m *MockPersister) Save(_ context.Context, _ domain.JSONPayload) domain.SaveResult {
	return domain.SaveResult{Outcome: domain.SaveCancelled}
}

func (m *MockPersister) SaveTo(
	ctx context.Context,
	location domain.FileLocation,
	text domain.JSONPayload,
) domain.SaveResult {
	m.mu.Lock()
	m.SavedTo = append(m.SavedTo, location)
	m.Saved = append(m.Saved, text)
	m.mu.Unlock()

	if m.SaveToFunc != nil {
		return m.SaveToFunc(ctx, location, text)
	}
	return domain.SaveResult{
		Outcome:      domain.SaveWritten,
		Path:         location.String(),
		BytesWritten: len(text),
	}
}

func (m *MockPersister) Load(ctx context.Context, location domain.FileLocation) domain.LoadResult {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, location)
	}
	return domain.LoadResult{Path: location.String(), Content: "{}", Outcome: domain.LoadOK}
}

// MockHistory implements driving.HistoryService for testing.
type MockHistory struct {
	Activities []domain.Activity
}

func (m *MockHistory) Recent(_ context.Context, _ int) ([]domain.Activity, error) {
	return m.Activities, nil
}

func (m *MockHistory) Prune(_ context.Context, _ int) error {
	return nil
}

var (
	_ driving.FilePersister  = (*MockPersister)(nil)
	_ driving.HistoryService = (*MockHistory)(nil)
)

func TestNewPorts(t *testing.T) {
	persister := &MockPersister{}
	history := &MockHistory{}

	ports := NewPorts(persister, history, nil)

	require.NotNil(t, ports)
	assert.Equal(t, persister, ports.Persister)
	assert.Equal(t, history, ports.History)
	assert.Nil(t, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	ports := NewPorts(&MockPersister{}, nil, nil)

	require.NoError(t, ports.Validate())
	assert.NotNil(t, ports.Fs, "defaults to the OS filesystem")
	assert.NotNil(t, ports.HomeDir)
}

func TestPorts_Validate_MissingPersister(t *testing.T) {
	ports := NewPorts(nil, &MockHistory{}, nil)

	assert.ErrorIs(t, ports.Validate(), ErrMissingPersister)
}

func TestPorts_Validate_Nil(t *testing.T) {
	var ports *Ports

	assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
}
