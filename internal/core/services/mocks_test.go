package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
)

// mockChooser returns a fixed location and records the options it was asked with.
type mockChooser struct {
	location domain.FileLocation
	err      error
	calls    int
	opts     domain.SaveDialogOptions
}

var _ driven.SaveLocationChooser = (*mockChooser)(nil)

func (m *mockChooser) ChooseSaveLocation(
	_ context.Context,
	opts domain.SaveDialogOptions,
) (domain.FileLocation, error) {
	m.calls++
	m.opts = opts
	return m.location, m.err
}

// mockFormatter indents with encoding/json.
type mockFormatter struct{}

var _ driven.JSONFormatter = (*mockFormatter)(nil)

func (m *mockFormatter) Indent(src []byte, indent int) ([]byte, error) {
	if !json.Valid(src) {
		return nil, domain.ErrMalformedJSON
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(src), "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedJSON, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// mockFileSystem keeps files in a map and can inject failures.
type mockFileSystem struct {
	mu       sync.Mutex
	files    map[string][]byte
	home     string
	homeErr  error
	writeErr error
	readErr  error
	writes   int
}

var _ driven.FileSystem = (*mockFileSystem)(nil)

func newMockFileSystem() *mockFileSystem {
	return &mockFileSystem{files: make(map[string][]byte), home: "/home/user"}
}

func (m *mockFileSystem) WriteFile(path string, data []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.files[path] = append([]byte(nil), data...)
	return len(data), nil
}

func (m *mockFileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s: no such file", domain.ErrOpenFailed, path)
	}
	return data, nil
}

func (m *mockFileSystem) HomeDir() (string, error) {
	return m.home, m.homeErr
}

func (m *mockFileSystem) file(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	return data, ok
}

// failingActivityStore rejects every call.
type failingActivityStore struct{}

var _ driven.ActivityStore = (*failingActivityStore)(nil)

var errStoreDown = errors.New("store down")

func (failingActivityStore) Record(context.Context, domain.Activity) error { return errStoreDown }

func (failingActivityStore) Recent(context.Context, int) ([]domain.Activity, error) {
	return nil, errStoreDown
}

func (failingActivityStore) Prune(context.Context, int) error { return errStoreDown }

// mockWatcher fires onChange a fixed number of times, then waits for ctx.
type mockWatcher struct {
	events int
	err    error
	path   string
}

var _ driven.FileWatcher = (*mockWatcher)(nil)

func (m *mockWatcher) Watch(ctx context.Context, path string, onChange func()) error {
	m.path = path
	if m.err != nil {
		return m.err
	}
	for i := 0; i < m.events; i++ {
		onChange()
	}
	<-ctx.Done()
	return nil
}
