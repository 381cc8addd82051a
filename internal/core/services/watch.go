package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
	"github.com/custodia-labs/jsonbridge/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.ContentWatcher = (*WatchService)(nil)

var watchLog = logger.For("watch")

// WatchService reloads a file every time it changes.
type WatchService struct {
	persister driving.FilePersister
	watcher   driven.FileWatcher
}

// NewWatchService creates a new watch service.
func NewWatchService(persister driving.FilePersister, watcher driven.FileWatcher) *WatchService {
	return &WatchService{
		persister: persister,
		watcher:   watcher,
	}
}

// Watch loads location once and again after each change until ctx is done.
func (s *WatchService) Watch(
	ctx context.Context,
	location domain.FileLocation,
	onLoad func(domain.LoadResult),
) error {
	if s.watcher == nil {
		return errors.New("file watcher not configured")
	}
	if onLoad == nil {
		return domain.ErrInvalidInput
	}

	path, err := location.LocalPath()
	if err != nil {
		return err
	}

	onLoad(s.persister.Load(ctx, location))

	watchLog.Debug("watching %s", path)
	return s.watcher.Watch(ctx, path, func() {
		onLoad(s.persister.Load(ctx, location))
	})
}
