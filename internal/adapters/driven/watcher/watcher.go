// Package watcher reports changes to individual files using fsnotify.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
	"github.com/custodia-labs/jsonbridge/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

var log = logger.For("watcher")

// Watcher follows one file by watching its parent directory, so files
// replaced by rename (as most editors do) keep being reported.
type Watcher struct {
	debounce time.Duration
}

// New creates a Watcher. A zero debounce reports every event.
func New(debounce time.Duration) *Watcher {
	return &Watcher{debounce: debounce}
}

// Watch calls onChange each time path is created or written, until ctx is done.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	log.Debug("watching %s for changes to %s", dir, filepath.Base(abs))

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !isChange(event, abs) {
				continue
			}
			if w.debounce <= 0 {
				onChange()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			onChange()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error on %s: %v", dir, err)
		}
	}
}

// isChange reports whether event means target now has new content.
func isChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write)
}
