package driven

import "context"

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch blocks until ctx is done, calling onChange each time the file at
	// path is created or written. Returns nil when ctx is cancelled.
	Watch(ctx context.Context, path string, onChange func()) error
}
