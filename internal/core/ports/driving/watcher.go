package driving

import (
	"context"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

// ContentWatcher follows a file and reports its content as it changes.
type ContentWatcher interface {
	// Watch loads location once, then again after every change, passing each
	// result to onLoad. It blocks until ctx is done.
	Watch(ctx context.Context, location domain.FileLocation, onLoad func(domain.LoadResult)) error
}
