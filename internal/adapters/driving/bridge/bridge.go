// Package bridge exposes the file persister to a user-interface binding.
//
// The binding layer calls exactly two methods, synchronously, on its own
// thread. Neither returns an error nor panics: failures are logged and
// reported as a no-op save or empty content.
package bridge

import (
	"context"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
	"github.com/custodia-labs/jsonbridge/internal/logger"
)

var bridgeLog = logger.For("bridge")

// Bridge is the object handed to the UI binding.
type Bridge struct {
	persister driving.FilePersister
	ctx       context.Context
}

// New creates a bridge over persister.
func New(persister driving.FilePersister) *Bridge {
	return &Bridge{persister: persister, ctx: context.Background()}
}

// WithContext sets the context passed to every call.
func (b *Bridge) WithContext(ctx context.Context) *Bridge {
	b.ctx = ctx
	return b
}

// SaveJSON asks the user where to save jsonText and writes it pretty-printed.
// A cancelled dialog does nothing.
func (b *Bridge) SaveJSON(jsonText string) {
	defer b.recover("SaveJSON")

	if b.persister == nil {
		bridgeLog.Warn("SaveJSON called without a persister")
		return
	}
	result := b.persister.Save(b.ctx, domain.JSONPayload(jsonText))
	bridgeLog.Debug("SaveJSON: %s %s", result.Outcome, result.Path)
}

// GetFileContent returns the full text at location, a path or file URL.
// Any failure yields "".
func (b *Bridge) GetFileContent(location string) (content string) {
	defer b.recover("GetFileContent")

	if b.persister == nil {
		bridgeLog.Warn("GetFileContent called without a persister")
		return ""
	}
	return b.persister.Load(b.ctx, domain.FileLocation(location)).Content
}

// recover stops a panic from crossing into the binding layer.
func (b *Bridge) recover(op string) {
	if r := recover(); r != nil {
		bridgeLog.Warn("%s panicked: %v", op, r)
	}
}
