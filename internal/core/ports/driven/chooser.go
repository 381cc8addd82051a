package driven

import (
	"context"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

// SaveLocationChooser asks the user for a destination to save to.
// Implementations block until the user responds.
type SaveLocationChooser interface {
	// ChooseSaveLocation returns the chosen location.
	// A cancelled dialog returns an empty location and either a nil error
	// or domain.ErrCancelled.
	ChooseSaveLocation(ctx context.Context, opts domain.SaveDialogOptions) (domain.FileLocation, error)
}

// ChooserFunc adapts an ordinary function to SaveLocationChooser.
type ChooserFunc func(ctx context.Context, opts domain.SaveDialogOptions) (domain.FileLocation, error)

// ChooseSaveLocation calls f.
func (f ChooserFunc) ChooseSaveLocation(
	ctx context.Context,
	opts domain.SaveDialogOptions,
) (domain.FileLocation, error) {
	return f(ctx, opts)
}
