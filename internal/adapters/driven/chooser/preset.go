package chooser

import (
	"context"
	"path/filepath"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
)

// Ensure Preset implements the interface.
var _ driven.SaveLocationChooser = Preset("")

// Preset answers every request with the same location.
// An empty Preset behaves like a cancelled dialog.
type Preset domain.FileLocation

// ChooseSaveLocation returns the preset location. A relative path is
// resolved against the working directory, not the dialog start directory.
func (p Preset) ChooseSaveLocation(
	ctx context.Context,
	opts domain.SaveDialogOptions,
) (domain.FileLocation, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p == "" {
		return "", domain.ErrCancelled
	}
	path, err := domain.FileLocation(p).LocalPath()
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return domain.FileLocation(opts.ApplySuffix(abs)), nil
}
