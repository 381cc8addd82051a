// Package filesystem implements the bridge's file access on top of afero,
// so tests can swap in in-memory or read-only filesystems.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.FileSystem = (*Store)(nil)

// FileMode is the permission used when a save creates a new file.
const FileMode os.FileMode = 0644

// Store performs scoped reads and writes against an afero filesystem.
type Store struct {
	fs   afero.Fs
	home func() (string, error)
}

// New creates a Store backed by fs.
func New(fs afero.Fs) *Store {
	return &Store{
		fs:   fs,
		home: os.UserHomeDir,
	}
}

// NewOS creates a Store backed by the operating system's filesystem.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// WithHomeDir overrides how the home directory is resolved.
func (s *Store) WithHomeDir(home func() (string, error)) *Store {
	s.home = home
	return s
}

// WriteFile truncates or creates path and writes data.
// The file is closed even when the write fails.
func (s *Store) WriteFile(path string, data []byte) (n int, err error) {
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrOpenFailed, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", domain.ErrWriteFailed, path, cerr)
		}
	}()

	n, err = f.Write(data)
	if err != nil {
		return n, fmt.Errorf("%w: %w", domain.ErrWriteFailed, err)
	}
	if n < len(data) {
		return n, fmt.Errorf("%w: %w", domain.ErrWriteFailed, io.ErrShortWrite)
	}
	return n, nil
}

// ReadFile returns the full content of path.
func (s *Store) ReadFile(path string) ([]byte, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrOpenFailed, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrReadFailed, path)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrReadFailed, err)
	}
	return data, nil
}

// HomeDir returns the user's home directory.
func (s *Store) HomeDir() (string, error) {
	home, err := s.home()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	if home == "" {
		return "", errors.New("home directory is not set")
	}
	return home, nil
}
