package driven

// FileSystem performs the two scoped file operations the bridge needs.
// Every handle is opened and closed within a single call.
type FileSystem interface {
	// WriteFile opens path write-only, creating it if needed and truncating
	// it otherwise, writes data and closes it. Returns the number of bytes
	// written. An error wrapping domain.ErrOpenFailed means nothing was
	// written; domain.ErrWriteFailed means the write or close failed.
	WriteFile(path string, data []byte) (int, error)

	// ReadFile opens path for reading and returns its full content.
	// Errors wrap domain.ErrOpenFailed or domain.ErrReadFailed.
	ReadFile(path string) ([]byte, error)

	// HomeDir returns the user's home directory.
	HomeDir() (string, error)
}
