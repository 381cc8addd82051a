package driven

// ConfigStore provides access to jsonbridge configuration.
// Keys use dot notation ("dialog.title"); the TOML adapter maps them to tables.
type ConfigStore interface {
	// Get retrieves a raw value and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key is missing or not a string.
	GetString(key string) string

	// GetInt returns 0 if the key is missing or not an integer.
	GetInt(key string) int

	// GetBool returns false if the key is missing or not a boolean.
	GetBool(key string) bool

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Delete removes a key and persists immediately.
	// Deleting a missing key is not an error.
	Delete(key string) error

	// Save persists the current configuration.
	Save() error

	// Load re-reads configuration from storage.
	Load() error

	// Path returns where the configuration lives.
	Path() string
}
