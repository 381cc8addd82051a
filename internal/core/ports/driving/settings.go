package driving

import "github.com/custodia-labs/jsonbridge/internal/core/domain"

// SettingsService manages jsonbridge settings.
type SettingsService interface {
	// Get retrieves current settings, filling gaps with defaults.
	Get() (*domain.BridgeSettings, error)

	// Save validates and persists all settings.
	Save(settings *domain.BridgeSettings) error

	// Set updates one setting by key, e.g. "format.indent" = "2".
	// Values are parsed according to the key's type.
	Set(key, value string) error

	// Reset removes a stored key so its default applies again.
	Reset(key string) error

	// Keys lists the recognised setting keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.BridgeSettings

	// Validate checks the stored settings.
	Validate() error
}
