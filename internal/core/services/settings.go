package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDialogTitle    = "dialog.title"
	keyDialogStartDir = "dialog.start_dir"
	keyDialogSuffix   = "dialog.default_suffix"
	keyFormatIndent   = "format.indent"
	keySaveMalformed  = "save.malformed"
	keyHistoryEnabled = "history.enabled"
	keyHistoryLimit   = "history.limit"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or out-of-range values fall back
// to defaults so callers always receive usable settings.
func (s *SettingsService) Get() (*domain.BridgeSettings, error) {
	defaults := domain.DefaultBridgeSettings()
	settings := s.raw(defaults)

	if settings.Format.Indent < domain.MinIndent || settings.Format.Indent > domain.MaxIndent {
		settings.Format.Indent = defaults.Format.Indent
	}
	if !settings.Save.Malformed.IsValid() {
		settings.Save.Malformed = defaults.Save.Malformed
	}
	if settings.History.Limit < 1 {
		settings.History.Limit = defaults.History.Limit
	}

	return settings, nil
}

// raw reads settings without range checks.
func (s *SettingsService) raw(defaults domain.BridgeSettings) *domain.BridgeSettings {
	return &domain.BridgeSettings{
		Dialog: domain.DialogSettings{
			Title:         s.getString(keyDialogTitle, defaults.Dialog.Title),
			StartDir:      s.configStore.GetString(keyDialogStartDir), // empty means home
			DefaultSuffix: s.getString(keyDialogSuffix, defaults.Dialog.DefaultSuffix),
		},
		Format: domain.FormatSettings{
			Indent: s.getInt(keyFormatIndent, defaults.Format.Indent),
		},
		Save: domain.SaveSettings{
			Malformed: domain.MalformedPolicy(s.getString(keySaveMalformed, defaults.Save.Malformed.String())),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Limit:   s.getInt(keyHistoryLimit, defaults.History.Limit),
		},
	}
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.BridgeSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyDialogTitle, settings.Dialog.Title},
		{keyDialogStartDir, settings.Dialog.StartDir},
		{keyDialogSuffix, settings.Dialog.DefaultSuffix},
		{keyFormatIndent, settings.Format.Indent},
		{keySaveMalformed, settings.Save.Malformed.String()},
		{keyHistoryEnabled, settings.History.Enabled},
		{keyHistoryLimit, settings.History.Limit},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyDialogTitle:
		settings.Dialog.Title = value
	case keyDialogStartDir:
		settings.Dialog.StartDir = value
	case keyDialogSuffix:
		settings.Dialog.DefaultSuffix = strings.TrimPrefix(value, ".")
	case keyFormatIndent:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number: %q", domain.ErrInvalidInput, key, value)
		}
		settings.Format.Indent = n
	case keySaveMalformed:
		settings.Save.Malformed = domain.MalformedPolicy(strings.ToLower(value))
	case keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false: %q", domain.ErrInvalidInput, key, value)
		}
		settings.History.Enabled = b
	case keyHistoryLimit:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number: %q", domain.ErrInvalidInput, key, value)
		}
		settings.History.Limit = n
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Reset removes a stored value so the default applies again.
func (s *SettingsService) Reset(key string) error {
	if !s.isKey(key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err := s.configStore.Delete(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// Keys returns every settable key in sorted order.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyDialogTitle,
		keyDialogStartDir,
		keyDialogSuffix,
		keyFormatIndent,
		keySaveMalformed,
		keyHistoryEnabled,
		keyHistoryLimit,
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.BridgeSettings {
	return domain.DefaultBridgeSettings()
}

// Validate checks the stored values, before any fallback is applied.
func (s *SettingsService) Validate() error {
	return s.raw(domain.DefaultBridgeSettings()).Validate()
}

func (s *SettingsService) isKey(key string) bool {
	for _, k := range s.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
