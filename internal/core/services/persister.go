package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
	"github.com/custodia-labs/jsonbridge/internal/logger"
)

// Ensure PersisterService implements the interface.
var _ driving.FilePersister = (*PersisterService)(nil)

var persisterLog = logger.For("persister")

// PersisterService saves JSON documents to user-chosen paths and loads
// file content. It keeps no state between calls.
type PersisterService struct {
	chooser   driven.SaveLocationChooser
	formatter driven.JSONFormatter
	files     driven.FileSystem
	settings  driving.SettingsService
	activity  driven.ActivityStore
	now       func() time.Time
}

// NewPersisterService creates a new persister service.
// settings and activity may be nil; defaults apply and nothing is journaled.
func NewPersisterService(
	chooser driven.SaveLocationChooser,
	formatter driven.JSONFormatter,
	files driven.FileSystem,
	settings driving.SettingsService,
	activity driven.ActivityStore,
) *PersisterService {
	return &PersisterService{
		chooser:   chooser,
		formatter: formatter,
		files:     files,
		settings:  settings,
		activity:  activity,
		now:       time.Now,
	}
}

// WithChooser returns a copy of the service that asks chooser instead.
// Used by front ends that collect the destination themselves.
func (s *PersisterService) WithChooser(chooser driven.SaveLocationChooser) *PersisterService {
	clone := *s
	clone.chooser = chooser
	return &clone
}

// Save asks the chooser for a destination and writes the formatted payload.
func (s *PersisterService) Save(ctx context.Context, jsonText domain.JSONPayload) domain.SaveResult {
	settings := s.currentSettings()
	opts := settings.DialogOptions(s.homeDir())

	if s.chooser == nil {
		persisterLog.Warn("no file chooser configured, treating save as cancelled")
		return s.recordSave(ctx, settings, domain.SaveResult{Outcome: domain.SaveCancelled})
	}

	location, err := s.chooser.ChooseSaveLocation(ctx, opts)
	if err != nil && !errors.Is(err, domain.ErrCancelled) {
		persisterLog.Warn("file chooser failed: %v", err)
	}
	if err != nil || location.IsEmpty() {
		persisterLog.Debug("save dialog cancelled")
		return s.recordSave(ctx, settings, domain.SaveResult{Outcome: domain.SaveCancelled})
	}

	return s.recordSave(ctx, settings, s.write(location, jsonText, settings, opts))
}

// SaveTo writes the formatted payload to location without asking.
func (s *PersisterService) SaveTo(
	ctx context.Context,
	location domain.FileLocation,
	jsonText domain.JSONPayload,
) domain.SaveResult {
	settings := s.currentSettings()
	opts := settings.DialogOptions(s.homeDir())
	return s.recordSave(ctx, settings, s.write(location, jsonText, settings, opts))
}

// write formats jsonText and writes it to location.
func (s *PersisterService) write(
	location domain.FileLocation,
	jsonText domain.JSONPayload,
	settings domain.BridgeSettings,
	opts domain.SaveDialogOptions,
) domain.SaveResult {
	path, err := location.LocalPath()
	if err != nil {
		persisterLog.Warn("cannot save to %q: %v", location, err)
		return domain.SaveResult{
			Outcome: domain.SaveOpenFailed,
			Err:     fmt.Errorf("%w: %w", domain.ErrOpenFailed, err),
		}
	}
	path = opts.ApplySuffix(path)

	outcome := domain.SaveWritten
	data, formatErr := s.formatter.Indent([]byte(jsonText), settings.Format.Indent)
	if formatErr != nil {
		outcome = domain.SaveMalformedInput
		policy := settings.Save.Malformed
		persisterLog.Warn("payload for %s is not valid JSON, applying %q policy: %v", path, policy, formatErr)

		data = policy.Placeholder()
		if data == nil {
			// skipped: no file was opened, so there is no path to report
			return domain.SaveResult{Outcome: outcome, Err: formatErr}
		}
	}

	n, err := s.files.WriteFile(path, data)
	if err != nil {
		persisterLog.Warn("save to %s failed: %v", path, err)
		failed := domain.SaveWriteFailed
		if errors.Is(err, domain.ErrOpenFailed) {
			failed = domain.SaveOpenFailed
		}
		return domain.SaveResult{Outcome: failed, Path: path, BytesWritten: n, Err: err}
	}

	persisterLog.Debug("wrote %d bytes to %s", n, path)
	return domain.SaveResult{Outcome: outcome, Path: path, BytesWritten: n, Err: formatErr}
}

// Load reads the full content at location. Failures yield empty content.
func (s *PersisterService) Load(ctx context.Context, location domain.FileLocation) domain.LoadResult {
	settings := s.currentSettings()

	path, err := location.LocalPath()
	if err != nil {
		persisterLog.Warn("Open file url error: %q: %v", location, err)
		outcome := domain.LoadOpenFailed
		if errors.Is(err, domain.ErrUnsupportedScheme) {
			outcome = domain.LoadUnsupportedLocation
		}
		return s.recordLoad(ctx, settings, domain.LoadResult{Outcome: outcome, Err: err})
	}

	data, err := s.files.ReadFile(path)
	if err != nil {
		persisterLog.Warn("Open file url error: %s: %v", path, err)
		outcome := domain.LoadOpenFailed
		if errors.Is(err, domain.ErrReadFailed) {
			outcome = domain.LoadReadFailed
		}
		return s.recordLoad(ctx, settings, domain.LoadResult{Path: path, Outcome: outcome, Err: err})
	}

	return s.recordLoad(ctx, settings, domain.LoadResult{
		Content: string(data),
		Path:    path,
		Outcome: domain.LoadOK,
	})
}

// currentSettings returns stored settings, or defaults if unavailable.
func (s *PersisterService) currentSettings() domain.BridgeSettings {
	if s.settings == nil {
		return domain.DefaultBridgeSettings()
	}
	settings, err := s.settings.Get()
	if err != nil || settings == nil {
		persisterLog.Warn("reading settings failed, using defaults: %v", err)
		return domain.DefaultBridgeSettings()
	}
	return *settings
}

// homeDir returns the dialog fallback directory, or "" if unknown.
func (s *PersisterService) homeDir() string {
	home, err := s.files.HomeDir()
	if err != nil {
		persisterLog.Debug("home directory unavailable: %v", err)
		return ""
	}
	return home
}

func (s *PersisterService) recordSave(
	ctx context.Context,
	settings domain.BridgeSettings,
	result domain.SaveResult,
) domain.SaveResult {
	s.record(ctx, settings, domain.ActivityFromSave("", result, s.now()))
	return result
}

func (s *PersisterService) recordLoad(
	ctx context.Context,
	settings domain.BridgeSettings,
	result domain.LoadResult,
) domain.LoadResult {
	s.record(ctx, settings, domain.ActivityFromLoad("", result, s.now()))
	return result
}

// record journals an activity. Journal failures never reach the caller.
func (s *PersisterService) record(ctx context.Context, settings domain.BridgeSettings, activity domain.Activity) {
	if s.activity == nil || !settings.History.Enabled {
		return
	}
	if err := s.activity.Record(ctx, activity); err != nil {
		persisterLog.Warn("recording %s activity failed: %v", activity.Operation, err)
		return
	}
	if err := s.activity.Prune(ctx, settings.History.Limit); err != nil {
		persisterLog.Warn("pruning history failed: %v", err)
	}
}
