// Command jsonbridge saves pretty-printed JSON documents and loads file content.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driven/chooser"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driven/config/file"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driven/formatter"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driven/watcher"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/cli"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
	"github.com/custodia-labs/jsonbridge/internal/core/services"
	"github.com/custodia-labs/jsonbridge/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)

	var store *sqlite.Store
	cli.SetInitializer(func(configDir string) (*cli.Services, error) {
		svc, s := wire(configDir)
		store = s
		return svc, nil
	})

	err := cli.Execute()

	if store != nil {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("closing activity store: %v", cerr)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

// wire builds the services for one command run.
// Missing config or database fall back to in-memory stores.
func wire(configDir string) (*cli.Services, *sqlite.Store) {
	var configStore driven.ConfigStore
	fileConfig, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileConfig
	}
	settings := services.NewSettingsService(configStore)

	dataDir := ""
	if configDir != "" {
		dataDir = filepath.Join(configDir, "data")
	}

	var activity driven.ActivityStore
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		logger.Warn("activity database unavailable, history is kept in memory: %v", err)
		activity = memory.NewActivityStore()
	} else {
		activity = store.ActivityStore()
	}

	files := filesystem.NewOS()
	persister := services.NewPersisterService(
		chooser.NewPrompt(os.Stdin, os.Stderr),
		formatter.New(),
		files,
		settings,
		activity,
	)

	return &cli.Services{
		Persister: persister,
		NewPersister: func(c driven.SaveLocationChooser) driving.FilePersister {
			return persister.WithChooser(c)
		},
		Settings: settings,
		History:  services.NewHistoryService(activity, settings),
		Watcher:  services.NewWatchService(persister, watcher.New(watcher.DefaultDebounce)),
		Fs:       afero.NewOsFs(),
	}, store
}
