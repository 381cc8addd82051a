// Package cli provides the cobra command tree for jsonbridge.
// It is a driving adapter: commands translate flags into calls on the
// core services injected through SetServices or SetInitializer.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driving"
	"github.com/custodia-labs/jsonbridge/internal/logger"
)

// version is set at build time via -ldflags or SetVersion.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services holds the core services the commands drive.
type Services struct {
	// Persister saves with the default chooser and loads files.
	Persister driving.FilePersister

	// NewPersister returns a persister that asks chooser for save locations.
	// Commands use it to pick the chooser from their flags.
	NewPersister func(chooser driven.SaveLocationChooser) driving.FilePersister

	Settings driving.SettingsService
	History  driving.HistoryService
	Watcher  driving.ContentWatcher

	// Fs is the filesystem for --input files and the save dialog.
	Fs afero.Fs
}

// Initializer builds services once flags are parsed.
type Initializer func(configDir string) (*Services, error)

var (
	persisterService driving.FilePersister
	newPersister     func(driven.SaveLocationChooser) driving.FilePersister
	settingsService  driving.SettingsService
	historyService   driving.HistoryService
	watchService     driving.ContentWatcher
	fileSystem       afero.Fs = afero.NewOsFs()

	initializer Initializer
)

var rootCmd = &cobra.Command{
	Use:   "jsonbridge",
	Short: "Save and load JSON documents",
	Long: `jsonbridge pretty-prints JSON documents into files chosen through a
save dialog and reads file content back by path or file URL.

Use 'jsonbridge tui' for the interactive interface.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic messages to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.jsonbridge)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the services used by all commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	persisterService = s.Persister
	newPersister = s.NewPersister
	settingsService = s.Settings
	historyService = s.History
	watchService = s.Watcher
	fileSystem = s.Fs
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
}

// SetInitializer registers a function that builds services after flag parsing,
// so --config-dir can take effect.
func SetInitializer(fn Initializer) {
	initializer = fn
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if initializer == nil {
		return nil
	}
	services, err := initializer(configDir)
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(services)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var errPersisterMissing = errors.New("file persister not configured")
