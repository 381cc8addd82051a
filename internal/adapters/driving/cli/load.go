package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

var loadWatch bool

var loadCmd = &cobra.Command{
	Use:   "load LOCATION",
	Short: "Print the content of a file",
	Long: `Read a file by path or file URL and print its content unchanged.

With --watch the file is printed again every time it changes, until
interrupted.

Examples:
  jsonbridge load ~/data/config.json
  jsonbridge load "file:///tmp/my%20file.json"
  jsonbridge load --watch settings.json`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().BoolVarP(&loadWatch, "watch", "w", false, "print the file again whenever it changes")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	if persisterService == nil {
		return errPersisterMissing
	}

	location := domain.FileLocation(args[0])

	if loadWatch {
		return watchLoad(cmd, location)
	}

	result := persisterService.Load(cmd.Context(), location)
	if !result.OK() {
		return loadError(location, result)
	}
	cmd.Print(result.Content)
	return nil
}

func watchLoad(cmd *cobra.Command, location domain.FileLocation) error {
	if watchService == nil {
		return errors.New("file watcher not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := watchService.Watch(ctx, location, func(result domain.LoadResult) {
		if !result.OK() {
			cmd.PrintErrf("Error: %v\n", loadError(location, result))
			return
		}
		cmd.Print(result.Content)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watching %s: %w", location, err)
	}
	return nil
}

func loadError(location domain.FileLocation, result domain.LoadResult) error {
	return fmt.Errorf("cannot load %s (%s): %w", location, result.Outcome, result.Err)
}
