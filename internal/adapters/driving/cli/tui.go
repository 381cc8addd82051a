package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for jsonbridge.

The TUI lets you open and read files, compose a JSON document and save it
through a file browser, and review recent activity.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / Open
  Ctrl+S   - Save the composed document
  Esc      - Back / Cancel
  q        - Quit from the menu
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tuiPorts()

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if ctx := cmd.Context(); ctx != nil {
		app.WithContext(ctx)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// tuiPorts builds TUI ports from the injected services.
func tuiPorts() *tui.Ports {
	ports := tui.NewPorts(persisterService, historyService, settingsService)
	ports.Fs = fileSystem
	return ports
}
