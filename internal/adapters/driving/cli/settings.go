package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the save dialog, the pretty-printer and the activity journal.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Long: `Change one setting by key.

Keys:
  dialog.title           Save dialog header
  dialog.start_dir       Directory the dialog opens in (empty = home)
  dialog.default_suffix  Extension added to names without one
  format.indent          Spaces per nesting level (1-16)
  save.malformed         What to write for invalid JSON: null, empty or skip
  history.enabled        Record save and load requests (true/false)
  history.limit          Number of records to keep`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset KEY",
	Short: "Restore the default for one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Dialog]")
	cmd.Printf("  Title: %s\n", settings.Dialog.Title)
	if settings.Dialog.StartDir != "" {
		cmd.Printf("  Start directory: %s\n", settings.Dialog.StartDir)
	} else {
		cmd.Printf("  Start directory: (home)\n")
	}
	cmd.Printf("  Default suffix: %s\n", settings.Dialog.DefaultSuffix)
	cmd.Println()

	cmd.Println("[Format]")
	cmd.Printf("  Indent: %d spaces\n", settings.Format.Indent)
	cmd.Println()

	cmd.Println("[Save]")
	cmd.Printf("  Malformed input: %s\n", settings.Save.Malformed.Description())
	cmd.Println()

	cmd.Println("[History]")
	if settings.History.Enabled {
		cmd.Printf("  Enabled: yes\n")
		cmd.Printf("  Limit: %d records\n", settings.History.Limit)
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'jsonbridge settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s to %q\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	if err := settingsService.Reset(key); err != nil {
		return fmt.Errorf("failed to reset %s: %w", key, err)
	}
	cmd.Printf("Reset %s to its default\n", key)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("jsonbridge Settings Wizard")
	cmd.Println("==========================")
	cmd.Println("Press Enter to keep the value in brackets.")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Save dialog
	cmd.Println("Step 1: Save Dialog")
	cmd.Println("-------------------")
	settings.Dialog.Title = askString(cmd, reader, "Title", settings.Dialog.Title)
	settings.Dialog.StartDir = askString(cmd, reader, "Start directory", settings.Dialog.StartDir)
	settings.Dialog.DefaultSuffix = strings.TrimPrefix(
		askString(cmd, reader, "Default suffix", settings.Dialog.DefaultSuffix), ".")
	cmd.Println()

	// Step 2: Formatting
	cmd.Println("Step 2: Formatting")
	cmd.Println("------------------")
	settings.Format.Indent = askInt(cmd, reader,
		fmt.Sprintf("Indent (%d-%d)", domain.MinIndent, domain.MaxIndent), settings.Format.Indent)
	cmd.Println()

	// Step 3: Malformed input
	cmd.Println("Step 3: Malformed Input")
	cmd.Println("-----------------------")
	policies := domain.AllMalformedPolicies()
	current := 1
	for i, p := range policies {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
		if p == settings.Save.Malformed {
			current = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	settings.Save.Malformed = policies[parseChoice(readLine(reader), len(policies), current)-1]
	cmd.Println()

	// Step 4: History
	cmd.Println("Step 4: Activity History")
	cmd.Println("------------------------")
	enabled := "n"
	if settings.History.Enabled {
		enabled = "y"
	}
	settings.History.Enabled = strings.HasPrefix(
		strings.ToLower(askString(cmd, reader, "Record activity (y/n)", enabled)), "y")
	if settings.History.Enabled {
		settings.History.Limit = askInt(cmd, reader, "Records to keep", settings.History.Limit)
	}
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings saved.")
	return nil
}

func askString(cmd *cobra.Command, reader *bufio.Reader, label, current string) string {
	cmd.Printf("%s [%s]: ", label, current)
	if input := readLine(reader); input != "" {
		return input
	}
	return current
}

func askInt(cmd *cobra.Command, reader *bufio.Reader, label string, current int) int {
	cmd.Printf("%s [%d]: ", label, current)
	val, err := strconv.Atoi(readLine(reader))
	if err != nil {
		return current
	}
	return val
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
