package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driven/chooser"
	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
)

// Dialog styles accepted by --dialog.
const (
	dialogPrompt = "prompt"
	dialogTUI    = "tui"
	dialogNone   = "none"
)

var (
	saveInput  string
	saveOutput string
	saveDialog string
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Pretty-print a JSON document and save it",
	Long: `Read a JSON document, pretty-print it and write it to a file.

The document is read from --input, or from stdin when --input is empty or "-".
The destination is --output when given; otherwise a save dialog asks for it:

  prompt - a line prompt on the terminal (default)
  tui    - a full-screen file browser
  none   - never ask; --output is required

Leaving the dialog empty cancels the save and nothing is written.

Examples:
  jsonbridge save -i data.json -o pretty.json
  curl -s https://example.com/api | jsonbridge save --dialog tui`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringVarP(&saveInput, "input", "i", "", "file to read the document from (default stdin)")
	saveCmd.Flags().StringVarP(&saveOutput, "output", "o", "", "destination path or file URL")
	saveCmd.Flags().StringVar(&saveDialog, "dialog", dialogPrompt, "save dialog when --output is empty: prompt, tui or none")
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, _ []string) error {
	if newPersister == nil {
		return errPersisterMissing
	}

	payload, fromStdin, err := readPayload(cmd)
	if err != nil {
		return err
	}

	locationChooser, closeChooser, err := saveChooser(cmd, fromStdin)
	if err != nil {
		return err
	}
	defer closeChooser()

	result := newPersister(locationChooser).Save(cmd.Context(), payload)
	return reportSave(cmd, result)
}

// readPayload reads the document and reports whether it came from stdin.
func readPayload(cmd *cobra.Command) (domain.JSONPayload, bool, error) {
	if saveInput == "" || saveInput == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", true, fmt.Errorf("reading stdin: %w", err)
		}
		return domain.JSONPayload(data), true, nil
	}

	data, err := afero.ReadFile(fileSystem, saveInput)
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", saveInput, err)
	}
	return domain.JSONPayload(data), false, nil
}

// saveChooser picks the chooser for the current flags. The returned func
// releases any terminal opened for it.
func saveChooser(cmd *cobra.Command, fromStdin bool) (driven.SaveLocationChooser, func(), error) {
	noop := func() {}

	if saveOutput != "" {
		return chooser.Preset(saveOutput), noop, nil
	}

	switch saveDialog {
	case dialogNone:
		return nil, noop, errors.New("--output is required with --dialog none")

	case dialogPrompt:
		if !fromStdin {
			if f, ok := cmd.InOrStdin().(*os.File); ok {
				return chooser.NewPrompt(f, cmd.ErrOrStderr()), noop, nil
			}
			return chooser.NewPromptFrom(cmd.InOrStdin(), cmd.ErrOrStderr()), noop, nil
		}
		// stdin carried the document, so answer on the controlling terminal
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return nil, noop, fmt.Errorf("%w: no terminal to prompt on, use --output", domain.ErrChooserUnavailable)
		}
		return chooser.NewPrompt(tty, cmd.ErrOrStderr()), func() { tty.Close() }, nil

	case dialogTUI:
		opts := []tea.ProgramOption{tea.WithOutput(cmd.ErrOrStderr())}
		if fromStdin {
			opts = append(opts, tea.WithInputTTY())
		} else {
			opts = append(opts, tea.WithInput(cmd.InOrStdin()))
		}
		return chooser.NewDialog(fileSystem, opts...), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown dialog %q: use prompt, tui or none", saveDialog)
	}
}

func reportSave(cmd *cobra.Command, result domain.SaveResult) error {
	switch result.Outcome {
	case domain.SaveWritten:
		cmd.Printf("Saved %d bytes to %s\n", result.BytesWritten, result.Path)
		return nil
	case domain.SaveCancelled:
		cmd.Println("Save cancelled")
		return nil
	case domain.SaveMalformedInput:
		if result.Written() {
			cmd.Printf("Input is not valid JSON, wrote %d bytes to %s\n", result.BytesWritten, result.Path)
		} else {
			cmd.Println("Input is not valid JSON, nothing written")
		}
		return fmt.Errorf("input is not valid JSON: %w", result.Err)
	default:
		return fmt.Errorf("save %s: %w", result.Outcome, result.Err)
	}
}
