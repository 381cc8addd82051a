package chooser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
)

// Ensure Prompt implements the interface.
var _ driven.SaveLocationChooser = (*Prompt)(nil)

// Prompt asks for the destination on a line-oriented terminal.
type Prompt struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewPrompt creates a prompt reading from in. When in is not a terminal the
// prompt refuses to ask and reports domain.ErrChooserUnavailable.
func NewPrompt(in *os.File, out io.Writer) *Prompt {
	return &Prompt{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: term.IsTerminal(int(in.Fd())),
	}
}

// NewPromptFrom creates a prompt over arbitrary streams. It always asks.
func NewPromptFrom(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: true,
	}
}

// ChooseSaveLocation prints the dialog header and reads one line.
// An empty answer or end of input cancels.
func (p *Prompt) ChooseSaveLocation(
	ctx context.Context,
	opts domain.SaveDialogOptions,
) (domain.FileLocation, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !p.interactive {
		return "", fmt.Errorf("%w: input is not a terminal", domain.ErrChooserUnavailable)
	}

	title := opts.Title
	if title == "" {
		title = "Save File"
	}
	_, _ = fmt.Fprintln(p.out, title)
	if opts.StartDir != "" {
		_, _ = fmt.Fprintf(p.out, "  Look in:       %s\n", opts.StartDir)
	}
	if len(opts.Filter.Patterns) > 0 {
		_, _ = fmt.Fprintf(p.out, "  Files of type: %s\n", opts.Filter)
	}
	_, _ = fmt.Fprint(p.out, "File name: ")

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading file name: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		_, _ = fmt.Fprintln(p.out)
		return "", domain.ErrCancelled
	}

	return resolve(domain.FileLocation(answer), opts)
}

// resolve makes a typed answer absolute against the start directory and
// applies the default suffix.
func resolve(location domain.FileLocation, opts domain.SaveDialogOptions) (domain.FileLocation, error) {
	path, err := location.LocalPath()
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(path) && opts.StartDir != "" {
		path = filepath.Join(opts.StartDir, path)
	}
	return domain.FileLocation(opts.ApplySuffix(path)), nil
}
