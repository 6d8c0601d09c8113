package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kryksyh/ttynt/internal/colorize"
	"github.com/kryksyh/ttynt/internal/pattern"
	"github.com/kryksyh/ttynt/internal/term"
)

// Options configure one ttynt run.
type Options struct {
	Patterns      []string
	WholeLine     bool
	CaseSensitive bool
	Background    bool
	Legend        bool
	Profile       termenv.Profile
}

const readBufferSize = 64 * 1024

// Run compiles the patterns and colorizes every line of in onto out until
// EOF or context cancellation. Pattern compilation failure is fatal and
// returned before any input is read. Per-line read and write failures are
// reported on diag, one line each, and processing continues.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer, diag io.Writer) error {
	pairs, err := pattern.Compile(opts.Patterns, opts.CaseSensitive)
	if err != nil {
		return err
	}

	if opts.Legend {
		printLegend(diag, pairs)
	}

	sink := term.NewWriter(out, opts.Profile)
	reader := bufio.NewReaderSize(in, readBufferSize)

	for ctx.Err() == nil {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			fmt.Fprintf(diag, "read input: %v\n", readErr)
			break
		}
		if readErr == io.EOF && line == "" {
			break
		}

		// Strip the terminator; a bare trailing \r is line content and
		// only goes when it arrived as part of a \r\n pair.
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		if _, writeErr := colorize.Colorize(line, pairs, opts.WholeLine, opts.Background, sink); writeErr != nil {
			fmt.Fprintf(diag, "write output: %v\n", writeErr)
		}

		if readErr == io.EOF {
			break
		}
	}

	if err := sink.Flush(); err != nil {
		fmt.Fprintf(diag, "flush output: %v\n", err)
	}
	return nil
}

// printLegend writes each raw pattern in its assigned color, one per line.
// The renderer detects diag's own color capability, so a redirected stderr
// gets plain text.
func printLegend(diag io.Writer, pairs []pattern.Pair) {
	renderer := lipgloss.NewRenderer(diag)
	for _, p := range pairs {
		style := renderer.NewStyle().Foreground(p.Color.Lipgloss())
		fmt.Fprintln(diag, style.Render(p.Source))
	}
}
