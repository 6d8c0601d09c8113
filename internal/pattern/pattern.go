package pattern

import (
	"fmt"
	"regexp"

	"github.com/kryksyh/ttynt/internal/palette"
)

// Pair is a compiled pattern with its assigned color. Immutable once built;
// safe to share across lines.
type Pair struct {
	Source string
	Regexp *regexp.Regexp
	Color  palette.Color
}

// CompileError reports a pattern that failed to compile. Pattern holds the
// raw string as the user supplied it.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile pattern %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Compile builds a Pair for every pattern, assigning colors by list position.
// Matching is case-insensitive unless caseSensitive is set. If any pattern is
// invalid the whole call fails with a *CompileError and no pairs are returned.
func Compile(patterns []string, caseSensitive bool) ([]Pair, error) {
	pairs := make([]Pair, 0, len(patterns))
	for i, src := range patterns {
		expr := src
		if !caseSensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, &CompileError{Pattern: src, Err: err}
		}
		pairs = append(pairs, Pair{Source: src, Regexp: re, Color: palette.ForIndex(i)})
	}
	return pairs, nil
}
