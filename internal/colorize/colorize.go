package colorize

import (
	"sort"

	"github.com/kryksyh/ttynt/internal/palette"
	"github.com/kryksyh/ttynt/internal/pattern"
)

// Sink receives the rendered output of a line. Implementations own all
// terminal knowledge; on a color-incapable sink SetColor and Reset may be
// no-ops.
type Sink interface {
	SetColor(c palette.Color, background bool) error
	Reset() error
	WriteString(s string) error
	// WriteLine writes s followed by a line terminator.
	WriteLine(s string) error
}

// Match is one occurrence of a pattern within a line: a half-open byte range
// plus the color of the pattern that produced it.
type Match struct {
	Start int
	End   int
	Color palette.Color
}

// Colorize writes line to out with pattern matches styled. It returns true
// iff at least one pattern matched. A sink error abandons the rest of the
// line's output and is returned for the caller to report; the line may have
// been partially written.
//
// Every pattern is matched independently against the full line. Matches are
// ordered by start offset (stable, so the earlier pattern wins a tie) and
// rendered greedily left to right: a match overlapping an already rendered
// one is dropped. In whole-line mode the entire line takes the color of the
// earliest match instead.
func Colorize(line string, pairs []pattern.Pair, wholeLine, background bool, out Sink) (bool, error) {
	var matches []Match
	for _, p := range pairs {
		for _, loc := range p.Regexp.FindAllStringIndex(line, -1) {
			matches = append(matches, Match{Start: loc[0], End: loc[1], Color: p.Color})
		}
	}

	if len(matches) == 0 {
		return false, out.WriteLine(line)
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })

	if wholeLine {
		if err := out.SetColor(matches[0].Color, background); err != nil {
			return true, err
		}
		if err := out.WriteString(line); err != nil {
			return true, err
		}
		if err := out.Reset(); err != nil {
			return true, err
		}
		return true, out.WriteLine("")
	}

	lastEnd := 0
	for _, m := range matches {
		if m.Start < lastEnd {
			continue
		}
		if err := out.WriteString(line[lastEnd:m.Start]); err != nil {
			return true, err
		}
		if err := out.SetColor(m.Color, background); err != nil {
			return true, err
		}
		if err := out.WriteString(line[m.Start:m.End]); err != nil {
			return true, err
		}
		if err := out.Reset(); err != nil {
			return true, err
		}
		lastEnd = m.End
	}
	return true, out.WriteLine(line[lastEnd:])
}
