// Package colorize renders one line of text with pattern matches styled.
//
// # Overview
//
// This package holds the core of ttynt: given a line and the compiled
// pattern/color pairs, it computes the set of colored output segments and
// writes them to a Sink. It knows nothing about terminals, escape sequences,
// or where the line came from — all of that lives behind the Sink interface
// and in the calling loop.
//
// # Algorithm
//
// Colorize processes one line in four steps:
//
//  1. Collect: every pattern is matched independently against the full
//     original line (not against remaining unmatched text), and every
//     occurrence becomes a Match with the pattern's color.
//  2. Sort: matches are ordered by ascending start offset with a stable
//     sort, so two matches starting at the same offset keep their
//     collection order and the earlier pattern in the list wins the tie.
//  3. Resolve: matches are rendered greedily left to right. A match whose
//     start lies before the end of the previously rendered match overlaps
//     it and is dropped entirely — not merged, not truncated.
//  4. Render: unstyled gaps and styled spans are written alternately,
//     each styled span followed by a reset, then the trailing unstyled
//     slice and one line terminator.
//
// In whole-line mode steps 3 and 4 collapse: the entire line is written as
// a single styled segment using the color of the earliest match.
//
// # Invariants
//
//   - The concatenation of every slice written in span mode equals the
//     original line exactly. Coloring never drops or duplicates text.
//   - A line with no matches is written verbatim with no styling calls.
//   - Zero-width matches are legal: a match with end == start renders an
//     empty styled span and cannot loop or slice backward.
//   - Offsets come from the regexp package and fall on rune boundaries,
//     so slicing never splits a multi-byte character.
//
// # Error Handling
//
// Sink operations return errors (a closed pipe is the usual cause). The
// first failure abandons the rest of that line's output and is returned to
// the caller; it is deliberately not fatal, since the caller moves on to
// the next line. No entity here outlives a single call — matches are
// recomputed per line and no state is carried across lines.
package colorize
