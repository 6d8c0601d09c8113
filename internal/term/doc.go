// Package term implements the ANSI terminal sink the colorizer writes to.
//
// Writer buffers output and renders colors according to a termenv profile:
// ANSI-256 palette entries degrade to the nearest classic color on 16-color
// terminals, and the Ascii profile (--color=never, or stdout not a tty)
// suppresses sequences entirely so piped output stays plain text.
//
// The profile decision itself belongs to main; this package only executes
// it. Callers must Flush before exit or buffered output is lost.
package term
