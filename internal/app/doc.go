// Package app provides the orchestration layer for ttynt.
//
// # Overview
//
// This package wires the pattern compiler, the line colorizer, and the
// terminal sink into the read-colorize-write loop. It is the composition
// root: main parses flags and hands Options to Run, which owns everything
// from the first byte of input to the final flush.
//
// # Processing Loop
//
// Run follows a strictly sequential, line-at-a-time model:
//
//  1. Compile all patterns (fatal on failure, before any input is read)
//  2. Optionally print the legend to the diagnostic writer
//  3. Read one line from input
//  4. Colorize it onto the buffered sink
//  5. Repeat until EOF or context cancellation
//  6. Flush the sink
//
// There is no concurrency: work per line is trivial and output must appear
// in input order, so a single synchronous path is both the simplest and the
// fastest arrangement. The compiled pattern list and the palette are
// read-only after step 1.
//
// # Error Handling
//
// Run distinguishes fatal from recoverable errors:
//
// Fatal (returned from Run):
//   - Pattern compilation failure — no input is processed
//
// Recoverable (one diagnostic line each, processing continues):
//   - A write failure on the output sink; the current line's remaining
//     output is abandoned and the loop moves to the next line. Write
//     failures are not retried — in practice they mean the downstream
//     pipe closed, and retrying cannot help.
//   - A read failure on input. Go's buffered readers do not resume after
//     an error, so one diagnostic is emitted and input ends there.
//
// A final line without a trailing newline is still processed and gains a
// terminator on output.
package app
