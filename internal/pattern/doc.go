// Package pattern compiles user-supplied regular expressions and assigns
// each one a palette color.
//
// # Color Assignment
//
// Colors are assigned purely by position: the pattern at index i always
// receives palette.Default[i mod len(palette.Default)], regardless of the
// pattern's content or whether it ever matches. The assignment is therefore
// deterministic and stable across runs, which matters to anyone piping
// ttynt output through a pager and expecting pattern three to stay blue.
//
// # Case Sensitivity
//
// Matching is case-insensitive by default; Compile prefixes each expression
// with (?i) unless the caller asks for case-sensitive matching. The prefix
// approach leaves the user's expression untouched, including any inline
// flags of its own.
//
// # Failure
//
// Compilation is all-or-nothing. The first invalid pattern fails the whole
// call with a *CompileError naming the offending pattern and wrapping the
// regexp error; no partial pair list is ever returned, so a caller can
// never colorize with half a pattern set.
package pattern
