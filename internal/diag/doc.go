// Package diag holds the diagnostic model shared by the lexer-facing phases
// and the command line.
//
// A Diagnostic is a value: severity, numeric code, message, the primary span
// it points at and optional notes. Producers never format or print; they hand
// diagnostics to a Reporter. BagReporter collects them in a Bag, which knows
// how to sort, deduplicate and cap them. Rendering lives in internal/diagfmt,
// apart from the one-line short form in this package used by tests and
// `lumen parse --diagnostics short`.
//
// Diagnostics are not Go errors. A parse that records errors still returns a
// program; callers inspect Bag.HasErrors to decide the exit status.
package diag
