package parser

import (
	"lumen/internal/diag"
	"lumen/internal/trace"
)

type Options struct {
	// Reporter receives every recorded diagnostic in addition to the parser's own list.
	Reporter diag.Reporter
	// MaxErrors stops recording once this many errors were recorded; 0 means no limit.
	MaxErrors uint
	// StrictStatements reports a token that cannot start a statement and
	// skips to the next semicolon or statement keyword. Without it such
	// tokens are skipped silently.
	StrictStatements bool
	Tracer           trace.Tracer
}

// enough reports whether the error cap was reached.
func (p *Parser) enough() bool {
	return p.opts.MaxErrors != 0 && p.errCount >= p.opts.MaxErrors
}
