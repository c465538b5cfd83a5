package parser

import (
	"context"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/source"
	"lumen/internal/trace"
)

type Result struct {
	Program     *ast.Program
	Diagnostics []diag.Diagnostic
	// Dropped counts diagnostics suppressed by Options.MaxErrors.
	Dropped int
}

// HasErrors reports whether any diagnostic is an error.
func (r Result) HasErrors() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Severity == diag.SevError {
			return true
		}
	}
	return false
}

// ParseFile lexes and parses one file. ctx only supplies a tracer when
// opts.Tracer is unset; parsing itself cannot be cancelled.
func ParseFile(ctx context.Context, file *source.File, opts Options) Result {
	if opts.Tracer == nil {
		opts.Tracer = trace.FromContext(ctx)
	}
	lx := lexer.New(file, lexer.Options{Observer: lexer.TraceObserver(opts.Tracer)})
	p := New(lx, opts)
	p.parent = trace.ParentSpan(ctx)
	program := p.ParseProgram()
	return Result{Program: program, Diagnostics: p.Diagnostics(), Dropped: p.Dropped()}
}
