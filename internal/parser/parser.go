package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/token"
	"lumen/internal/trace"
)

// Parser reads statements from a lexer through a two-token window: cur is
// the token being looked at and peek the one after it.
type Parser struct {
	lx       *lexer.Lexer
	cur      token.Token
	peek     token.Token
	opts     Options
	bag      *diag.Bag
	sink     diag.Reporter // bag plus opts.Reporter
	errCount uint
	dropped  int // diagnostics suppressed by the error cap
	tracer   trace.Tracer
	parent   uint64 // trace span the parse pass nests under
}

// New primes the window by reading two tokens.
func New(lx *lexer.Lexer, opts Options) *Parser {
	p := &Parser{
		lx:     lx,
		opts:   opts,
		bag:    diag.NewBag(0),
		tracer: opts.Tracer,
	}
	p.sink = diag.MultiReporter{diag.BagReporter{Bag: p.bag}, opts.Reporter}
	if p.tracer == nil {
		p.tracer = trace.Nop
	}
	p.advance()
	p.advance()
	return p
}

// ParseProgram parses statements until EOF. It always returns a program;
// problems are recorded as diagnostics.
func (p *Parser) ParseProgram() *ast.Program {
	span := trace.Begin(p.tracer, trace.ScopePass, "parse", p.parent)

	program := &ast.Program{}
	for p.cur.Kind != token.EOF {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
			trace.Point(p.tracer, trace.ScopeNode, "statement", stmt.String(), map[string]string{
				"span": stmt.Pos().String(),
			})
		}
		p.advance()
	}

	span.WithExtra("statements", itoa(len(program.Statements))).
		WithExtra("diagnostics", itoa(p.bag.Len())).
		End("")
	return program
}

// Errors returns the messages of recorded error diagnostics, in order.
// Strict-mode warnings are left out; see Messages.
func (p *Parser) Errors() []string {
	var out []string
	for _, d := range p.bag.Items() {
		if d.Severity == diag.SevError {
			out = append(out, d.Message)
		}
	}
	return out
}

// Messages returns the message of every recorded diagnostic, warnings included.
func (p *Parser) Messages() []string {
	return p.bag.Messages()
}

// Dropped counts diagnostics suppressed because Options.MaxErrors was reached.
func (p *Parser) Dropped() int { return p.dropped }

// Diagnostics returns every recorded diagnostic, in order.
func (p *Parser) Diagnostics() []diag.Diagnostic {
	return p.bag.Items()
}

// HasErrors reports whether an error-severity diagnostic was recorded.
func (p *Parser) HasErrors() bool {
	return p.bag.HasErrors()
}

// parseStatement dispatches on cur. On return cur is the last token of the
// statement (its semicolon when present); the caller advances past it.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.KwLet:
		if s := p.parseLetStatement(); s != nil {
			return s
		}
	case token.KwReturn:
		return p.parseReturnStatement()
	case token.Semicolon:
		// empty statement
	default:
		if p.opts.StrictStatements {
			p.reportUnexpectedStatement()
		}
	}
	return nil
}
