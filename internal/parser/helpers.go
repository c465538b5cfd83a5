package parser

import (
	"fmt"
	"strconv"

	"lumen/internal/diag"
	"lumen/internal/token"
)

// advance shifts the window by one token. It is the only place that reads the lexer.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lx.Next()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

// expectPeek advances when peek has kind k. Otherwise it records an error
// at peek and leaves the window where it is.
func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekIs(k) {
		p.advance()
		return true
	}
	p.peekError(k)
	return false
}

func (p *Parser) peekError(want token.Kind) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", want, p.peek.Kind)
	p.emit(diag.ReportError(p.sink, diag.SynExpectNextToken, p.peek.Span, msg))
}

// skipToSemicolon advances until cur is `;` or EOF.
func (p *Parser) skipToSemicolon() {
	for !p.curIs(token.Semicolon) && !p.curIs(token.EOF) {
		p.advance()
	}
}

// resync advances until cur is `;` or EOF, or until peek starts a
// statement. In the last case cur stays on the token before it so the
// caller's advance lands on the statement keyword.
func (p *Parser) resync() {
	for !p.curIs(token.Semicolon) && !p.curIs(token.EOF) {
		if p.peekIs(token.KwLet) || p.peekIs(token.KwReturn) {
			return
		}
		p.advance()
	}
}

func (p *Parser) reportUnexpectedStatement() {
	start := p.cur
	msg := fmt.Sprintf("%s cannot start a statement", describe(start))
	p.resync()

	b := diag.ReportWarning(p.sink, diag.SynUnexpectedStatement, start.Span, msg)
	if !p.curIs(token.EOF) && p.cur.Span != start.Span {
		b.WithNote(p.cur.Span, "skipped up to here")
	}
	p.emit(b)
}

func describe(tok token.Token) string {
	if tok.Text == "" {
		return tok.Kind.String()
	}
	return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
}

// emit hands b to the sink, unless the error cap was reached.
func (p *Parser) emit(b *diag.ReportBuilder) bool {
	if p.enough() {
		p.dropped++
		return false
	}
	if b.Diagnostic().Severity == diag.SevError {
		p.errCount++
	}
	b.Emit()
	return true
}

func itoa(n int) string { return strconv.Itoa(n) }
