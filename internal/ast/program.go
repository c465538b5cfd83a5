package ast

import (
	"strings"

	"lumen/internal/source"
)

// Program is the root of a parsed file. Statements keep source order.
type Program struct {
	Statements []Statement
}

// TokenLiteral is the literal of the first statement, or "" for an empty program.
func (p *Program) TokenLiteral() string {
	if len(p.Statements) == 0 {
		return ""
	}
	return p.Statements[0].TokenLiteral()
}

// Pos is the span of the first statement's token, or the zero span.
func (p *Program) Pos() source.Span {
	if len(p.Statements) == 0 {
		return source.Span{}
	}
	return p.Statements[0].Pos()
}

// String renders one statement per line.
func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Len is the number of statements.
func (p *Program) Len() int { return len(p.Statements) }
