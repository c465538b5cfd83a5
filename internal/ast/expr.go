package ast

import (
	"lumen/internal/source"
	"lumen/internal/token"
)

// Identifier is a name. Value equals Token.Text.
type Identifier struct {
	Token token.Token
	Value string
}

// NewIdentifier builds an identifier from an Ident token.
func NewIdentifier(tok token.Token) *Identifier {
	return &Identifier{Token: tok, Value: tok.Text}
}

func (*Identifier) expressionNode()        {}
func (*Identifier) Kind() ExprKind         { return ExprIdent }
func (i *Identifier) TokenLiteral() string { return i.Token.Text }
func (i *Identifier) Pos() source.Span     { return i.Token.Span }
func (i *Identifier) String() string       { return i.Value }

// PlaceholderText is how a Placeholder prints.
const PlaceholderText = "<expr>"

// Placeholder marks where an expression starts. Token is the first token of
// the expression text the parser skipped.
type Placeholder struct {
	Token token.Token
}

func (*Placeholder) expressionNode()        {}
func (*Placeholder) Kind() ExprKind         { return ExprPlaceholder }
func (p *Placeholder) TokenLiteral() string { return p.Token.Text }
func (p *Placeholder) Pos() source.Span     { return p.Token.Span }
func (p *Placeholder) String() string       { return PlaceholderText }
