package ast

import (
	"lumen/internal/source"
	"lumen/internal/token"
)

// LetStatement binds a name: `let <Name> = <Value>;`.
type LetStatement struct {
	Token token.Token // the `let` keyword
	Name  *Identifier // never nil in trees built by the parser
	Value Expression
}

func (*LetStatement) statementNode()           {}
func (*LetStatement) Kind() StmtKind           { return StmtLet }
func (s *LetStatement) TokenLiteral() string   { return s.Token.Text }
func (s *LetStatement) Pos() source.Span       { return s.Token.Span }
func (s *LetStatement) BoundValue() Expression { return s.Value }

func (s *LetStatement) String() string {
	name := ""
	if s.Name != nil {
		name = s.Name.String()
	}
	return s.TokenLiteral() + " " + name + " = " + exprString(s.Value) + ";"
}

// ReturnStatement is `return <Value>;`.
type ReturnStatement struct {
	Token token.Token // the `return` keyword
	Value Expression
}

func (*ReturnStatement) statementNode()           {}
func (*ReturnStatement) Kind() StmtKind           { return StmtReturn }
func (s *ReturnStatement) TokenLiteral() string   { return s.Token.Text }
func (s *ReturnStatement) Pos() source.Span       { return s.Token.Span }
func (s *ReturnStatement) BoundValue() Expression { return s.Value }

func (s *ReturnStatement) String() string {
	return s.TokenLiteral() + " " + exprString(s.Value) + ";"
}

// exprString renders a missing value as a placeholder.
func exprString(e Expression) string {
	if e == nil {
		return PlaceholderText
	}
	return e.String()
}
