package ast

import (
	"lumen/internal/source"
)

// Node is anything in the tree.
type Node interface {
	// TokenLiteral is the source text of the token the node was built from.
	TokenLiteral() string
	// Pos is the span of that token.
	Pos() source.Span
	// String renders the node back as canonical source.
	String() string
}

type StmtKind uint8

const (
	StmtLet StmtKind = iota + 1
	StmtReturn
)

func (k StmtKind) String() string {
	switch k {
	case StmtLet:
		return "let"
	case StmtReturn:
		return "return"
	default:
		return "unknown"
	}
}

// Statement is implemented by *LetStatement and *ReturnStatement only.
type Statement interface {
	Node
	Kind() StmtKind
	// BoundValue is the expression the statement carries, a placeholder for now.
	BoundValue() Expression
	statementNode()
}

type ExprKind uint8

const (
	ExprIdent ExprKind = iota + 1
	ExprPlaceholder
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "ident"
	case ExprPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Expression is implemented by *Identifier and *Placeholder only.
type Expression interface {
	Node
	Kind() ExprKind
	expressionNode()
}
