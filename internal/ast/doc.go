// Package ast defines the syntax tree produced by the parser.
//
// The tree is small: a Program is a list of statements, a statement is a
// LetStatement or a ReturnStatement, and an expression is an Identifier or a
// Placeholder standing in for expression syntax the parser does not read yet.
//
// Statement and Expression are closed sets. Their marker methods are
// unexported, so code outside this package switches over the concrete types
// and can rely on the lists above being complete.
package ast
