package parser

import (
	"lumen/internal/ast"
	"lumen/internal/token"
)

// parseLetStatement reads `let <ident> = ...;`. Nothing after `=` is parsed
// yet: the value is a placeholder at the token following `=`.
func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{Token: p.cur}

	if !p.expectPeek(token.Ident) {
		return nil
	}
	stmt.Name = ast.NewIdentifier(p.cur)

	if !p.expectPeek(token.Assign) {
		return nil
	}
	stmt.Value = &ast.Placeholder{Token: p.peek}

	p.skipToSemicolon()
	return stmt
}

// parseReturnStatement reads `return ...;` with a placeholder value.
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.cur}

	p.advance()
	stmt.Value = &ast.Placeholder{Token: p.cur}

	p.skipToSemicolon()
	return stmt
}
