// Package testkit holds structural checks shared by tests and fuzz harnesses.
package testkit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"lumen/internal/ast"
	"lumen/internal/source"
	"lumen/internal/token"
)

// CheckTokenInvariants verifies a scan of sf produced by lexer.Tokenize:
//  1. exactly one EOF, and it is the last token
//  2. spans belong to sf, lie inside its content and do not go backwards
//  3. every token's text is the source slice under its span
//  4. only EOF has an empty span
//  5. keyword and symbol tokens carry their canonical spelling, and an
//     identifier never spells a keyword
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return errors.New("nil file")
	}
	if len(tokens) == 0 {
		return errors.New("no tokens, want at least EOF")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		last := i == len(tokens)-1
		if (tok.Kind == token.EOF) != last {
			return fmt.Errorf("token %d: EOF must appear exactly once, at the end (got %v)", i, tok.Kind)
		}

		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d: span %v outside content of %d bytes", i, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous token ending at %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		if sp.Empty() != last {
			return fmt.Errorf("token %d (%v): empty span %v", i, tok.Kind, sp)
		}
		if got := sf.Slice(sp); got != tok.Text {
			return fmt.Errorf("token %d: text %q does not match source %q", i, tok.Text, got)
		}
		if (tok.IsKeyword() || tok.IsPunctOrOp()) && tok.Text != tok.Kind.Spelling() {
			return fmt.Errorf("token %d: %v has spelling %q, want %q", i, tok.Kind, tok.Text, tok.Kind.Spelling())
		}
		if tok.IsIdent() {
			if k, ok := token.LookupKeyword(tok.Text); ok {
				return fmt.Errorf("token %d: identifier %q is the keyword %v", i, tok.Text, k)
			}
		}
	}
	return nil
}

// CheckProgramInvariants verifies a parsed program against its file:
//  1. statements keep source order and point into sf
//  2. TokenLiteral is the statement's keyword
//  3. a let statement always has a name, and its value comes after it
//  4. every node's span lies inside the file content
func CheckProgramInvariants(program *ast.Program, sf *source.File) error {
	if program == nil || sf == nil {
		return errors.New("nil program or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prev source.Span
	for i, stmt := range program.Statements {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		sp := stmt.Pos()
		if sp.File != sf.ID {
			return fmt.Errorf("statement %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if i > 0 && sp.Start < prev.End {
			return fmt.Errorf("statement %d at %v is not after statement %d at %v", i, sp, i-1, prev)
		}
		prev = sp

		switch s := stmt.(type) {
		case *ast.LetStatement:
			if s.TokenLiteral() != "let" {
				return fmt.Errorf("statement %d: let literal is %q", i, s.TokenLiteral())
			}
			if s.Name == nil {
				return fmt.Errorf("statement %d: let without a name", i)
			}
			if s.Name.Value != s.Name.Token.Text || !s.Name.Token.IsIdent() {
				return fmt.Errorf("statement %d: name %q is not an identifier token", i, s.Name.Value)
			}
			if s.Value != nil && s.Value.Pos().Start < s.Name.Pos().End {
				return fmt.Errorf("statement %d: value starts before the name ends", i)
			}
		case *ast.ReturnStatement:
			if s.TokenLiteral() != "return" {
				return fmt.Errorf("statement %d: return literal is %q", i, s.TokenLiteral())
			}
		default:
			return fmt.Errorf("statement %d: unexpected type %T", i, stmt)
		}
	}

	var spanErr error
	ast.Inspect(program, func(n ast.Node) bool {
		if _, isProgram := n.(*ast.Program); isProgram {
			return true
		}
		if sp := n.Pos(); sp.End < sp.Start || sp.End > lenContent {
			spanErr = fmt.Errorf("%T at %v lies outside content of %d bytes", n, sp, lenContent)
		}
		return spanErr == nil
	})
	return spanErr
}
