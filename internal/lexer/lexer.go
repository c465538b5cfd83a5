package lexer

import (
	"lumen/internal/source"
	"lumen/internal/token"
)

// Lexer turns one source file into tokens, one Next call at a time.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File { return lx.file }

// Next returns the next token. It never fails: unknown characters come back
// as Illegal tokens, and once input is exhausted every call returns EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()

	var tok token.Token
	ch := lx.cursor.Peek()
	switch {
	case lx.cursor.EOF():
		tok = token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	case isDec(ch):
		tok = lx.scanNumber()
	case isAlpha(ch):
		tok = lx.scanIdentOrKeyword()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	lx.notify(tok)
	return tok
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// Tokenize scans the whole file and returns its tokens, ending with exactly one EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}
