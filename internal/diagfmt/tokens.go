package diagfmt

import (
	"fmt"
	"io"

	"lumen/internal/source"
	"lumen/internal/token"
)

// FormatTokensPretty prints one token per line, stopping after EOF:
//
//	1: KwLet        "let" at 1:1-1:4
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)

		line := fmt.Sprintf("%3d: %-12s", i+1, tok.Kind)
		if tok.Text != "" {
			line += fmt.Sprintf(" %q", tok.Text)
		}
		line += fmt.Sprintf(" at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col)

		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}
