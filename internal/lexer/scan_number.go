package lexer

import (
	"lumen/internal/token"
)

// scanNumber consumes a maximal run of decimal digits. The text is kept as is;
// a following letter starts a new token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Int, start)
}
