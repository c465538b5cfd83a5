package lexer

// skipWhitespace consumes a maximal run of ' ', '\t', '\n' and '\r'.
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
