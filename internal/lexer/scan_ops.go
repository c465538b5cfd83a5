package lexer

import (
	"unicode/utf8"

	"lumen/internal/token"
)

type pairRule struct {
	first, second byte
	kind          token.Kind
}

// doubleRules are tried, in order, before any single-character rule, so "<<"
// is one Shl and never two Lt. Only these pairs are two-character tokens.
var doubleRules = func() []pairRule {
	kinds := token.DoubleKinds()
	rules := make([]pairRule, 0, len(kinds))
	for _, k := range kinds {
		sp := k.Spelling()
		rules = append(rules, pairRule{first: sp[0], second: sp[1], kind: k})
	}
	return rules
}()

// matchDouble returns the pair rule matching the next two bytes, if any.
func (lx *Lexer) matchDouble() (token.Kind, bool) {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok {
		return token.Illegal, false
	}
	for _, r := range doubleRules {
		if r.first == b0 && r.second == b1 {
			return r.kind, true
		}
	}
	return token.Illegal, false
}

// scanOperatorOrPunct classifies punctuation: longest match first, then the
// single-character table, then Illegal carrying the offending character.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	if k, ok := lx.matchDouble(); ok {
		lx.cursor.Advance(2)
		return lx.emit(k, start)
	}

	if k, ok := token.LookupSingle(lx.cursor.Peek()); ok {
		lx.cursor.Bump()
		return lx.emit(k, start)
	}

	// unknown character: take the whole UTF-8 sequence, or one byte if it is malformed
	_, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	lx.cursor.Advance(max(size, 1))
	return lx.emit(token.Illegal, start)
}
