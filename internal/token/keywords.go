package token

var (
	keywords = map[string]Kind{}
	singles  = map[byte]Kind{}
)

func init() {
	for _, k := range Kinds() {
		sp := k.Spelling()
		switch {
		case k.IsKeyword():
			keywords[sp] = k
		case k.IsDouble():
			// matched by the lexer's ordered pair rules
		case k.IsSymbol():
			singles[sp[0]] = k
		}
	}
}

// LookupKeyword reports the keyword kind spelled by ident.
// Keywords are case-sensitive: only the lowercase spellings are reserved.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupSingle classifies one punctuation byte.
func LookupSingle(b byte) (Kind, bool) {
	k, ok := singles[b]
	return k, ok
}

// DoubleKinds returns the two-character operators in lookup priority order.
func DoubleKinds() []Kind {
	return []Kind{ColonColon, Shl, EqEq, BangEq}
}
