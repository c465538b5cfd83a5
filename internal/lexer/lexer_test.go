package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"lumen/internal/lexer"
	"lumen/internal/source"
	"lumen/internal/token"
)

// makeTestLexer creates a lexer over an in-memory file.
func makeTestLexer(input string, opts lexer.Options) *lexer.Lexer {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lm", []byte(input))
	return lexer.New(fs.Get(fileID), opts)
}

// collectAllTokens reads tokens up to and including the first EOF.
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type tk struct {
	kind token.Kind
	text string
}

// expectTokens checks the whole stream, EOF excluded.
func expectTokens(t *testing.T, input string, expected []tk) {
	t.Helper()
	tokens := collectAllTokens(makeTestLexer(input, lexer.Options{}))
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %s",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i].kind || tok.Text != expected[i].text {
			t.Errorf("token %d: expected %v(%q), got %v(%q)",
				i, expected[i].kind, expected[i].text, tok.Kind, tok.Text)
		}
	}
}

func TestSingleCharacterSymbols(t *testing.T) {
	for _, k := range token.Kinds() {
		if !k.IsSymbol() || k.IsDouble() {
			continue
		}
		t.Run(k.String(), func(t *testing.T) {
			lx := makeTestLexer(k.Spelling(), lexer.Options{})
			tok := lx.Next()
			if tok.Kind != k || tok.Text != k.Spelling() {
				t.Fatalf("got %v(%q), want %v(%q)", tok.Kind, tok.Text, k, k.Spelling())
			}
			if next := lx.Next(); next.Kind != token.EOF {
				t.Fatalf("expected EOF after symbol, got %v", next.Kind)
			}
		})
	}
}

func TestDoubleCharacterOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"::", token.ColonColon},
		{"<<", token.Shl},
		{"==", token.EqEq},
		{"!=", token.BangEq},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, []tk{{tt.kind, tt.input}})
		})
	}
}

func TestLonePrefixFallsThrough(t *testing.T) {
	expectTokens(t, "<", []tk{{token.Lt, "<"}})
	expectTokens(t, "< <", []tk{{token.Lt, "<"}, {token.Lt, "<"}})
	expectTokens(t, "<=", []tk{{token.Lt, "<"}, {token.Assign, "="}})
	expectTokens(t, ":=", []tk{{token.Colon, ":"}, {token.Assign, "="}})
	expectTokens(t, "!x", []tk{{token.Bang, "!"}, {token.Ident, "x"}})
	expectTokens(t, ">>", []tk{{token.Gt, ">"}, {token.Gt, ">"}})
}

func TestLongestMatchIsGreedyLeftToRight(t *testing.T) {
	expectTokens(t, "<<<", []tk{{token.Shl, "<<"}, {token.Lt, "<"}})
	expectTokens(t, ":::", []tk{{token.ColonColon, "::"}, {token.Colon, ":"}})
	expectTokens(t, "===", []tk{{token.EqEq, "=="}, {token.Assign, "="}})
	expectTokens(t, "!==", []tk{{token.BangEq, "!="}, {token.Assign, "="}})
}

func TestKeywords(t *testing.T) {
	for _, k := range token.Kinds() {
		if !k.IsKeyword() {
			continue
		}
		t.Run(k.Spelling(), func(t *testing.T) {
			expectTokens(t, k.Spelling(), []tk{{k, k.Spelling()}})
		})
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		want  []tk
	}{
		{"foobar", []tk{{token.Ident, "foobar"}}},
		{"Let", []tk{{token.Ident, "Let"}}},
		{"letx", []tk{{token.Ident, "letx"}}},
		{"camelCase", []tk{{token.Ident, "camelCase"}}},
		{"x1", []tk{{token.Ident, "x"}, {token.Int, "1"}}},
		{"_x", []tk{{token.Illegal, "_"}, {token.Ident, "x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.want)
		})
	}
}

func TestNumbers(t *testing.T) {
	expectTokens(t, "838383", []tk{{token.Int, "838383"}})
	expectTokens(t, "007", []tk{{token.Int, "007"}})
	expectTokens(t, "3242abc", []tk{{token.Int, "3242"}, {token.Ident, "abc"}})
	expectTokens(t, "1 2", []tk{{token.Int, "1"}, {token.Int, "2"}})
}

func TestIllegalCharacters(t *testing.T) {
	tests := []struct {
		input string
		want  []tk
	}{
		{"@", []tk{{token.Illegal, "@"}}},
		{"a$b", []tk{{token.Ident, "a"}, {token.Illegal, "$"}, {token.Ident, "b"}}},
		{"λ", []tk{{token.Illegal, "λ"}}},
		{"\xff;", []tk{{token.Illegal, "\xff"}, {token.Semicolon, ";"}}},
		{"'", []tk{{token.Illegal, "'"}}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.want)
		})
	}
}

func TestWhitespaceIsSkipped(t *testing.T) {
	expectTokens(t, " \t\r\n let \r\n\tx ", []tk{{token.KwLet, "let"}, {token.Ident, "x"}})
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t\r\n"} {
		tok := makeTestLexer(input, lexer.Options{}).Next()
		if tok.Kind != token.EOF || tok.Text != "" {
			t.Fatalf("input %q: expected EOF, got %v(%q)", input, tok.Kind, tok.Text)
		}
	}
}

func TestEOFIsIdempotent(t *testing.T) {
	lx := makeTestLexer("x;", lexer.Options{})
	collectAllTokens(lx)
	var first token.Token
	for i := 0; i < 5; i++ {
		tok := lx.Next()
		if tok.Kind != token.EOF {
			t.Fatalf("call %d after EOF returned %v", i, tok.Kind)
		}
		if i == 0 {
			first = tok
		} else if tok.Span != first.Span {
			t.Fatalf("EOF span moved: %v -> %v", first.Span, tok.Span)
		}
	}
}

func TestStatementStream(t *testing.T) {
	input := "let five = 5;\nreturn five != 10;\nshow(a::b << 2, #x) == \"*\" / [y] + {z} - c > d;\nif true { } else { fn }"
	expectTokens(t, input, []tk{
		{token.KwLet, "let"}, {token.Ident, "five"}, {token.Assign, "="}, {token.Int, "5"}, {token.Semicolon, ";"},
		{token.KwReturn, "return"}, {token.Ident, "five"}, {token.BangEq, "!="}, {token.Int, "10"}, {token.Semicolon, ";"},
		{token.KwShow, "show"}, {token.LParen, "("}, {token.Ident, "a"}, {token.ColonColon, "::"}, {token.Ident, "b"},
		{token.Shl, "<<"}, {token.Int, "2"}, {token.Comma, ","}, {token.Hash, "#"}, {token.Ident, "x"}, {token.RParen, ")"},
		{token.EqEq, "=="}, {token.Quote, "\""}, {token.Star, "*"}, {token.Quote, "\""}, {token.Slash, "/"},
		{token.LBracket, "["}, {token.Ident, "y"}, {token.RBracket, "]"}, {token.Plus, "+"},
		{token.LBrace, "{"}, {token.Ident, "z"}, {token.RBrace, "}"}, {token.Minus, "-"},
		{token.Ident, "c"}, {token.Gt, ">"}, {token.Ident, "d"}, {token.Semicolon, ";"},
		{token.KwIf, "if"}, {token.KwTrue, "true"}, {token.LBrace, "{"}, {token.RBrace, "}"},
		{token.KwElse, "else"}, {token.LBrace, "{"}, {token.KwFn, "fn"}, {token.RBrace, "}"},
	})
}

func TestSpansMatchText(t *testing.T) {
	input := "let foobar = 838383;"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("span.lm", []byte(input)))
	for _, tok := range lexer.Tokenize(file, lexer.Options{}) {
		if got := file.Slice(tok.Span); got != tok.Text {
			t.Errorf("%v: span %v slices to %q, text is %q", tok.Kind, tok.Span, got, tok.Text)
		}
	}
}

func TestFixedSpellingsRoundTrip(t *testing.T) {
	for _, k := range token.Kinds() {
		if k.Spelling() == "" {
			continue
		}
		toks := collectAllTokens(makeTestLexer(k.Spelling(), lexer.Options{}))
		if len(toks) != 2 || toks[0].Kind != k {
			t.Errorf("re-scanning %q gave %s, want single %v", k.Spelling(), tokensToString(toks), k)
		}
	}
}

func TestTokenizeEndsWithSingleEOF(t *testing.T) {
	fs := source.NewFileSet()
	toks := lexer.Tokenize(fs.Get(fs.AddVirtual("t.lm", []byte("a b"))), lexer.Options{})
	if len(toks) != 3 || toks[2].Kind != token.EOF {
		t.Fatalf("Tokenize = %s", tokensToString(toks))
	}
}

func TestObserverSeesEveryToken(t *testing.T) {
	var seen []token.Kind
	obs := lexer.ObserverFunc(func(tok token.Token) { seen = append(seen, tok.Kind) })
	lx := makeTestLexer("let x;", lexer.Options{Observer: obs})
	collectAllTokens(lx)
	lx.Next()

	want := []token.Kind{token.KwLet, token.Ident, token.Semicolon, token.EOF, token.EOF}
	if len(seen) != len(want) {
		t.Fatalf("observer saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("observer[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}
