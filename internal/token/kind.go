package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Illegal marks an unrecognized character; Text carries it.
	Illegal Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Int represents a decimal integer literal.
	Int

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwShow represents the 'show' keyword.
	KwShow // show
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Assign    // =
	Plus      // +
	Minus     // -
	Semicolon // ;
	Lt        // <
	Gt        // >
	Hash      // #
	Bang      // !
	Colon     // :
	Quote     // "
	Comma     // ,
	Star      // *
	Slash     // /

	ColonColon // ::
	Shl        // <<
	EqEq       // ==
	BangEq     // !=

	numKinds
)

type kindInfo struct {
	name     string
	spelling string
}

var kinds = [numKinds]kindInfo{
	Illegal: {"Illegal", ""},
	EOF:     {"EOF", ""},
	Ident:   {"Ident", ""},
	Int:     {"Int", ""},

	KwLet:    {"KwLet", "let"},
	KwReturn: {"KwReturn", "return"},
	KwIf:     {"KwIf", "if"},
	KwElse:   {"KwElse", "else"},
	KwShow:   {"KwShow", "show"},
	KwFn:     {"KwFn", "fn"},
	KwTrue:   {"KwTrue", "true"},
	KwFalse:  {"KwFalse", "false"},

	LParen:    {"LParen", "("},
	RParen:    {"RParen", ")"},
	LBrace:    {"LBrace", "{"},
	RBrace:    {"RBrace", "}"},
	LBracket:  {"LBracket", "["},
	RBracket:  {"RBracket", "]"},
	Assign:    {"Assign", "="},
	Plus:      {"Plus", "+"},
	Minus:     {"Minus", "-"},
	Semicolon: {"Semicolon", ";"},
	Lt:        {"Lt", "<"},
	Gt:        {"Gt", ">"},
	Hash:      {"Hash", "#"},
	Bang:      {"Bang", "!"},
	Colon:     {"Colon", ":"},
	Quote:     {"Quote", "\""},
	Comma:     {"Comma", ","},
	Star:      {"Star", "*"},
	Slash:     {"Slash", "/"},

	ColonColon: {"ColonColon", "::"},
	Shl:        {"Shl", "<<"},
	EqEq:       {"EqEq", "=="},
	BangEq:     {"BangEq", "!="},
}

// String returns the stable name of the kind, e.g. "Ident" or "Semicolon".
func (k Kind) String() string {
	if k >= numKinds {
		return "Kind(?)"
	}
	return kinds[k].name
}

// Spelling returns the canonical source text of a fixed kind.
// Kinds without a fixed spelling (Illegal, EOF, Ident, Int) return "".
func (k Kind) Spelling() string {
	if k >= numKinds {
		return ""
	}
	return kinds[k].spelling
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwLet && k <= KwFalse
}

// IsSymbol reports whether k is a one- or two-character punctuation kind.
func (k Kind) IsSymbol() bool {
	return k >= LParen && k < numKinds
}

// IsDouble reports whether k is one of the two-character operators.
func (k Kind) IsDouble() bool {
	return k >= ColonColon && k < numKinds
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}
