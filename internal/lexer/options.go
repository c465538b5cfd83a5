package lexer

import (
	"lumen/internal/token"
)

// Observer sees every token the lexer hands out, EOF included.
// It is the only side channel of the lexer; scanning never prints or reports.
type Observer interface {
	OnToken(tok token.Token)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(tok token.Token)

// OnToken calls f(tok).
func (f ObserverFunc) OnToken(tok token.Token) { f(tok) }

type Options struct {
	Observer Observer // may be nil
}

func (lx *Lexer) notify(tok token.Token) {
	if lx.opts.Observer != nil {
		lx.opts.Observer.OnToken(tok)
	}
}
