package lexer

import (
	"lumen/internal/token"
	"lumen/internal/trace"
)

// TraceObserver reports every token as a node-scope point event.
// It returns nil when t would drop node events anyway, so the lexer skips the call.
func TraceObserver(t trace.Tracer) Observer {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(trace.ScopeNode) {
		return nil
	}
	return ObserverFunc(func(tok token.Token) {
		trace.Point(t, trace.ScopeNode, "token", tok.Kind.String(), map[string]string{
			"text": tok.Text,
			"span": tok.Span.String(),
		})
	})
}
