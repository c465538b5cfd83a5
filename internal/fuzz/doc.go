// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> parser). They guard against panics, hangs and broken
// structural invariants on arbitrary input.
//
// Run one with, for example:
//
//	go test ./internal/fuzz -run=^$ -fuzz=FuzzParserInvariants -fuzztime=30s
package fuzztests
