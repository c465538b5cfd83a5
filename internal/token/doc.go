// Package token defines lexical token kinds for the lumen front end.
// Invariants:
//   - Token.Text is the exact source slice that produced the token.
//   - Every fixed kind (keyword or punctuation) has exactly one spelling,
//     returned by Kind.Spelling; the lexer classifies through the same table.
//   - Int literals keep their decimal text; nothing is parsed to a number here.
package token
