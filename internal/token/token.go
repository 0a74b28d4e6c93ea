// Package token defines the token and trivia kinds produced by the lexer
// and consumed by the parser.
package token

import "pqmfmt/internal/source"

// Token is a single lexical unit: its kind, its literal spelling, and the
// comment/whitespace trivia that preceded it.
type Token struct {
	Kind    Kind
	Text    string
	Span    source.Span
	Leading []Trivia
}

// IsIdent reports whether t is a plain or quoted identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
