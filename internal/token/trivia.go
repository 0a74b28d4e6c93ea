package token

import "pqmfmt/internal/source"

// TriviaKind is the category of a piece of trivia: whitespace, newlines, or
// one of the two comment forms.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

// Trivia is lexically present but syntactically inert: runs of whitespace,
// newlines, and comments. The lexer preserves it so the printer can
// reproduce every comment in the input
type Trivia struct {
	Kind TriviaKind
	Text string
	Span source.Span
}

// IsComment reports whether t carries comment text.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaBlockComment
}
