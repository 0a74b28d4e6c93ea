// Package lexer turns M source text into a stream of tokens, carrying
// comment and whitespace trivia alongside the significant tokens the
// parser consumes
package lexer

import (
	"pqmfmt/internal/source"
	"pqmfmt/internal/token"
)

// Error is a LexError-shaped failure: an unterminated literal or an
// unrecognised character, located by line and column
type Error struct {
	Pos     source.Position
	Message string
}

func (e *Error) Error() string { return e.Message }

// Lexer scans one source file into tokens. It keeps a one-token lookahead
// buffer and a pending-trivia buffer.
type Lexer struct {
	file    *source.File
	content []byte
	cur     cursor

	look *token.Token
	hold []token.Trivia

	err *Error
}

// New creates a Lexer over file's content.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:    file,
		content: file.Content,
		cur:     newCursor(file.Content),
	}
}

// Err returns the first lexical error encountered, if any. Once set it
// never changes: the lexer does not attempt error recovery.
func (lx *Lexer) Err() *Error { return lx.err }

// Next returns the next significant token, with its Leading trivia already
// attached. After EOF it always returns an EOF token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		t := *lx.look
		lx.look = nil
		return t
	}

	lx.collectLeadingTrivia()

	if lx.cur.EOF() || lx.err != nil {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan(), Leading: lx.takeHold()}
	}

	var tok token.Token
	switch b := lx.cur.Peek(); {
	case b == '_':
		if isIdentContinueByte(lx.cur.PeekAt(1)) {
			tok = lx.scanIdent()
		} else {
			tok = lx.scanOperatorOrPunct()
		}
	case b == '#' && lx.cur.PeekAt(1) == '"':
		tok = lx.scanIdent()
	case isIdentStartByte(b):
		tok = lx.scanIdent()
	case b >= utf8RuneSelf:
		if r, _ := lx.decodeRune(); isIdentStartRune(r) {
			tok = lx.scanIdent()
		} else {
			tok = lx.scanOperatorOrPunct()
		}
	case isDec(b):
		tok = lx.scanNumber()
	case b == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()
	case b == '"':
		tok = lx.scanString()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.takeHold()
	return tok
}

// Peek returns the next significant token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Mark captures the lexer's full internal state so the parser can attempt
// a speculative parse (distinguishing `(params) => body` from a
// parenthesised expression needs unbounded lookahead) and rewind on
// failure.
type Mark struct {
	cur  cursor
	look *token.Token
	hold []token.Trivia
	err  *Error
}

// Mark snapshots the lexer's current position.
func (lx *Lexer) Mark() Mark {
	var look *token.Token
	if lx.look != nil {
		t := *lx.look
		look = &t
	}
	return Mark{
		cur:  lx.cur,
		look: look,
		hold: append([]token.Trivia(nil), lx.hold...),
		err:  lx.err,
	}
}

// Reset rewinds the lexer to a previously captured Mark.
func (lx *Lexer) Reset(m Mark) {
	lx.cur = m.cur
	lx.look = m.look
	lx.hold = m.hold
	lx.err = m.err
}

func (lx *Lexer) takeHold() []token.Trivia {
	h := lx.hold
	lx.hold = nil
	return h
}

// collectLeadingTrivia consumes whitespace, newlines, and comments up to
// the next significant token, appending each to hold. Runs of non-newline
// whitespace collapse into a single trivia token; every line terminator is
// its own trivia token
func (lx *Lexer) collectLeadingTrivia() {
	for {
		b := lx.cur.Peek()
		switch {
		case b == '\n':
			start := lx.cur.off
			lx.cur.Advance()
			lx.hold = append(lx.hold, lx.makeTrivia(token.TriviaNewline, start))
		case b == ' ' || b == '\t' || b == '\r':
			start := lx.cur.off
			for {
				c := lx.cur.Peek()
				if c == ' ' || c == '\t' || c == '\r' {
					lx.cur.Advance()
					continue
				}
				break
			}
			lx.hold = append(lx.hold, lx.makeTrivia(token.TriviaSpace, start))
		case b == '/' && lx.cur.PeekAt(1) == '/':
			lx.hold = append(lx.hold, lx.scanLineComment())
		case b == '/' && lx.cur.PeekAt(1) == '*':
			lx.hold = append(lx.hold, lx.scanBlockComment())
			if lx.err != nil {
				return
			}
		default:
			return
		}
		if lx.err != nil {
			return
		}
	}
}

func (lx *Lexer) makeToken(kind token.Kind, start uint32) token.Token {
	return token.Token{
		Kind: kind,
		Text: string(lx.content[start:lx.cur.off]),
		Span: source.Span{Start: lx.file.Resolve(start), End: lx.file.Resolve(lx.cur.off)},
	}
}

func (lx *Lexer) makeTrivia(kind token.TriviaKind, start uint32) token.Trivia {
	return token.Trivia{
		Kind: kind,
		Text: string(lx.content[start:lx.cur.off]),
		Span: source.Span{Start: lx.file.Resolve(start), End: lx.file.Resolve(lx.cur.off)},
	}
}

func (lx *Lexer) emptySpan() source.Span {
	p := lx.file.Resolve(lx.cur.off)
	return source.Span{Start: p, End: p}
}

func (lx *Lexer) fail(start uint32, message string) {
	if lx.err != nil {
		return
	}
	lx.err = &Error{Pos: lx.file.Resolve(start), Message: message}
}
