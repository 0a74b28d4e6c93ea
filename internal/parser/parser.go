// Package parser builds an AST from a token stream M
// programs are a single expression; ParseProgram is the sole entry point.
package parser

import (
	"fmt"

	"pqmfmt/internal/ast"
	"pqmfmt/internal/lexer"
	"pqmfmt/internal/source"
	"pqmfmt/internal/token"
)

// Parser consumes a lexer.Lexer's token stream and builds a single
// top-level expression tree.
type Parser struct {
	lx  *lexer.Lexer
	err *Error

	// pendingLeading holds comment trivia already split off a token's
	// Leading list by finishNode, waiting to be attached to whichever node
	// starts next. When havePending is false, startNode uses the next
	// token's own Leading instead; startNode clears havePending each time
	// it runs, so that is the case for every node not preceded by a
	// finishNode.
	pendingLeading []token.Trivia
	havePending    bool

	// lastEnd is the end position of the most recently consumed token,
	// used by parseExpr to close out a node's Span.
	lastEnd source.Position
}

// New creates a Parser over lx.
func New(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx}
}

// ParseProgram parses the whole token stream as a single expression and
// requires it to be followed by EOF.
func ParseProgram(lx *lexer.Lexer) (*ast.Expr, error) {
	p := New(lx)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.EOF {
		return nil, p.unexpected(tok, "end of input")
	}
	return expr, nil
}

// peek returns the next significant token without consuming it, surfacing
// any lexical error as a fatal ParseError-shaped failure.
func (p *Parser) peek() (token.Token, error) {
	t := p.lx.Peek()
	if lerr := p.lx.Err(); lerr != nil {
		return t, &Error{Pos: lerr.Pos, Message: lerr.Message, FromLexer: true}
	}
	return t, nil
}

// advance consumes and returns the next significant token.
func (p *Parser) advance() (token.Token, error) {
	t := p.lx.Next()
	if lerr := p.lx.Err(); lerr != nil {
		return t, &Error{Pos: lerr.Pos, Message: lerr.Message, FromLexer: true}
	}
	p.lastEnd = t.Span.End
	return t, nil
}

// expect consumes the next token and requires it to have kind k.
func (p *Parser) expect(k token.Kind, what string) (token.Token, error) {
	tok, err := p.advance()
	if err != nil {
		return tok, err
	}
	if tok.Kind != k {
		return tok, p.unexpected(tok, what)
	}
	return tok, nil
}

func (p *Parser) unexpected(tok token.Token, expected string) error {
	got := tokenDescription(tok)
	return &Error{
		Pos:     tok.Span.Start,
		Message: fmt.Sprintf("expected %s, found %s", expected, got),
	}
}

func tokenDescription(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	if tok.Text != "" {
		return fmt.Sprintf("%q", tok.Text)
	}
	return "token"
}

// startNode returns the comment trivia that should be attached as Leading
// to a node about to begin
func (p *Parser) startNode() ([]token.Trivia, error) {
	if p.havePending {
		out := p.pendingLeading
		p.pendingLeading = nil
		p.havePending = false
		return out, nil
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	return commentsOnly(tok.Leading), nil
}

// finishNode splits the next token's leading trivia at the first newline:
// everything before the newline and on the same source line becomes the
// just-finished node's trailing comments; everything from the newline
// onward is stashed as pendingLeading for whatever node starts next
//
func (p *Parser) finishNode() ([]token.Trivia, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	trailing, rest := splitAtNewline(tok.Leading)
	p.pendingLeading = commentsOnly(rest)
	p.havePending = true
	return commentsOnly(trailing), nil
}

func splitAtNewline(trivia []token.Trivia) (before, after []token.Trivia) {
	for i, t := range trivia {
		if t.Kind == token.TriviaNewline {
			return trivia[:i], trivia[i:]
		}
	}
	return trivia, nil
}

func commentsOnly(trivia []token.Trivia) []token.Trivia {
	var out []token.Trivia
	for _, t := range trivia {
		if t.IsComment() {
			out = append(out, t)
		}
	}
	return out
}

func spanOf(start source.Position, end source.Position) source.Span {
	return source.Span{Start: start, End: end}
}

// mark is a saved parser position, used to try one grammar alternative and
// fall back to another: `(params) => body` and a parenthesised expression
// share a prefix with no bounded lookahead to tell them apart.
type mark struct {
	lex            lexer.Mark
	pendingLeading []token.Trivia
	havePending    bool
	lastEnd        source.Position
}

func (p *Parser) mark() mark {
	return mark{
		lex:            p.lx.Mark(),
		pendingLeading: append([]token.Trivia(nil), p.pendingLeading...),
		havePending:    p.havePending,
		lastEnd:        p.lastEnd,
	}
}

func (p *Parser) resetTo(m mark) {
	p.lx.Reset(m.lex)
	p.pendingLeading = m.pendingLeading
	p.havePending = m.havePending
	p.lastEnd = m.lastEnd
}
