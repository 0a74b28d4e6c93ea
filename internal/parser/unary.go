package parser

import (
	"pqmfmt/internal/ast"
	"pqmfmt/internal/token"
)

// parseUnary handles the prefix operators `-`, `+`, and `not`; anything
// else falls through to a postfix chain.
func (p *Parser) parseUnary() (*ast.Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	var op ast.UnaryOp
	switch tok.Kind {
	case token.Minus:
		op = ast.UnaryNeg
	case token.Plus:
		op = ast.UnaryPos
	case token.KwNot:
		op = ast.UnaryNot
	default:
		return p.parsePostfix()
	}

	if _, err := p.advance(); err != nil {
		return nil, err
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.Unary, UnOp: op, Operand: operand}, nil
}
