package parser

import (
	"pqmfmt/internal/ast"
	"pqmfmt/internal/token"
)

// parseIfExpr parses `if cond then then_branch else else_branch`.
func (p *Parser) parseIfExpr() (*ast.Expr, error) {
	if _, err := p.expect(token.KwIf, "'if'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwThen, "'then'"); err != nil {
		return nil, err
	}
	thenBranch, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwElse, "'else'"); err != nil {
		return nil, err
	}
	elseBranch, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.If, Cond: cond, Then: thenBranch, Else: elseBranch}, nil
}

// parseTryExpr parses `try body` optionally followed by `otherwise handler`.
func (p *Parser) parseTryExpr() (*ast.Expr, error) {
	if _, err := p.expect(token.KwTry, "'try'"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var otherwise *ast.Expr
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.KwOtherwise {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		handler, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		otherwise = handler
	}
	return &ast.Expr{Kind: ast.Try, TryBody: body, OtherwiseVal: otherwise}, nil
}
