package parser

import (
	"pqmfmt/internal/ast"
	"pqmfmt/internal/token"
)

// parseEachExpr parses `each body`, shorthand for a one-parameter function
// whose implicit parameter is `_`
func (p *Parser) parseEachExpr() (*ast.Expr, error) {
	if _, err := p.expect(token.KwEach, "'each'"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.Each, Body: body}, nil
}
