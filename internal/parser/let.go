package parser

import (
	"pqmfmt/internal/ast"
	"pqmfmt/internal/token"
)

// parseLetExpr parses `let` binding (`,` binding)* `in` expr.
func (p *Parser) parseLetExpr() (*ast.Expr, error) {
	if _, err := p.expect(token.KwLet, "'let'"); err != nil {
		return nil, err
	}

	var bindings []ast.Binding
	for {
		b, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)

		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.Comma {
			break
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.KwIn, "'in'"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.Let, Bindings: bindings, Body: body}, nil
}

func (p *Parser) parseBinding() (ast.Binding, error) {
	nameTok, err := p.expect(token.Ident, "identifier")
	if err != nil {
		return ast.Binding{}, err
	}
	name := ast.Expr{Kind: ast.Identifier, Name: nameTok.Text, Leading: commentsOnly(nameTok.Leading)}

	if _, err := p.expect(token.Equals, "'='"); err != nil {
		return ast.Binding{}, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return ast.Binding{}, err
	}
	return ast.Binding{Name: name, Expr: value}, nil
}
