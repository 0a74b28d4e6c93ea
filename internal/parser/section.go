package parser

import (
	"pqmfmt/internal/ast"
	"pqmfmt/internal/token"
)

// parseSectionExpr parses `section name? ; (shared? name = expr ;)*`.
func (p *Parser) parseSectionExpr() (*ast.Expr, error) {
	if _, err := p.expect(token.KwSection, "'section'"); err != nil {
		return nil, err
	}

	node := &ast.Expr{Kind: ast.Section}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.Ident {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		node.SectionName = tok.Text
		node.HasName = true
	}

	if _, err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.KwShared && tok.Kind != token.Ident {
			break
		}

		var shared bool
		if tok.Kind == token.KwShared {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			shared = true
		}

		nameTok, err := p.expect(token.Ident, "identifier")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Equals, "'='"); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon, "';'"); err != nil {
			return nil, err
		}

		node.Members = append(node.Members, ast.SectionMember{
			Shared: shared,
			Name:   ast.Expr{Kind: ast.Identifier, Name: nameTok.Text, Leading: commentsOnly(tok.Leading)},
			Expr:   value,
		})
	}

	return node, nil
}
