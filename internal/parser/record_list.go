package parser

import (
	"pqmfmt/internal/ast"
	"pqmfmt/internal/token"
)

// parseRecordLit parses `[ name = value (, name = value)* ]`. Field names
// accept the same contextual-keyword promotion as field access
//
func (p *Parser) parseRecordLit() (*ast.Expr, error) {
	if _, err := p.expect(token.LBracket, "'['"); err != nil {
		return nil, err
	}

	var fields []ast.Binding
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.RBracket {
		for {
			field, err := p.parseRecordField()
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)

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
	}
	if _, err := p.expect(token.RBracket, "']'"); err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.RecordLit, RecordFields: fields}, nil
}

func (p *Parser) parseRecordField() (ast.Binding, error) {
	nameTok, err := p.peek()
	if err != nil {
		return ast.Binding{}, err
	}
	name, err := p.parseFieldName()
	if err != nil {
		return ast.Binding{}, err
	}
	if _, err := p.expect(token.Equals, "'='"); err != nil {
		return ast.Binding{}, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return ast.Binding{}, err
	}
	return ast.Binding{Name: ast.Expr{Kind: ast.Identifier, Name: name, Leading: commentsOnly(nameTok.Leading)}, Expr: value}, nil
}

// parseListLit parses `{ item (, item)* }`. Each item is an expression, or
// a range `a..b`;
// `..` appears nowhere else in the grammar, so it is recognised only here.
func (p *Parser) parseListLit() (*ast.Expr, error) {
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		return nil, err
	}

	var items []*ast.Expr
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.RBrace {
		for {
			item, err := p.parseListItem()
			if err != nil {
				return nil, err
			}
			items = append(items, item)

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
	}
	if _, err := p.expect(token.RBrace, "'}'"); err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.ListLit, Items: items}, nil
}

func (p *Parser) parseListItem() (*ast.Expr, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.DotDot {
		return left, nil
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.Range, Lhs: left, Rhs: right}, nil
}
