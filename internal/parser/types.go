package parser

import (
	"strings"

	"pqmfmt/internal/ast"
	"pqmfmt/internal/token"
)

// parseTypeKeywordExpr parses the standalone `type T` expression form: the
// `type` keyword followed by a type body. Used only when `type` is reached
// as a primary expression in its own right — everywhere else a type is
// required (after `as`/`is`, a nullable's element, a list's element, a
// function's return type, a record/table field's type), parseType is
// called directly on the bare body: a type like `nullable number` after
// `as` parses as a TypeExpr without requiring the `type` keyword.
func (p *Parser) parseTypeKeywordExpr() (*ast.Expr, error) {
	if _, err := p.expect(token.KwType, "'type'"); err != nil {
		return nil, err
	}
	node, err := p.parseType()
	if err != nil {
		return nil, err
	}
	node.WithTypeKeyword = true
	return node, nil
}

// parseType parses one type body: `table [...]`, `record [...]`,
// `list {...}`, `function (...) as T`, `nullable T`, a parenthesised type,
// or a primitive/named type `table`/`record`/`list`/
// `function` are not reserved words — they are recognised here only by
// their identifier spelling, the way M itself treats them as contextual.
func (p *Parser) parseType() (*ast.Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Kind == token.KwNullable:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.TypeExpr, TypeKind: ast.TypeNullable, ElemType: inner}, nil

	case tok.Kind == token.LParen:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen, "')'"); err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.TypeExpr, TypeKind: ast.TypeParen, ParenInner: inner}, nil

	case tok.Kind == token.Ident && tok.Text == "list":
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LBrace, "'{'"); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBrace, "'}'"); err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.TypeExpr, TypeKind: ast.TypeList, ElemType: inner}, nil

	case tok.Kind == token.Ident && tok.Text == "record":
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LBracket, "'['"); err != nil {
			return nil, err
		}
		fields, err := p.parseTypeFieldList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBracket, "']'"); err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.TypeExpr, TypeKind: ast.TypeRecord, Fields2: fields}, nil

	case tok.Kind == token.Ident && tok.Text == "table":
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LBracket, "'['"); err != nil {
			return nil, err
		}
		fields, err := p.parseTypeFieldList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBracket, "']'"); err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.TypeExpr, TypeKind: ast.TypeTable, Fields2: fields}, nil

	case tok.Kind == token.Ident && tok.Text == "function":
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LParen, "'('"); err != nil {
			return nil, err
		}
		params, err := p.parseTypeFnParamList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen, "')'"); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KwAs, "'as'"); err != nil {
			return nil, err
		}
		ret, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.TypeExpr, TypeKind: ast.TypeFunction, FnParams: params, FnReturn: ret}, nil

	case tok.IsIdent():
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.TypeExpr, TypeKind: ast.TypePrimitive, TypeName: tok.Text}, nil

	default:
		return nil, p.unexpected(tok, "type")
	}
}

// parseTypeFieldList parses a record/table type's field list. Each field
// is `name`, `name = T`, or a space-separated run of identifier tokens
// joined into one field name
func (p *Parser) parseTypeFieldList() ([]ast.TypeField, error) {
	var fields []ast.TypeField
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.RBracket {
		return fields, nil
	}
	for {
		field, err := p.parseTypeField()
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
	return fields, nil
}

func (p *Parser) parseTypeField() (ast.TypeField, error) {
	var parts []string
	for {
		tok, err := p.peek()
		if err != nil {
			return ast.TypeField{}, err
		}
		if !tok.IsIdent() && !token.IsContextualFieldKeyword(tok.Kind) {
			break
		}
		if _, err := p.advance(); err != nil {
			return ast.TypeField{}, err
		}
		parts = append(parts, tok.Text)
	}
	if len(parts) == 0 {
		tok, err := p.peek()
		if err != nil {
			return ast.TypeField{}, err
		}
		return ast.TypeField{}, p.unexpected(tok, "field name")
	}
	field := ast.TypeField{Name: strings.Join(parts, " ")}

	tok, err := p.peek()
	if err != nil {
		return ast.TypeField{}, err
	}
	if tok.Kind == token.Equals {
		if _, err := p.advance(); err != nil {
			return ast.TypeField{}, err
		}
		typ, err := p.parseType()
		if err != nil {
			return ast.TypeField{}, err
		}
		field.Type = typ
	}
	return field, nil
}

// parseTypeFnParamList parses a function type's parameter list: each
// parameter is a name with an optional `as T` annotation. Unlike a
// function value's parameters, a function type's parameter list has no
// meaningful per-parameter `optional` flag to preserve, since a type
// describes shape, not default-argument behaviour.
func (p *Parser) parseTypeFnParamList() ([]ast.TypeField, error) {
	var params []ast.TypeField
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.RParen {
		return params, nil
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.KwOptional {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
		}
		nameTok, err := p.expect(token.Ident, "identifier")
		if err != nil {
			return nil, err
		}

		var typ *ast.Expr
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.KwAs {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			t, err := p.parseType()
			if err != nil {
				return nil, err
			}
			typ = t
		}
		params = append(params, ast.TypeField{Name: nameTok.Text, Type: typ})

		tok, err = p.peek()
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
	return params, nil
}
