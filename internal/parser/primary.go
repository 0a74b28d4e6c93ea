package parser

import (
	"pqmfmt/internal/ast"
	"pqmfmt/internal/token"
)

// parsePrimary dispatches on the next token's kind to one of the primary
// productions. A leading `{` always means a list literal here: by the time
// control reaches a postfix-suffix `[`/`{`, parsePostfix has already
// consumed the operand on its left, which parsePrimary never sees. A
// leading `[` is a field selector with no target (`[name]`, `[name]?`,
// `[[a], [b]]`, as in `each [Value] > 1`) when it opens `[name]` or `[[`;
// otherwise it opens a record literal.
func (p *Parser) parsePrimary() (*ast.Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case token.Number:
		return p.parseLiteral(ast.LitNumber)
	case token.String:
		return p.parseLiteral(ast.LitString)
	case token.Null:
		return p.parseLiteral(ast.LitNull)
	case token.True:
		return p.parseLiteral(ast.LitTrue)
	case token.False:
		return p.parseLiteral(ast.LitFalse)
	case token.Ident:
		return p.parseIdentifier()
	case token.LParen:
		return p.parseParenOrFn()
	case token.LBracket:
		m := p.mark()
		p.lx.Next() // '['
		first := p.lx.Next()
		second := p.lx.Peek()
		p.resetTo(m)
		named := first.Kind == token.Ident || token.IsContextualFieldKeyword(first.Kind)
		if first.Kind == token.LBracket || (named && second.Kind == token.RBracket) {
			return p.parseBracketSuffix(nil)
		}
		return p.parseRecordLit()
	case token.LBrace:
		return p.parseListLit()
	case token.KwLet:
		return p.parseLetExpr()
	case token.KwIf:
		return p.parseIfExpr()
	case token.KwTry:
		return p.parseTryExpr()
	case token.KwEach:
		return p.parseEachExpr()
	case token.KwType:
		return p.parseTypeKeywordExpr()
	case token.KwSection:
		return p.parseSectionExpr()
	case token.KwError:
		return p.parseErrorRaise()
	default:
		return nil, p.unexpected(tok, "expression")
	}
}

func (p *Parser) parseLiteral(kind ast.LiteralKind) (*ast.Expr, error) {
	tok, err := p.advance()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.Literal, LitKind: kind, Raw: tok.Text}, nil
}

func (p *Parser) parseIdentifier() (*ast.Expr, error) {
	tok, err := p.advance()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.Identifier, Name: tok.Text}, nil
}

// parseErrorRaise parses `error expr`, M's raise-expression, modelled as a
// Unary-shaped node over the raised value
func (p *Parser) parseErrorRaise() (*ast.Expr, error) {
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	operand, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.Unary, UnOp: ast.UnaryRaise, Operand: operand}, nil
}

// parseParenOrFn disambiguates `(expr)` from `(params) => body` by
// speculatively parsing a parameter list and checking for a following
// `=>`; on any mismatch it rewinds and parses a parenthesised expression
// instead; both productions share the same `(` prefix.
func (p *Parser) parseParenOrFn() (*ast.Expr, error) {
	m := p.mark()
	if fn, ok, err := p.tryParseFn(); err != nil {
		return nil, err
	} else if ok {
		return fn, nil
	}
	p.resetTo(m)

	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen, "')'"); err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.Paren, Inner: inner}, nil
}

// tryParseFn attempts the `(params) => body` alternative. A false ok with
// a nil error means the input did not look like a function at all (wrong
// shape inside the parens, or no `=>` after `)`) and the caller should
// fall back to a parenthesised expression; a non-nil error means the
// input committed to looking like a function (an explicit `as`/`optional`
// marker was seen) and then failed, which should propagate as a real
// parse error rather than silently falling back.
func (p *Parser) tryParseFn() (*ast.Expr, bool, error) {
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, false, nil
	}

	var params []ast.Param
	tok, err := p.peek()
	if err != nil {
		return nil, false, nil
	}
	if tok.Kind != token.RParen {
		for {
			param, ok := p.tryParseParam()
			if !ok {
				return nil, false, nil
			}
			params = append(params, param)

			tok, err := p.peek()
			if err != nil {
				return nil, false, nil
			}
			if tok.Kind != token.Comma {
				break
			}
			if _, err := p.advance(); err != nil {
				return nil, false, nil
			}
		}
	}

	tok, err = p.peek()
	if err != nil {
		return nil, false, nil
	}
	if tok.Kind != token.RParen {
		return nil, false, nil
	}
	if _, err := p.advance(); err != nil {
		return nil, false, nil
	}

	var returnType *ast.Expr
	tok, err = p.peek()
	if err != nil {
		return nil, false, nil
	}
	if tok.Kind == token.KwAs {
		if _, err := p.advance(); err != nil {
			return nil, false, nil
		}
		rt, err := p.parseType()
		if err != nil {
			return nil, true, err
		}
		returnType = rt
		tok, err = p.peek()
		if err != nil {
			return nil, false, nil
		}
	}

	if tok.Kind != token.Arrow {
		return nil, false, nil
	}
	if _, err := p.advance(); err != nil {
		return nil, true, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, true, err
	}
	return &ast.Expr{Kind: ast.Fn, Params: params, ReturnType: returnType, Body: body}, true, nil
}

// tryParseParam reads one `optional? name (as type)?` parameter. Any
// shape that is not a bare identifier in this position means the
// enclosing parens are not a parameter list.
func (p *Parser) tryParseParam() (ast.Param, bool) {
	var param ast.Param

	tok, err := p.peek()
	if err != nil {
		return param, false
	}
	if tok.Kind == token.KwOptional {
		if _, err := p.advance(); err != nil {
			return param, false
		}
		param.Optional = true
	}

	tok, err = p.peek()
	if err != nil {
		return param, false
	}
	if !tok.IsIdent() {
		return param, false
	}
	if _, err := p.advance(); err != nil {
		return param, false
	}
	param.Name = ast.Expr{Kind: ast.Identifier, Name: tok.Text}

	tok, err = p.peek()
	if err != nil {
		return param, false
	}
	if tok.Kind == token.KwAs {
		if _, err := p.advance(); err != nil {
			return param, false
		}
		typ, err := p.parseType()
		if err != nil {
			return param, false
		}
		param.Type = typ
	}
	return param, true
}
