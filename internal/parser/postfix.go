package parser

import (
	"pqmfmt/internal/ast"
	"pqmfmt/internal/token"
)

// parsePostfix parses a primary expression followed by any number of call,
// field-access, item-access, or field-projection suffixes
func (p *Parser) parsePostfix() (*ast.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case token.LParen:
			left, err = p.parseCallSuffix(left)
		case token.LBracket:
			left, err = p.parseBracketSuffix(left)
		case token.LBrace:
			left, err = p.parseItemAccessSuffix(left)
		default:
			return left, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseCallSuffix(callee *ast.Expr) (*ast.Expr, error) {
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	var args []*ast.Expr
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.RParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
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
	if _, err := p.expect(token.RParen, "')'"); err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.Call, Callee: callee, Args: args}, nil
}

// parseBracketSuffix disambiguates field access from field projection: a
// `[` directly followed by another `[` is a projection, otherwise it is a
// single-field access
func (p *Parser) parseBracketSuffix(target *ast.Expr) (*ast.Expr, error) {
	if _, err := p.expect(token.LBracket, "'['"); err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.LBracket {
		return p.parseFieldProjection(target)
	}

	name, err := p.parseFieldName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBracket, "']'"); err != nil {
		return nil, err
	}
	optional, err := p.consumeOptionalSuffix()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.FieldAccess, Target: target, FieldName: name, Optional: optional}, nil
}

func (p *Parser) parseFieldProjection(target *ast.Expr) (*ast.Expr, error) {
	var fields []string
	for {
		if _, err := p.expect(token.LBracket, "'['"); err != nil {
			return nil, err
		}
		name, err := p.parseFieldName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBracket, "']'"); err != nil {
			return nil, err
		}
		fields = append(fields, name)

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
	if _, err := p.expect(token.RBracket, "']'"); err != nil {
		return nil, err
	}
	optional, err := p.consumeOptionalSuffix()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.FieldProjection, Target: target, Fields: fields, Optional: optional}, nil
}

func (p *Parser) parseItemAccessSuffix(target *ast.Expr) (*ast.Expr, error) {
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		return nil, err
	}
	idx, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace, "'}'"); err != nil {
		return nil, err
	}
	optional, err := p.consumeOptionalSuffix()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.ItemAccess, Target: target, IndexExpr: idx, Optional: optional}, nil
}

func (p *Parser) consumeOptionalSuffix() (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	if tok.Kind != token.Question {
		return false, nil
	}
	if _, err := p.advance(); err != nil {
		return false, err
	}
	return true, nil
}

// parseFieldName reads one field-name token: a plain identifier, or a
// keyword promoted to a field name by the contextual field-name rule.
func (p *Parser) parseFieldName() (string, error) {
	tok, err := p.advance()
	if err != nil {
		return "", err
	}
	if tok.IsIdent() || token.IsContextualFieldKeyword(tok.Kind) {
		return tok.Text, nil
	}
	return "", p.unexpected(tok, "field name")
}
