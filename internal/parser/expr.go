package parser

import (
	"pqmfmt/internal/ast"
	"pqmfmt/internal/token"
)

// parseExpr is the sole comment-attachment point in the parser: every
// call parses one full `expr` production and
// claims the leading/trailing comment trivia around it. Nested helpers
// (parseLogicalOr down to parsePrimary) build pieces of the same node and
// never attach comments themselves — only a fresh parseExpr call, used at
// each distinct grammar slot (a let binding's value, a record field's
// value, a list item, a call argument, a branch of if/try, a function
// body, ...), opens a new attachment point. The one other place comments
// are kept is the name of a let binding, record field or section member:
// the comments in front of the name become that name's Leading.
func (p *Parser) parseExpr() (*ast.Expr, error) {
	startTok, err := p.peek()
	if err != nil {
		return nil, err
	}
	leading, err := p.startNode()
	if err != nil {
		return nil, err
	}

	node, err := p.parseAsIsMeta()
	if err != nil {
		return nil, err
	}

	trailing, err := p.finishNode()
	if err != nil {
		return nil, err
	}

	node.Leading = leading
	node.Trailing = trailing
	node.Span = spanOf(startTok.Span.Start, p.lastEnd)
	return node, nil
}

// parseAsIsMeta parses `logical_or ("as" type | "is" type | "meta" unary)*`.
func (p *Parser) parseAsIsMeta() (*ast.Expr, error) {
	left, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case token.KwAs:
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			left = &ast.Expr{Kind: ast.AsType, Target: left, AsIs: typ}
		case token.KwIs:
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			left = &ast.Expr{Kind: ast.IsType, Target: left, AsIs: typ}
		case token.KwMeta:
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			meta, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &ast.Expr{Kind: ast.Meta, Target: left, MetaVal: meta}
		default:
			return left, nil
		}
	}
}
