package format

import "pqmfmt/internal/ast"

func binaryOpText(op ast.BinaryOp) string {
	switch op {
	case ast.OpOr:
		return "or"
	case ast.OpAnd:
		return "and"
	case ast.OpEq:
		return "="
	case ast.OpNotEq:
		return "<>"
	case ast.OpLt:
		return "<"
	case ast.OpLe:
		return "<="
	case ast.OpGt:
		return ">"
	case ast.OpGe:
		return ">="
	case ast.OpAdd:
		return "+"
	case ast.OpSub:
		return "-"
	case ast.OpConcat:
		return "&"
	case ast.OpMul:
		return "*"
	case ast.OpDiv:
		return "/"
	default:
		return "?"
	}
}

func unaryOpText(op ast.UnaryOp) string {
	switch op {
	case ast.UnaryNeg:
		return "-"
	case ast.UnaryPos:
		return "+"
	case ast.UnaryNot:
		return "not "
	case ast.UnaryRaise:
		return "error "
	default:
		return ""
	}
}

func literalText(e *ast.Expr) string { return e.Raw }

func optionalSuffix(e *ast.Expr) string {
	if e.Optional {
		return "?"
	}
	return ""
}
