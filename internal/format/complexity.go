package format

import "pqmfmt/internal/ast"

// isSimple implements the Default-mode complexity heuristic: a
// literal, an identifier, a type expression, a unary over a simple
// operand, a binary whose operands are both simple, a call whose
// arguments are all simple and whose flat form fits, or a single-level
// record/list of simple elements that fits the budget.
func isSimple(e *ast.Expr, w *Writer) bool {
	if e == nil {
		return true
	}
	switch e.Kind {
	case ast.Literal, ast.Identifier, ast.TypeExpr:
		return true
	case ast.Unary:
		return isSimple(e.Operand, w)
	case ast.Binary:
		return isSimple(e.Lhs, w) && isSimple(e.Rhs, w)
	case ast.Call:
		for _, a := range e.Args {
			if !isSimple(a, w) {
				return false
			}
		}
		flat, ok := flatten(e)
		return ok && widthFits(w, flat)
	case ast.RecordLit:
		for _, f := range e.RecordFields {
			if !isSimple(f.Expr, w) {
				return false
			}
		}
		flat, ok := flatten(e)
		return ok && widthFits(w, flat)
	case ast.ListLit:
		for _, it := range e.Items {
			if !isSimple(it, w) {
				return false
			}
		}
		flat, ok := flatten(e)
		return ok && widthFits(w, flat)
	default:
		return false
	}
}
