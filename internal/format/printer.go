// Package format implements the pretty-printer: a recursive,
// measure-then-emit layout engine over the parser's AST
package format

import "pqmfmt/internal/ast"

type printer struct {
	opt Options
}

// Format renders root as a complete program. The output always ends with
// exactly one newline
func Format(root *ast.Expr, opt Options) string {
	opt = opt.withDefaults()
	w := newWriter(opt)
	p := &printer{opt: opt}
	p.printExpr(w, root)
	emitTrailing(w, root)
	w.Newline()
	return string(w.Bytes())
}

// emitNode renders e's own content (not its leading/trailing comments,
// which printExpr and the container callers handle) choosing between a
// flat and a broken layout per the active mode's layout policy.
func (p *printer) emitNode(w *Writer, e *ast.Expr) {
	switch e.Kind {
	case ast.Identifier:
		w.WriteString(e.Name)
	case ast.Literal:
		w.WriteString(literalText(e))
	case ast.Paren:
		p.emitParen(w, e)
	case ast.Unary:
		p.emitUnary(w, e)
	case ast.Binary:
		p.emitBinary(w, e)
	case ast.Range:
		p.printExpr(w, e.Lhs)
		w.WriteString("..")
		p.printExpr(w, e.Rhs)
	case ast.AsType:
		p.emitSuffixedType(w, e.Target, "as", e.AsIs)
	case ast.IsType:
		p.emitSuffixedType(w, e.Target, "is", e.AsIs)
	case ast.Meta:
		p.emitSuffixedExpr(w, e.Target, "meta", e.MetaVal)
	case ast.FieldAccess:
		p.printExpr(w, e.Target)
		w.WriteString("[" + e.FieldName + "]" + optionalSuffix(e))
	case ast.ItemAccess:
		p.emitItemAccess(w, e)
	case ast.FieldProjection:
		p.emitFieldProjection(w, e)
	case ast.Call:
		p.emitCall(w, e)
	case ast.RecordLit:
		p.emitRecordLit(w, e)
	case ast.ListLit:
		p.emitListLit(w, e)
	case ast.Let:
		p.emitLet(w, e)
	case ast.If:
		p.emitIf(w, e)
	case ast.Try:
		p.emitTry(w, e)
	case ast.Fn:
		p.emitFn(w, e)
	case ast.Each:
		p.emitEach(w, e)
	case ast.Section:
		p.emitSection(w, e)
	case ast.TypeExpr:
		p.emitType(w, e)
	default:
		w.WriteString("")
	}
}

func (p *printer) emitParen(w *Writer, e *ast.Expr) {
	w.WriteString("(")
	p.printExpr(w, e.Inner)
	w.WriteString(")")
}

func (p *printer) emitUnary(w *Writer, e *ast.Expr) {
	w.WriteString(unaryOpText(e.UnOp))
	p.printExpr(w, e.Operand)
}

func (p *printer) emitBinary(w *Writer, e *ast.Expr) {
	p.printExpr(w, e.Lhs)
	w.Space()
	w.WriteString(binaryOpText(e.BinOp))
	w.Space()
	p.printExpr(w, e.Rhs)
}

// emitSuffixedType renders `target kw T` for AsType/IsType: T is always a
// bare type, printed without the leading `type` keyword regardless of how
// it was spelled in source.
func (p *printer) emitSuffixedType(w *Writer, target *ast.Expr, kw string, typ *ast.Expr) {
	p.printExpr(w, target)
	w.Space()
	w.WriteString(kw)
	w.Space()
	p.printExpr(w, typ)
}

func (p *printer) emitSuffixedExpr(w *Writer, target *ast.Expr, kw string, rhs *ast.Expr) {
	p.printExpr(w, target)
	w.Space()
	w.WriteString(kw)
	w.Space()
	p.printExpr(w, rhs)
}

func (p *printer) emitItemAccess(w *Writer, e *ast.Expr) {
	p.printExpr(w, e.Target)
	w.WriteString("{")
	p.printExpr(w, e.IndexExpr)
	w.WriteString("}" + optionalSuffix(e))
}

func (p *printer) emitFieldProjection(w *Writer, e *ast.Expr) {
	p.printExpr(w, e.Target)
	w.WriteString("[")
	for i, f := range e.Fields {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString("[" + f + "]")
	}
	w.WriteString("]" + optionalSuffix(e))
}
