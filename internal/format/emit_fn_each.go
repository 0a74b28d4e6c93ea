package format

import "pqmfmt/internal/ast"

// emitFn renders `(params) => body`. Parameters are always flat; the body shares the
// signature's line when it is simple or flat-fits, otherwise it drops to
// the next line, indented one level.
func (p *printer) emitFn(w *Writer, e *ast.Expr) {
	w.WriteString("(")
	for i, param := range e.Params {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(flattenParam(param))
	}
	w.WriteString(")")
	if e.ReturnType != nil {
		w.WriteString(" as ")
		p.printExpr(w, e.ReturnType)
	}
	w.WriteString(" =>")
	p.emitFnBody(w, e.Body)
}

// emitEach renders `each body`, the shorthand for `(_) => body`. The body
// follows the same same-line-or-broken placement as a function body.
func (p *printer) emitEach(w *Writer, e *ast.Expr) {
	w.WriteString("each")
	p.emitFnBody(w, e.Body)
}

// emitFnBody places a function or `each` body after a space on the current
// line when it flattens without comments and is either simple or fits the
// line; otherwise on the next line, indented one level.
func (p *printer) emitFnBody(w *Writer, body *ast.Expr) {
	if flat, ok := flatten(body); ok && (isSimple(body, w) || widthFitsAfterSpace(w, flat)) {
		w.Space()
		w.WriteString(flat)
		return
	}
	w.Newline()
	p.indentedBlock(w, func() {
		emitLeading(w, body)
		p.emitNode(w, body)
	})
}
