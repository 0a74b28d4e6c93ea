package format

import "pqmfmt/internal/ast"

// emitCall renders `callee(args...)`: flat if it fits, otherwise one
// argument per line at indent+1 with the closing `)` on its own line at
// the caller's indent
func (p *printer) emitCall(w *Writer, e *ast.Expr) {
	if flat, ok := p.tryFlat(w, e, len(e.Args) > 1); ok {
		w.WriteString(flat)
		return
	}

	p.printExpr(w, e.Callee)
	w.WriteString("(")
	if len(e.Args) == 0 {
		w.WriteString(")")
		return
	}
	w.Newline()
	p.indentedBlock(w, func() {
		for i, arg := range e.Args {
			p.printExpr(w, arg)
			if i < len(e.Args)-1 {
				w.WriteString(",")
			}
			emitTrailing(w, arg)
			w.Newline()
		}
	})
	w.WriteString(")")
}
