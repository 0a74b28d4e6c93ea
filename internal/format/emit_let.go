package format

import "pqmfmt/internal/ast"

// emitLet renders `let ... in body`. Default/Expanded always break one
// binding per line; Compact collapses to `let a = 1, b = 2 in a + b` when
// the whole thing fits
func (p *printer) emitLet(w *Writer, e *ast.Expr) {
	if p.opt.Mode == ModeCompact {
		if flat, ok := flatten(e); ok && widthFits(w, flat) {
			w.WriteString(flat)
			return
		}
	}

	w.WriteString("let")
	w.Newline()
	p.indentedBlock(w, func() {
		for i, b := range e.Bindings {
			emitLeading(w, &b.Name)
			w.WriteString(b.Name.Name + " =")
			p.emitBindingValue(w, b.Expr)
			if i < len(e.Bindings)-1 {
				w.WriteString(",")
			}
			emitTrailing(w, b.Expr)
			w.Newline()
		}
	})
	w.WriteString("in")
	w.Newline()
	p.indentedBlock(w, func() {
		p.printExpr(w, e.Body)
	})
}

// emitBindingValue lays a let binding's or section member's value out on
// the same line when it flattens and fits (in Default mode it must also be
// simple); any other value goes on the next line, indented one further
// level
func (p *printer) emitBindingValue(w *Writer, value *ast.Expr) {
	if flat, ok := flatten(value); ok && widthFitsAfterSpace(w, flat) && (p.opt.Mode != ModeDefault || isSimple(value, w)) {
		w.Space()
		w.WriteString(flat)
		return
	}
	w.Newline()
	p.indentedBlock(w, func() {
		emitLeading(w, value)
		p.emitNode(w, value)
	})
}

func widthFitsAfterSpace(w *Writer, s string) bool {
	return w.Column()+1+runeLenString(s) <= w.opt.LineLength
}
