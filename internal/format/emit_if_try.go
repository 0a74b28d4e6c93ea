package format

import "pqmfmt/internal/ast"

// emitIf renders `if c then a else b`: flat if it fits, otherwise broken
// with `then` ending the condition's line, `else` on a line of its own,
// and each branch on the line after its keyword, indented one level
func (p *printer) emitIf(w *Writer, e *ast.Expr) {
	if flat, ok := p.tryFlat(w, e, false); ok {
		w.WriteString(flat)
		return
	}

	w.WriteString("if ")
	if !p.printSameLine(w, e.Cond) {
		w.Space()
	}
	w.WriteString("then")
	w.Newline()
	p.indentedBlock(w, func() {
		p.printExpr(w, e.Then)
		emitTrailing(w, e.Then)
	})
	w.Newline()
	w.WriteString("else")
	w.Newline()
	p.indentedBlock(w, func() {
		p.printExpr(w, e.Else)
	})
}

// emitTry renders `try body [otherwise handler]`: flat if it fits,
// otherwise broken after `try` and before `otherwise`, with the body and
// the handler each on the line after its keyword, indented one level
func (p *printer) emitTry(w *Writer, e *ast.Expr) {
	if flat, ok := p.tryFlat(w, e, false); ok {
		w.WriteString(flat)
		return
	}

	w.WriteString("try")
	w.Newline()
	p.indentedBlock(w, func() {
		p.printExpr(w, e.TryBody)
		emitTrailing(w, e.TryBody)
	})
	if e.OtherwiseVal == nil {
		return
	}
	w.Newline()
	w.WriteString("otherwise")
	w.Newline()
	p.indentedBlock(w, func() {
		p.printExpr(w, e.OtherwiseVal)
	})
}
