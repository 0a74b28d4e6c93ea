package format

import "pqmfmt/internal/ast"

// emitRecordLit renders `[ name = value, ... ]`: flat when it fits (and, in
// Default mode, is simple; in Expanded mode, has at most one field),
// otherwise one field per line with a trailing comma on every
// line but the last and the closing `]` on its own line A comment attached to a field stays attached when the
// record breaks, since the field's own Leading/Trailing travel with it.
func (p *printer) emitRecordLit(w *Writer, e *ast.Expr) {
	if flat, ok := p.tryFlat(w, e, len(e.RecordFields) > 1); ok && (p.opt.Mode != ModeDefault || isSimple(e, w)) {
		w.WriteString(flat)
		return
	}

	w.WriteString("[")
	if len(e.RecordFields) == 0 {
		w.WriteString("]")
		return
	}
	w.Newline()
	p.indentedBlock(w, func() {
		for i, f := range e.RecordFields {
			emitLeading(w, &f.Name)
			w.WriteString(f.Name.Name + " = ")
			p.printExpr(w, f.Expr)
			if i < len(e.RecordFields)-1 {
				w.WriteString(",")
			}
			emitTrailing(w, f.Expr)
			w.Newline()
		}
	})
	w.WriteString("]")
}

// emitListLit renders `{ item, ... }`: flat when it fits and, for a
// multi-item list, when the mode isn't Expanded.
func (p *printer) emitListLit(w *Writer, e *ast.Expr) {
	if flat, ok := p.tryFlat(w, e, len(e.Items) > 1); ok {
		w.WriteString(flat)
		return
	}

	w.WriteString("{")
	if len(e.Items) == 0 {
		w.WriteString("}")
		return
	}
	w.Newline()
	p.indentedBlock(w, func() {
		for i, item := range e.Items {
			p.printExpr(w, item)
			if i < len(e.Items)-1 {
				w.WriteString(",")
			}
			emitTrailing(w, item)
			w.Newline()
		}
	})
	w.WriteString("}")
}
