package format

import "pqmfmt/internal/ast"

// emitSection renders a `section [name];` document header followed by one
// `[shared] name = expr;` member per line. Sections are a document-level
// construct, not a composable sub-expression, so they are never flattened
// regardless of mode.
func (p *printer) emitSection(w *Writer, e *ast.Expr) {
	w.WriteString("section")
	if e.HasName {
		w.Space()
		w.WriteString(e.SectionName)
	}
	w.WriteString(";")
	for _, m := range e.Members {
		w.Newline()
		emitLeading(w, &m.Name)
		if m.Shared {
			w.WriteString("shared ")
		}
		w.WriteString(m.Name.Name + " =")
		p.emitBindingValue(w, m.Expr)
		w.WriteString(";")
		emitTrailing(w, m.Expr)
	}
}
