package format

import "pqmfmt/internal/ast"

// emitLeading writes e's leading comments, one per source line, at the
// writer's current indent Block comments are
// copied verbatim; their internal line structure is never re-indented.
func emitLeading(w *Writer, e *ast.Expr) {
	for _, t := range e.Leading {
		w.WriteString(t.Text)
		w.Newline()
	}
}

// emitTrailing writes e's trailing comments on the current line, each
// preceded by a single space
func emitTrailing(w *Writer, e *ast.Expr) {
	for _, t := range e.Trailing {
		w.Space()
		w.WriteString(t.Text)
	}
}

// printExpr prints e's leading comments followed by its own rendering.
// Every recursive descent into a child node goes through this entry point
// so leading comments are never missed, regardless of nesting depth. A nil
// e (the missing target of a bare `[field]` selector) prints nothing.
func (p *printer) printExpr(w *Writer, e *ast.Expr) {
	if e == nil {
		return
	}
	emitLeading(w, e)
	p.emitNode(w, e)
}

// printSameLine prints e (its leading comments, then its own rendering)
// as a fragment that shares a line with surrounding keywords. If e
// carries trailing comments, printing them verbatim here would swallow
// whatever the caller intends to write next on that line, so this
// instead emits them and forces a line break, returning true so the
// caller can lay out what follows on a fresh line instead of appending
// it inline
func (p *printer) printSameLine(w *Writer, e *ast.Expr) (broke bool) {
	p.printExpr(w, e)
	if len(e.Trailing) == 0 {
		return false
	}
	emitTrailing(w, e)
	w.Newline()
	return true
}
