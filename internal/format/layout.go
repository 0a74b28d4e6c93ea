package format

import "pqmfmt/internal/ast"

// tryFlat decides whether e should be rendered flat: it must flatten
// losslessly (no embedded comments), and fit the line-length budget.
// multiChild marks a container with more than one field/item/argument,
// which Expanded mode always breaks regardless of fit. Default and
// Compact share this same fits-or-breaks rule for call/list/if/try. The
// complexity heuristic (isSimple) applies on top of it only to a record
// in Default mode (see emitRecordLit), and otherwise to where a let
// binding's value (emitBindingValue) or a function body (emitFnBody) is
// placed.
func (p *printer) tryFlat(w *Writer, e *ast.Expr, multiChild bool) (string, bool) {
	flat, ok := flatten(e)
	if !ok {
		return "", false
	}
	if p.opt.Mode == ModeExpanded && multiChild {
		return "", false
	}
	return flat, widthFits(w, flat)
}

func (p *printer) indentedBlock(w *Writer, body func()) {
	w.IndentPush()
	body()
	w.IndentPop()
}
