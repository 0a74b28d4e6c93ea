package format

import "pqmfmt/internal/ast"

// emitType renders a type expression Record
// and table field lists break one field per line when they don't fit flat;
// every other type production has no internal breaking point of its own.
func (p *printer) emitType(w *Writer, e *ast.Expr) {
	if e.WithTypeKeyword {
		w.WriteString("type ")
	}
	switch e.TypeKind {
	case ast.TypePrimitive:
		w.WriteString(e.TypeName)
	case ast.TypeNullable:
		w.WriteString("nullable ")
		p.printExpr(w, e.ElemType)
	case ast.TypeList:
		w.WriteString("list {")
		p.printExpr(w, e.ElemType)
		w.WriteString("}")
	case ast.TypeRecord:
		w.WriteString("record ")
		p.emitTypeFieldList(w, e)
	case ast.TypeTable:
		w.WriteString("table ")
		p.emitTypeFieldList(w, e)
	case ast.TypeFunction:
		p.emitTypeFunction(w, e)
	case ast.TypeParen:
		w.WriteString("(")
		p.printExpr(w, e.ParenInner)
		w.WriteString(")")
	}
}

func (p *printer) emitTypeFieldList(w *Writer, e *ast.Expr) {
	if fields, ok := flattenTypeFields(e.Fields2); ok {
		flat := "[" + fields + "]"
		if widthFits(w, flat) {
			w.WriteString(flat)
			return
		}
	}

	w.WriteString("[")
	if len(e.Fields2) == 0 {
		w.WriteString("]")
		return
	}
	w.Newline()
	p.indentedBlock(w, func() {
		for i, f := range e.Fields2 {
			w.WriteString(f.Name)
			if f.Type != nil {
				w.WriteString(" = ")
				p.printExpr(w, f.Type)
			}
			if i < len(e.Fields2)-1 {
				w.WriteString(",")
			}
			w.Newline()
		}
	})
	w.WriteString("]")
}

func (p *printer) emitTypeFunction(w *Writer, e *ast.Expr) {
	w.WriteString("function (")
	for i, f := range e.FnParams {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(f.Name)
		if f.Type != nil {
			w.WriteString(" as ")
			p.printExpr(w, f.Type)
		}
	}
	w.WriteString(") as ")
	p.printExpr(w, e.FnReturn)
}
