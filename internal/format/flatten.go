package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"pqmfmt/internal/ast"
)

// flatten renders e as a single line with no leading/trailing comment
// handling, for measuring against the line-length budget ok is false when e or any descendant
// carries a comment: a leading comment must start its own line and a
// trailing comment swallows the rest of its line, so neither can appear
// inside a single-line rendering embedded in a larger expression.
func flatten(e *ast.Expr) (string, bool) {
	if e == nil {
		return "", true
	}
	if hasComments(e) {
		return "", false
	}
	return flattenNode(e)
}

func hasComments(e *ast.Expr) bool {
	if e == nil {
		return false
	}
	if len(e.Leading) > 0 || len(e.Trailing) > 0 {
		return true
	}
	for _, c := range children(e) {
		if hasComments(c) {
			return true
		}
	}
	return false
}

// children enumerates every direct Expr child of e, regardless of Kind.
func children(e *ast.Expr) []*ast.Expr {
	var out []*ast.Expr
	add := func(c *ast.Expr) {
		if c != nil {
			out = append(out, c)
		}
	}
	for _, b := range e.Bindings {
		add(&b.Name)
		add(b.Expr)
	}
	add(e.Body)
	add(e.Cond)
	add(e.Then)
	add(e.Else)
	add(e.TryBody)
	add(e.OtherwiseVal)
	for _, param := range e.Params {
		add(&param.Name)
		add(param.Type)
	}
	add(e.ReturnType)
	for _, m := range e.Members {
		add(&m.Name)
		add(m.Expr)
	}
	add(e.Lhs)
	add(e.Rhs)
	add(e.Operand)
	add(e.Target)
	add(e.AsIs)
	add(e.MetaVal)
	add(e.IndexExpr)
	add(e.Callee)
	for _, a := range e.Args {
		add(a)
	}
	for _, f := range e.RecordFields {
		add(&f.Name)
		add(f.Expr)
	}
	for _, it := range e.Items {
		add(it)
	}
	add(e.Inner)
	add(e.ElemType)
	for _, f := range e.Fields2 {
		add(f.Type)
	}
	for _, f := range e.FnParams {
		add(f.Type)
	}
	add(e.FnReturn)
	add(e.ParenInner)
	return out
}

func flattenNode(e *ast.Expr) (string, bool) {
	switch e.Kind {
	case ast.Identifier:
		return e.Name, true

	case ast.Literal:
		return literalText(e), true

	case ast.Paren:
		inner, ok := flatten(e.Inner)
		if !ok {
			return "", false
		}
		return "(" + inner + ")", true

	case ast.Unary:
		operand, ok := flatten(e.Operand)
		if !ok {
			return "", false
		}
		return unaryOpText(e.UnOp) + operand, true

	case ast.Binary:
		lhs, ok := flatten(e.Lhs)
		if !ok {
			return "", false
		}
		rhs, ok := flatten(e.Rhs)
		if !ok {
			return "", false
		}
		return lhs + " " + binaryOpText(e.BinOp) + " " + rhs, true

	case ast.Range:
		lhs, ok := flatten(e.Lhs)
		if !ok {
			return "", false
		}
		rhs, ok := flatten(e.Rhs)
		if !ok {
			return "", false
		}
		return lhs + ".." + rhs, true

	case ast.AsType:
		target, ok := flatten(e.Target)
		if !ok {
			return "", false
		}
		typ, ok := flatten(e.AsIs)
		if !ok {
			return "", false
		}
		return target + " as " + typ, true

	case ast.IsType:
		target, ok := flatten(e.Target)
		if !ok {
			return "", false
		}
		typ, ok := flatten(e.AsIs)
		if !ok {
			return "", false
		}
		return target + " is " + typ, true

	case ast.Meta:
		target, ok := flatten(e.Target)
		if !ok {
			return "", false
		}
		meta, ok := flatten(e.MetaVal)
		if !ok {
			return "", false
		}
		return target + " meta " + meta, true

	case ast.FieldAccess:
		target, ok := flatten(e.Target)
		if !ok {
			return "", false
		}
		return target + "[" + e.FieldName + "]" + optionalSuffix(e), true

	case ast.ItemAccess:
		target, ok := flatten(e.Target)
		if !ok {
			return "", false
		}
		idx, ok := flatten(e.IndexExpr)
		if !ok {
			return "", false
		}
		return target + "{" + idx + "}" + optionalSuffix(e), true

	case ast.FieldProjection:
		target, ok := flatten(e.Target)
		if !ok {
			return "", false
		}
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = "[" + f + "]"
		}
		return target + "[" + strings.Join(parts, ", ") + "]" + optionalSuffix(e), true

	case ast.Call:
		callee, ok := flatten(e.Callee)
		if !ok {
			return "", false
		}
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			s, ok := flatten(a)
			if !ok {
				return "", false
			}
			args[i] = s
		}
		return callee + "(" + strings.Join(args, ", ") + ")", true

	case ast.RecordLit:
		parts := make([]string, len(e.RecordFields))
		for i, f := range e.RecordFields {
			v, ok := flatten(f.Expr)
			if !ok {
				return "", false
			}
			parts[i] = f.Name.Name + " = " + v
		}
		return "[" + strings.Join(parts, ", ") + "]", true

	case ast.ListLit:
		parts := make([]string, len(e.Items))
		for i, it := range e.Items {
			s, ok := flatten(it)
			if !ok {
				return "", false
			}
			parts[i] = s
		}
		return "{" + strings.Join(parts, ", ") + "}", true

	case ast.Let:
		parts := make([]string, len(e.Bindings))
		for i, b := range e.Bindings {
			v, ok := flatten(b.Expr)
			if !ok {
				return "", false
			}
			parts[i] = b.Name.Name + " = " + v
		}
		body, ok := flatten(e.Body)
		if !ok {
			return "", false
		}
		return "let " + strings.Join(parts, ", ") + " in " + body, true

	case ast.If:
		cond, ok := flatten(e.Cond)
		if !ok {
			return "", false
		}
		then, ok := flatten(e.Then)
		if !ok {
			return "", false
		}
		els, ok := flatten(e.Else)
		if !ok {
			return "", false
		}
		return "if " + cond + " then " + then + " else " + els, true

	case ast.Try:
		body, ok := flatten(e.TryBody)
		if !ok {
			return "", false
		}
		if e.OtherwiseVal == nil {
			return "try " + body, true
		}
		other, ok := flatten(e.OtherwiseVal)
		if !ok {
			return "", false
		}
		return "try " + body + " otherwise " + other, true

	case ast.Fn:
		params := make([]string, len(e.Params))
		for i, p := range e.Params {
			params[i] = flattenParam(p)
		}
		body, ok := flatten(e.Body)
		if !ok {
			return "", false
		}
		sig := "(" + strings.Join(params, ", ") + ")"
		if e.ReturnType != nil {
			rt, ok := flatten(e.ReturnType)
			if !ok {
				return "", false
			}
			sig += " as " + rt
		}
		return sig + " => " + body, true

	case ast.Each:
		body, ok := flatten(e.Body)
		if !ok {
			return "", false
		}
		return "each " + body, true

	case ast.Section:
		return "", false

	case ast.TypeExpr:
		return flattenType(e)

	default:
		return "", false
	}
}

func flattenParam(p ast.Param) string {
	var b strings.Builder
	if p.Optional {
		b.WriteString("optional ")
	}
	b.WriteString(p.Name.Name)
	if p.Type != nil {
		if s, ok := flatten(p.Type); ok {
			b.WriteString(" as ")
			b.WriteString(s)
		}
	}
	return b.String()
}

func flattenType(e *ast.Expr) (string, bool) {
	body, ok := flattenTypeBody(e)
	if !ok {
		return "", false
	}
	if e.WithTypeKeyword {
		return "type " + body, true
	}
	return body, true
}

func flattenTypeBody(e *ast.Expr) (string, bool) {
	switch e.TypeKind {
	case ast.TypePrimitive:
		return e.TypeName, true
	case ast.TypeNullable:
		inner, ok := flatten(e.ElemType)
		if !ok {
			return "", false
		}
		return "nullable " + inner, true
	case ast.TypeList:
		inner, ok := flatten(e.ElemType)
		if !ok {
			return "", false
		}
		return "list {" + inner + "}", true
	case ast.TypeRecord:
		fields, ok := flattenTypeFields(e.Fields2)
		if !ok {
			return "", false
		}
		return "record [" + fields + "]", true
	case ast.TypeTable:
		fields, ok := flattenTypeFields(e.Fields2)
		if !ok {
			return "", false
		}
		return "table [" + fields + "]", true
	case ast.TypeFunction:
		parts := make([]string, len(e.FnParams))
		for i, f := range e.FnParams {
			parts[i] = f.Name
			if f.Type != nil {
				s, ok := flatten(f.Type)
				if !ok {
					return "", false
				}
				parts[i] += " as " + s
			}
		}
		ret, ok := flatten(e.FnReturn)
		if !ok {
			return "", false
		}
		return "function (" + strings.Join(parts, ", ") + ") as " + ret, true
	case ast.TypeParen:
		inner, ok := flatten(e.ParenInner)
		if !ok {
			return "", false
		}
		return "(" + inner + ")", true
	default:
		return "", false
	}
}

func flattenTypeFields(fields []ast.TypeField) (string, bool) {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name
		if f.Type != nil {
			s, ok := flatten(f.Type)
			if !ok {
				return "", false
			}
			parts[i] += " = " + s
		}
	}
	return strings.Join(parts, ", "), true
}

// widthFits reports whether s can be appended to the output at the
// current column without crossing the line-length budget.
func widthFits(w *Writer, s string) bool {
	return w.Column()+runeLenString(s) <= w.opt.LineLength
}

// runeLenString approximates the printed column width of s: combining
// marks contribute no width of their own, and East Asian wide/fullwidth
// runes (identifiers are accepted over all of Unicode, not just ASCII)
// count for two columns instead of one.
func runeLenString(s string) int {
	n := 0
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
