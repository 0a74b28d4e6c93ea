// Package ast defines the Power Query M abstract syntax tree. Every
// program is a single expression: the tree is a tagged
// union rather than a class hierarchy, and layout logic in internal/format
// dispatches on the Kind field the way the parser builds it.
package ast

import (
	"pqmfmt/internal/source"
	"pqmfmt/internal/token"
)

// Kind tags which variant an Expr holds.
type Kind uint8

const (
	Let Kind = iota
	If
	Try
	Fn
	Each
	Section
	Binary
	Unary
	AsType
	IsType
	Meta
	FieldAccess
	ItemAccess
	FieldProjection
	Call
	RecordLit
	ListLit
	Paren
	Identifier
	Literal
	TypeExpr
	// Range is an `a..b` item, valid only inside a ListLit
	Range
)

// BinaryOp enumerates the operators parser/binary.go can attach to a
// Binary node, in precedence order low-to-high
type BinaryOp uint8

const (
	OpOr BinaryOp = iota
	OpAnd
	OpEq
	OpNotEq
	OpLt
	OpLe
	OpGt
	OpGe
	OpAdd
	OpSub
	OpConcat // &
	OpMul
	OpDiv
)

// UnaryOp enumerates the prefix operators a Unary node can carry.
type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota
	UnaryPos
	UnaryNot
	// UnaryRaise is M's `error expr` raise-expression, not a prefix
	// operator token but parsed and printed the same shape as one.
	UnaryRaise
)

// LiteralKind tags which literal form a Literal node spells.
type LiteralKind uint8

const (
	LitNumber LiteralKind = iota
	LitString
	LitNull
	LitTrue
	LitFalse
)

// TypeKind tags which production of the type grammar a
// TypeExpr node holds.
type TypeKind uint8

const (
	TypePrimitive TypeKind = iota
	TypeNullable
	TypeList
	TypeRecord
	TypeTable
	TypeFunction
	TypeParen
)

// Binding is one `name = expr` pair inside a Let or record/section.
type Binding struct {
	Name Expr // Identifier (or keyword-as-field) node
	Expr *Expr
}

// Param is one function parameter: a name, an optional declared type, and
// whether it is marked `optional`.
type Param struct {
	Name     Expr
	Type     *Expr // TypeExpr, nil if untyped
	Optional bool
}

// TypeField is one field inside a record/table type's field list
//
type TypeField struct {
	Name string
	Type *Expr // nil when the field has no declared type
}

// SectionMember is one `[shared] name = expr;` entry inside a Section.
type SectionMember struct {
	Shared bool
	Name   Expr
	Expr   *Expr
}

// Expr is a single AST node. Every node carries its source span and the
// comment trivia attached to it by the parser;
// the remaining fields are a tagged union selected by Kind.
type Expr struct {
	Kind Kind
	Span source.Span

	Leading  []token.Trivia
	Trailing []token.Trivia

	// Let
	Bindings []Binding
	Body     *Expr // Let body, Fn/Each body

	// If
	Cond, Then, Else *Expr

	// Try / Try-Otherwise
	TryBody      *Expr
	OtherwiseVal *Expr // nil when there is no `otherwise` clause

	// Fn
	Params     []Param
	ReturnType *Expr // nil when unannotated

	// Section
	SectionName string
	HasName     bool
	Members     []SectionMember

	// Binary / Unary
	BinOp   BinaryOp
	UnOp    UnaryOp
	Lhs, Rhs *Expr
	Operand *Expr

	// AsType / IsType / Meta
	Target  *Expr // also the operand of FieldAccess/ItemAccess/FieldProjection; nil for a bare `[field]` selector
	AsIs    *Expr // the type operand of AsType/IsType
	MetaVal *Expr // the metadata_expr of Meta

	// FieldAccess / ItemAccess
	FieldName string
	IndexExpr *Expr
	Optional  bool

	// FieldProjection
	Fields []string

	// Call
	Callee *Expr
	Args   []*Expr

	// RecordLit
	RecordFields []Binding

	// ListLit
	Items []*Expr

	// Paren
	Inner *Expr

	// Identifier
	Name string

	// Literal
	LitKind LiteralKind
	Raw     string

	// TypeExpr
	TypeKind     TypeKind
	TypeName     string      // TypePrimitive
	ElemType     *Expr       // TypeNullable, TypeList
	Fields2      []TypeField // TypeRecord, TypeTable
	FnParams     []TypeField // TypeFunction params (name [as T])
	FnReturn     *Expr       // TypeFunction "as T"
	ParenInner   *Expr       // TypeParen
	WithTypeKeyword bool     // standalone `type T` primary expression, vs. a bare type after as/is/nullable/etc.
}
