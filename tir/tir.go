// Package tir is the typed intermediate representation the resolver
// produces from a cst.Module (§3.7). Every node here carries its resolved
// *symbol.Type directly rather than a name to look up, and every name
// reference has already been bound to a *symbol.Symbol — the defining
// property that separates tir from cst.
//
// Node shapes follow gapil/semantic's style (Expression/Statement marker
// interfaces closing a sum type, an AST back-pointer on each node) adapted
// from the GPU-trace DSL's fence/observer/subroutine concerns, which this
// front-end has no use for, to sunder-lang's simpler expression-statement
// language.
package tir

import (
	"github.com/sarvex/sunder-lang/cst"
	"github.com/sarvex/sunder-lang/symbol"
	"github.com/sarvex/sunder-lang/value"
)

// Node is implemented by every tir node.
type Node interface {
	isNode()
}

// Expression is implemented by every resolved expression. ExpressionType
// returns the node's resolved, already-canonicalized type; ConstValue
// returns the node's compile-time value and true if it was foldable
// (§4.F.7, §4.G).
type Expression interface {
	Node
	isExpression()
	ExpressionType() *symbol.Type
}

// Statement is implemented by every resolved statement.
type Statement interface {
	Node
	isStatement()
}

// Identifier resolves a name reference to the Symbol it was bound to
// (§3.4's "binds every identifier to exactly one Symbol" invariant).
type Identifier struct {
	AST    *cst.Identifier
	Symbol symbol.Symbol
	Type   *symbol.Type
}

func (*Identifier) isNode()                    {}
func (*Identifier) isExpression()               {}
func (i *Identifier) ExpressionType() *symbol.Type { return i.Type }

// Boolean is a resolved boolean literal.
type Boolean struct {
	AST   *cst.BoolLiteral
	Type  *symbol.Type
	Value bool
}

func (*Boolean) isNode()                     {}
func (*Boolean) isExpression()                {}
func (n *Boolean) ExpressionType() *symbol.Type { return n.Type }

// Integer is a resolved, range-checked integer literal (§4.B, §4.F.6).
type Integer struct {
	AST   *cst.IntegerLiteral
	Type  *symbol.Type
	Value *value.Value
}

func (*Integer) isNode()                     {}
func (*Integer) isExpression()               {}
func (n *Integer) ExpressionType() *symbol.Type { return n.Type }

// Bytes is a resolved byte-string literal: the resolver emits a hidden
// static constant holding the data plus a trailing NUL (§4.F.6's
// "Bytes literal" handling) and this node just names that static address
// and the visible element count (NUL excluded) — Type is always []byte.
type Bytes struct {
	AST        *cst.BytesLiteral
	Type       *symbol.Type
	StaticName string
	Count      int
	Data       []byte // the literal's bytes, NUL excluded; for eval/codegen
}

func (*Bytes) isNode()                     {}
func (*Bytes) isExpression()               {}
func (n *Bytes) ExpressionType() *symbol.Type { return n.Type }

// LiteralArray is a resolved fixed-size array literal.
type LiteralArray struct {
	AST      *cst.ListLiteral
	Type     *symbol.Type
	Elements []Expression
}

func (*LiteralArray) isNode()                     {}
func (*LiteralArray) isExpression()                {}
func (n *LiteralArray) ExpressionType() *symbol.Type { return n.Type }

// LiteralSlice is a resolved slice literal (backed by a synthesized
// static array the resolver allocates storage for, §4.F.8).
type LiteralSlice struct {
	AST      *cst.ListLiteral
	Type     *symbol.Type
	Elements []Expression
}

func (*LiteralSlice) isNode()                     {}
func (*LiteralSlice) isExpression()                {}
func (n *LiteralSlice) ExpressionType() *symbol.Type { return n.Type }

// Struct is a resolved struct literal, fields in declaration order
// regardless of the source's initializer order (§4.F.6).
type Struct struct {
	AST    *cst.StructLiteral
	Type   *symbol.Type
	Fields []Expression
}

func (*Struct) isNode()                     {}
func (*Struct) isExpression()                {}
func (n *Struct) ExpressionType() *symbol.Type { return n.Type }

// Cast is an explicit or implicit (§4.F.7) conversion of Value to Type.
type Cast struct {
	AST      *cst.Cast // nil for a resolver-inserted implicit cast
	Type     *symbol.Type
	Value    Expression
	Implicit bool
}

func (*Cast) isNode()                     {}
func (*Cast) isExpression()                {}
func (n *Cast) ExpressionType() *symbol.Type { return n.Type }

// Syscall is a raw syscall invocation; its type is always the platform
// word-integer return type.
type Syscall struct {
	AST  *cst.Syscall
	Type *symbol.Type
	Args []Expression
}

func (*Syscall) isNode()                     {}
func (*Syscall) isExpression()                {}
func (n *Syscall) ExpressionType() *symbol.Type { return n.Type }

// Call is a resolved function (or method) invocation.
type Call struct {
	AST      *cst.Call
	Function *symbol.Function
	Args     []Expression
}

func (*Call) isNode()      {}
func (*Call) isExpression() {}
func (c *Call) ExpressionType() *symbol.Type { return c.Function.Type.Return }

// Index is a resolved array/slice index expression.
type Index struct {
	AST  *cst.Index
	Type *symbol.Type
	Base Expression
	Idx  Expression
}

func (*Index) isNode()                     {}
func (*Index) isExpression()                {}
func (n *Index) ExpressionType() *symbol.Type { return n.Type }

// Slice is a resolved sub-slice expression.
type Slice struct {
	AST  *cst.Slice
	Type *symbol.Type
	Base Expression
	Low  Expression // nil means 0
	High Expression // nil means Base's length
}

func (*Slice) isNode()                     {}
func (*Slice) isExpression()                {}
func (n *Slice) ExpressionType() *symbol.Type { return n.Type }

// Sizeof is always foldable to a compile-time constant (§4.G).
type Sizeof struct {
	AST  *cst.Sizeof
	Type *symbol.Type // the word-integer result type
	Of   *symbol.Type // the type being measured
}

func (*Sizeof) isNode()                     {}
func (*Sizeof) isExpression()                {}
func (n *Sizeof) ExpressionType() *symbol.Type { return n.Type }

// Alignof is always foldable to a compile-time constant (§4.G).
type Alignof struct {
	AST  *cst.Alignof
	Type *symbol.Type
	Of   *symbol.Type
}

func (*Alignof) isNode()                     {}
func (*Alignof) isExpression()                {}
func (n *Alignof) ExpressionType() *symbol.Type { return n.Type }

// Unary is a resolved prefix operator.
type Unary struct {
	AST      *cst.Unary
	Type     *symbol.Type
	Operator string
	Operand  Expression
}

func (*Unary) isNode()                     {}
func (*Unary) isExpression()                {}
func (n *Unary) ExpressionType() *symbol.Type { return n.Type }

// Binary is a resolved infix operator.
type Binary struct {
	AST      *cst.Binary
	Type     *symbol.Type
	Operator string
	Left     Expression
	Right    Expression
}

func (*Binary) isNode()                     {}
func (*Binary) isExpression()                {}
func (n *Binary) ExpressionType() *symbol.Type { return n.Type }

// MemberVariable is a resolved «Base.Name» field access.
type MemberVariable struct {
	AST   *cst.Member
	Type  *symbol.Type
	Base  Expression
	Field *symbol.Field
}

func (*MemberVariable) isNode()                     {}
func (*MemberVariable) isExpression()                {}
func (n *MemberVariable) ExpressionType() *symbol.Type { return n.Type }

// Uninit is the «uninit» keyword expression, typed by the context it
// appears in (a var declaration's annotated type, a return's function
// signature, ...), never on its own (§4.F.6).
type Uninit struct {
	AST  *cst.Uninit
	Type *symbol.Type
}

func (*Uninit) isNode()                     {}
func (*Uninit) isExpression()                {}
func (n *Uninit) ExpressionType() *symbol.Type { return n.Type }

// NullPointer is the «null» keyword expression: the zero pointer, typed by
// context exactly as Uninit is; Type.Kind is always Pointer.
type NullPointer struct {
	AST  *cst.Null
	Type *symbol.Type
}

func (*NullPointer) isNode()                     {}
func (*NullPointer) isExpression()                {}
func (n *NullPointer) ExpressionType() *symbol.Type { return n.Type }
