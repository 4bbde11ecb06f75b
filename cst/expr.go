package cst

// Expr is implemented by every expression variant (§4.F.6-7).
type Expr interface {
	Node
	isExpr()
}

func (*Identifier) isExpr() {}

// IntegerLiteral carries its text verbatim (Digits, e.g. "0x1F", "42") plus
// an optional type Suffix (e.g. "u8"); the evaluator/resolver parses Digits
// against the suffix's (or the untyped default's) range (§4.F.6, §4.B).
type IntegerLiteral struct {
	loc
	Digits string
	Suffix string
}

func (*IntegerLiteral) isNode() {}
func (*IntegerLiteral) isExpr() {}

// BytesLiteral is a quoted byte-string literal.
type BytesLiteral struct {
	loc
	Value []byte
}

func (*BytesLiteral) isNode() {}
func (*BytesLiteral) isExpr() {}

// BoolLiteral is «true» or «false».
type BoolLiteral struct {
	loc
	Value bool
}

func (*BoolLiteral) isNode() {}
func (*BoolLiteral) isExpr() {}

// ListLiteral is an array/slice literal «Type{Elements...}», with Ellipsis
// set when the source used «Type{Elements..., ...}» to mean "repeat the
// last element to fill the array's count" (§4.F.6 array-count inference).
type ListLiteral struct {
	loc
	Type     Typespec
	Elements []Expr
	Ellipsis bool
}

func (*ListLiteral) isNode() {}
func (*ListLiteral) isExpr() {}

// StructFieldInit is one «Name: Value» initializer inside a StructLiteral.
type StructFieldInit struct {
	Name  string
	Value Expr
}

// StructLiteral is «Type{Field: Value, ...}».
type StructLiteral struct {
	loc
	Type   Typespec
	Fields []StructFieldInit
}

func (*StructLiteral) isNode() {}
func (*StructLiteral) isExpr() {}

// Cast is an explicit conversion «Type(Value)» (§4.F.7 distinguishes this
// from the implicit shallow casts the resolver inserts itself).
type Cast struct {
	loc
	Type  Typespec
	Value Expr
}

func (*Cast) isNode() {}
func (*Cast) isExpr() {}

// Syscall is the raw syscall-invocation intrinsic «syscall(Args...)».
type Syscall struct {
	loc
	Args []Expr
}

func (*Syscall) isNode() {}
func (*Syscall) isExpr() {}

// Call is a function (or method, when Callee is a Member) invocation.
type Call struct {
	loc
	Callee Expr
	Args   []Expr
}

func (*Call) isNode() {}
func (*Call) isExpr() {}

// Index is «Base[Idx]».
type Index struct {
	loc
	Base Expr
	Idx  Expr
}

func (*Index) isNode() {}
func (*Index) isExpr() {}

// Slice is «Base[Low:High]»; Low and/or High may be nil to default to the
// base's bounds.
type Slice struct {
	loc
	Base Expr
	Low  Expr
	High Expr
}

func (*Slice) isNode() {}
func (*Slice) isExpr() {}

// Sizeof is «sizeof(Type)», a compile-time constant expression.
type Sizeof struct {
	loc
	Type Typespec
}

func (*Sizeof) isNode() {}
func (*Sizeof) isExpr() {}

// Alignof is «alignof(Type)», a compile-time constant expression.
type Alignof struct {
	loc
	Type Typespec
}

func (*Alignof) isNode() {}
func (*Alignof) isExpr() {}

// Unary is a prefix operator applied to Operand: "-", "!", "~", "*"
// (dereference), "&" (address-of).
type Unary struct {
	loc
	Op      string
	Operand Expr
}

func (*Unary) isNode() {}
func (*Unary) isExpr() {}

// Binary is an infix operator applied to Left and Right.
type Binary struct {
	loc
	Op    string
	Left  Expr
	Right Expr
}

func (*Binary) isNode() {}
func (*Binary) isExpr() {}

// Member is «Base.Name», a field access or unbound method reference.
type Member struct {
	loc
	Base Expr
	Name string
}

func (*Member) isNode() {}
func (*Member) isExpr() {}

// Uninit is the «uninit» keyword expression: an explicitly-uninitialized
// value of its (contextually inferred) type.
type Uninit struct{ loc }

func (*Uninit) isNode() {}
func (*Uninit) isExpr() {}

// Null is the «null» keyword expression: the zero pointer, of its
// (contextually inferred) pointer type.
type Null struct{ loc }

func (*Null) isNode() {}
func (*Null) isExpr() {}
