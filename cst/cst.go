// Package cst models the concrete syntax tree handed to the resolver by the
// lexer/parser collaborator (§6: "out of scope... delivers the CST tree and
// a stream of source locations"). The resolver consumes this tree by
// polymorphic dispatch on each node's kind.
//
// Node shapes follow gapil/ast's style (a Node marker interface, one struct
// per concrete construct, Identifier/Generic for names with optional
// template arguments) adapted from the GPU-trace DSL's grammar to
// sunder-lang's: struct/alias/extend/function declarations, C-like
// statements, and an implicit-cast-driven expression grammar (§4.F.6-7)
// rather than gapil's command/class/enum grammar.
package cst

import "github.com/sarvex/sunder-lang/diag"

// Node is implemented by every CST node.
type Node interface {
	isNode()
	Loc() diag.Location
}

type loc struct{ Location diag.Location }

func (l loc) Loc() diag.Location { return l.Location }

// Identifier is a parsed name, optionally followed by a template argument
// list: «identifier ! ( arg | <arg {, arg} )»
type Identifier struct {
	loc
	Name      string
	Arguments []Typespec // non-nil only for a generic reference
}

func (*Identifier) isNode() {}

// Module is the root of one parsed translation unit (§4.F.1).
type Module struct {
	loc
	Namespace []string // dotted namespace path components, nil if none
	Imports   []*Import
	Decls     []Decl
}

func (*Module) isNode() {}

// Import is an «import "path";» declaration (§4.F.2).
type Import struct {
	loc
	Path string
}

func (*Import) isNode() {}

// Decl is implemented by every top-level (or struct-member, or
// extend-block) declaration.
type Decl interface {
	Node
	isDecl()
}

// StructDecl declares an aggregate type (§4.F.4's two-phase struct path).
type StructDecl struct {
	loc
	Name           string
	TemplateParams []string // non-nil for a struct template (§4.F.3)
	Fields         []StructField
	Members        []Decl // member constants/functions
}

func (*StructDecl) isNode() {}
func (*StructDecl) isDecl() {}

// StructField is one member-variable declaration inside a StructDecl.
type StructField struct {
	loc
	Name string
	Type Typespec
}

// AliasDecl binds a name to an existing type (§4.F.4).
type AliasDecl struct {
	loc
	Name string
	Type Typespec
}

func (*AliasDecl) isNode() {}
func (*AliasDecl) isDecl() {}

// ExtendDecl attaches Members to an existing type's member table without
// disturbing other members (§4.F.4, «extend T { … }»).
type ExtendDecl struct {
	loc
	Type    string
	Members []Decl
}

func (*ExtendDecl) isNode() {}
func (*ExtendDecl) isDecl() {}

// VarDecl is a variable or constant declaration, at module or local scope
// (§4.F.4). IsConst selects Constant vs. Variable symbol kind; IsExtern
// selects a body/value-less extern declaration (global-only).
type VarDecl struct {
	loc
	Name     string
	Type     Typespec // nil if inferred from Init
	Init     Expr     // nil for extern
	IsConst  bool
	IsExtern bool
}

func (*VarDecl) isNode() {}
func (*VarDecl) isDecl() {}

// Param is one function parameter or, for a method, the implicit receiver.
type Param struct {
	loc
	Name string
	Type Typespec
}

// FuncDecl is a function, method (when Receiver != nil), or extern
// declaration (§4.F.4, §4.F.10).
type FuncDecl struct {
	loc
	Name           string
	TemplateParams []string
	Receiver       *Param // non-nil for "func (this: *T) name(...)" methods
	Params         []Param
	Return         Typespec // nil for void
	Body           []Stmt   // nil for extern
	IsExtern       bool
}

func (*FuncDecl) isNode() {}
func (*FuncDecl) isDecl() {}

// Typespec is implemented by every type reference in the CST.
type Typespec interface {
	Node
	isTypespec()
}

// NamedType references a type by name, optionally with template arguments
// (§4.F.3).
type NamedType struct {
	loc
	Name      string
	Arguments []Typespec
}

func (*NamedType) isNode()     {}
func (*NamedType) isTypespec() {}

// PointerType is «*Base».
type PointerType struct {
	loc
	Base Typespec
}

func (*PointerType) isNode()     {}
func (*PointerType) isTypespec() {}

// ArrayType is «[Count]Base»; Count is a constant expression.
type ArrayType struct {
	loc
	Count Expr
	Base  Typespec
}

func (*ArrayType) isNode()     {}
func (*ArrayType) isTypespec() {}

// SliceType is «[]Base».
type SliceType struct {
	loc
	Base Typespec
}

func (*SliceType) isNode()     {}
func (*SliceType) isTypespec() {}

// FunctionType is «func(Params...) Return».
type FunctionType struct {
	loc
	Params []Typespec
	Return Typespec // nil for void
}

func (*FunctionType) isNode()     {}
func (*FunctionType) isTypespec() {}
