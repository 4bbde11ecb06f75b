package symbol

import (
	"github.com/sarvex/sunder-lang/diag"
	"github.com/sarvex/sunder-lang/intern"
	"github.com/sarvex/sunder-lang/value"
)

// Symbol is the interface implemented by every symbol variant (§3.3). The
// private marker method closes the set, following the teacher's isNode-style
// sum-type idiom (gapil/semantic: isNode/isType/isExpression/isStatement)
// generalized per DESIGN NOTES §9.
type Symbol interface {
	isSymbol()
	Loc() diag.Location
	SymbolName() intern.String
}

type base struct {
	Location diag.Location
	Name     intern.String
}

func (b base) Loc() diag.Location      { return b.Location }
func (b base) SymbolName() intern.String { return b.Name }

// TypeSymbol names a Type (§3.3).
type TypeSymbol struct {
	base
	Type *Type
}

func (*TypeSymbol) isSymbol() {}

// Variable is a mutable storage location. Value is non-nil iff the variable
// has a compile-time initializer; it is required when Address.Kind is
// AddressStatic (§3.3).
type Variable struct {
	base
	Type    *Type
	Address Address
	Value   *value.Value
}

func (*Variable) isSymbol() {}

// Constant always carries a static address and a compile-time value (§3.3).
type Constant struct {
	base
	Type    *Type
	Address Address
	Value   *value.Value
}

func (*Constant) isSymbol() {}

// Function is a resolved function declaration. Type.Kind must be Function.
// Body is an opaque handle to the function's resolved TIR (typically a
// *tir.Function), kept untyped here so package symbol need not depend on
// package tir.
type Function struct {
	base
	Type    *Type
	Address Address
	Body    interface{}
}

func (*Function) isSymbol() {}

// Template carries an unresolved, CST-level generic declaration along with
// everything required to instantiate it (§3.3, §4.F.3). AST is the opaque
// CST node for the original declaration; its concrete type is supplied by
// the cst package and kept as interface{} here to avoid a symbol→cst
// dependency the other direction already doesn't need.
type Template struct {
	base
	AST          interface{}
	LexicalPrefix string
	Parent       *Table

	instances map[string]Symbol // mangled instance name -> cached Symbol
}

func (*Template) isSymbol() {}

// Instance returns the cached instantiation for mangledName, if any
// (§4.F.3 step 3).
func (t *Template) Instance(mangledName string) (Symbol, bool) {
	s, ok := t.instances[mangledName]
	return s, ok
}

// CacheInstance records sym as the instantiation for mangledName. Templates
// must cache *before* completing a struct template's fields (§4.F.3 step 7),
// so self-referential instantiation terminates.
func (t *Template) CacheInstance(mangledName string, sym Symbol) {
	if t.instances == nil {
		t.instances = map[string]Symbol{}
	}
	t.instances[mangledName] = sym
}

// Namespace is a named scope: its own Table, merged into parent tables by
// §4.F.2's import-merge rule.
type Namespace struct {
	base
	Table *Table
}

func (*Namespace) isSymbol() {}
