package symbol

import (
	"fmt"

	"github.com/sarvex/sunder-lang/bigint"
	"github.com/sarvex/sunder-lang/intern"
)

// Kind tags a Type's variant, per §3.2.
type Kind int

const (
	Void Kind = iota
	Bool
	Byte
	Integer // sized or untyped; see Type.Unsized / Type.IntegerUntyped
	Function
	Pointer
	Array
	Slice
	Struct
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case Bool:
		return "bool"
	case Byte:
		return "byte"
	case Integer:
		return "integer"
	case Function:
		return "function"
	case Pointer:
		return "pointer"
	case Array:
		return "array"
	case Slice:
		return "slice"
	case Struct:
		return "struct"
	default:
		return "<invalid kind>"
	}
}

// UnsizedSize is the sentinel Type.Size for void and the untyped integer —
// rejected from any context that needs a byte layout (§3.2, GLOSSARY).
const UnsizedSize = -1

// Field is one member variable of a Struct type, in declaration order.
type Field struct {
	Name   intern.String
	Type   *Type
	Offset int // byte offset within the struct
}

// Type is the front-end's tagged type variant (§3.2). Two Types with equal
// canonical Name are the same in-memory Type — see Registry.unique — so
// Type equality throughout the front-end is pointer equality.
type Type struct {
	Kind Kind
	Name intern.String // canonical, interned: e.g. "*[]u8", "func(u32) bool"
	Size int           // bytes; UnsizedSize for void and untyped integer
	Align int

	// Integer payload.
	Min, Max        *bigint.Int // fixed at construction
	Unsigned        bool
	IntegerUntyped  bool // the unbounded-range literal type; always UnsizedSize

	// Function payload.
	Params []*Type
	Return *Type

	// Pointer / Array / Slice payload.
	Base  *Type
	Count int // Array only

	// Struct payload.
	Fields  []Field
	Members *Table // member constants/functions; §4.F.4
}

// IsReference reports whether t is a Pointer or Slice — the two kinds that
// name storage rather than holding a value directly.
func (t *Type) IsReference() bool {
	return t.Kind == Pointer || t.Kind == Slice
}

// IsInteger reports whether t is a sized integer type (excludes the
// untyped-integer literal type — see IsAnyInteger).
func (t *Type) IsInteger() bool {
	return t.Kind == Integer && !t.IntegerUntyped
}

// IsAnyInteger reports whether t is a sized or untyped integer type.
func (t *Type) IsAnyInteger() bool {
	return t.Kind == Integer
}

// IsUnsignedInteger reports whether t is a sized unsigned integer type.
func (t *Type) IsUnsignedInteger() bool {
	return t.IsInteger() && t.Unsigned
}

// IsSignedInteger reports whether t is a sized signed integer type.
func (t *Type) IsSignedInteger() bool {
	return t.IsInteger() && !t.Unsigned
}

// IsUnsized reports whether values of t have no fixed byte layout.
func (t *Type) IsUnsized() bool {
	return t.Size == UnsizedSize
}

// CanCompareEquality reports whether t supports == and != (§4.C).
func (t *Type) CanCompareEquality() bool {
	switch t.Kind {
	case Bool, Byte, Integer, Function, Pointer:
		return true
	default:
		return false
	}
}

// CanCompareOrder reports whether t supports <, <=, >, >= (§4.C).
func (t *Type) CanCompareOrder() bool {
	switch t.Kind {
	case Bool, Byte, Integer, Pointer:
		return true
	default:
		return false
	}
}

func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	return string(*t.Name)
}

// ByteSize implements value.Type, letting package value size and serialize
// Values without importing package symbol (which would otherwise cycle back
// through Symbol's Value fields).
func (t *Type) ByteSize() int { return t.Size }

// Registry constructs and canonicalizes the front-end's compound types
// (component C). All compound-type construction goes through its unique*
// builders, which check the name→Type table first (§3.2's canonicalization
// invariant), mirroring the "look up existing list for structural match,
// else append and register" idiom of gapil/resolver/type.go's
// getPointerType/getSliceType/getStaticArrayType.
type Registry struct {
	intern *intern.Pool
	byName map[string]*Type

	Void     *Type
	Bool     *Type
	Byte     *Type
	Untyped  *Type // untyped-integer literal type

	integers map[string]*Type // "u8", "s8", ... -> Type
}

// NewRegistry constructs a Registry with the fixed primitive and integer
// types already registered (§4.C).
func NewRegistry(pool *intern.Pool) *Registry {
	r := &Registry{intern: pool, byName: map[string]*Type{}, integers: map[string]*Type{}}
	r.Void = r.primitive(Void, "void", UnsizedSize, 1)
	r.Bool = r.primitive(Bool, "bool", 1, 1)
	r.Byte = r.primitive(Byte, "byte", 1, 1)
	r.Untyped = r.register(&Type{Kind: Integer, Name: pool.Intern("integer"), Size: UnsizedSize, Align: 1, IntegerUntyped: true})

	for _, spec := range []struct {
		name     string
		size     int
		unsigned bool
	}{
		{"u8", 1, true}, {"s8", 1, false},
		{"u16", 2, true}, {"s16", 2, false},
		{"u32", 4, true}, {"s32", 4, false},
		{"u64", 8, true}, {"s64", 8, false},
		{"usize", 8, true}, {"ssize", 8, false},
	} {
		width := spec.size * 8
		min, max := bigint.Bounds(width, !spec.unsigned)
		t := r.register(&Type{
			Kind: Integer, Name: pool.Intern(spec.name), Size: spec.size, Align: spec.size,
			Min: min, Max: max, Unsigned: spec.unsigned,
		})
		r.integers[spec.name] = t
	}
	return r
}

func (r *Registry) primitive(kind Kind, name string, size, align int) *Type {
	return r.register(&Type{Kind: kind, Name: r.intern.Intern(name), Size: size, Align: align})
}

// register records t under its canonical name. Callers must have already
// checked that name is absent via Lookup.
func (r *Registry) register(t *Type) *Type {
	r.byName[string(*t.Name)] = t
	return t
}

// Lookup returns the Type already registered under the canonical name, or
// nil if none exists yet.
func (r *Registry) Lookup(name string) *Type {
	return r.byName[name]
}

// Integer returns the fixed integer type named (e.g. "u8", "ssize"), or nil
// if name does not name one of the ten sized integer kinds.
func (r *Registry) Integer(name string) *Type {
	return r.integers[name]
}

// UniquePointer returns the canonical *base type, constructing and
// registering it the first time it's requested.
func (r *Registry) UniquePointer(base *Type) *Type {
	name := fmt.Sprintf("*%s", base)
	if existing := r.Lookup(name); existing != nil {
		return existing
	}
	return r.register(&Type{Kind: Pointer, Name: r.intern.Intern(name), Size: 8, Align: 8, Base: base})
}

// UniqueSlice returns the canonical []base type.
func (r *Registry) UniqueSlice(base *Type) *Type {
	name := fmt.Sprintf("[]%s", base)
	if existing := r.Lookup(name); existing != nil {
		return existing
	}
	// a slice is a (pointer, count) pair, §3.6.
	return r.register(&Type{Kind: Slice, Name: r.intern.Intern(name), Size: 16, Align: 8, Base: base})
}

// UniqueArray returns the canonical [count]base type.
func (r *Registry) UniqueArray(count int, base *Type) *Type {
	name := fmt.Sprintf("[%d]%s", count, base)
	if existing := r.Lookup(name); existing != nil {
		return existing
	}
	size := UnsizedSize
	if !base.IsUnsized() {
		size = count * base.Size
	}
	return r.register(&Type{Kind: Array, Name: r.intern.Intern(name), Size: size, Align: base.Align, Base: base, Count: count})
}

// UniqueFunction returns the canonical func(params...) ret type.
func (r *Registry) UniqueFunction(params []*Type, ret *Type) *Type {
	name := functionName(ret, params)
	if existing := r.Lookup(name); existing != nil {
		return existing
	}
	return r.register(&Type{Kind: Function, Name: r.intern.Intern(name), Size: 8, Align: 8, Params: params, Return: ret})
}

func functionName(ret *Type, params []*Type) string {
	s := "func("
	for i, p := range params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	s += ")"
	if ret != nil && ret.Kind != Void {
		s += " " + ret.String()
	}
	return s
}

// DeclareStruct pre-declares name as an (initially empty) struct type and
// its member table, per §4.F.1 step 3 — this allows self- and
// cross-referential pointer/slice members to resolve before the struct's
// own field list is complete. It fails (returns nil, false) if name is
// already registered.
func (r *Registry) DeclareStruct(name string, members *Table) (*Type, bool) {
	if r.Lookup(name) != nil {
		return nil, false
	}
	t := r.register(&Type{Kind: Struct, Name: r.intern.Intern(name), Size: UnsizedSize, Align: 1, Members: members})
	return t, true
}

// CompleteStruct finishes a pre-declared struct's field list and
// byte-layout, following natural alignment (§4.F.4). It is an internal
// error to call this twice for the same type (§9: "completing a struct
// twice" is listed as an invariant the front-end itself must never
// violate).
func (t *Type) CompleteStruct(fields []Field) {
	if t.Kind != Struct {
		panic("CompleteStruct called on non-struct type")
	}
	if t.Size != UnsizedSize {
		panic("CompleteStruct called twice")
	}
	offset := 0
	align := 1
	for i := range fields {
		if fields[i].Type.Align > align {
			align = fields[i].Type.Align
		}
		offset = alignUp(offset, fields[i].Type.Align)
		fields[i].Offset = offset
		offset += fields[i].Type.Size
	}
	t.Fields = fields
	t.Size = alignUp(offset, align)
	t.Align = align
}

// Field looks up a struct field by name, returning (field, true) if found.
func (t *Type) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if string(*f.Name) == name {
			return f, true
		}
	}
	return Field{}, false
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return ((n + align - 1) / align) * align
}
