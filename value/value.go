// Package value implements the front-end's compile-time Value sum type
// (component E): one variant per type kind, with deep clone, equality and
// ordering defined only where the underlying type supports the comparison,
// and little-endian byte serialization.
//
// Grounded on gapil/semantic/expression.go's per-kind Value wrappers
// (Uint8Value, BoolValue, ...), generalized into one closed sum type per
// DESIGN NOTES §9 ("every kind+data pattern... must be modeled as a closed
// sum type; pattern matching replaces the original switch-on-tag").
package value

import (
	"fmt"

	"github.com/sarvex/sunder-lang/bigint"
)

// Type is the minimal contract a Value needs from a type: its name (for
// diagnostics) and byte size (for serialization). package symbol's *Type
// satisfies this without package value importing package symbol, which
// would otherwise cycle back through Symbol's Value-typed fields.
type Type interface {
	String() string
	ByteSize() int
}

// Kind tags a Value's variant, matching the type kinds of §3.2.
type Kind int

const (
	Bool Kind = iota
	Byte
	Integer
	Function  // a handle referring to the function's body
	Pointer   // an address: either Static(name, offset) or a slice base
	Array     // ordered list of element Values
	Slice     // pointer + count, modeled as a synthetic two-field Array
)

// Value is the front-end's compile-time value (§3.6). Exactly one payload
// field is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Type Type

	Bool    bool
	Byte    byte
	Integer *bigint.Int

	// Function: an opaque handle to the resolved function body, set by the
	// resolver (typically a *tir.Function) and otherwise untouched by this
	// package — package value has no reason to depend on package tir.
	Function interface{}

	// Pointer.
	PointerStaticName   string
	PointerStaticOffset int

	// Array / Slice.
	Elements []*Value
}

func NewBool(t Type, b bool) *Value    { return &Value{Kind: Bool, Type: t, Bool: b} }
func NewByte(t Type, b byte) *Value    { return &Value{Kind: Byte, Type: t, Byte: b} }
func NewInteger(t Type, i *bigint.Int) *Value {
	return &Value{Kind: Integer, Type: t, Integer: i}
}
func NewFunction(t Type, handle interface{}) *Value {
	return &Value{Kind: Function, Type: t, Function: handle}
}
func NewStaticPointer(t Type, name string, offset int) *Value {
	return &Value{Kind: Pointer, Type: t, PointerStaticName: name, PointerStaticOffset: offset}
}
func NewArray(t Type, elements []*Value) *Value {
	return &Value{Kind: Array, Type: t, Elements: elements}
}
func NewSlice(t Type, base *Value, count int) *Value {
	return &Value{Kind: Slice, Type: t, Elements: []*Value{base, NewInteger(nil, bigintFromInt(count))}}
}

func bigintFromInt(n int) *bigint.Int { return bigint.FromInt64(int64(n)) }

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	clone := *v
	if v.Integer != nil {
		clone.Integer = v.Integer.Clone()
	}
	if v.Elements != nil {
		clone.Elements = make([]*Value, len(v.Elements))
		for i, e := range v.Elements {
			clone.Elements[i] = e.Clone()
		}
	}
	return &clone
}

// comparable reports whether a and b are the same Kind and so may be
// compared with Eq/Lt/Gt. Comparing across kinds is a programmer error
// (§4.E: "violation is a programmer error, not a user-visible diagnostic"),
// so callers are expected to have already type-checked both operands.
func comparable(a, b *Value) {
	if a.Kind != b.Kind {
		panic(fmt.Sprintf("value: cannot compare %v and %v", a.Kind, b.Kind))
	}
}

// Eq reports whether a and b are equal. Defined for bool, byte, integer,
// function handle, and pointer (by static name + offset).
func Eq(a, b *Value) bool {
	comparable(a, b)
	switch a.Kind {
	case Bool:
		return a.Bool == b.Bool
	case Byte:
		return a.Byte == b.Byte
	case Integer:
		return bigint.Cmp(a.Integer, b.Integer) == 0
	case Function:
		return a.Function == b.Function
	case Pointer:
		return a.PointerStaticName == b.PointerStaticName && a.PointerStaticOffset == b.PointerStaticOffset
	default:
		panic(fmt.Sprintf("value: %v has no defined equality", a.Kind))
	}
}

// Lt reports whether a < b. Defined for bool, byte, integer, and pointer.
func Lt(a, b *Value) bool {
	comparable(a, b)
	switch a.Kind {
	case Bool:
		return !a.Bool && b.Bool
	case Byte:
		return a.Byte < b.Byte
	case Integer:
		return bigint.Cmp(a.Integer, b.Integer) < 0
	case Pointer:
		return a.PointerStaticName < b.PointerStaticName ||
			(a.PointerStaticName == b.PointerStaticName && a.PointerStaticOffset < b.PointerStaticOffset)
	default:
		panic(fmt.Sprintf("value: %v has no defined order", a.Kind))
	}
}

// Gt reports whether a > b.
func Gt(a, b *Value) bool {
	return Lt(b, a)
}

// ToBytes serializes v into a little-endian byte buffer sized by its type.
// It fails (ok=false) for function, pointer, and slice kinds, for which no
// compile-time byte representation exists (§4.E).
func (v *Value) ToBytes() (bytes []byte, ok bool) {
	switch v.Kind {
	case Bool:
		if v.Bool {
			return []byte{1}, true
		}
		return []byte{0}, true
	case Byte:
		return []byte{v.Byte}, true
	case Integer:
		width := v.Type.ByteSize()
		signed := v.Integer.Sign() < 0
		bits, ok := v.Integer.ToBitArray(width*8, signed)
		if !ok {
			return nil, false
		}
		buf := make([]byte, width)
		for byteIdx := 0; byteIdx < width; byteIdx++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				if bits[byteIdx*8+bit] {
					b |= 1 << uint(bit)
				}
			}
			buf[byteIdx] = b
		}
		return buf, true
	case Array:
		buf := make([]byte, 0, v.Type.ByteSize())
		for _, e := range v.Elements {
			eb, ok := e.ToBytes()
			if !ok {
				return nil, false
			}
			buf = append(buf, eb...)
		}
		return buf, true
	default:
		return nil, false
	}
}
