// Package eval implements the front-end's compile-time evaluator
// (component G, §4.G): a tree-walking interpreter over tir.Expression with
// two entry points, Rvalue and Lvalue, used by the resolver to fold
// constant expressions, global initializers, and array-count expressions.
//
// gapid's DSL has no compile-time evaluator of its own — constants are
// pre-folded Go literals by the time they reach semantic.Value — so this
// package is built directly against the front-end's §4.G contract, with
// exact arithmetic and bit-array widening semantics taken from
// original_source/eval.c (eval_rvalue/eval_lvalue and the
// bigint_to_bitarr/bitarr_to_bigint helpers, now bigint.ToBitArray /
// bigint.FromBitArray).
package eval

import (
	"github.com/sarvex/sunder-lang/bigint"
	"github.com/sarvex/sunder-lang/diag"
	"github.com/sarvex/sunder-lang/symbol"
	"github.com/sarvex/sunder-lang/tir"
	"github.com/sarvex/sunder-lang/value"
)

// Evaluator folds tir.Expression trees to compile-time Values. Errs
// accumulates the single fatal diagnostic per §7's stop-at-first-error
// policy; callers defer diag.Recover around the top-level Rvalue/Lvalue
// call.
type Evaluator struct {
	Errs *diag.List
}

// New returns an Evaluator reporting into errs.
func New(errs *diag.List) *Evaluator {
	return &Evaluator{Errs: errs}
}

func (e *Evaluator) fail(kind diag.Kind, loc diag.Location, msg string, args ...interface{}) *value.Value {
	diag.Errorf(e.Errs, kind, loc, msg, args...)
	return nil // unreachable: Errorf never returns
}

// Rvalue folds expr to its compile-time value.
func (e *Evaluator) Rvalue(expr tir.Expression) *value.Value {
	switch n := expr.(type) {
	case *tir.Identifier:
		switch sym := n.Symbol.(type) {
		case *symbol.Constant:
			return sym.Value
		case *symbol.Function:
			return value.NewFunction(n.Type, sym)
		default:
			return e.fail(diag.NotConstant, diag.Location{}, "constant expression contains a non-constant identifier %q", n.AST.Name)
		}
	case *tir.Boolean:
		return value.NewBool(n.Type, n.Value)
	case *tir.Integer:
		return n.Value
	case *tir.Bytes:
		byteType := n.Type.Base // n.Type is []byte; Base is byte
		elems := make([]*value.Value, len(n.Data))
		for i, b := range n.Data {
			elems[i] = value.NewByte(byteType, b)
		}
		backing := value.NewArray(n.Type, elems)
		return value.NewSlice(n.Type, backing, n.Count)
	case *tir.LiteralArray:
		elems := make([]*value.Value, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = e.Rvalue(el)
		}
		return value.NewArray(n.Type, elems)
	case *tir.LiteralSlice:
		elems := make([]*value.Value, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = e.Rvalue(el)
		}
		backing := value.NewArray(n.Type, elems)
		return value.NewSlice(n.Type, backing, len(elems))
	case *tir.Cast:
		return e.cast(n)
	case *tir.Index:
		return e.index(n)
	case *tir.Slice:
		return e.slice(n)
	case *tir.Sizeof:
		return value.NewInteger(n.Type, bigint.FromInt64(int64(n.Of.Size)))
	case *tir.Alignof:
		return value.NewInteger(n.Type, bigint.FromInt64(int64(n.Of.Align)))
	case *tir.Unary:
		return e.unary(n)
	case *tir.Binary:
		return e.binary(n)
	case *tir.Call, *tir.Syscall:
		return e.fail(diag.NotConstant, diag.Location{}, "constant expression contains a call")
	default:
		return e.fail(diag.NotConstant, diag.Location{}, "expression is not a constant")
	}
}

// Lvalue evaluates expr for its storage address, returning a pointer-kind
// Value whose address is Static (§4.G: "the latter returns a Value of
// pointer kind whose address is Static").
func (e *Evaluator) Lvalue(expr tir.Expression) *value.Value {
	switch n := expr.(type) {
	case *tir.Identifier:
		v, ok := n.Symbol.(*symbol.Variable)
		if !ok {
			return e.fail(diag.NotConstant, diag.Location{}, "constant expression takes the address of a non-static symbol %q", n.AST.Name)
		}
		if v.Address.Kind != symbol.AddressStatic {
			return e.fail(diag.NotConstant, diag.Location{}, "constant expression takes the address of a non-static variable %q", n.AST.Name)
		}
		return value.NewStaticPointer(nil, v.Address.StaticName, v.Address.StaticOffset)
	case *tir.Unary:
		if n.Operator == "*" {
			return e.Rvalue(n.Operand)
		}
		return e.fail(diag.NotConstant, diag.Location{}, "expression is not addressable at compile time")
	default:
		return e.fail(diag.NotConstant, diag.Location{}, "expression is not addressable at compile time")
	}
}

func (e *Evaluator) cast(n *tir.Cast) *value.Value {
	if n.Type.Kind == symbol.Pointer || (n.Value != nil && n.Value.ExpressionType().Kind == symbol.Pointer) {
		return e.fail(diag.Cast, diag.Location{}, "constant expression cannot cast to or from a pointer type")
	}
	from := e.Rvalue(n.Value)
	if from == nil {
		return nil
	}
	if !n.Type.IsAnyInteger() {
		clone := from.Clone()
		clone.Type = n.Type
		return clone
	}
	srcType := n.Value.ExpressionType()
	width := srcType.Size * 8
	if srcType.IsUnsized() {
		width = 64
	}
	bits, ok := from.Integer.ToBitArray(width, !srcType.Unsigned)
	if !ok {
		return e.fail(diag.Range, diag.Location{}, "cast source does not fit its own declared width")
	}
	widened := extend(bits, n.Type.Size*8, !srcType.Unsigned)
	result := bigint.FromBitArray(widened, !n.Type.Unsigned)
	if !bigint.Fits(result, n.Type.Min, n.Type.Max) {
		return e.fail(diag.Range, diag.Location{}, "cast result %s out of range for %s", result, n.Type)
	}
	return value.NewInteger(n.Type, result)
}

// extend widens or truncates a little-endian bit array to newWidth bits,
// sign- or zero-extending per signed, mirroring eval.c's inline widening
// loop ahead of bitarr_to_bigint.
func extend(bits []bool, newWidth int, signed bool) []bool {
	out := make([]bool, newWidth)
	copy(out, bits)
	if newWidth <= len(bits) {
		return out[:newWidth]
	}
	fill := false
	if signed && len(bits) > 0 {
		fill = bits[len(bits)-1]
	}
	for i := len(bits); i < newWidth; i++ {
		out[i] = fill
	}
	return out
}

func (e *Evaluator) index(n *tir.Index) *value.Value {
	base := e.Rvalue(n.Base)
	if base == nil {
		return nil
	}
	if base.Kind != value.Array {
		return e.fail(diag.NotConstant, diag.Location{}, "constant expression indexes a slice, which is undereferenceable at compile time")
	}
	idx := e.Rvalue(n.Idx)
	if idx == nil {
		return nil
	}
	i, ok := idx.Integer.ToInt64()
	if !ok || i < 0 || int(i) >= len(base.Elements) {
		return e.fail(diag.Range, diag.Location{}, "array index %s out of range", idx.Integer)
	}
	return base.Elements[i].Clone()
}

func (e *Evaluator) slice(n *tir.Slice) *value.Value {
	base := e.Rvalue(n.Base)
	if base == nil {
		return nil
	}
	if base.Kind != value.Array {
		return e.fail(diag.NotConstant, diag.Location{}, "constant expression slices a slice, which is undereferenceable at compile time")
	}
	low := int64(0)
	if n.Low != nil {
		lv := e.Rvalue(n.Low)
		if lv == nil {
			return nil
		}
		low, _ = lv.Integer.ToInt64()
	}
	high := int64(len(base.Elements))
	if n.High != nil {
		hv := e.Rvalue(n.High)
		if hv == nil {
			return nil
		}
		high, _ = hv.Integer.ToInt64()
	}
	if low < 0 || high > int64(len(base.Elements)) || low > high {
		return e.fail(diag.Range, diag.Location{}, "slice bounds [%d:%d] out of range for array of length %d", low, high, len(base.Elements))
	}
	return value.NewSlice(n.Type, base, int(high-low))
}

func (e *Evaluator) unary(n *tir.Unary) *value.Value {
	switch n.Operator {
	case "not":
		v := e.Rvalue(n.Operand)
		if v == nil {
			return nil
		}
		return value.NewBool(n.Type, !v.Bool)
	case "-":
		v := e.Rvalue(n.Operand)
		if v == nil {
			return nil
		}
		result := bigint.New().Neg(v.Integer)
		if !bigint.Fits(result, n.Type.Min, n.Type.Max) {
			return e.fail(diag.Range, diag.Location{}, "negation of %s out of range for %s", v.Integer, n.Type)
		}
		return value.NewInteger(n.Type, result)
	case "~":
		v := e.Rvalue(n.Operand)
		if v == nil {
			return nil
		}
		width := n.Type.Size * 8
		bits, ok := v.Integer.ToBitArray(width, !n.Type.Unsigned)
		if !ok {
			return e.fail(diag.Range, diag.Location{}, "bitwise-not operand does not fit its type's width")
		}
		for i := range bits {
			bits[i] = !bits[i]
		}
		return value.NewInteger(n.Type, bigint.FromBitArray(bits, !n.Type.Unsigned))
	case "&":
		return e.Lvalue(n.Operand)
	case "countof":
		v := e.Rvalue(n.Operand)
		if v == nil {
			return nil
		}
		switch v.Kind {
		case value.Array:
			return value.NewInteger(n.Type, bigint.FromInt64(int64(len(v.Elements))))
		case value.Slice:
			return value.NewInteger(n.Type, v.Elements[1].Integer.Clone())
		default:
			return e.fail(diag.TypeMismatch, diag.Location{}, "countof applied to a non-array, non-slice value")
		}
	default:
		return e.fail(diag.Internal, diag.Location{}, "unrecognized unary operator %q", n.Operator)
	}
}

func (e *Evaluator) binary(n *tir.Binary) *value.Value {
	switch n.Operator {
	case "and":
		l := e.Rvalue(n.Left)
		if l == nil {
			return nil
		}
		if !l.Bool {
			return value.NewBool(n.Type, false)
		}
		r := e.Rvalue(n.Right)
		if r == nil {
			return nil
		}
		return value.NewBool(n.Type, r.Bool)
	case "or":
		l := e.Rvalue(n.Left)
		if l == nil {
			return nil
		}
		if l.Bool {
			return value.NewBool(n.Type, true)
		}
		r := e.Rvalue(n.Right)
		if r == nil {
			return nil
		}
		return value.NewBool(n.Type, r.Bool)
	case "==", "!=", "<", "<=", ">", ">=":
		return e.compare(n)
	case "&", "|", "^":
		return e.bitwise(n)
	case "+", "-", "*", "/", "%":
		return e.arith(n)
	default:
		return e.fail(diag.Internal, diag.Location{}, "unrecognized binary operator %q", n.Operator)
	}
}

func (e *Evaluator) compare(n *tir.Binary) *value.Value {
	l := e.Rvalue(n.Left)
	r := e.Rvalue(n.Right)
	if l == nil || r == nil {
		return nil
	}
	switch n.Operator {
	case "==":
		return value.NewBool(n.Type, value.Eq(l, r))
	case "!=":
		return value.NewBool(n.Type, !value.Eq(l, r))
	case "<":
		return value.NewBool(n.Type, value.Lt(l, r))
	case "<=":
		return value.NewBool(n.Type, value.Lt(l, r) || value.Eq(l, r))
	case ">":
		return value.NewBool(n.Type, value.Gt(l, r))
	default: // ">="
		return value.NewBool(n.Type, value.Gt(l, r) || value.Eq(l, r))
	}
}

func (e *Evaluator) bitwise(n *tir.Binary) *value.Value {
	l := e.Rvalue(n.Left)
	r := e.Rvalue(n.Right)
	if l == nil || r == nil {
		return nil
	}
	width := n.Type.Size * 8
	signed := !n.Type.Unsigned
	lb, ok := l.Integer.ToBitArray(width, signed)
	if !ok {
		return e.fail(diag.Range, diag.Location{}, "bitwise operand %s does not fit %s", l.Integer, n.Type)
	}
	rb, ok := r.Integer.ToBitArray(width, signed)
	if !ok {
		return e.fail(diag.Range, diag.Location{}, "bitwise operand %s does not fit %s", r.Integer, n.Type)
	}
	res := make([]bool, width)
	for i := 0; i < width; i++ {
		switch n.Operator {
		case "&":
			res[i] = lb[i] && rb[i]
		case "|":
			res[i] = lb[i] || rb[i]
		case "^":
			res[i] = lb[i] != rb[i]
		}
	}
	return value.NewInteger(n.Type, bigint.FromBitArray(res, signed))
}

func (e *Evaluator) arith(n *tir.Binary) *value.Value {
	l := e.Rvalue(n.Left)
	r := e.Rvalue(n.Right)
	if l == nil || r == nil {
		return nil
	}
	var result *bigint.Int
	switch n.Operator {
	case "+":
		result = bigint.New().Add(l.Integer, r.Integer)
	case "-":
		result = bigint.New().Sub(l.Integer, r.Integer)
	case "*":
		result = bigint.New().Mul(l.Integer, r.Integer)
	case "/", "%":
		if r.Integer.Sign() == 0 {
			return e.fail(diag.DivideByZero, diag.Location{}, "division of %s by zero", l.Integer)
		}
		quo, rem := bigint.DivRem(bigint.New(), bigint.New(), l.Integer, r.Integer)
		if n.Operator == "/" {
			result = quo
		} else {
			result = rem
		}
	}
	if !bigint.Fits(result, n.Type.Min, n.Type.Max) {
		return e.fail(diag.Range, diag.Location{}, "%s %s %s = %s out of range for %s", l.Integer, n.Operator, r.Integer, result, n.Type)
	}
	return value.NewInteger(n.Type, result)
}
