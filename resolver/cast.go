package resolver

import (
	"github.com/sarvex/sunder-lang/bigint"
	"github.com/sarvex/sunder-lang/diag"
	"github.com/sarvex/sunder-lang/symbol"
	"github.com/sarvex/sunder-lang/tir"
)

// anyPointer is the universal pointer type «*any»: a pointer-to-void,
// mirroring the C idiom a shallow cast to it widens any other pointer
// type into (§4.F.7).
func (rv *Resolver) anyPointer() *symbol.Type {
	return rv.ctx.Types.UniquePointer(rv.ctx.Types.Void)
}

// shallowCast implements §4.F.7's four implicit conversions, inserting a
// resolver-generated tir.Cast wherever expr's type differs from target in
// one of those ways; otherwise expr is returned unchanged (a genuine type
// mismatch is left for the caller's own checkAssignable to report).
func (rv *Resolver) shallowCast(expr tir.Expression, target *symbol.Type) tir.Expression {
	if expr == nil || target == nil {
		return expr
	}
	actual := expr.ExpressionType()
	if actual == target {
		return expr
	}

	// untyped integer literal -> a sized integer or byte: §4.F.7 rule 2
	// requires a range-check against target's min/max here (the literal's
	// own declared value, not a later truncating cast-eval), so that e.g.
	// "const N: u8 = 300;" is rejected rather than silently wrapping to 44.
	if actual.Kind == symbol.Integer && actual.IntegerUntyped {
		if target.IsInteger() {
			if lit, ok := expr.(*tir.Integer); ok && !bigint.Fits(lit.Value.Integer, target.Min, target.Max) {
				rv.errorf(lit.AST.Loc(), diag.Range, "literal %s out of range for %s", lit.Value.Integer, target)
			}
			return rv.wrapCast(expr, target)
		}
		if target.Kind == symbol.Byte {
			return rv.wrapCast(expr, target)
		}
	}

	// *T -> *any.
	if actual.Kind == symbol.Pointer && target == rv.anyPointer() {
		return rv.wrapCast(expr, target)
	}

	// func(..., *T, ...) R -> func(..., *any, ...) R.
	if actual.Kind == symbol.Function && target.Kind == symbol.Function && rv.functionShallowCompatible(target, actual) {
		return rv.wrapCast(expr, target)
	}

	return expr
}

func (rv *Resolver) wrapCast(expr tir.Expression, target *symbol.Type) tir.Expression {
	return &tir.Cast{Type: target, Value: expr, Implicit: true}
}

// functionShallowCompatible reports whether actual may be shallow-cast to
// target by widening zero or more *T parameters to *any (§4.F.7).
func (rv *Resolver) functionShallowCompatible(target, actual *symbol.Type) bool {
	if len(target.Params) != len(actual.Params) {
		return false
	}
	if target.Return != actual.Return {
		return false
	}
	any := rv.anyPointer()
	for i := range target.Params {
		if target.Params[i] == actual.Params[i] {
			continue
		}
		if target.Params[i] == any && actual.Params[i].Kind == symbol.Pointer {
			continue
		}
		return false
	}
	return true
}

// checkAssignable raises TypeMismatchError unless actual is exactly
// expected — called after shallowCast has already had its chance to make
// them equal (§4.F.7).
func (rv *Resolver) checkAssignable(loc diag.Location, expected, actual *symbol.Type) {
	if expected != actual {
		rv.errorf(loc, diag.TypeMismatch, "cannot use value of type %s where %s is expected", actual, expected)
	}
}

// checkExplicitCast implements an explicit «Type(Value)» conversion's
// legality (§4.F.6): numeric kinds (bool/byte/integer) convert freely among
// each other, pointers convert to other pointers, and a value may always be
// cast to its own type; anything else is rejected.
func (rv *Resolver) checkExplicitCast(loc diag.Location, target, actual *symbol.Type) {
	if target == actual {
		return
	}
	if isNumericKind(target) && isNumericKind(actual) {
		return
	}
	if target.Kind == symbol.Pointer && actual.Kind == symbol.Pointer {
		return
	}
	rv.errorf(loc, diag.Cast, "cannot cast %s to %s", actual, target)
}

func isNumericKind(t *symbol.Type) bool {
	switch t.Kind {
	case symbol.Bool, symbol.Byte, symbol.Integer:
		return true
	default:
		return false
	}
}
