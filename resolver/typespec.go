package resolver

import (
	"github.com/sarvex/sunder-lang/cst"
	"github.com/sarvex/sunder-lang/diag"
	"github.com/sarvex/sunder-lang/symbol"
)

// resolveTypespec resolves a CST type reference to its canonical *symbol.Type
// (§4.C, §4.F.4's "resolve typespec" step shared by every declaration kind).
func (rv *Resolver) resolveTypespec(ts cst.Typespec) *symbol.Type {
	switch n := ts.(type) {
	case *cst.NamedType:
		return rv.resolveNamedType(n)
	case *cst.PointerType:
		return rv.ctx.Types.UniquePointer(rv.resolveTypespec(n.Base))
	case *cst.SliceType:
		return rv.ctx.Types.UniqueSlice(rv.resolveTypespec(n.Base))
	case *cst.ArrayType:
		count := rv.constArrayCount(n.Count)
		return rv.ctx.Types.UniqueArray(count, rv.resolveTypespec(n.Base))
	case *cst.FunctionType:
		params := make([]*symbol.Type, len(n.Params))
		for i, p := range n.Params {
			params[i] = rv.resolveTypespec(p)
		}
		var ret *symbol.Type
		if n.Return != nil {
			ret = rv.resolveTypespec(n.Return)
		}
		return rv.ctx.Types.UniqueFunction(params, ret)
	default:
		rv.icef(ts.Loc(), "unrecognized typespec node %T", ts)
		return rv.ctx.Types.Void
	}
}

// resolveNamedType looks up a bare or templated type name. A non-empty
// Arguments list triggers template instantiation (§4.F.3).
func (rv *Resolver) resolveNamedType(n *cst.NamedType) *symbol.Type {
	if len(n.Arguments) > 0 {
		return rv.instantiateTemplateType(n)
	}
	if builtin := rv.builtinType(n.Name); builtin != nil {
		return builtin
	}
	sym := rv.lookup(n.Loc(), n.Name)
	if sym == nil {
		return rv.ctx.Types.Void
	}
	ts, ok := sym.(*symbol.TypeSymbol)
	if !ok {
		rv.errorf(n.Loc(), diag.TypeMismatch, "%q does not name a type", n.Name)
		return rv.ctx.Types.Void
	}
	return ts.Type
}

// builtinType resolves the fixed primitive and integer type names (§4.C)
// without going through the symbol table, mirroring gapid's BuiltinTypes
// fast path (generalized here into the already-seeded compile.Context
// Registry rather than a package-level map).
func (rv *Resolver) builtinType(name string) *symbol.Type {
	switch name {
	case "void":
		return rv.ctx.Types.Void
	case "bool":
		return rv.ctx.Types.Bool
	case "byte":
		return rv.ctx.Types.Byte
	default:
		return rv.ctx.Types.Integer(name)
	}
}

// constArrayCount resolves an array typespec's count expression to a
// compile-time constant (§4.F.4, §4.G).
func (rv *Resolver) constArrayCount(count cst.Expr) int {
	expr := rv.resolveExpr(count)
	v := rv.eval().Rvalue(expr)
	if v == nil {
		return 0
	}
	n, ok := v.Integer.ToInt64()
	if !ok || n < 0 {
		rv.errorf(count.Loc(), diag.Range, "array count must be a non-negative constant")
		return 0
	}
	return int(n)
}
