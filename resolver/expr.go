package resolver

import (
	"github.com/sarvex/sunder-lang/bigint"
	"github.com/sarvex/sunder-lang/cst"
	"github.com/sarvex/sunder-lang/diag"
	"github.com/sarvex/sunder-lang/staticsym"
	"github.com/sarvex/sunder-lang/symbol"
	"github.com/sarvex/sunder-lang/tir"
	"github.com/sarvex/sunder-lang/value"
)

// resolveExpr resolves a CST expression to its tir.Expression, binding
// every identifier to a Symbol and inserting implicit shallow casts where
// §4.F.7 calls for them (§4.F.6).
func (rv *Resolver) resolveExpr(e cst.Expr) tir.Expression {
	switch n := e.(type) {
	case *cst.Identifier:
		return rv.resolveIdentifier(n)
	case *cst.IntegerLiteral:
		return rv.resolveIntegerLiteral(n)
	case *cst.BytesLiteral:
		return rv.resolveBytesLiteral(n)
	case *cst.BoolLiteral:
		return &tir.Boolean{AST: n, Type: rv.ctx.Types.Bool, Value: n.Value}
	case *cst.ListLiteral:
		return rv.resolveListLiteral(n)
	case *cst.StructLiteral:
		return rv.resolveStructLiteral(n)
	case *cst.Cast:
		return rv.resolveCast(n)
	case *cst.Syscall:
		return rv.resolveSyscall(n)
	case *cst.Call:
		return rv.resolveCall(n)
	case *cst.Index:
		return rv.resolveIndex(n)
	case *cst.Slice:
		return rv.resolveSlice(n)
	case *cst.Sizeof:
		of := rv.resolveTypespec(n.Type)
		if of.IsUnsized() {
			rv.errorf(n.Loc(), diag.Unsized, "sizeof applied to unsized type %s", of)
		}
		return &tir.Sizeof{AST: n, Type: rv.ctx.Types.Integer("usize"), Of: of}
	case *cst.Alignof:
		of := rv.resolveTypespec(n.Type)
		if of.IsUnsized() {
			rv.errorf(n.Loc(), diag.Unsized, "alignof applied to unsized type %s", of)
		}
		return &tir.Alignof{AST: n, Type: rv.ctx.Types.Integer("usize"), Of: of}
	case *cst.Unary:
		return rv.resolveUnary(n)
	case *cst.Binary:
		return rv.resolveBinary(n)
	case *cst.Member:
		return rv.resolveMember(n)
	case *cst.Uninit:
		return rv.resolveExprWithHint(n, nil)
	case *cst.Null:
		return rv.resolveExprWithHint(n, nil)
	default:
		rv.icef(e.Loc(), "unrecognized expression node %T", e)
		return nil
	}
}

// resolveExprWithHint resolves e the way resolveExpr does, except that
// Uninit and Null — which have no type of their own — take their Type from
// hint, and any other expression is shallow-cast toward hint when a hint is
// given (§4.F.6-7). Pass a nil hint where no contextual type applies.
func (rv *Resolver) resolveExprWithHint(e cst.Expr, hint *symbol.Type) tir.Expression {
	switch n := e.(type) {
	case *cst.Uninit:
		if hint == nil {
			rv.errorf(n.Loc(), diag.TypeMismatch, "uninit has no inferrable type in this context")
		}
		return &tir.Uninit{AST: n, Type: hint}
	case *cst.Null:
		if hint == nil || hint.Kind != symbol.Pointer {
			rv.errorf(n.Loc(), diag.TypeMismatch, "null requires a pointer-typed context")
		}
		return &tir.NullPointer{AST: n, Type: hint}
	default:
		expr := rv.resolveExpr(e)
		if hint != nil {
			expr = rv.shallowCast(expr, hint)
		}
		return expr
	}
}

func (rv *Resolver) resolveIdentifier(n *cst.Identifier) tir.Expression {
	if len(n.Arguments) > 0 {
		rv.errorf(n.Loc(), diag.Template, "%q requires a call to instantiate", n.Name)
		return nil
	}
	sym := rv.lookup(n.Loc(), n.Name)
	return rv.symbolExpr(n.Loc(), n, sym)
}

func (rv *Resolver) symbolExpr(loc diag.Location, ast *cst.Identifier, sym symbol.Symbol) tir.Expression {
	switch s := sym.(type) {
	case *symbol.Variable:
		return &tir.Identifier{AST: ast, Symbol: s, Type: s.Type}
	case *symbol.Constant:
		return &tir.Identifier{AST: ast, Symbol: s, Type: s.Type}
	case *symbol.Function:
		return &tir.Identifier{AST: ast, Symbol: s, Type: s.Type}
	default:
		rv.errorf(loc, diag.TypeMismatch, "%q does not name a value", ast.Name)
		return nil
	}
}

// resolveIntegerLiteral parses and range-checks a literal against its
// suffix's type (or the untyped default), per §4.B/§4.F.6.
func (rv *Resolver) resolveIntegerLiteral(n *cst.IntegerLiteral) tir.Expression {
	return rv.integerLiteral(n, false)
}

// integerLiteral implements §4.F.6's integer-literal resolution: resolve
// the suffix to a type (untyped when absent), then range-check against
// that type's min/max. negate folds a sign into the digit value first, so
// that resolveUnary can fold Unary("-") directly over an IntegerLiteral
// before range-checking (making e.g. -128s8 legal, rather than range-
// checking the literal's unsigned magnitude 128 against s8's [-128,127]).
func (rv *Resolver) integerLiteral(n *cst.IntegerLiteral, negate bool) tir.Expression {
	i, err := bigint.FromText(n.Digits)
	if err != nil {
		rv.errorf(n.Loc(), diag.SyntaxError, "%s", err)
		return nil
	}
	if negate {
		i = bigint.New().Neg(i)
	}
	t := rv.ctx.Types.Untyped
	if n.Suffix != "" {
		if builtin := rv.ctx.Types.Integer(n.Suffix); builtin != nil {
			t = builtin
		} else {
			rv.errorf(n.Loc(), diag.TypeMismatch, "%q is not a valid integer suffix", n.Suffix)
		}
	}
	if !t.IntegerUntyped && !bigint.Fits(i, t.Min, t.Max) {
		rv.errorf(n.Loc(), diag.Range, "literal %s out of range for %s", i, t)
	}
	return &tir.Integer{AST: n, Type: t, Value: value.NewInteger(t, i)}
}

// resolveBytesLiteral implements §4.F.6's bytes-literal handling: the data
// (plus a trailing NUL) is registered as a hidden static array constant,
// and the expression names that storage as a []byte slice.
func (rv *Resolver) resolveBytesLiteral(n *cst.BytesLiteral) tir.Expression {
	withNUL := append(append([]byte{}, n.Value...), 0)
	arrayType := rv.ctx.Types.UniqueArray(len(withNUL), rv.ctx.Types.Byte)
	elems := make([]*value.Value, len(withNUL))
	for i, b := range withNUL {
		elems[i] = value.NewByte(rv.ctx.Types.Byte, b)
	}
	arrayValue := value.NewArray(arrayType, elems)

	mangled := rv.ctx.Static.Normalize(rv.staticPrefix, "str")
	rv.ctx.Static.Register(staticsym.Entry{Name: mangled, Type: arrayType, Value: arrayValue})

	sliceType := rv.ctx.Types.UniqueSlice(rv.ctx.Types.Byte)
	return &tir.Bytes{AST: n, Type: sliceType, StaticName: mangled, Count: len(n.Value), Data: n.Value}
}

func (rv *Resolver) resolveListLiteral(n *cst.ListLiteral) tir.Expression {
	t := rv.resolveTypespec(n.Type)
	switch t.Kind {
	case symbol.Array:
		elems := make([]tir.Expression, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = rv.resolveExprWithHint(el, t.Base)
		}
		if n.Ellipsis && len(elems) > 0 {
			last := elems[len(elems)-1]
			for len(elems) < t.Count {
				elems = append(elems, last)
			}
		}
		if len(elems) != t.Count {
			rv.errorf(n.Loc(), diag.Range, "array literal has %d element(s), expected %d", len(elems), t.Count)
		}
		return &tir.LiteralArray{AST: n, Type: t, Elements: elems}
	case symbol.Slice:
		elems := make([]tir.Expression, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = rv.resolveExprWithHint(el, t.Base)
		}
		return &tir.LiteralSlice{AST: n, Type: t, Elements: elems}
	default:
		rv.errorf(n.Loc(), diag.TypeMismatch, "%s is not an array or slice type", t)
		return nil
	}
}

func (rv *Resolver) resolveStructLiteral(n *cst.StructLiteral) tir.Expression {
	t := rv.resolveTypespec(n.Type)
	if t.Kind != symbol.Struct {
		rv.errorf(n.Loc(), diag.TypeMismatch, "%s is not a struct type", t)
		return nil
	}
	byName := map[string]cst.Expr{}
	for _, fi := range n.Fields {
		byName[fi.Name] = fi.Value
	}
	fields := make([]tir.Expression, len(t.Fields))
	for i, f := range t.Fields {
		name := string(*f.Name)
		src, ok := byName[name]
		if !ok {
			rv.errorf(n.Loc(), diag.TypeMismatch, "missing initializer for field %q", name)
			continue
		}
		delete(byName, name)
		fields[i] = rv.resolveExprWithHint(src, f.Type)
	}
	for extra := range byName {
		rv.errorf(n.Loc(), diag.TypeMismatch, "%s has no field %q", t, extra)
	}
	return &tir.Struct{AST: n, Type: t, Fields: fields}
}

func (rv *Resolver) resolveCast(n *cst.Cast) tir.Expression {
	t := rv.resolveTypespec(n.Type)
	v := rv.resolveExpr(n.Value)
	rv.checkExplicitCast(n.Loc(), t, v.ExpressionType())
	return &tir.Cast{AST: n, Type: t, Value: v}
}

func (rv *Resolver) resolveSyscall(n *cst.Syscall) tir.Expression {
	args := make([]tir.Expression, len(n.Args))
	for i, a := range n.Args {
		args[i] = rv.resolveExpr(a)
	}
	return &tir.Syscall{AST: n, Type: rv.ctx.Types.Integer("usize"), Args: args}
}

func (rv *Resolver) resolveIndex(n *cst.Index) tir.Expression {
	base := rv.resolveExpr(n.Base)
	bt := base.ExpressionType()
	if bt.Kind != symbol.Array && bt.Kind != symbol.Slice {
		rv.errorf(n.Loc(), diag.TypeMismatch, "%s is not indexable", bt)
		return nil
	}
	idx := rv.resolveExprWithHint(n.Idx, rv.ctx.Types.Integer("usize"))
	if !idx.ExpressionType().IsAnyInteger() {
		rv.errorf(n.Loc(), diag.TypeMismatch, "index must be an integer")
	}
	return &tir.Index{AST: n, Type: bt.Base, Base: base, Idx: idx}
}

func (rv *Resolver) resolveSlice(n *cst.Slice) tir.Expression {
	base := rv.resolveExpr(n.Base)
	bt := base.ExpressionType()
	if bt.Kind != symbol.Array && bt.Kind != symbol.Slice {
		rv.errorf(n.Loc(), diag.TypeMismatch, "%s is not sliceable", bt)
		return nil
	}
	usize := rv.ctx.Types.Integer("usize")
	var low, high tir.Expression
	if n.Low != nil {
		low = rv.resolveExprWithHint(n.Low, usize)
	}
	if n.High != nil {
		high = rv.resolveExprWithHint(n.High, usize)
	}
	return &tir.Slice{AST: n, Type: rv.ctx.Types.UniqueSlice(bt.Base), Base: base, Low: low, High: high}
}

// unaryOperators are the tir-level operator spellings §4.G's evaluator
// switches on; the resolver passes a cst.Unary's Op straight through rather
// than translating, so the lexer/parser collaborator is expected to use
// these same spellings as its token text.
var unaryOperators = map[string]bool{"not": true, "-": true, "~": true, "&": true, "countof": true, "*": true}

func (rv *Resolver) resolveUnary(n *cst.Unary) tir.Expression {
	if !unaryOperators[n.Op] {
		rv.icef(n.Loc(), "unrecognized unary operator %q", n.Op)
		return nil
	}

	// §4.F.6: a "-" applied directly to an Integer literal folds the sign
	// into the literal before range-checking, rather than range-checking
	// the literal's unsigned magnitude and negating afterward.
	if n.Op == "-" {
		if lit, ok := n.Operand.(*cst.IntegerLiteral); ok {
			return rv.integerLiteral(lit, true)
		}
	}

	operand := rv.resolveExpr(n.Operand)
	ot := operand.ExpressionType()

	switch n.Op {
	case "not":
		if ot != rv.ctx.Types.Bool {
			rv.errorf(n.Loc(), diag.TypeMismatch, "%q requires a bool operand", n.Op)
		}
		return &tir.Unary{AST: n, Type: rv.ctx.Types.Bool, Operator: n.Op, Operand: operand}
	case "-":
		if !ot.IsAnyInteger() {
			rv.errorf(n.Loc(), diag.TypeMismatch, "%q requires an integer operand", n.Op)
		}
		return &tir.Unary{AST: n, Type: ot, Operator: n.Op, Operand: operand}
	case "~":
		if !ot.IsInteger() {
			rv.errorf(n.Loc(), diag.TypeMismatch, "%q requires a sized integer operand", n.Op)
		}
		return &tir.Unary{AST: n, Type: ot, Operator: n.Op, Operand: operand}
	case "&":
		if !isLvalue(operand) {
			rv.errorf(n.Loc(), diag.Lvalue, "cannot take the address of a non-lvalue expression")
		}
		return &tir.Unary{AST: n, Type: rv.ctx.Types.UniquePointer(ot), Operator: n.Op, Operand: operand}
	case "countof":
		if ot.Kind != symbol.Array && ot.Kind != symbol.Slice {
			rv.errorf(n.Loc(), diag.TypeMismatch, "countof requires an array or slice operand")
		}
		return &tir.Unary{AST: n, Type: rv.ctx.Types.Integer("usize"), Operator: n.Op, Operand: operand}
	default: // "*"
		if ot.Kind != symbol.Pointer {
			rv.errorf(n.Loc(), diag.TypeMismatch, "cannot dereference non-pointer type %s", ot)
			return nil
		}
		return &tir.Unary{AST: n, Type: ot.Base, Operator: n.Op, Operand: operand}
	}
}

// isLvalue implements §3's "Lvalue-ness is a pure function of the node
// shape": identifiers bound to Variable or Constant, Index of an
// array-typed lvalue or any slice, and Unary(dereference).
func isLvalue(e tir.Expression) bool {
	switch n := e.(type) {
	case *tir.Identifier:
		switch n.Symbol.(type) {
		case *symbol.Variable, *symbol.Constant:
			return true
		default:
			return false
		}
	case *tir.Index:
		if n.Base.ExpressionType().Kind == symbol.Slice {
			return true
		}
		return isLvalue(n.Base)
	case *tir.Unary:
		return n.Operator == "*"
	default:
		return false
	}
}

// reconcileNumeric implements §4.F.7's untyped-literal widening for a
// binary operator's operands: if exactly one side is the untyped-integer
// literal type, it is shallow-cast to the other side's sized type.
func (rv *Resolver) reconcileNumeric(loc diag.Location, l, r tir.Expression) (tir.Expression, tir.Expression, *symbol.Type) {
	lt, rt := l.ExpressionType(), r.ExpressionType()
	if lt == rt {
		return l, r, lt
	}
	if lt.Kind == symbol.Integer && lt.IntegerUntyped && rt.Kind == symbol.Integer {
		return rv.shallowCast(l, rt), r, rt
	}
	if rt.Kind == symbol.Integer && rt.IntegerUntyped && lt.Kind == symbol.Integer {
		return l, rv.shallowCast(r, lt), lt
	}
	rv.errorf(loc, diag.TypeMismatch, "mismatched operand types %s and %s", lt, rt)
	return l, r, lt
}

func (rv *Resolver) resolveBinary(n *cst.Binary) tir.Expression {
	l := rv.resolveExpr(n.Left)
	r := rv.resolveExpr(n.Right)

	switch n.Op {
	case "and", "or":
		if l.ExpressionType() != rv.ctx.Types.Bool || r.ExpressionType() != rv.ctx.Types.Bool {
			rv.errorf(n.Loc(), diag.TypeMismatch, "%q requires bool operands", n.Op)
		}
		return &tir.Binary{AST: n, Type: rv.ctx.Types.Bool, Operator: n.Op, Left: l, Right: r}
	case "==", "!=", "<", "<=", ">", ">=":
		l, r, t := rv.reconcileNumeric(n.Loc(), l, r)
		if n.Op == "==" || n.Op == "!=" {
			if !t.CanCompareEquality() {
				rv.errorf(n.Loc(), diag.TypeMismatch, "%s does not support equality comparison", t)
			}
		} else if !t.CanCompareOrder() {
			rv.errorf(n.Loc(), diag.TypeMismatch, "%s does not support ordered comparison", t)
		}
		return &tir.Binary{AST: n, Type: rv.ctx.Types.Bool, Operator: n.Op, Left: l, Right: r}
	case "&", "|", "^":
		l, r, t := rv.reconcileNumeric(n.Loc(), l, r)
		if !t.IsInteger() {
			rv.errorf(n.Loc(), diag.TypeMismatch, "%q requires sized integer operands", n.Op)
		}
		return &tir.Binary{AST: n, Type: t, Operator: n.Op, Left: l, Right: r}
	case "+", "-", "*", "/", "%":
		l, r, t := rv.reconcileNumeric(n.Loc(), l, r)
		if !t.IsAnyInteger() {
			rv.errorf(n.Loc(), diag.TypeMismatch, "%q requires integer operands", n.Op)
		}
		return &tir.Binary{AST: n, Type: t, Operator: n.Op, Left: l, Right: r}
	default:
		rv.icef(n.Loc(), "unrecognized binary operator %q", n.Op)
		return nil
	}
}

func (rv *Resolver) resolveMember(n *cst.Member) tir.Expression {
	if table, ok := rv.qualifiedMemberTable(n.Base); ok {
		return rv.resolveQualifiedValue(n, table)
	}

	base := rv.resolveExpr(n.Base)
	baseType := base.ExpressionType()
	structType := baseType
	if baseType.Kind == symbol.Pointer {
		structType = baseType.Base
	}
	if structType.Kind != symbol.Struct {
		rv.errorf(n.Loc(), diag.TypeMismatch, "%s has no field %q", baseType, n.Name)
		return nil
	}
	f, ok := structType.Field(n.Name)
	if !ok {
		rv.errorf(n.Loc(), diag.UndeclaredIdentifier, "%s has no field %q", structType, n.Name)
		return nil
	}
	field := f
	return &tir.MemberVariable{AST: n, Type: f.Type, Base: base, Field: &field}
}

// qualifiedMemberTable reports whether base is a bare name referring to a
// Namespace or a type (for "Namespace.Name" / "Type.member" dotted access,
// §4.F.9), returning the table to look Name up in directly.
func (rv *Resolver) qualifiedMemberTable(base cst.Expr) (*symbol.Table, bool) {
	ident, ok := base.(*cst.Identifier)
	if !ok || len(ident.Arguments) > 0 {
		return nil, false
	}
	sym, ok := rv.scope.Get(ident.Name)
	if !ok {
		return nil, false
	}
	switch s := sym.(type) {
	case *symbol.Namespace:
		return s.Table, true
	case *symbol.TypeSymbol:
		if s.Type.Members != nil {
			return s.Type.Members, true
		}
	}
	return nil, false
}

func (rv *Resolver) resolveQualifiedValue(n *cst.Member, table *symbol.Table) tir.Expression {
	sym, ok := table.Find(n.Name)
	if !ok {
		rv.errorf(n.Loc(), diag.UndeclaredIdentifier, "undeclared identifier %q", n.Name)
		return nil
	}
	return rv.symbolExpr(n.Loc(), &cst.Identifier{Name: n.Name}, sym)
}

func (rv *Resolver) resolveCall(n *cst.Call) tir.Expression {
	if mem, ok := n.Callee.(*cst.Member); ok {
		return rv.resolveMethodCall(n, mem)
	}
	if ident, ok := n.Callee.(*cst.Identifier); ok {
		return rv.resolveDirectCall(n, ident)
	}
	rv.errorf(n.Loc(), diag.TypeMismatch, "callee is not callable")
	return nil
}

func (rv *Resolver) resolveDirectCall(n *cst.Call, ident *cst.Identifier) tir.Expression {
	sym := rv.lookup(ident.Loc(), ident.Name)

	if len(ident.Arguments) > 0 {
		tmpl, ok := sym.(*symbol.Template)
		if !ok {
			rv.errorf(ident.Loc(), diag.Template, "%q is not a template", ident.Name)
			return nil
		}
		args := make([]*symbol.Type, len(ident.Arguments))
		for i, a := range ident.Arguments {
			args[i] = rv.resolveTypespec(a)
		}
		fn := rv.instantiateTemplateFunc(ident.Loc(), tmpl, args)
		if fn == nil {
			return nil
		}
		return rv.buildCall(n, fn)
	}

	fn, ok := sym.(*symbol.Function)
	if !ok {
		rv.errorf(ident.Loc(), diag.TypeMismatch, "%q is not callable", ident.Name)
		return nil
	}
	return rv.buildCall(n, fn)
}

func (rv *Resolver) resolveMethodCall(n *cst.Call, mem *cst.Member) tir.Expression {
	if table, ok := rv.qualifiedMemberTable(mem.Base); ok {
		sym, ok := table.Find(mem.Name)
		if !ok {
			rv.errorf(n.Loc(), diag.UndeclaredIdentifier, "undeclared identifier %q", mem.Name)
			return nil
		}
		fn, ok := sym.(*symbol.Function)
		if !ok {
			rv.errorf(n.Loc(), diag.TypeMismatch, "%q is not a function", mem.Name)
			return nil
		}
		return rv.buildCall(n, fn)
	}

	lhs := rv.resolveExpr(mem.Base)
	lhsType := lhs.ExpressionType()
	structType := lhsType
	if lhsType.Kind == symbol.Pointer {
		structType = lhsType.Base
	}
	if structType.Kind != symbol.Struct || structType.Members == nil {
		rv.errorf(n.Loc(), diag.TypeMismatch, "%s has no method %q", lhsType, mem.Name)
		return nil
	}
	sym, ok := structType.Members.Find(mem.Name)
	if !ok {
		rv.errorf(n.Loc(), diag.UndeclaredIdentifier, "%s has no member %q", structType, mem.Name)
		return nil
	}
	fn, ok := sym.(*symbol.Function)
	if !ok {
		rv.errorf(n.Loc(), diag.TypeMismatch, "%q is not a method", mem.Name)
		return nil
	}

	var self tir.Expression = lhs
	if lhsType.Kind != symbol.Pointer {
		if !isLvalue(lhs) {
			rv.errorf(n.Loc(), diag.Lvalue, "method call on a non-lvalue requires an explicit pointer receiver")
		}
		self = &tir.Unary{AST: nil, Type: rv.ctx.Types.UniquePointer(lhsType), Operator: "&", Operand: lhs}
	}

	args := make([]tir.Expression, 0, len(n.Args)+1)
	args = append(args, self)
	for _, a := range n.Args {
		args = append(args, rv.resolveExpr(a))
	}
	args = rv.checkCallArgs(n.Loc(), fn.Type, args)
	return &tir.Call{AST: n, Function: fn, Args: args}
}

func (rv *Resolver) buildCall(n *cst.Call, fn *symbol.Function) tir.Expression {
	args := make([]tir.Expression, len(n.Args))
	for i, a := range n.Args {
		args[i] = rv.resolveExpr(a)
	}
	args = rv.checkCallArgs(n.Loc(), fn.Type, args)
	return &tir.Call{AST: n, Function: fn, Args: args}
}

// checkCallArgs shallow-casts each argument toward its parameter's type and
// checks the resulting compatibility, per §4.F.6's "type-check each
// argument against the function type's parameters".
func (rv *Resolver) checkCallArgs(loc diag.Location, fnType *symbol.Type, args []tir.Expression) []tir.Expression {
	if len(args) != len(fnType.Params) {
		rv.errorf(loc, diag.TypeMismatch, "call has %d argument(s), function expects %d", len(args), len(fnType.Params))
		return args
	}
	for i, p := range fnType.Params {
		args[i] = rv.shallowCast(args[i], p)
		rv.checkAssignable(loc, p, args[i].ExpressionType())
	}
	return args
}
