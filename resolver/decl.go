package resolver

import (
	"github.com/sarvex/sunder-lang/cst"
	"github.com/sarvex/sunder-lang/diag"
	"github.com/sarvex/sunder-lang/staticsym"
	"github.com/sarvex/sunder-lang/symbol"
	"github.com/sarvex/sunder-lang/tir"
)

// inserter binds a resolved symbol under name, at whatever scope a
// particular declaration context uses: insertTopLevel for module-level
// declarations, a struct's member table for struct members, §4.F.9.
type inserter func(loc diag.Location, name string, sym symbol.Symbol)

func ceilTo8(n int) int {
	if n <= 0 {
		return 8
	}
	return ((n + 7) / 8) * 8
}

// qualifiedName prepends the current static prefix, matching how struct
// and template type names are kept distinct across namespaces without
// depending on storage-address mangling (§4.F.1, §4.F.3).
func (rv *Resolver) qualifiedName(name string) string {
	return rv.staticPrefix + name
}

// predeclareStruct implements §4.F.1 step 3 for one declaration: a plain
// struct gets its type and (initially empty) member table created now, so
// self- and cross-referential pointer/slice members resolve during step 4;
// a struct template instead gets a Template symbol, since its type is
// never constructed until first instantiation (§4.F.3).
func (rv *Resolver) predeclareStruct(sd *cst.StructDecl, out map[*cst.StructDecl]*symbol.Type) {
	if len(sd.TemplateParams) > 0 {
		tmpl := &symbol.Template{AST: sd, LexicalPrefix: rv.staticPrefix, Parent: rv.scope}
		tmpl.Location = sd.Loc()
		tmpl.Name = rv.ctx.Intern.Intern(sd.Name)
		rv.insertTopLevel(sd.Loc(), sd.Name, tmpl)
		return
	}

	members := symbol.NewTable(nil)
	t, ok := rv.ctx.Types.DeclareStruct(rv.qualifiedName(sd.Name), members)
	if !ok {
		rv.errorf(sd.Loc(), diag.Redeclaration, "type %q is already declared", sd.Name)
		return
	}
	out[sd] = t
	rv.structIndex[t] = declStructPair{decl: sd, typ: t}

	ts := &symbol.TypeSymbol{Type: t}
	ts.Location = sd.Loc()
	ts.Name = rv.ctx.Intern.Intern(sd.Name)
	rv.insertTopLevel(sd.Loc(), sd.Name, ts)
}

// resolveStructMembers resolves a struct's nested constant/function
// declarations (§4.F.4's "member constants and member functions are
// resolved with the static-address prefix set to the struct's mangled
// name and are inserted into the struct's member symbol table").
func (rv *Resolver) resolveStructMembers(sd *cst.StructDecl, t *symbol.Type) {
	savedScope, savedPrefix := rv.scope, rv.staticPrefix
	rv.scope = symbol.NewTable(savedScope)
	rv.staticPrefix = t.String() + "."
	insert := func(loc diag.Location, name string, sym symbol.Symbol) {
		if previous, ok := t.Members.Insert(name, sym); !ok {
			rv.errorf(loc, diag.Redeclaration, "%q is already declared at %s", name, previous.Loc())
		}
	}
	for _, m := range sd.Members {
		switch n := m.(type) {
		case *cst.VarDecl:
			rv.declareGlobalVar(n, insert)
		case *cst.FuncDecl:
			rv.declareFunc(n, insert)
		default:
			rv.icef(m.Loc(), "unrecognized struct member declaration %T", m)
		}
	}
	rv.scope, rv.staticPrefix = savedScope, savedPrefix
}

// completeStruct implements §4.F.1 step 5, recursively completing any
// same-module struct fields depend on first so natural-layout sizing sees
// a concrete Size regardless of declaration order.
func (rv *Resolver) completeStruct(sd *cst.StructDecl, t *symbol.Type) {
	rv.completeStructRec(sd, t, map[*symbol.Type]bool{})
}

func (rv *Resolver) completeStructRec(sd *cst.StructDecl, t *symbol.Type, inProgress map[*symbol.Type]bool) {
	if t == nil || t.Size != symbol.UnsizedSize {
		return // nil: a template (no direct type); already sized: completed already
	}
	if inProgress[t] {
		rv.errorf(sd.Loc(), diag.TypeMismatch, "struct %q has infinite size (contains itself by value)", sd.Name)
		return
	}
	inProgress[t] = true

	fields := make([]symbol.Field, len(sd.Fields))
	for i, f := range sd.Fields {
		ft := rv.resolveTypespec(f.Type)
		if nested, ok := rv.structDeclFor(ft); ok {
			rv.completeStructRec(nested.decl, nested.typ, inProgress)
		}
		fields[i] = symbol.Field{Name: rv.ctx.Intern.Intern(f.Name), Type: ft}
	}
	rv.finishStructFields(sd, t, fields)
}

// finishStructFields implements the §4.F.4 edge cases shared by a
// module-level struct and a lazily-instantiated struct template instance:
// no field may have an unsized type, no two fields may share a name, and
// CompleteStruct assigns the natural-alignment layout.
func (rv *Resolver) finishStructFields(sd *cst.StructDecl, t *symbol.Type, fields []symbol.Field) {
	for i := range fields {
		if fields[i].Type.IsUnsized() {
			rv.errorf(sd.Fields[i].Loc(), diag.Unsized, "field %q of struct %q has unsized type %s", sd.Fields[i].Name, sd.Name, fields[i].Type)
		}
		for j := range fields[:i] {
			if fields[i].Name == fields[j].Name {
				rv.errorf(sd.Fields[i].Loc(), diag.Redeclaration, "duplicate field %q in struct %q", sd.Fields[i].Name, sd.Name)
			}
		}
	}
	t.CompleteStruct(fields)
}

// declStructPair associates a struct's CST with its pre-declared Type, so
// completeStructRec can recurse into a field's own same-module struct
// dependency before computing this struct's layout.
type declStructPair struct {
	decl *cst.StructDecl
	typ  *symbol.Type
}

// structDeclFor looks up the originating declaration for an incomplete
// same-module struct type, so field-layout completion can recurse into it
// first. rv.structIndex is populated once per module by resolveModule.
func (rv *Resolver) structDeclFor(t *symbol.Type) (declStructPair, bool) {
	if t.Kind != symbol.Struct {
		return declStructPair{}, false
	}
	p, ok := rv.structIndex[t]
	return p, ok
}

// resolveTopDecl dispatches one top-level declaration to its routine
// (§4.F.1 step 4).
func (rv *Resolver) resolveTopDecl(d cst.Decl, structTypes map[*cst.StructDecl]*symbol.Type) {
	switch n := d.(type) {
	case *cst.StructDecl:
		if t, ok := structTypes[n]; ok {
			rv.resolveStructMembers(n, t)
		}
		// Template structs defer member resolution to instantiation time
		// (§4.F.3 steps 6-7).
	case *cst.AliasDecl:
		rv.resolveAlias(n)
	case *cst.ExtendDecl:
		rv.resolveExtend(n)
	case *cst.VarDecl:
		rv.declareGlobalVar(n, rv.insertTopLevel)
	case *cst.FuncDecl:
		rv.declareFunc(n, rv.insertTopLevel)
	default:
		rv.icef(d.Loc(), "unrecognized top-level declaration %T", d)
	}
}

// resolveAlias implements §4.F.4's alias declarations: bind Name to an
// existing type via a new Type-symbol.
func (rv *Resolver) resolveAlias(n *cst.AliasDecl) {
	t := rv.resolveTypespec(n.Type)
	ts := &symbol.TypeSymbol{Type: t}
	ts.Location = n.Loc()
	ts.Name = rv.ctx.Intern.Intern(n.Name)
	rv.insertTopLevel(n.Loc(), n.Name, ts)
}

// resolveExtend implements §4.F.4's «extend T { … }»: attach Members to an
// existing type's member table without disturbing other members.
func (rv *Resolver) resolveExtend(n *cst.ExtendDecl) {
	sym := rv.lookup(n.Loc(), n.Type)
	ts, ok := sym.(*symbol.TypeSymbol)
	if !ok {
		rv.errorf(n.Loc(), diag.TypeMismatch, "%q does not name a type", n.Type)
		return
	}
	t := ts.Type
	if t.Members == nil {
		t.Members = symbol.NewTable(nil)
	}
	savedScope, savedPrefix := rv.scope, rv.staticPrefix
	rv.scope = symbol.NewTable(savedScope)
	rv.staticPrefix = t.String() + "."
	insert := func(loc diag.Location, name string, sym symbol.Symbol) {
		if previous, ok := t.Members.Insert(name, sym); !ok {
			rv.errorf(loc, diag.Redeclaration, "%q is already declared at %s", name, previous.Loc())
		}
	}
	for _, m := range n.Members {
		switch member := m.(type) {
		case *cst.VarDecl:
			rv.declareGlobalVar(member, insert)
		case *cst.FuncDecl:
			rv.declareFunc(member, insert)
		default:
			rv.icef(m.Loc(), "unrecognized extend member declaration %T", m)
		}
	}
	rv.scope, rv.staticPrefix = savedScope, savedPrefix
}

// declareGlobalVar implements §4.F.4's global variable/constant routine:
// resolve typespec, resolve initializer, shallow-cast, allocate a static
// address, synthesize the symbol, insert it, and (unless extern) register
// it with the static-symbol registry (§4.H).
func (rv *Resolver) declareGlobalVar(n *cst.VarDecl, insert inserter) {
	mangled := rv.ctx.Static.Normalize(rv.staticPrefix, n.Name)
	addr := symbol.StaticAddress(mangled)

	if n.IsExtern {
		if n.IsConst {
			rv.errorf(n.Loc(), diag.TypeMismatch, "extern declarations cannot be const")
		}
		t := rv.resolveTypespec(n.Type)
		v := &symbol.Variable{Type: t, Address: addr}
		v.Location = n.Loc()
		v.Name = rv.ctx.Intern.Intern(n.Name)
		rv.ctx.Static.Register(staticsym.Entry{Name: mangled, Type: t})
		insert(n.Loc(), n.Name, v)
		return
	}

	if n.Init == nil {
		rv.errorf(n.Loc(), diag.NotConstant, "global declaration %q requires an initializer", n.Name)
		return
	}

	var t *symbol.Type
	if n.Type != nil {
		t = rv.resolveTypespec(n.Type)
	}
	initExpr := rv.resolveExprWithHint(n.Init, t)
	if t == nil {
		t = initExpr.ExpressionType()
	} else {
		rv.checkAssignable(n.Loc(), t, initExpr.ExpressionType())
	}

	wasConst := rv.isWithinConst
	rv.isWithinConst = true
	v := rv.eval().Rvalue(initExpr)
	rv.isWithinConst = wasConst
	if v == nil {
		return
	}

	rv.ctx.Static.Register(staticsym.Entry{Name: mangled, Type: t, Value: v})

	if n.IsConst {
		c := &symbol.Constant{Type: t, Address: addr, Value: v}
		c.Location = n.Loc()
		c.Name = rv.ctx.Intern.Intern(n.Name)
		insert(n.Loc(), n.Name, c)
		return
	}
	variable := &symbol.Variable{Type: t, Address: addr, Value: v}
	variable.Location = n.Loc()
	variable.Name = rv.ctx.Intern.Intern(n.Name)
	insert(n.Loc(), n.Name, variable)
}

// functionSkeleton is the type/parameter/return-slot shape shared by a
// plain function declaration and a template's synthesized instantiation
// (§4.F.4, §4.F.3).
type functionSkeleton struct {
	fnType     *symbol.Type
	receiver   *tir.Parameter
	params     []*tir.Parameter
	returnSlot *tir.Parameter
}

// buildFunctionSkeleton implements §4.F.4's "Functions allocate parameter
// slots from low to high address starting at frame-pointer + 16 ..., and a
// return slot above them."
func (rv *Resolver) buildFunctionSkeleton(n *cst.FuncDecl) functionSkeleton {
	offset := 16
	var paramTypes []*symbol.Type
	var receiver *tir.Parameter
	if n.Receiver != nil {
		rt := rv.resolveTypespec(n.Receiver.Type)
		receiver = &tir.Parameter{AST: n.Receiver, Name: n.Receiver.Name, Type: rt, Address: symbol.LocalAddress(offset)}
		offset += ceilTo8(rt.Size)
		paramTypes = append(paramTypes, rt)
	}
	params := make([]*tir.Parameter, len(n.Params))
	for i := range n.Params {
		p := n.Params[i]
		pt := rv.resolveTypespec(p.Type)
		params[i] = &tir.Parameter{AST: &n.Params[i], Name: p.Name, Type: pt, Address: symbol.LocalAddress(offset)}
		offset += ceilTo8(pt.Size)
		paramTypes = append(paramTypes, pt)
	}
	var retType *symbol.Type
	if n.Return != nil {
		retType = rv.resolveTypespec(n.Return)
	}
	var returnSlot *tir.Parameter
	if retType != nil && retType.Kind != symbol.Void {
		returnSlot = &tir.Parameter{Type: retType, Address: symbol.LocalAddress(offset)}
	}
	return functionSkeleton{
		fnType:     rv.ctx.Types.UniqueFunction(paramTypes, retType),
		receiver:   receiver,
		params:     params,
		returnSlot: returnSlot,
	}
}

// declareFunc implements §4.F.4's function routine: templates get a
// Template symbol (instantiated lazily, §4.F.3); plain functions are
// inserted before their body is resolved (to allow recursion) and, unless
// extern, enqueued for §4.F.1 step 6.
func (rv *Resolver) declareFunc(n *cst.FuncDecl, insert inserter) {
	if len(n.TemplateParams) > 0 {
		tmpl := &symbol.Template{AST: n, LexicalPrefix: rv.staticPrefix, Parent: rv.scope}
		tmpl.Location = n.Loc()
		tmpl.Name = rv.ctx.Intern.Intern(n.Name)
		insert(n.Loc(), n.Name, tmpl)
		return
	}

	skel := rv.buildFunctionSkeleton(n)
	mangled := rv.ctx.Static.Normalize(rv.staticPrefix, n.Name)
	addr := symbol.StaticAddress(mangled)

	fn := &tir.Function{
		AST: n, Name: n.Name, Type: skel.fnType, Address: addr,
		Receiver: skel.receiver, Params: skel.params, ReturnSlot: skel.returnSlot,
		Extern: n.IsExtern,
	}

	sym := &symbol.Function{Type: skel.fnType, Address: addr, Body: fn}
	sym.Location = n.Loc()
	sym.Name = rv.ctx.Intern.Intern(n.Name)
	insert(n.Loc(), n.Name, sym)

	rv.ctx.Static.Register(staticsym.Entry{Name: mangled, Type: skel.fnType})

	if n.IsExtern {
		return
	}

	fn.Table = symbol.NewTable(rv.scope)
	rv.pending = append(rv.pending, &pendingFunction{ast: n, fn: fn, scope: fn.Table, staticPrefix: rv.staticPrefix})
}

// completeFunction implements §4.F.10: resolve a queued function's body in
// its outermost table, then enforce the explicit-return invariant.
func (rv *Resolver) completeFunction(p *pendingFunction) {
	savedScope, savedPrefix := rv.scope, rv.staticPrefix
	savedFn, savedRBP := rv.fn, rv.rbpOffset
	savedLoop, savedLoopMark, savedConst := rv.isWithinLoop, rv.loopDeferMark, rv.isWithinConst

	rv.scope, rv.staticPrefix = p.scope, p.staticPrefix
	rv.fn, rv.rbpOffset = p.fn, 0
	rv.isWithinLoop, rv.loopDeferMark, rv.isWithinConst = false, 0, false

	if p.fn.Receiver != nil {
		rv.declareParamSymbol(p.fn.Receiver)
	}
	for _, prm := range p.fn.Params {
		rv.declareParamSymbol(prm)
	}

	p.fn.Body = rv.resolveFunctionBody(p.ast.Body, p.scope)
	p.fn.LowWaterMark = rv.rbpOffset
	rv.checkExplicitReturn(p.ast, p.fn)

	rv.scope, rv.staticPrefix = savedScope, savedPrefix
	rv.fn, rv.rbpOffset = savedFn, savedRBP
	rv.isWithinLoop, rv.loopDeferMark, rv.isWithinConst = savedLoop, savedLoopMark, savedConst
}

func (rv *Resolver) declareParamSymbol(p *tir.Parameter) {
	v := &symbol.Variable{Type: p.Type, Address: p.Address}
	v.Name = rv.ctx.Intern.Intern(p.Name)
	if p.AST != nil {
		v.Location = p.AST.Loc()
	}
	rv.insert(v.Location, p.Name, v)
}

// checkExplicitReturn implements §4.F.10's final check: a non-void
// function's source must end with an explicit return statement.
func (rv *Resolver) checkExplicitReturn(ast *cst.FuncDecl, fn *tir.Function) {
	if ast.IsExtern || fn.Type.Return == nil || fn.Type.Return.Kind == symbol.Void {
		return
	}
	if len(ast.Body) == 0 {
		rv.errorf(ast.Loc(), diag.TypeMismatch, "function %q must end with a return statement", ast.Name)
		return
	}
	if _, ok := ast.Body[len(ast.Body)-1].(*cst.ReturnStmt); !ok {
		rv.errorf(ast.Loc(), diag.TypeMismatch, "function %q must end with an explicit return statement", ast.Name)
	}
}
