package resolver

import (
	"fmt"
	"strings"

	"github.com/sarvex/sunder-lang/cst"
	"github.com/sarvex/sunder-lang/diag"
	"github.com/sarvex/sunder-lang/staticsym"
	"github.com/sarvex/sunder-lang/symbol"
	"github.com/sarvex/sunder-lang/tir"
)

// mangleInstance builds §4.F.3's instance name: "Original[[arg0, arg1, …]]".
func mangleInstance(name string, args []*symbol.Type) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("[[")
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString("]]")
	return b.String()
}

// instantiateScope builds the Table a template instantiation resolves in:
// the template's own lexical parent, with each template parameter bound to
// a TypeSymbol naming the corresponding argument (§4.F.3 step 4).
func (rv *Resolver) instantiateScope(tmpl *symbol.Template, params []string, args []*symbol.Type) *symbol.Table {
	scope := symbol.NewTable(tmpl.Parent)
	for i, p := range params {
		ts := &symbol.TypeSymbol{Type: args[i]}
		ts.Name = rv.ctx.Intern.Intern(p)
		scope.Insert(p, ts)
	}
	return scope
}

// instantiateTemplateType implements §4.F.3 for a struct template: resolve
// arguments in the calling scope, check the instance cache, and otherwise
// pre-declare the instantiated struct type, cache it immediately (so
// self-referential instantiation terminates, step 7), then complete its
// fields in the instance's own scope.
func (rv *Resolver) instantiateTemplateType(n *cst.NamedType) *symbol.Type {
	sym := rv.lookup(n.Loc(), n.Name)
	tmpl, ok := sym.(*symbol.Template)
	if !ok {
		rv.errorf(n.Loc(), diag.Template, "%q is not a template", n.Name)
		return rv.ctx.Types.Void
	}
	sd, ok := tmpl.AST.(*cst.StructDecl)
	if !ok {
		rv.errorf(n.Loc(), diag.Template, "%q is not a type template", n.Name)
		return rv.ctx.Types.Void
	}
	if len(n.Arguments) != len(sd.TemplateParams) {
		rv.errorf(n.Loc(), diag.Template, "%q takes %d template argument(s), got %d", n.Name, len(sd.TemplateParams), len(n.Arguments))
		return rv.ctx.Types.Void
	}

	args := make([]*symbol.Type, len(n.Arguments))
	for i, a := range n.Arguments {
		args[i] = rv.resolveTypespec(a)
	}
	mangled := mangleInstance(sd.Name, args)

	if cached, ok := tmpl.Instance(mangled); ok {
		ts, ok := cached.(*symbol.TypeSymbol)
		if !ok {
			rv.icef(n.Loc(), "cached template instance %q is not a type", mangled)
			return rv.ctx.Types.Void
		}
		return ts.Type
	}

	members := symbol.NewTable(nil)
	t, ok := rv.ctx.Types.DeclareStruct(tmpl.LexicalPrefix+mangled, members)
	if !ok {
		rv.errorf(n.Loc(), diag.Template, "template instance %q collides with an existing type", mangled)
		return rv.ctx.Types.Void
	}

	ts := &symbol.TypeSymbol{Type: t}
	ts.Location = n.Loc()
	ts.Name = rv.ctx.Intern.Intern(mangled)
	tmpl.CacheInstance(mangled, ts) // cache before completing fields (§4.F.3 step 7)

	savedScope, savedPrefix := rv.scope, rv.staticPrefix
	rv.scope = rv.instantiateScope(tmpl, sd.TemplateParams, args)
	rv.staticPrefix = tmpl.LexicalPrefix + mangled + "."

	fields := make([]symbol.Field, len(sd.Fields))
	for i, f := range sd.Fields {
		fields[i] = symbol.Field{Name: rv.ctx.Intern.Intern(f.Name), Type: rv.resolveTypespec(f.Type)}
	}
	rv.finishStructFields(sd, t, fields)
	rv.resolveStructMembers(sd, t)

	rv.scope, rv.staticPrefix = savedScope, savedPrefix
	return t
}

// instantiateTemplateFunc implements §4.F.3 for a function template, called
// from expr.go when a Call's callee names a Template symbol. The body is
// resolved immediately (not deferred to the module's pending queue, since
// instantiation happens mid-resolution of the calling function), with the
// symbol cached before the body is resolved so a recursive generic
// function's call to itself terminates.
func (rv *Resolver) instantiateTemplateFunc(loc diag.Location, tmpl *symbol.Template, args []*symbol.Type) *symbol.Function {
	n, ok := tmpl.AST.(*cst.FuncDecl)
	if !ok {
		rv.errorf(loc, diag.Template, "%q is not a function template", string(*tmpl.SymbolName()))
		return nil
	}
	if len(args) != len(n.TemplateParams) {
		rv.errorf(loc, diag.Template, "%q takes %d template argument(s), got %d", n.Name, len(n.TemplateParams), len(args))
		return nil
	}
	mangled := mangleInstance(n.Name, args)

	if cached, ok := tmpl.Instance(mangled); ok {
		fn, ok := cached.(*symbol.Function)
		if !ok {
			rv.icef(loc, "cached template instance %q is not a function", mangled)
			return nil
		}
		return fn
	}

	savedScope, savedPrefix := rv.scope, rv.staticPrefix
	rv.scope = rv.instantiateScope(tmpl, n.TemplateParams, args)
	rv.staticPrefix = tmpl.LexicalPrefix

	skel := rv.buildFunctionSkeleton(n)
	instanceMangled := rv.ctx.Static.Normalize(rv.staticPrefix, mangled)
	addr := symbol.StaticAddress(instanceMangled)

	fn := &tir.Function{
		AST: n, Name: fmt.Sprintf("%s%s", rv.staticPrefix, mangled), Type: skel.fnType, Address: addr,
		Receiver: skel.receiver, Params: skel.params, ReturnSlot: skel.returnSlot,
	}
	sym := &symbol.Function{Type: skel.fnType, Address: addr, Body: fn}
	sym.Location = n.Loc()
	sym.Name = rv.ctx.Intern.Intern(mangled)
	tmpl.CacheInstance(mangled, sym) // cache before resolving the body (self-recursive generics)

	rv.ctx.Static.Register(staticsym.Entry{Name: instanceMangled, Type: skel.fnType})

	fn.Table = symbol.NewTable(rv.scope)
	pending := &pendingFunction{ast: n, fn: fn, scope: fn.Table, staticPrefix: rv.staticPrefix}
	rv.completeFunction(pending)

	rv.scope, rv.staticPrefix = savedScope, savedPrefix
	return sym
}
