// Package resolver implements the front-end's CST→TIR resolver (component
// F, §4.F): it walks a cst.Module in the fixed order namespace → imports →
// struct pre-declaration → declaration resolution → struct completion →
// function completion, populating symbol tables and producing tir nodes.
//
// Grounded on gapil/resolver's resolver/scope struct pair and its
// with/add/addNamed/find/errorf/icef helpers, generalized from gapil's
// semantic.Symbols scope chain to this front-end's symbol.Table (which
// already implements the same local/transitive lookup split, so the
// scope wrapper gapid needs on top of it is unnecessary here) and from
// gapid's many-errors ErrorList to diag.List's fatal-on-first-error
// policy (§7).
package resolver

import (
	"github.com/sarvex/sunder-lang/compile"
	"github.com/sarvex/sunder-lang/cst"
	"github.com/sarvex/sunder-lang/diag"
	"github.com/sarvex/sunder-lang/eval"
	"github.com/sarvex/sunder-lang/symbol"
	"github.com/sarvex/sunder-lang/tir"
)

// Loader is the resolver's sole hook into the lexer/parser collaborator
// (spec.md §6): it turns a canonical import path, already resolved by the
// resolver's own search logic (§4.F.2), into a parsed module. Mirrors the
// Find/Load split of gapil/api.go's Loader, minus the Find half: path
// search is §4.F.2's own responsibility, kept inside this package so its
// relative-directory and ImportPath-list rules are exercised by one place.
type Loader interface {
	// Load parses the file at canonicalPath.
	Load(canonicalPath string) (*cst.Module, error)

	// ListDir returns the canonical paths of every source file directly
	// inside the directory at canonicalPath, already extension-filtered
	// (§4.F.2: "ignoring files not ending in the language's extension").
	ListDir(canonicalPath string) ([]string, error)

	// Stat reports whether canonicalPath names a directory, and resolves
	// path relative to fromDir (or, failing that, each ImportPath entry)
	// to a canonical filesystem path.
	Resolve(fromDir, path string, importPath []string) (canonical string, isDir bool, err error)
}

// pendingFunction is a function declaration whose body is deferred to
// module end so that mutually recursive top-level functions resolve
// (§4.F.1 step 6, §4.F.4's "incomplete functions queue").
type pendingFunction struct {
	ast          *cst.FuncDecl
	fn           *tir.Function
	scope        *symbol.Table
	staticPrefix string
}

// Resolver carries all mutable state for one module resolution (§4.F).
// Construct one per cst.Module via Resolve; never reuse across modules.
type Resolver struct {
	ctx    *compile.Context
	loader Loader

	path string // the module's own canonical path, for relative imports

	exports     *symbol.Table // what importers of this module see (§4.F.9)
	symbols     *symbol.Table // this module's own lookup table (§4.F.9)
	scope       *symbol.Table // current lexical scope; climbs to symbols via Parent
	exportScope *symbol.Table // the exports-side mirror of scope (§4.F.9)

	staticPrefix string // current static-mangling prefix (§4.F.8)

	// structIndex maps a pre-declared struct Type back to its declaration,
	// so completeStructRec can recurse into a same-module field dependency
	// before computing this struct's own layout.
	structIndex map[*symbol.Type]declStructPair

	pending []*pendingFunction // §4.F.1 step 6

	// Statement-resolution state (§4.F.5); valid only while resolving a
	// function body.
	fn            *tir.Function
	rbpOffset     int
	isWithinLoop  bool
	loopDeferMark int
	isWithinConst bool
}

func (rv *Resolver) errorf(loc diag.Location, kind diag.Kind, msg string, args ...interface{}) {
	diag.Errorf(rv.ctx.Errs, kind, loc, msg, args...)
}

func (rv *Resolver) icef(loc diag.Location, msg string, args ...interface{}) {
	diag.ICEf(rv.ctx.Errs, loc, msg, args...)
}

// with evaluates action with rv.scope nested one level deeper (a fresh
// Table whose Parent is the current scope), then restores the original
// scope — mirroring gapil/resolver.resolver.with, minus the type-inference
// payload gapid's expression resolver needs and this one does not.
func (rv *Resolver) with(action func()) {
	original := rv.scope
	rv.scope = symbol.NewTable(original)
	defer func() { rv.scope = original }()
	action()
}

// insert inserts sym under name into rv.scope, raising RedeclarationError
// citing the previous site on a genuine conflict (§3.4).
func (rv *Resolver) insert(loc diag.Location, name string, sym symbol.Symbol) {
	previous, ok := rv.scope.Insert(name, sym)
	if !ok {
		rv.errorf(loc, diag.Redeclaration, "%q is already declared at %s", name, previous.Loc())
	}
}

// lookup performs transitive lookup from the current scope, raising
// UndeclaredIdentifierError if name is unbound anywhere in the chain.
func (rv *Resolver) lookup(loc diag.Location, name string) symbol.Symbol {
	sym, ok := rv.scope.Get(name)
	if !ok {
		rv.errorf(loc, diag.UndeclaredIdentifier, "undeclared identifier %q", name)
	}
	return sym
}

// insertTopLevel implements §4.F.9: a top-level declaration is inserted
// into both the lookup-side and export-side tables at the current
// namespace nesting (the module root for a namespace-less module).
func (rv *Resolver) insertTopLevel(loc diag.Location, name string, sym symbol.Symbol) {
	rv.insert(loc, name, sym)
	if previous, ok := rv.exportScope.Insert(name, sym); !ok {
		rv.errorf(loc, diag.Redeclaration, "%q is already declared at %s", name, previous.Loc())
	}
}

// eval returns an Evaluator sharing this resolution's diagnostic sink, used
// for every compile-time fold the resolver itself needs (array counts,
// global initializers, constant declarations — §4.G).
func (rv *Resolver) eval() *eval.Evaluator {
	return eval.New(rv.ctx.Errs)
}

// New constructs a Resolver for one module, sharing ctx's process-wide
// state (types, static registry, intern pool, import cache) with every
// other module in the compilation.
func New(ctx *compile.Context, loader Loader, path string) *Resolver {
	symbols := symbol.NewTable(nil)
	exports := symbol.NewTable(nil)
	return &Resolver{
		ctx:         ctx,
		loader:      loader,
		path:        path,
		exports:     exports,
		symbols:     symbols,
		scope:       symbols,
		exportScope: exports,
		structIndex: map[*symbol.Type]declStructPair{},
	}
}

// Resolve resolves mod, a parsed translation unit at canonicalPath, into a
// compile.Module. Imports recursively resolve (or replay from ctx's
// loaded-module cache) further modules along the way (§4.F.2).
func Resolve(ctx *compile.Context, loader Loader, canonicalPath string, mod *cst.Module) (m *compile.Module, err *diag.Error) {
	defer diag.Recover(&err)

	already, circular := ctx.BeginLoad(canonicalPath)
	if circular {
		diag.Errorf(ctx.Errs, diag.CircularImport, mod.Loc(), "import cycle detected at %q", canonicalPath)
	}
	if already {
		loaded, _ := ctx.Loaded(canonicalPath)
		return loaded, nil
	}

	rv := New(ctx, loader, canonicalPath)
	rv.resolveModule(mod)

	result := &compile.Module{Path: canonicalPath, Exports: rv.exports, Symbols: rv.symbols}
	ctx.FinishLoad(canonicalPath, result)
	return result, nil
}

// resolveModule implements §4.F.1's fixed six-step order.
func (rv *Resolver) resolveModule(mod *cst.Module) {
	// Step 1: namespace.
	rv.declareNamespace(mod.Namespace)

	// Step 2: imports.
	for _, imp := range mod.Imports {
		rv.resolveImport(imp)
	}

	// Step 3: pre-declare top-level structs.
	decls := mod.Decls
	structTypes := map[*cst.StructDecl]*symbol.Type{}
	for _, d := range decls {
		sd, ok := d.(*cst.StructDecl)
		if !ok {
			continue
		}
		rv.predeclareStruct(sd, structTypes)
	}

	// Step 4: resolve all top-level declarations. Forward references
	// among structs are already satisfied by step 3's pre-declaration;
	// forward references among functions are satisfied by inserting each
	// function's symbol before its body is queued (§4.F.4), so declaration
	// order needs no separate topological sort.
	for _, d := range decls {
		rv.resolveTopDecl(d, structTypes)
	}

	// Step 5: complete pre-declared structs' field lists.
	for _, d := range decls {
		sd, ok := d.(*cst.StructDecl)
		if !ok {
			continue
		}
		rv.completeStruct(sd, structTypes[sd])
	}

	// Step 6: complete queued function bodies (§4.F.10).
	pending := rv.pending
	rv.pending = nil
	for _, p := range pending {
		rv.completeFunction(p)
	}
}

// declareNamespace implements §4.F.1 step 1: create or extend nested
// Namespace symbols for each dotted path component in both the module's
// own symbol table and its export table, and adopt the innermost
// namespace as the current lexical scope and ".a.b.c" as the static
// prefix.
func (rv *Resolver) declareNamespace(path []string) {
	if len(path) == 0 {
		return
	}
	symTable := descendNamespace(rv.symbols, path)
	expTable := descendNamespace(rv.exports, path)

	rv.scope = symTable
	rv.exportScope = expTable
	prefix := ""
	for _, c := range path {
		prefix += c + "."
	}
	rv.staticPrefix = prefix
}

// descendNamespace walks (creating as needed) the chain of nested
// Namespace symbols named by path inside root, returning the innermost
// Table. Each level's Table has the previous level's Table as its Parent,
// so unqualified lookup from inside "a::b::c" also sees "a::b"'s and
// "a"'s members without qualification.
func descendNamespace(root *symbol.Table, path []string) *symbol.Table {
	cur := root
	for _, name := range path {
		existing, ok := cur.Find(name)
		if !ok {
			ns := &symbol.Namespace{Table: symbol.NewTable(cur)}
			cur.Insert(name, ns)
			cur = ns.Table
			continue
		}
		ns, ok := existing.(*symbol.Namespace)
		if !ok {
			// A non-namespace symbol already claims this name; declareNamespace
			// has no location to report against an arbitrary root, so this
			// is surfaced by the later declaration that collides instead.
			continue
		}
		cur = ns.Table
	}
	return cur
}
