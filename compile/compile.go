// Package compile groups the front-end's process-wide mutable state into
// one object constructed per compilation, rather than a set of package-level
// singletons (DESIGN NOTES §9): the intern pool, type/symbol registry,
// arena, static-symbol registry, and the loaded-module cache imports
// consult (§4.F.2).
//
// Grounded on gapil/resolver.Resolve's construction of one *resolver
// carrying all mutable state for a single invocation — generalized here to
// also own the concerns gapid keeps as package-level state (its
// semantic.BuiltinTypes global, reproduced here as the Registry's
// already-seeded primitive/integer types).
package compile

import (
	"github.com/sarvex/sunder-lang/arena"
	"github.com/sarvex/sunder-lang/diag"
	"github.com/sarvex/sunder-lang/intern"
	"github.com/sarvex/sunder-lang/staticsym"
	"github.com/sarvex/sunder-lang/symbol"
)

// moduleState tracks a module's load progress for §4.F.2's import cache:
// loading marks a module in-progress (to detect CircularImportError before
// it completes), loaded holds the finished result.
type moduleState int

const (
	notLoaded moduleState = iota
	loading
	loaded
)

// Module is the result of resolving one translation unit: its export table
// (what importers see) and the full symbol table used during its own
// resolution.
type Module struct {
	Path    string
	Exports *symbol.Table
	Symbols *symbol.Table
}

// Context is the compilation-wide state threaded through one resolver
// invocation (and every template instantiation and nested import it
// triggers). Construct exactly one per compilation.
type Context struct {
	Intern *intern.Pool
	Types  *symbol.Registry
	Static *staticsym.Registry
	Arena  *arena.Arena
	Errs   *diag.List

	// ImportPath is the colon-separated list of additional search roots
	// consulted after the importing module's own directory (§4.F.2).
	ImportPath []string

	modules map[string]moduleState
	loaded  map[string]*Module
}

// New constructs a Context with a fresh intern pool, type registry, static
// symbol registry, and arena, ready for one compilation.
func New(importPath []string) *Context {
	pool := intern.New()
	return &Context{
		Intern:     pool,
		Types:      symbol.NewRegistry(pool),
		Static:     staticsym.New(pool),
		Arena:      arena.New(),
		Errs:       &diag.List{},
		ImportPath: importPath,
		modules:    map[string]moduleState{},
		loaded:     map[string]*Module{},
	}
}

// BeginLoad marks canonicalPath as in-progress, per §4.F.2's loaded-module
// cache. It fails (ok=false) if canonicalPath is already loaded or
// in-progress — the latter means a CircularImportError, the former means
// the caller should have used Loaded instead.
func (c *Context) BeginLoad(canonicalPath string) (already bool, circular bool) {
	switch c.modules[canonicalPath] {
	case loading:
		return true, true
	case loaded:
		return true, false
	default:
		c.modules[canonicalPath] = loading
		return false, false
	}
}

// Loaded returns the finished Module for canonicalPath, if its load has
// completed.
func (c *Context) Loaded(canonicalPath string) (*Module, bool) {
	m, ok := c.loaded[canonicalPath]
	return m, ok
}

// FinishLoad records mod as the completed result for canonicalPath.
func (c *Context) FinishLoad(canonicalPath string, mod *Module) {
	c.modules[canonicalPath] = loaded
	c.loaded[canonicalPath] = mod
}
