// Package staticsym implements the front-end's static symbol registry
// (component H, §4.H): the process-wide ordered list of every symbol
// given a Static address, handed to the code generator to emit
// .data/.bss/.text entries, plus the name-mangling scheme (§4.F.8) that
// produces the linker labels those entries are keyed by.
//
// Grounded on the "append to an owning list, checking for an existing
// structural match first" idiom of gapil/resolver/type.go's
// getPointerType/getSliceType/getStaticArrayType family — generalized here
// from "dedupe a type" to "register a unique static entry, panicking on a
// collision that the resolver itself should have prevented by mangling".
package staticsym

import (
	"fmt"
	"strings"

	"github.com/sarvex/sunder-lang/intern"
	"github.com/sarvex/sunder-lang/symbol"
	"github.com/sarvex/sunder-lang/value"
)

// Entry is one symbol with a Static address, ready for code generation.
type Entry struct {
	Name  string // the mangled linker label
	Type  *symbol.Type
	Value *value.Value // non-nil for constants and initialized globals
}

// Registry is the process-wide ordered list of static entries (§4.H).
// Construct one per compilation via compile.Context, never as a package
// variable, so repeated compilations (e.g. in tests) don't leak state
// between each other.
type Registry struct {
	pool    *intern.Pool
	byName  map[string]bool
	entries []Entry
}

// New returns an empty Registry backed by pool for interning mangled names.
func New(pool *intern.Pool) *Registry {
	return &Registry{pool: pool, byName: map[string]bool{}}
}

// Entries returns the registry's contents in insertion order, the order
// the back-end emits them in.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Normalize produces a collision-free mangled static name from prefix and
// name (§4.F.8): every non-identifier byte in name is replaced with '_',
// the result is prepended with "." + prefix, and if that name already
// exists in the registry, ".N" is appended for the smallest N >= 1 that
// makes it unique. The first occurrence of a name bears no numeric
// suffix. The returned name is interned and reserved (a subsequent
// Register(Entry{Name: this name, ...}) is guaranteed not to collide).
func (r *Registry) Normalize(prefix, name string) string {
	scrubbed := scrub(name)
	base := "." + prefix + scrubbed
	candidate := base
	for n := 1; r.byName[candidate]; n++ {
		candidate = fmt.Sprintf("%s.%d", base, n)
	}
	r.byName[candidate] = true
	r.pool.Intern(candidate)
	return candidate
}

func scrub(name string) string {
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Register appends e to the registry. It is an internal error — this
// front-end's own invariant, never reachable from malformed user input —
// for e.Name to already be present; callers must obtain e.Name from
// Normalize first (§4.H: "inserting a symbol whose mangled static name
// already exists ... is an internal-consistency failure").
func (r *Registry) Register(e Entry) {
	if !r.byName[e.Name] {
		panic(fmt.Sprintf("staticsym: %q registered without prior Normalize reservation", e.Name))
	}
	for _, existing := range r.entries {
		if existing.Name == e.Name {
			panic(fmt.Sprintf("staticsym: duplicate static entry %q", e.Name))
		}
	}
	r.entries = append(r.entries, e)
}
