package symbol

import "sort"

// Table maps interned names to Symbols, with a link to a parent table for
// lexical scoping (§3.4). Entries are kept in a sorted slice and looked up
// by binary search, mirroring gapil/semantic/symbols.go's Symbols type.
type Table struct {
	Parent  *Table
	entries []entry
}

type entry struct {
	name string
	sym  Symbol
}

// NewTable returns an empty table whose parent (for transitive lookup) is
// parent, or nil for a root table.
func NewTable(parent *Table) *Table {
	return &Table{Parent: parent}
}

// Find performs local lookup: the symbol named name in this table only,
// never climbing to Parent (§3.4's "local lookup").
func (t *Table) Find(name string) (Symbol, bool) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].name >= name })
	if i < len(t.entries) && t.entries[i].name == name {
		return t.entries[i].sym, true
	}
	return nil, false
}

// Get performs transitive lookup: the nearest definition of name, climbing
// through Parent links if not found locally (§3.4's "transitive lookup",
// §8 property 3).
func (t *Table) Get(name string) (Symbol, bool) {
	for cur := t; cur != nil; cur = cur.Parent {
		if sym, ok := cur.Find(name); ok {
			return sym, true
		}
	}
	return nil, false
}

// Insert adds sym under name into this table's local scope.
//
// If name is unbound locally, the insertion succeeds (inserted=true).
// If name is already bound to the identical Symbol instance, the insertion
// is a no-op and succeeds (inserted=true) — this supports re-importing the
// same declaration via two paths without triggering RedeclarationError
// (§3.4, §4.F.2).
// If name is bound to a *different* Symbol, the insertion fails
// (inserted=false) and the previous Symbol is returned so the caller can
// raise RedeclarationError citing its location.
func (t *Table) Insert(name string, sym Symbol) (previous Symbol, inserted bool) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].name >= name })
	if i < len(t.entries) && t.entries[i].name == name {
		if t.entries[i].sym == sym {
			return nil, true
		}
		return t.entries[i].sym, false
	}
	t.entries = append(t.entries, entry{})
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = entry{name: name, sym: sym}
	return nil, true
}

// Visit calls f for every symbol directly in this table, in name order.
func (t *Table) Visit(f func(name string, sym Symbol)) {
	for _, e := range t.entries {
		f(e.name, e.sym)
	}
}

// Merge unions other's entries into t, following §4.F.2's import-merge
// rule: Namespace entries merge recursively by unioning their tables;
// non-namespace duplicates that are not the identical Symbol instance are
// reported via the returned conflict (nil if none).
func (t *Table) Merge(other *Table) (conflict Symbol) {
	var result Symbol
	other.Visit(func(name string, sym Symbol) {
		if result != nil {
			return // first conflict wins; caller raises one diagnostic
		}
		if ns, ok := sym.(*Namespace); ok {
			existing, found := t.Find(name)
			if !found {
				t.Insert(name, sym)
				return
			}
			existingNS, ok := existing.(*Namespace)
			if !ok {
				result = existing
				return
			}
			if c := existingNS.Table.Merge(ns.Table); c != nil {
				result = c
			}
			return
		}
		if previous, inserted := t.Insert(name, sym); !inserted {
			result = previous
		}
	})
	return result
}
