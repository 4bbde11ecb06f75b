// Package symbol implements the front-end's type registry (component C) and
// symbol table (component D) together, in one Go package.
//
// The two are mutually recursive by construction: a Struct type carries a
// Table of its member constants and functions (§3.2), and a Type-kind
// Symbol names the Type it stands for (§3.3) — splitting them into separate
// packages would require one to import the other both ways. The teacher
// resolves the identical tension the same way: gapid's gapil/semantic
// package holds Type (type.go) and Symbols (symbols.go) side by side for
// exactly this reason, rather than as two packages with an import cycle.
// This package follows that precedent.
package symbol
