package resolver

import (
	"path/filepath"
	"strings"

	"github.com/sarvex/sunder-lang/compile"
	"github.com/sarvex/sunder-lang/cst"
	"github.com/sarvex/sunder-lang/diag"
	"github.com/sarvex/sunder-lang/symbol"
)

// resolveImport implements §4.F.2: search, canonicalize, recurse into
// directories, consult the loaded-module cache, and merge the result's
// export table into this module's symbol table.
func (rv *Resolver) resolveImport(imp *cst.Import) {
	fromDir := filepath.Dir(rv.path)
	canonical, isDir, err := rv.loader.Resolve(fromDir, imp.Path, rv.ctx.ImportPath)
	if err != nil {
		rv.errorf(imp.Loc(), diag.UndeclaredIdentifier, "cannot resolve import %q: %s", imp.Path, err)
		return
	}

	if isDir {
		files, err := rv.loader.ListDir(canonical)
		if err != nil {
			rv.errorf(imp.Loc(), diag.UndeclaredIdentifier, "cannot read import directory %q: %s", canonical, err)
			return
		}
		for _, f := range files {
			rv.mergeImport(imp, f)
		}
		return
	}
	rv.mergeImport(imp, canonical)
}

// mergeImport loads (or replays from cache) the module at canonicalPath
// and merges its export table into rv.symbols, per §4.F.2's recursive
// merge rule (implemented by symbol.Table.Merge).
func (rv *Resolver) mergeImport(imp *cst.Import, canonicalPath string) {
	already, circular := rv.ctx.BeginLoad(canonicalPath)
	if circular {
		rv.errorf(imp.Loc(), diag.CircularImport, "import cycle: %q imports %q while it is still loading", rv.path, canonicalPath)
		return
	}

	if already {
		loaded, _ := rv.ctx.Loaded(canonicalPath)
		rv.mergeExports(imp, loaded.Exports)
		return
	}

	mod, err := rv.loader.Load(canonicalPath)
	if err != nil {
		rv.errorf(imp.Loc(), diag.UndeclaredIdentifier, "cannot load %q: %s", canonicalPath, err)
		return
	}

	sub := New(rv.ctx, rv.loader, canonicalPath)
	sub.resolveModule(mod)
	result := &compile.Module{Path: canonicalPath, Exports: sub.exports, Symbols: sub.symbols}
	rv.ctx.FinishLoad(canonicalPath, result)
	rv.mergeExports(imp, result.Exports)
}

func (rv *Resolver) mergeExports(imp *cst.Import, exports *symbol.Table) {
	if conflict := rv.symbols.Merge(exports); conflict != nil {
		rv.errorf(imp.Loc(), diag.Redeclaration, "import %q redeclares %q, already defined at %s", imp.Path, string(*conflict.SymbolName()), conflict.Loc())
	}
}

// languageExtension is the source-file suffix §4.F.2 uses to filter a
// directory import's entries.
const languageExtension = ".sun"

func hasLanguageExtension(path string) bool {
	return strings.HasSuffix(path, languageExtension)
}
