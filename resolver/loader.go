package resolver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sarvex/sunder-lang/cst"
)

// FileLoader is the default Loader (§4.F.2), searching the filesystem the
// way gapil/api.go's searchListLoader resolves relative imports: first
// against fromDir, then against each ImportPath entry in order. Parsing
// itself is delegated to Parse, since the lexer/parser is an external
// collaborator this front-end does not implement (spec.md §1, §6).
type FileLoader struct {
	// Parse turns a file's path and contents into a parsed module. Supplied
	// by the driver that owns the lexer/parser.
	Parse func(path string, src []byte) (*cst.Module, error)
}

// Resolve implements Loader.
func (l FileLoader) Resolve(fromDir, path string, importPath []string) (canonical string, isDir bool, err error) {
	if filepath.IsAbs(path) {
		return statCanonical(path)
	}
	for _, dir := range append([]string{fromDir}, importPath...) {
		candidate := filepath.Join(dir, path)
		if info, statErr := os.Stat(candidate); statErr == nil {
			abs, absErr := filepath.Abs(candidate)
			if absErr != nil {
				abs = candidate
			}
			return abs, info.IsDir(), nil
		}
	}
	return "", false, fmt.Errorf("no such file or directory in %q or any of %d import path entries", fromDir, len(importPath))
}

func statCanonical(path string) (string, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false, err
	}
	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		abs = path
	}
	return abs, info.IsDir(), nil
}

// ListDir implements Loader.
func (l FileLoader) ListDir(canonicalPath string) ([]string, error) {
	entries, err := os.ReadDir(canonicalPath)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !hasLanguageExtension(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(canonicalPath, e.Name()))
	}
	return out, nil
}

// Load implements Loader.
func (l FileLoader) Load(canonicalPath string) (*cst.Module, error) {
	src, err := os.ReadFile(canonicalPath)
	if err != nil {
		return nil, err
	}
	return l.Parse(canonicalPath, src)
}
