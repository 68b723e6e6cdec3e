package jni

import (
	"debug/elf"
	"debug/macho"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanExports returns the cgo "//export" names declared by the non-test Go
// files in dir, sorted.
func ScanExports(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		for _, group := range file.Comments {
			for _, c := range group.List {
				if sym, ok := strings.CutPrefix(c.Text, "//export "); ok {
					names = append(names, strings.TrimSpace(sym))
				}
			}
		}
	}

	sort.Strings(names)
	return names, nil
}

// ReadLibrarySymbols returns the names of the dynamic symbols defined by an
// ELF or Mach-O shared library.
func ReadLibrarySymbols(path string) ([]string, error) {
	if f, err := elf.Open(path); err == nil {
		defer f.Close()
		syms, err := f.DynamicSymbols()
		if err != nil {
			return nil, fmt.Errorf("failed to read dynamic symbols of %s: %w", path, err)
		}
		names := make([]string, 0, len(syms))
		for _, s := range syms {
			if s.Section != elf.SHN_UNDEF {
				names = append(names, s.Name)
			}
		}
		return names, nil
	}

	if f, err := macho.Open(path); err == nil {
		defer f.Close()
		if f.Symtab == nil {
			return nil, fmt.Errorf("%s has no symbol table", path)
		}
		var names []string
		for _, s := range f.Symtab.Syms {
			// N_EXT set and defined in a section
			if s.Type&0x01 != 0 && s.Sect != 0 {
				names = append(names, strings.TrimPrefix(s.Name, "_"))
			}
		}
		return names, nil
	}

	return nil, fmt.Errorf("%s is not an ELF or Mach-O shared library", path)
}
