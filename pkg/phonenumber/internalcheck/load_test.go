package internalcheck

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/drlibphonenumber/dr-libphonenumber-go"

// parsedFile is one non-test source file of a loaded package.
type parsedFile struct {
	path string
	file *ast.File
}

// loadFiles parses the Go files of pattern as written on disk. Files are
// parsed directly rather than through the type checker so that cgo packages
// load without running cgo.
func loadFiles(t *testing.T, pattern string) (*token.FileSet, []parsedFile) {
	t.Helper()

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedFiles}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	fset := token.NewFileSet()
	var files []parsedFile
	for _, pkg := range pkgs {
		paths := append(append([]string{}, pkg.GoFiles...), pkg.IgnoredFiles...)
		for _, path := range paths {
			f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			files = append(files, parsedFile{path: path, file: f})
		}
	}
	if len(files) == 0 {
		t.Fatalf("no files found for %s", pattern)
	}
	return fset, files
}
