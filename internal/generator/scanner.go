package generator

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	ScenarioContextType = "ScenarioContext"
	SuiteContextType    = "TestSuiteContext"
)

// GoSourceScanner finds godog initializers in the Go files of one package
// directory, test files included.
type GoSourceScanner struct {
	// Skip lists file names left out of the scan, typically the generated file.
	Skip []string
}

func NewGoSourceScanner(skip ...string) *GoSourceScanner {
	return &GoSourceScanner{Skip: skip}
}

// ScanInitializers returns the top-level functions of dir whose only
// parameter is *godog.ScenarioContext or *godog.TestSuiteContext, sorted by
// name. Their package path is left empty since they share the package of
// the generated file, which takes the package name of the first file
// holding an initializer.
func (g *GoSourceScanner) ScanInitializers(ctx context.Context, dir string) (*Output, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	output := &Output{}
	fset := token.NewFileSet()
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || g.skipped(name) {
			continue
		}

		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", name, err)
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil {
				continue
			}

			kind := initializerKind(fn, file.Imports)
			switch kind {
			case ScenarioContextType:
				output.ScenarioInitializers = append(output.ScenarioInitializers, &FunctionLocator{FunctionName: fn.Name.Name})
			case SuiteContextType:
				output.SuiteInitializers = append(output.SuiteInitializers, &FunctionLocator{FunctionName: fn.Name.Name})
			}
			if kind != "" && output.PackageName == "" {
				output.PackageName = file.Name.Name
			}
		}
	}

	sortLocators(output.ScenarioInitializers)
	sortLocators(output.SuiteInitializers)

	return output, nil
}

func (g *GoSourceScanner) skipped(name string) bool {
	for _, s := range g.Skip {
		if s == name {
			return true
		}
	}
	return false
}

// initializerKind reports which godog context fn takes, or "" when fn is
// not an initializer.
func initializerKind(fn *ast.FuncDecl, imports []*ast.ImportSpec) string {
	params := fn.Type.Params.List
	if len(params) != 1 || len(params[0].Names) > 1 || fn.Type.Results != nil || fn.Type.TypeParams != nil {
		return ""
	}

	star, ok := params[0].Type.(*ast.StarExpr)
	if !ok {
		return ""
	}
	selector, ok := star.X.(*ast.SelectorExpr)
	if !ok {
		return ""
	}
	pkg, ok := selector.X.(*ast.Ident)
	if !ok || importPathOf(pkg.Name, imports) != godogPackage {
		return ""
	}

	switch selector.Sel.Name {
	case ScenarioContextType, SuiteContextType:
		return selector.Sel.Name
	default:
		return ""
	}
}

// importPathOf resolves a package qualifier to its import path. An import
// without alias is known by the last element of its path.
func importPathOf(qualifier string, imports []*ast.ImportSpec) string {
	for _, spec := range imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		if spec.Name != nil {
			if spec.Name.Name == qualifier {
				return importPath
			}
			continue
		}
		if path.Base(importPath) == qualifier {
			return importPath
		}
	}
	return ""
}

func sortLocators(locators []*FunctionLocator) {
	sort.Slice(locators, func(i, j int) bool {
		return locators[i].FunctionName < locators[j].FunctionName
	})
}
