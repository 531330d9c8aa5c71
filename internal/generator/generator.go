package generator

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

const (
	// DefaultFileName is the test file written next to the initializers.
	DefaultFileName = "reportportal_test.go"
)

// Options selects where the suite file is generated and what it runs.
type Options struct {
	Dir      string   // package directory; defaults to the working directory
	Features []string // feature paths relative to Dir; defaults to "features"
	Tags     string   // godog tag expression
	FileName string   // defaults to DefaultFileName
}

// Generate scans opts.Dir for godog initializers and writes a test file
// running them as a godog suite reporting to ReportPortal. It returns the
// path of the written file.
func Generate(ctx context.Context, scanner InitializerScanner, opts Options) (string, error) {
	dir := opts.Dir
	if strings.TrimSpace(dir) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}

	fileName := opts.FileName
	if fileName == "" {
		fileName = DefaultFileName
	}

	output, err := scanner.ScanInitializers(ctx, dir)
	if err != nil {
		return "", err
	}
	if len(output.ScenarioInitializers) == 0 {
		return "", fmt.Errorf("no func(*godog.ScenarioContext) found in %s", dir)
	}

	// Detect package name and full import path of the target directory
	pkgName, pkgPath, detectErr := detectPackage(dir, fileName)
	if detectErr != nil {
		slog.Warn("could not detect package", "dir", dir, "err", detectErr)
	}
	if output.PackageName == "" {
		output.PackageName = pkgName
	}
	if pkgPath != "" {
		output.CurrentPackagePath = pkgPath
	}

	output.FeaturePaths = opts.Features
	if len(output.FeaturePaths) == 0 {
		output.FeaturePaths = []string{"features"}
	}
	output.Tags = opts.Tags

	target := filepath.Join(dir, fileName)
	file, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := output.Generate(file); err != nil {
		return "", fmt.Errorf("cannot write %s: %w", target, err)
	}

	return target, nil
}

// detectPackage detects the Go package name from Go files in dir and the
// full import path by combining the module path from go.mod
// with the relative directory.
func detectPackage(dir, generated string) (pkgName string, pkgPath string, err error) {
	// 1. Detect package name from Go files in dir
	pkgName, err = detectPackageName(dir, generated)
	if err != nil {
		return "", "", err
	}

	// 2. Detect full import path from go.mod
	pkgPath, err = detectImportPath(dir)
	if err != nil {
		return pkgName, "", err
	}

	return pkgName, pkgPath, nil
}

// detectPackageName detects the Go package name for the given directory.
// It first tries to read the package clause from existing Go files.
// If no Go files exist, it falls back to deriving the name from the directory
// path (or the module path for the module root).
func detectPackageName(dir, generated string) (string, error) {
	fset := token.NewFileSet()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		// Skip the files we generate
		if name == generated {
			continue
		}

		filePath := filepath.Join(dir, name)
		f, parseErr := parser.ParseFile(fset, filePath, nil, parser.PackageClauseOnly)
		if parseErr != nil {
			continue
		}
		if f.Name != nil && f.Name.Name != "" {
			return f.Name.Name, nil
		}
	}

	// No Go files found â€” derive package name from directory or module path.
	return packageNameFromDir(dir)
}

// packageNameFromDir derives a valid Go package name from the directory path.
// At the module root it uses the last segment of the module path from go.mod.
// Otherwise it uses the directory name, sanitising characters that are invalid
// in Go identifiers (hyphens, dots, etc.).
func packageNameFromDir(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	// Try to use the module path when we're at the module root.
	goModPath := filepath.Join(absDir, "go.mod")
	if data, readErr := os.ReadFile(goModPath); readErr == nil {
		modFile, parseErr := modfile.Parse(goModPath, data, nil)
		if parseErr == nil && modFile.Module != nil {
			base := filepath.Base(modFile.Module.Mod.Path)
			if name := sanitizePackageName(base); name != "" {
				return name, nil
			}
		}
	}

	// Fall back to the directory name.
	base := filepath.Base(absDir)
	if name := sanitizePackageName(base); name != "" {
		return name, nil
	}

	return "", fmt.Errorf("cannot derive package name from directory %s", dir)
}

// sanitizePackageName turns a raw name (directory segment or module path
// segment) into a valid Go package name. Invalid characters such as hyphens
// and dots are replaced with underscores, and leading digits are prefixed
// with an underscore.
func sanitizePackageName(raw string) string {
	if raw == "" || raw == "." || raw == "/" {
		return ""
	}

	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			// Go package names are conventionally lowercase.
			b.WriteRune(r - 'A' + 'a')
		case r == '-' || r == '.':
			if i == 0 {
				continue // drop leading separator
			}
			b.WriteRune('_')
		default:
			// Drop other characters.
		}
	}

	name := b.String()
	if name == "" {
		return ""
	}
	// A package name must not start with a digit.
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

// detectImportPath walks up from dir looking for go.mod, then computes the
// full import path as module_path + relative_directory.
func detectImportPath(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	// Walk up looking for go.mod
	current := absDir
	for {
		goModPath := filepath.Join(current, "go.mod")
		data, readErr := os.ReadFile(goModPath)
		if readErr == nil {
			modFile, parseErr := modfile.Parse(goModPath, data, nil)
			if parseErr != nil {
				return "", fmt.Errorf("cannot parse go.mod: %w", parseErr)
			}

			modulePath := modFile.Module.Mod.Path
			rel, relErr := filepath.Rel(current, absDir)
			if relErr != nil {
				return "", relErr
			}

			if rel == "." {
				return modulePath, nil
			}
			return modulePath + "/" + filepath.ToSlash(rel), nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("go.mod not found in any parent of %s", dir)
		}
		current = parent
	}
}
