package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Scanner discovers view-models by loading and analyzing Go packages.
type Scanner struct {
	cfg        *Config
	moduleRoot string
	gitignore  []GitignorePattern
	logger     *slog.Logger
}

// NewScanner creates a scanner.
func NewScanner(cfg *Config, moduleRoot string, gitignore []GitignorePattern, logger *slog.Logger) *Scanner {
	return &Scanner{
		cfg:        cfg,
		moduleRoot: moduleRoot,
		gitignore:  gitignore,
		logger:     logger,
	}
}

// Scan loads the configured packages and applies the naming convention to each.
// Packages are returned sorted by import path.
func (s *Scanner) Scan() ([]*PackageScan, error) {
	patterns := s.buildPatterns()
	if len(patterns) == 0 {
		return nil, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo |
			packages.NeedSyntax | packages.NeedFiles,
		Dir:       s.moduleRoot,
		ParseFile: s.parseFile,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var loadErrs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			loadErrs = append(loadErrs, e.Error())
		}
	}
	if len(loadErrs) > 0 {
		return nil, fmt.Errorf("package errors:\n  %s", strings.Join(loadErrs, "\n  "))
	}

	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].PkgPath < pkgs[j].PkgPath
	})

	var (
		scans []*PackageScan
		errs  []error
	)
	for _, pkg := range pkgs {
		if pkg.Types == nil || len(pkg.GoFiles) == 0 {
			continue
		}
		if s.shouldExclude(pkg.PkgPath) {
			s.logger.Debug("package excluded", "package", pkg.PkgPath)
			continue
		}

		scan, pkgErrs := analyzePackage(pkg.Types, pkg.Syntax, pkg.Fset)
		scan.Dir = filepath.Dir(pkg.GoFiles[0])
		scan.HasOutput = s.hasOutput(pkg.GoFiles)
		errs = append(errs, pkgErrs...)
		scans = append(scans, scan)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return scans, nil
}

// parseFile parses sources for type checking. Files vmwire generated earlier are
// reduced to a stub of their entry points so stale declarations never break
// loading while code calling DeclareViewModels or Catalog still type-checks.
func (s *Scanner) parseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if filepath.Base(filename) != s.cfg.Output {
		return parser.ParseFile(fset, filename, src, parser.AllErrors|parser.ParseComments)
	}
	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		// Hand-mangled output: the package clause is all that is needed.
		return parser.ParseFile(fset, filename, src, parser.PackageClauseOnly)
	}
	return generatedStub(f), nil
}

// generatedStub keeps the generated entry points with their signatures and a
// panicking body. Only the mvvm import survives; the others are referenced by the
// dropped bodies alone.
func generatedStub(f *ast.File) *ast.File {
	var funcs []ast.Decl
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || (fn.Name.Name != declareFunc && fn.Name.Name != catalogFunc) {
			continue
		}
		fn.Doc = nil
		fn.Body = &ast.BlockStmt{List: []ast.Stmt{
			&ast.ExprStmt{X: &ast.CallExpr{
				Fun:  ast.NewIdent("panic"),
				Args: []ast.Expr{&ast.BasicLit{Kind: token.STRING, Value: `"vmwire: stale generated code"`}},
			}},
		}}
		funcs = append(funcs, fn)
	}

	var (
		decls   []ast.Decl
		imports []*ast.ImportSpec
	)
	if len(funcs) > 0 {
		for _, decl := range f.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.IMPORT {
				continue
			}
			var specs []ast.Spec
			for _, spec := range gen.Specs {
				imp := spec.(*ast.ImportSpec)
				if path, err := strconv.Unquote(imp.Path.Value); err == nil && path == mvvmImportPath {
					specs = append(specs, imp)
					imports = append(imports, imp)
				}
			}
			if len(specs) > 0 {
				gen.Doc = nil
				gen.Specs = specs
				decls = append(decls, gen)
			}
		}
	}

	f.Decls = append(decls, funcs...)
	f.Imports = imports
	f.Comments = nil
	f.Doc = nil
	return f
}

func (s *Scanner) hasOutput(goFiles []string) bool {
	for _, f := range goFiles {
		if filepath.Base(f) == s.cfg.Output {
			return true
		}
	}
	return false
}

// buildPatterns converts scan config paths to Go package patterns.
func (s *Scanner) buildPatterns() []string {
	var patterns []string
	for _, scan := range s.cfg.Scan {
		p := strings.Trim(strings.TrimPrefix(filepath.ToSlash(scan), "./"), "/")
		switch p {
		case "", ".":
			patterns = append(patterns, s.cfg.Module)
		default:
			patterns = append(patterns, s.cfg.Module+"/"+p)
		}
	}
	return patterns
}

// shouldExclude checks if a package path should be skipped: explicit excludes,
// the generated catalog package, and .gitignore matches.
func (s *Scanner) shouldExclude(pkgPath string) bool {
	rel := strings.TrimPrefix(strings.TrimPrefix(pkgPath, s.cfg.Module), "/")

	if s.cfg.Catalog != "" && rel == s.cfg.Catalog {
		return true
	}
	for _, exc := range s.cfg.Exclude {
		excPath := strings.TrimPrefix(filepath.ToSlash(exc), "./")
		excPath = strings.Trim(strings.TrimSuffix(excPath, "/..."), "/")
		if rel == excPath || strings.HasPrefix(rel, excPath+"/") {
			return true
		}
	}
	return rel != "" && IsGitignored(rel, s.gitignore)
}
