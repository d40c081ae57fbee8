package main

import (
	"go/ast"
	"strings"
)

const directivePrefix = "vmwire:"

// Directive kinds
const (
	DirectiveScan    = "scan"    // //vmwire:scan internal/ui/...     (generate.go)
	DirectiveExclude = "exclude" // //vmwire:exclude internal/legacy  (generate.go)
	DirectiveOutput  = "output"  // //vmwire:output zz_vmwire.go      (generate.go)
	DirectiveCatalog = "catalog" // //vmwire:catalog internal/wiring  (generate.go; empty disables)
	DirectiveIgnore  = "ignore"  // //vmwire:ignore                   (type doc comment)
)

// Directive represents a parsed //vmwire: comment.
type Directive struct {
	Kind  string
	Value string
}

// parseDirective parses a single comment line. Unknown kinds are rejected.
func parseDirective(line string) (Directive, bool) {
	text := strings.TrimSpace(line)
	if !strings.HasPrefix(text, "//") {
		return Directive{}, false
	}
	text = strings.TrimSpace(strings.TrimPrefix(text, "//"))
	if !strings.HasPrefix(text, directivePrefix) {
		return Directive{}, false
	}
	text = strings.TrimPrefix(text, directivePrefix)

	kind, value, _ := strings.Cut(text, " ")
	d := Directive{Kind: strings.TrimSpace(kind), Value: strings.TrimSpace(value)}

	switch d.Kind {
	case DirectiveScan, DirectiveExclude, DirectiveOutput, DirectiveCatalog, DirectiveIgnore:
		return d, true
	}
	return Directive{}, false
}

// TypeDirectives extracts //vmwire: directives from a type declaration's doc comments.
// For a single-spec declaration (`type X struct{}`) the doc sits on the GenDecl;
// inside a grouped `type (...)` block only the spec's own doc counts.
func TypeDirectives(decl *ast.GenDecl, spec *ast.TypeSpec) []Directive {
	docs := []*ast.CommentGroup{spec.Doc}
	if !decl.Lparen.IsValid() {
		docs = append(docs, decl.Doc)
	}

	var directives []Directive
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, c := range doc.List {
			if d, ok := parseDirective(c.Text); ok {
				directives = append(directives, d)
			}
		}
	}
	return directives
}

// HasDirective checks if directives contain a specific kind.
func HasDirective(directives []Directive, kind string) bool {
	for _, d := range directives {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// ignoredTypes collects the names of types marked //vmwire:ignore in files.
func ignoredTypes(files []*ast.File) map[string]bool {
	ignored := make(map[string]bool)
	for _, f := range files {
		for _, decl := range f.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if HasDirective(TypeDirectives(gen, ts), DirectiveIgnore) {
					ignored[ts.Name.Name] = true
				}
			}
		}
	}
	return ignored
}
