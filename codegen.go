package main

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

const mvvmImportPath = "github.com/iVampireSP/vmwire/mvvm"

// Entry points of the generated files.
const (
	declareFunc = "DeclareViewModels" // per-package file
	catalogFunc = "Catalog"           // catalog package
)

// GeneratedFile is a file vmwire writes, or removes when Content is nil.
type GeneratedFile struct {
	Name    string // slash-separated, relative to the module root
	Content []byte
}

// Remove reports whether the file should be deleted rather than written.
func (f GeneratedFile) Remove() bool {
	return f.Content == nil
}

// CodeGen renders the per-package declaration files and the catalog package.
type CodeGen struct {
	cfg        *Config
	scans      []*PackageScan
	moduleRoot string
}

// NewCodeGen creates a code generator.
func NewCodeGen(cfg *Config, scans []*PackageScan, moduleRoot string) *CodeGen {
	return &CodeGen{cfg: cfg, scans: scans, moduleRoot: moduleRoot}
}

// Generate renders all files. Packages without matches get their stale generated
// file removed.
func (g *CodeGen) Generate() ([]GeneratedFile, error) {
	var (
		files   []GeneratedFile
		catalog []*PackageScan
	)

	for _, scan := range g.scans {
		rel, err := filepath.Rel(g.moduleRoot, scan.Dir)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", scan.PkgPath, err)
		}
		name := path.Join(filepath.ToSlash(rel), g.cfg.Output)

		if len(scan.Matches) == 0 {
			if scan.HasOutput {
				files = append(files, GeneratedFile{Name: name})
			}
			continue
		}

		content, err := g.packageFile(scan, name)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", scan.PkgPath, err)
		}
		files = append(files, GeneratedFile{Name: name, Content: content})

		// main packages cannot be imported by the catalog.
		if scan.Name != "main" {
			catalog = append(catalog, scan)
		}
	}

	if g.cfg.Catalog != "" {
		name := path.Join(g.cfg.Catalog, g.cfg.Output)
		content, err := g.catalogFile(catalog, name)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		files = append(files, GeneratedFile{Name: name, Content: content})
	}

	return files, nil
}

var funcs = template.FuncMap{
	"concrete": func(m *Match) string {
		switch {
		case m.Ctor != "":
			return "mvvm.Concrete(" + m.Ctor + ")"
		default:
			return fmt.Sprintf("mvvm.Concrete(func() *%[1]s { return &%[1]s{} })", m.ViewModel)
		}
	},
}

var packageTmpl = template.Must(template.New("package").Funcs(funcs).Parse(`// Code generated by vmwire. DO NOT EDIT.

package {{.Name}}

import "{{.MVVM}}"

// DeclareViewModels adds the view-models of this package, with their views and
// interfaces, to c.
func DeclareViewModels(c *mvvm.Catalog) error {
	return c.Declare(
{{- range .Matches}}
		{{concrete .}},
{{- if .View}}
		mvvm.View({{.ViewCtor}}),
{{- end}}
{{- if .Interface}}
		mvvm.Interface[{{.Interface}}](),
{{- end}}
{{- end}}
	)
}
`))

var catalogTmpl = template.Must(template.New("catalog").Parse(`// Code generated by vmwire. DO NOT EDIT.

package {{.Name}}

import (
	"{{.MVVM}}"
{{range .Imports}}
	{{.Alias}} "{{.Path}}"
{{- end}}
)

// Catalog declares every view-model vmwire found in the module.
func Catalog() (*mvvm.Catalog, error) {
	c := mvvm.NewCatalog()
	for _, declare := range []func(*mvvm.Catalog) error{
{{- range .Imports}}
		{{.Alias}}.DeclareViewModels,
{{- end}}
	} {
		if err := declare(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
`))

func (g *CodeGen) packageFile(scan *PackageScan, filename string) ([]byte, error) {
	data := struct {
		Name    string
		MVVM    string
		Matches []*Match
	}{
		Name:    scan.Name,
		MVVM:    mvvmImportPath,
		Matches: scan.Matches,
	}
	return render(packageTmpl, data, filename)
}

type catalogImport struct {
	Alias string
	Path  string
}

func (g *CodeGen) catalogFile(scans []*PackageScan, filename string) ([]byte, error) {
	used := map[string]string{"mvvm": mvvmImportPath}
	var imps []catalogImport
	for _, scan := range scans {
		alias := scan.Name
		if a := ImportAlias(scan.PkgPath, scan.Name, used); a != "" {
			alias = a
		}
		used[alias] = scan.PkgPath
		imps = append(imps, catalogImport{Alias: alias, Path: scan.PkgPath})
	}

	data := struct {
		Name    string
		MVVM    string
		Imports []catalogImport
	}{
		Name:    catalogPackageName(g.cfg.Catalog),
		MVVM:    mvvmImportPath,
		Imports: imps,
	}
	return render(catalogTmpl, data, filename)
}

func render(tmpl *template.Template, data any, filename string) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", filename, err)
	}
	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w\n%s", filename, err, buf.String())
	}
	return out, nil
}

// catalogPackageName derives a package name from the catalog directory.
// "internal/app-wiring" → "app_wiring"
func catalogPackageName(dir string) string {
	name := path.Base(dir)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	if name == "" || name == "/" || (name[0] >= '0' && name[0] <= '9') {
		name = "wiring" + name
	}
	return name
}

// ImportAlias returns the import alias needed for a package, or empty if default is fine.
func ImportAlias(pkgPath, pkgName string, used map[string]string) string {
	existingPath, ok := used[pkgName]
	if !ok || existingPath == pkgPath {
		return ""
	}
	// Need alias: use parent dir + pkg name
	parts := strings.Split(pkgPath, "/")
	if len(parts) >= 2 {
		parent := sanitizeIdent(parts[len(parts)-2])
		alias := parent + pkgName
		if _, exists := used[alias]; !exists {
			return alias
		}
		// Fallback to more segments
		if len(parts) >= 3 {
			alias = sanitizeIdent(parts[len(parts)-3]) + alias
			if _, exists := used[alias]; !exists {
				return alias
			}
		}
	}
	for i := 2; ; i++ {
		alias := fmt.Sprintf("%s%d", pkgName, i)
		if _, exists := used[alias]; !exists {
			return alias
		}
	}
}

func sanitizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return -1
	}, s)
}
