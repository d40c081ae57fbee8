package main

// Config holds vmwire configuration, populated from conventions, vmwire.yaml and
// generate.go annotations (in that order, later sources win).
type Config struct {
	Module  string   // module path from go.mod
	Scan    []string // package patterns relative to the module root
	Exclude []string // relative package paths (and their subpackages) to skip
	Output  string   // per-package generated file name
	Catalog string   // relative dir of the generated catalog package; "" disables it
}

// FileConfig mirrors vmwire.yaml.
type FileConfig struct {
	Scan    []string `yaml:"scan"`
	Exclude []string `yaml:"exclude"`
	Output  string   `yaml:"output"`
	Catalog *string  `yaml:"catalog"` // pointer so `catalog: ""` can disable it
}

const (
	defaultOutput  = "zz_vmwire.go"
	defaultCatalog = "internal/wiring"
)

// DefaultConfig returns the conventional configuration for module.
func DefaultConfig(module string) *Config {
	return &Config{
		Module: module,
		Scan: []string{
			"internal/...",
			"pkg/...",
		},
		Exclude: []string{},
		Output:  defaultOutput,
		Catalog: defaultCatalog,
	}
}

// apply overlays a vmwire.yaml file onto c.
func (c *Config) apply(f FileConfig) {
	if len(f.Scan) > 0 {
		c.Scan = f.Scan
	}
	c.Exclude = append(c.Exclude, f.Exclude...)
	if f.Output != "" {
		c.Output = f.Output
	}
	if f.Catalog != nil {
		c.Catalog = *f.Catalog
	}
}
