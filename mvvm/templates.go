package mvvm

import (
	"fmt"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyPolicy decides how template keys are derived from view-model names.
type KeyPolicy int

const (
	// KeyQualified keys templates by package path and type name.
	KeyQualified KeyPolicy = iota
	// KeySimple keys templates by type name only. Same-named view-models in
	// different packages share a key; the first one registered keeps it.
	KeySimple
)

// TemplateKey is the data-type key a template is stored under.
type TemplateKey struct {
	PkgPath string
	Name    string
}

func (k TemplateKey) String() string {
	if k.PkgPath == "" {
		return k.Name
	}
	return k.PkgPath + "." + k.Name
}

// Template maps a view-model type to the view that presents it.
type Template struct {
	DataType TypeName
	ViewType TypeName
	factory  ViewFactory
}

// Build creates the view for vm.
func (t Template) Build(vm any) (tea.Model, error) {
	if t.factory == nil {
		return nil, fmt.Errorf("%w: %s has no view factory", ErrMalformedTemplate, t.ViewType)
	}
	return t.factory(vm)
}

// Templates is the application's template store. It is not safe for concurrent writes;
// it is filled once at start-up and read afterwards.
type Templates struct {
	policy  KeyPolicy
	entries map[TemplateKey]Template
	order   []TemplateKey
}

// TemplatesOption configures a Templates store.
type TemplatesOption func(*Templates)

// WithKeyPolicy sets how keys are derived. The default is KeyQualified.
func WithKeyPolicy(p KeyPolicy) TemplatesOption {
	return func(t *Templates) { t.policy = p }
}

// NewTemplates creates an empty store.
func NewTemplates(opts ...TemplatesOption) *Templates {
	t := &Templates{entries: make(map[TemplateKey]Template)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Key derives the template key for a view-model type name.
func (t *Templates) Key(dataType TypeName) TemplateKey {
	if t.policy == KeySimple {
		return TemplateKey{Name: dataType.Name}
	}
	return TemplateKey{PkgPath: dataType.PkgPath, Name: dataType.Name}
}

// Contains reports whether key is taken.
func (t *Templates) Contains(key TemplateKey) bool {
	_, ok := t.entries[key]
	return ok
}

// Add stores tpl under key. An existing entry is never replaced.
func (t *Templates) Add(key TemplateKey, tpl Template) error {
	if t.Contains(key) {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	t.entries[key] = tpl
	t.order = append(t.order, key)
	return nil
}

// Lookup returns the template stored under key.
func (t *Templates) Lookup(key TemplateKey) (Template, bool) {
	tpl, ok := t.entries[key]
	return tpl, ok
}

// Keys returns the keys in insertion order.
func (t *Templates) Keys() []TemplateKey {
	out := make([]TemplateKey, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of stored templates.
func (t *Templates) Len() int {
	return len(t.entries)
}

// ViewFor builds the view registered for vm's dynamic type.
func (t *Templates) ViewFor(vm any) (tea.Model, error) {
	rt := reflect.TypeOf(vm)
	if rt == nil {
		return nil, fmt.Errorf("%w: nil", ErrNoTemplate)
	}
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	name := nameOf(rt)

	tpl, ok := t.entries[t.Key(name)]
	if !ok || tpl.DataType != name {
		return nil, fmt.Errorf("%w: %s", ErrNoTemplate, name)
	}
	return tpl.Build(vm)
}
