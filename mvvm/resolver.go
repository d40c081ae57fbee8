package mvvm

import (
	"fmt"
	"log/slog"
	"os"
)

// Binding is an interface → implementation registration made by the resolver.
type Binding struct {
	Interface      TypeName
	Implementation TypeName
}

// Report lists what a Resolve pass registered.
type Report struct {
	Templates  []Template
	Bindings   []Binding
	Duplicates []TemplateKey // keys that were already taken and left alone
}

// Resolver applies the view-model naming convention to a catalog.
type Resolver struct {
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger. The default writes text records to stdout.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve registers a template and an interface binding for every concrete
// view-model in c whose siblings are declared.
//
// Rules, per qualifying type (concrete, full name ending in "ViewModel"):
//   - view FooView found → template added under templates.Key(FooViewModel),
//     unless the key is taken; then the collision is logged and skipped
//   - interface IFooViewModel found → container.RegisterType(IFooViewModel, FooViewModel)
//
// A matched view that cannot build templates, or a binding the container rejects,
// aborts the pass. Registrations made before the failure are kept. A nil templates
// or container skips that half of the convention.
func (r *Resolver) Resolve(c *Catalog, templates *Templates, container Container) (*Report, error) {
	report := &Report{}
	if c == nil {
		return report, nil
	}

	for _, t := range c.Types() {
		if t.kind != KindConcrete || !IsViewModelName(t.name.String()) {
			continue
		}

		if templates != nil {
			if err := r.addTemplate(c, templates, t, report); err != nil {
				return report, err
			}
		}
		if container != nil {
			if err := r.bindInterface(c, container, t, report); err != nil {
				return report, err
			}
		}
	}

	r.logger.Debug("view-models resolved",
		"templates", len(report.Templates),
		"bindings", len(report.Bindings),
		"duplicates", len(report.Duplicates))
	return report, nil
}

func (r *Resolver) addTemplate(c *Catalog, templates *Templates, vm Type, report *Report) error {
	view, ok := c.Lookup(ViewNameFor(vm.name))
	if !ok {
		r.logger.Debug("no view for view-model", "view_model", vm.name.String())
		return nil
	}
	if view.kind != KindConcrete || view.view == nil {
		return fmt.Errorf("%w: %s → %s: view not declared with a view constructor",
			ErrMalformedTemplate, vm.name, view.name)
	}

	tpl := Template{DataType: vm.name, ViewType: view.name, factory: view.view}
	key := templates.Key(vm.name)
	if templates.Contains(key) {
		r.logger.Info("duplicated template key", "key", key.String())
		report.Duplicates = append(report.Duplicates, key)
		return nil
	}
	if err := templates.Add(key, tpl); err != nil {
		return err
	}
	report.Templates = append(report.Templates, tpl)
	return nil
}

func (r *Resolver) bindInterface(c *Catalog, container Container, vm Type, report *Report) error {
	iface, ok := c.Lookup(InterfaceNameFor(vm.name))
	if !ok || iface.kind != KindInterface {
		r.logger.Debug("no interface for view-model", "view_model", vm.name.String())
		return nil
	}
	if !vm.implements(iface) {
		return fmt.Errorf("%w: %s does not implement %s", ErrNotImplemented, vm.name, iface.name)
	}
	if err := container.RegisterType(iface, vm); err != nil {
		return fmt.Errorf("register %s: %w", iface.name, err)
	}
	report.Bindings = append(report.Bindings, Binding{Interface: iface.name, Implementation: vm.name})
	return nil
}
