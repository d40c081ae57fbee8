// Package mvvm wires view-models to their views and interfaces by naming convention.
//
// A Catalog lists the types an application declares. For every concrete type whose
// name ends in "ViewModel" the Resolver looks for two siblings in the same package:
//
//   - the view, named by dropping the trailing "Model" (FooViewModel → FooView),
//     which becomes a Template keyed by the view-model type;
//   - the interface, named "I" + the view-model name (IFooViewModel), which is bound
//     to the view-model in a dependency-injection Container.
//
// Both lookups are independent. Missing siblings are skipped. A template key that is
// already taken is logged and the first registration is kept.
//
// Catalogs are normally filled by code that the vmwire generator writes:
//
//	//go:generate go run github.com/iVampireSP/vmwire@latest
//
// but they can be declared by hand just as well:
//
//	c := mvvm.NewCatalog()
//	err := c.Declare(
//		mvvm.Concrete(NewFooViewModel),
//		mvvm.Interface[IFooViewModel](),
//		mvvm.View(NewFooView),
//	)
//
//	templates := mvvm.NewTemplates()
//	container := mvvm.NewDigContainer(dig.New())
//	report, err := mvvm.NewResolver().Resolve(c, templates, container)
package mvvm
