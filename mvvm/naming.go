package mvvm

import "strings"

const (
	viewModelSuffix = "ViewModel"
	modelSuffix     = "Model"
	interfacePrefix = "I"
)

// TypeName identifies a declared type by package path and simple name.
type TypeName struct {
	PkgPath string // e.g., "example.com/app/internal/ui/widgets"
	Name    string // e.g., "WidgetViewModel"
}

// String returns the full name, "<pkgpath>.<name>".
func (n TypeName) String() string {
	if n.PkgPath == "" {
		return n.Name
	}
	return n.PkgPath + "." + n.Name
}

// IsViewModelName reports whether a full type name follows the view-model convention.
func IsViewModelName(fullName string) bool {
	return strings.HasSuffix(fullName, viewModelSuffix)
}

// ViewNameFor derives the view type name from a view-model type name.
// FooViewModel → FooView
func ViewNameFor(vm TypeName) TypeName {
	return TypeName{
		PkgPath: vm.PkgPath,
		Name:    strings.TrimSuffix(vm.Name, modelSuffix),
	}
}

// InterfaceNameFor derives the interface type name from a view-model type name.
// FooViewModel → IFooViewModel, in the same package.
func InterfaceNameFor(vm TypeName) TypeName {
	return TypeName{
		PkgPath: vm.PkgPath,
		Name:    interfacePrefix + vm.Name,
	}
}
