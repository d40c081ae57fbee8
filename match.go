package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/iVampireSP/vmwire/mvvm"
)

// Match is a view-model together with the siblings found for it.
type Match struct {
	ViewModel string         // e.g., "CounterViewModel"
	Ctor      string         // e.g., "NewCounterViewModel"; empty means a zero value is used
	View      string         // e.g., "CounterView"; empty when none matched
	ViewCtor  string         // e.g., "NewCounterView"
	Interface string         // e.g., "ICounterViewModel"; empty when none matched
	Position  token.Position // source location of the view-model type
}

// PackageScan is the result of applying the convention to one package.
type PackageScan struct {
	PkgPath   string
	Name      string
	Dir       string // absolute directory
	HasOutput bool   // the package already contains a generated file
	Matches   []*Match
	Warnings  []string
	Notes     []string // view-models without any sibling
}

func (s *PackageScan) warnf(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

// analyzePackage applies the view-model naming convention to a type-checked package.
//
// Rules:
//   - candidates are non-interface, non-generic named types whose name ends in "ViewModel"
//   - the view is the type named without the trailing "Model"; it needs a
//     New<View>(vm) constructor returning the view and having Init, Update and View methods
//   - the interface is "I" + the view-model name and must be implemented by the
//     value the view-model constructor produces
//   - //vmwire:ignore on a type's doc comment removes it from every role
//
// A view that fails its checks is skipped with a warning. A view-model that does not
// implement its sibling interface is an error.
func analyzePackage(pkg *types.Package, files []*ast.File, fset *token.FileSet) (*PackageScan, []error) {
	scan := &PackageScan{PkgPath: pkg.Path(), Name: pkg.Name()}
	ignored := ignoredTypes(files)
	scope := pkg.Scope()

	var errs []error
	for _, name := range scope.Names() {
		tn, ok := lookupType(scope, name, ignored)
		if !ok {
			continue
		}
		vmName := mvvm.TypeName{PkgPath: pkg.Path(), Name: name}
		if !mvvm.IsViewModelName(vmName.String()) || isInterfaceType(tn.Type()) {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		pos := fset.Position(tn.Pos())
		if named.TypeParams().Len() > 0 {
			scan.warnf("%s: %s is generic, skipped", pos, name)
			continue
		}

		m := &Match{ViewModel: name, Position: pos}
		var produced types.Type = types.NewPointer(named)
		if ctor, value, ok := findConstructor(scope, "New"+name, named); ok {
			m.Ctor = ctor
			if value {
				produced = named
			}
		}

		if view, ok := lookupType(scope, mvvm.ViewNameFor(vmName).Name, ignored); ok && !isInterfaceType(view.Type()) {
			viewCtor, err := findViewConstructor(scope, view, produced)
			if err != nil {
				scan.warnf("%s: view %s skipped: %v", pos, view.Name(), err)
			} else {
				m.View = view.Name()
				m.ViewCtor = viewCtor
			}
		}

		if iface, ok := lookupType(scope, mvvm.InterfaceNameFor(vmName).Name, ignored); ok {
			if it, isIface := iface.Type().Underlying().(*types.Interface); isIface {
				if !types.Implements(produced, it) {
					errs = append(errs, fmt.Errorf("%s: %s does not implement %s",
						pos, types.TypeString(produced, types.RelativeTo(pkg)), iface.Name()))
					continue
				}
				m.Interface = iface.Name()
			}
		}

		if m.View == "" && m.Interface == "" {
			scan.Notes = append(scan.Notes, fmt.Sprintf("%s: %s has no view or interface", pos, name))
			continue
		}
		scan.Matches = append(scan.Matches, m)
	}

	return scan, errs
}

// lookupType finds a non-alias, non-ignored type name in scope.
func lookupType(scope *types.Scope, name string, ignored map[string]bool) (*types.TypeName, bool) {
	if ignored[name] {
		return nil, false
	}
	tn, ok := scope.Lookup(name).(*types.TypeName)
	if !ok || tn.IsAlias() {
		return nil, false
	}
	return tn, true
}

// findConstructor finds a func returning named, *named, or either with a trailing error.
func findConstructor(scope *types.Scope, name string, named *types.Named) (string, bool, bool) {
	fn, ok := scope.Lookup(name).(*types.Func)
	if !ok {
		return "", false, false
	}
	sig := fn.Type().(*types.Signature)
	if sig.TypeParams().Len() > 0 {
		return "", false, false
	}

	results := sig.Results()
	switch {
	case results.Len() == 1:
	case results.Len() == 2 && isErrorType(results.At(1).Type()):
	default:
		return "", false, false
	}

	out := results.At(0).Type()
	if types.Identical(out, named) {
		return name, true, true
	}
	if ptr, ok := out.(*types.Pointer); ok && types.Identical(ptr.Elem(), named) {
		return name, false, true
	}
	return "", false, false
}

// findViewConstructor checks New<View>: func(vm) View or func(vm) *View, where the
// result has the Init, Update and View methods of a bubbletea model.
func findViewConstructor(scope *types.Scope, view *types.TypeName, vm types.Type) (string, error) {
	name := "New" + view.Name()
	fn, ok := scope.Lookup(name).(*types.Func)
	if !ok {
		return "", fmt.Errorf("no %s constructor", name)
	}
	sig := fn.Type().(*types.Signature)
	if sig.TypeParams().Len() > 0 {
		return "", fmt.Errorf("%s is generic", name)
	}
	if sig.Params().Len() != 1 || sig.Results().Len() != 1 || sig.Variadic() {
		return "", fmt.Errorf("%s must be func(<view-model>) %s", name, view.Name())
	}
	if param := sig.Params().At(0).Type(); !types.AssignableTo(vm, param) {
		return "", fmt.Errorf("%s does not accept %s", name, types.TypeString(vm, types.RelativeTo(view.Pkg())))
	}

	out := sig.Results().At(0).Type()
	elem := out
	if ptr, ok := out.(*types.Pointer); ok {
		elem = ptr.Elem()
	}
	if !types.Identical(elem, view.Type()) {
		return "", fmt.Errorf("%s must return %s or *%s", name, view.Name(), view.Name())
	}
	if missing := missingModelMethods(out); len(missing) > 0 {
		return "", fmt.Errorf("%s lacks %v", types.TypeString(out, types.RelativeTo(view.Pkg())), missing)
	}
	return name, nil
}

// missingModelMethods lists the tea.Model methods t does not have.
// Only names and the View result are checked; the generated code's compilation
// catches signature drift.
func missingModelMethods(t types.Type) []string {
	mset := types.NewMethodSet(t)
	var missing []string
	for _, m := range []string{"Init", "Update", "View"} {
		sel := mset.Lookup(nil, m)
		if sel == nil {
			missing = append(missing, m)
			continue
		}
		if m != "View" {
			continue
		}
		sig, ok := sel.Type().(*types.Signature)
		if !ok || sig.Results().Len() != 1 || !isStringType(sig.Results().At(0).Type()) {
			missing = append(missing, m)
		}
	}
	return missing
}

// isErrorType checks if a type is the built-in error interface.
func isErrorType(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}

func isStringType(t types.Type) bool {
	b, ok := t.(*types.Basic)
	return ok && b.Kind() == types.String
}

// isInterfaceType checks if a type's underlying type is an interface.
func isInterfaceType(t types.Type) bool {
	_, ok := t.Underlying().(*types.Interface)
	return ok
}
