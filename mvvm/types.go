package mvvm

import (
	"fmt"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind tells concrete types from interfaces.
type Kind int

const (
	KindConcrete Kind = iota
	KindInterface
)

func (k Kind) String() string {
	switch k {
	case KindConcrete:
		return "concrete"
	case KindInterface:
		return "interface"
	default:
		return "unknown"
	}
}

// ViewFactory builds the view for a view-model value.
type ViewFactory func(vm any) (tea.Model, error)

// Type is a single catalog declaration.
type Type struct {
	name     TypeName
	kind     Kind
	rtype    reflect.Type // the named type itself, never a pointer
	produced reflect.Type // what the constructor returns: T or *T
	ctor     any
	view     ViewFactory
	err      error
}

var errorType = reflect.TypeFor[error]()

// Concrete declares the named type produced by ctor.
//
// Accepted shapes: func(...) T, func(...) *T, and both with a trailing error.
// The constructor is what a Container calls to build the value.
func Concrete(ctor any) Type {
	if ctor == nil {
		return Type{err: fmt.Errorf("%w: nil", ErrInvalidConstructor)}
	}
	ft := reflect.TypeOf(ctor)
	if ft.Kind() != reflect.Func {
		return Type{err: fmt.Errorf("%w: %s is not a func", ErrInvalidConstructor, ft)}
	}

	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return Type{err: fmt.Errorf("%w: %s must return T, *T or (T, error)", ErrInvalidConstructor, ft)}
	}

	out := ft.Out(0)
	named, err := namedConcrete(out)
	if err != nil {
		return Type{err: fmt.Errorf("%w: %s: %v", ErrInvalidConstructor, ft, err)}
	}

	return Type{
		name:     nameOf(named),
		kind:     KindConcrete,
		rtype:    named,
		produced: out,
		ctor:     ctor,
	}
}

// Interface declares the interface type T.
func Interface[T any]() Type {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Interface {
		return Type{err: fmt.Errorf("%w: %s", ErrNotInterface, rt)}
	}
	if rt.Name() == "" {
		return Type{err: fmt.Errorf("%w: %s is not a named interface", ErrNotInterface, rt)}
	}
	return Type{
		name:     nameOf(rt),
		kind:     KindInterface,
		rtype:    rt,
		produced: rt,
	}
}

// View declares the view type V, built from a view-model by ctor.
// ctor is only reachable through the view factory; the declared type has no
// constructor unless Concrete declares one too.
func View[VM any, V tea.Model](ctor func(VM) V) Type {
	if ctor == nil {
		return Type{err: fmt.Errorf("%w: nil view constructor", ErrInvalidConstructor)}
	}
	out := reflect.TypeFor[V]()
	named, err := namedConcrete(out)
	if err != nil {
		return Type{err: fmt.Errorf("%w: view %s: %v", ErrInvalidConstructor, out, err)}
	}

	name := nameOf(named)
	want := reflect.TypeFor[VM]()
	factory := func(vm any) (tea.Model, error) {
		typed, ok := vm.(VM)
		if !ok {
			return nil, fmt.Errorf("%w: %s wants %s, got %T", ErrViewModelMismatch, name, want, vm)
		}
		return ctor(typed), nil
	}

	return Type{
		name:     name,
		kind:     KindConcrete,
		rtype:    named,
		produced: out,
		view:     factory,
	}
}

// Name returns the declared type's name.
func (t Type) Name() TypeName { return t.name }

// Kind returns whether the type is concrete or an interface.
func (t Type) Kind() Kind { return t.kind }

// ReflectType returns the named type. For pointer-producing constructors this is the element type.
func (t Type) ReflectType() reflect.Type { return t.rtype }

// Constructor returns the constructor func, or nil for interfaces and views.
func (t Type) Constructor() any { return t.ctor }

// ViewFactory returns the view factory, or nil when the type was not declared as a view.
func (t Type) ViewFactory() ViewFactory { return t.view }

// Err returns the declaration error, if any.
func (t Type) Err() error { return t.err }

// implements reports whether values built by t satisfy iface.
func (t Type) implements(iface Type) bool {
	if t.produced == nil || iface.rtype == nil {
		return false
	}
	return t.produced.Implements(iface.rtype)
}

// merge fills in what t lacks from other. Both describe the same reflect.Type.
func (t Type) merge(other Type) Type {
	if t.ctor == nil {
		t.ctor = other.ctor
		t.produced = other.produced
	}
	if t.view == nil {
		t.view = other.view
	}
	return t
}

func namedConcrete(rt reflect.Type) (reflect.Type, error) {
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() == reflect.Interface {
		return nil, fmt.Errorf("returns interface %s", rt)
	}
	if rt.Name() == "" {
		return nil, fmt.Errorf("returns unnamed type %s", rt)
	}
	return rt, nil
}

func nameOf(rt reflect.Type) TypeName {
	return TypeName{PkgPath: rt.PkgPath(), Name: rt.Name()}
}
