package mvvm

import (
	"fmt"
	"reflect"

	"go.uber.org/dig"
)

// Container receives interface → implementation registrations.
type Container interface {
	RegisterType(iface, impl Type) error
}

// ContainerFunc adapts a function to Container.
type ContainerFunc func(iface, impl Type) error

func (f ContainerFunc) RegisterType(iface, impl Type) error {
	return f(iface, impl)
}

// DigContainer registers bindings in a dig container.
// Each binding provides the implementation's constructor as the interface only,
// so lifetime is dig's: one instance per container.
type DigContainer struct {
	c *dig.Container
}

// NewDigContainer wraps c. A nil c gets a fresh container.
func NewDigContainer(c *dig.Container) *DigContainer {
	if c == nil {
		c = dig.New()
	}
	return &DigContainer{c: c}
}

// Dig returns the wrapped container.
func (d *DigContainer) Dig() *dig.Container {
	return d.c
}

// RegisterType provides impl's constructor as iface.
func (d *DigContainer) RegisterType(iface, impl Type) error {
	if iface.kind != KindInterface || iface.rtype == nil {
		return fmt.Errorf("%w: %s", ErrNotInterface, iface.name)
	}
	if impl.ctor == nil {
		return fmt.Errorf("%w: %s has no constructor", ErrInvalidConstructor, impl.name)
	}

	// dig.As wants a pointer to the interface type.
	target := reflect.New(iface.rtype).Interface()
	if err := d.c.Provide(impl.ctor, dig.As(target)); err != nil {
		return fmt.Errorf("provide %s as %s: %w", impl.name, iface.name, err)
	}
	return nil
}

// Get resolves T from the container.
func Get[T any](d *DigContainer) (T, error) {
	var out T
	err := d.c.Invoke(func(v T) {
		out = v
	})
	return out, err
}
