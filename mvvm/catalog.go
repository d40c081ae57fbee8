package mvvm

import "fmt"

// Catalog is the explicit set of types an application declares.
// It keeps declaration order; resolution visits types in that order.
type Catalog struct {
	types []Type
	index map[TypeName]int
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[TypeName]int)}
}

// Declare adds types to the catalog.
//
// Re-declaring the same Go type is idempotent and fills in a constructor or view
// factory the earlier declaration lacked. A different Go type under an already
// declared name is a conflict. Declaration stops at the first error; types before
// it stay declared.
func (c *Catalog) Declare(types ...Type) error {
	for _, t := range types {
		if t.err != nil {
			return t.err
		}
		if i, ok := c.index[t.name]; ok {
			existing := c.types[i]
			if existing.rtype != t.rtype || existing.kind != t.kind {
				return fmt.Errorf("%w: %s", ErrConflictingDeclaration, t.name)
			}
			c.types[i] = existing.merge(t)
			continue
		}
		c.index[t.name] = len(c.types)
		c.types = append(c.types, t)
	}
	return nil
}

// Lookup returns the type declared under name.
func (c *Catalog) Lookup(name TypeName) (Type, bool) {
	i, ok := c.index[name]
	if !ok {
		return Type{}, false
	}
	return c.types[i], true
}

// Types returns the declared types in declaration order.
func (c *Catalog) Types() []Type {
	out := make([]Type, len(c.types))
	copy(out, c.types)
	return out
}

// Len returns the number of declared types.
func (c *Catalog) Len() int {
	return len(c.types)
}
