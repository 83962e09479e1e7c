package capability

import (
	"fmt"
	"reflect"
	"sync"
)

// Resolver turns an opaque service id into a live instance. It is implemented
// by the object universe and handed to constructors and lazy registries.
type Resolver interface {
	Resolve(id string) (any, error)
}

// Constructor builds an instance of a catalogued concrete type.
type Constructor func(r Resolver) (any, error)

type typeEntry struct {
	t         reflect.Type
	construct Constructor
}

// Catalog holds every type that can be named by a factory target or by a
// service manifest.
type Catalog struct {
	mu    sync.RWMutex
	types map[string]*typeEntry
	order []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		types: make(map[string]*typeEntry),
	}
}

// Interface declares the interface type T.
func Interface[T any](c *Catalog) error {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface {
		return fmt.Errorf("declare interface %s: not an interface", t)
	}
	return c.Register(t, nil)
}

// Concrete declares the concrete type T. A nil construct falls back to a zero
// value (a fresh allocation for pointer types).
func Concrete[T any](c *Catalog, construct func(r Resolver) (T, error)) error {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return fmt.Errorf("declare concrete type %s: is an interface", t)
	}
	var ctor Constructor
	if construct != nil {
		ctor = func(r Resolver) (any, error) {
			return construct(r)
		}
	}
	return c.Register(t, ctor)
}

// Register declares t under its fully-qualified name.
func (c *Catalog) Register(t reflect.Type, construct Constructor) error {
	if t == nil {
		return fmt.Errorf("declare type: nil type")
	}
	name := FQN(t)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.types[name]; exists {
		return fmt.Errorf("declare type %s: %w", name, ErrTypeAlreadyDeclared)
	}
	if construct == nil && t.Kind() != reflect.Interface {
		construct = zeroConstructor(t)
	}
	c.types[name] = &typeEntry{t: t, construct: construct}
	c.order = append(c.order, name)

	return nil
}

// Resolve returns the capability named name. It fails when the name is unknown
// or does not denote an interface.
func (c *Catalog) Resolve(name string) (Capability, error) {
	c.mu.RLock()
	entry, exists := c.types[name]
	c.mu.RUnlock()

	if !exists {
		return Capability{}, fmt.Errorf("%w: %q is not declared", ErrInvalidConfiguration, name)
	}
	if entry.t.Kind() != reflect.Interface {
		return Capability{}, fmt.Errorf("%w: %q is not an interface", ErrInvalidConfiguration, name)
	}
	return Capability{t: entry.t}, nil
}

// IsInterface reports whether name denotes a declared interface.
func (c *Catalog) IsInterface(name string) bool {
	_, err := c.Resolve(name)
	return err == nil
}

// Type returns the declared type for name.
func (c *Catalog) Type(name string) (reflect.Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.types[name]
	if !exists {
		return nil, false
	}
	return entry.t, true
}

// Constructor returns the constructor of the concrete type named name.
func (c *Catalog) Constructor(name string) (Constructor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.types[name]
	if !exists || entry.construct == nil {
		return nil, false
	}
	return entry.construct, true
}

// Implemented returns every declared interface that t implements, in
// declaration order.
func (c *Catalog) Implemented(t reflect.Type) []Capability {
	if t == nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []Capability
	for _, name := range c.order {
		entry := c.types[name]
		if entry.t.Kind() == reflect.Interface && t.Implements(entry.t) {
			result = append(result, Capability{t: entry.t})
		}
	}
	return result
}

// Interfaces returns every declared interface in declaration order.
func (c *Catalog) Interfaces() []Capability {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []Capability
	for _, name := range c.order {
		if entry := c.types[name]; entry.t.Kind() == reflect.Interface {
			result = append(result, Capability{t: entry.t})
		}
	}
	return result
}

func zeroConstructor(t reflect.Type) Constructor {
	return func(Resolver) (any, error) {
		if t.Kind() == reflect.Pointer {
			return reflect.New(t.Elem()).Interface(), nil
		}
		return reflect.New(t).Elem().Interface(), nil
	}
}
