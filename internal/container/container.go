package container

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/vk/capwire/internal/capability"
)

var (
	// ErrUnknownService is returned when no definition has the requested id.
	ErrUnknownService = errors.New("container: unknown service")
	// ErrAbstractService is returned when an abstract definition is resolved.
	ErrAbstractService = errors.New("container: abstract service")
	// ErrUnresolvedType is returned when a definition's type is not in the catalog.
	ErrUnresolvedType = errors.New("container: unresolved type")
	// ErrDuplicateDefinition is returned when two definitions share an id.
	ErrDuplicateDefinition = errors.New("container: duplicate definition")
	// ErrCircularReference is returned when a constructor resolves a service
	// that is already being constructed.
	ErrCircularReference = errors.New("container: circular reference")
)

// Definition binds a service id to a concrete type.
type Definition struct {
	ID string
	// TypeName is the fully-qualified type name as written in the manifest.
	TypeName string
	// Type is nil when TypeName is not a catalogued concrete type.
	Type      reflect.Type
	Abstract  bool
	Shared    bool
	Construct capability.Constructor
}

// Resolved reports whether the definition names a known concrete type.
func (d *Definition) Resolved() bool {
	return d.Type != nil
}

// Container resolves service ids into instances.
type Container struct {
	defs   []*Definition
	byID   map[string]*Definition
	shared *cache.Cache
}

// New creates a container over defs, keeping their order.
func New(defs ...*Definition) (*Container, error) {
	c := &Container{
		byID: make(map[string]*Definition, len(defs)),
		// No expiration and no janitor goroutine: shared instances live as
		// long as the container.
		shared: cache.New(cache.NoExpiration, 0),
	}
	for _, def := range defs {
		if def == nil || def.ID == "" {
			return nil, errors.New("container: definition without id")
		}
		if _, exists := c.byID[def.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDefinition, def.ID)
		}
		c.byID[def.ID] = def
		c.defs = append(c.defs, def)
	}
	return c, nil
}

// Definitions returns every definition in declaration order.
func (c *Container) Definitions() []*Definition {
	return slices.Clone(c.defs)
}

// Definition returns the definition registered under id.
func (c *Container) Definition(id string) (*Definition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// Len returns the number of definitions.
func (c *Container) Len() int {
	return len(c.defs)
}

// Resolve returns the instance for id, constructing it if needed.
func (c *Container) Resolve(id string) (any, error) {
	return c.resolve(id, nil)
}

func (c *Container) resolve(id string, chain []string) (any, error) {
	def, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, id)
	}
	if def.Abstract {
		return nil, fmt.Errorf("%w: %q cannot be instantiated", ErrAbstractService, id)
	}
	if def.Type == nil || def.Construct == nil {
		return nil, fmt.Errorf("%w: %q has type %q", ErrUnresolvedType, id, def.TypeName)
	}
	if def.Shared {
		if instance, found := c.shared.Get(id); found {
			return instance, nil
		}
	}
	if slices.Contains(chain, id) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrCircularReference, strings.Join(chain, " -> "), id)
	}

	instance, err := def.Construct(&scope{c: c, chain: append(slices.Clone(chain), id)})
	if err != nil {
		return nil, fmt.Errorf("construct %q: %w", id, err)
	}
	if instance == nil {
		return nil, fmt.Errorf("construct %q: constructor returned nil", id)
	}
	slog.Debug("Constructed service.", "id", id, "type", def.TypeName, "shared", def.Shared)

	if !def.Shared {
		return instance, nil
	}
	// Another caller may have finished first. Its instance wins.
	if err := c.shared.Add(id, instance, cache.NoExpiration); err != nil {
		if existing, found := c.shared.Get(id); found {
			return existing, nil
		}
	}
	return instance, nil
}

// scope is the resolver handed to constructors. It carries the chain of ids
// under construction so that cycles fail instead of recursing forever.
type scope struct {
	c     *Container
	chain []string
}

func (s *scope) Resolve(id string) (any, error) {
	return s.c.resolve(id, s.chain)
}
