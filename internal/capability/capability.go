package capability

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidConfiguration indicates that a declared target does not name an
	// existing interface.
	ErrInvalidConfiguration = errors.New("capability: invalid configuration")
	// ErrTypeAlreadyDeclared indicates a second declaration under the same name.
	ErrTypeAlreadyDeclared = errors.New("capability: type already declared")
)

// Capability is an interface type that registrable entries must satisfy.
type Capability struct {
	t reflect.Type
}

// Of returns the capability for the interface type T.
// It panics when T is not an interface, which is a programming error.
func Of[T any]() Capability {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface {
		panic(fmt.Sprintf("capability: %s is not an interface", t))
	}
	return Capability{t: t}
}

// Name returns the fully-qualified name of the interface.
func (c Capability) Name() string {
	return FQN(c.t)
}

// Type returns the underlying interface type.
func (c Capability) Type() reflect.Type {
	return c.t
}

// IsZero reports whether c is the zero Capability.
func (c Capability) IsZero() bool {
	return c.t == nil
}

// SatisfiedBy reports whether values of type t implement the capability.
func (c Capability) SatisfiedBy(t reflect.Type) bool {
	if c.t == nil || t == nil {
		return false
	}
	return t.Implements(c.t)
}

// String implements fmt.Stringer.
func (c Capability) String() string {
	return c.Name()
}

// FQN returns the fully-qualified name of t: "<import path>.<Name>".
// Pointer indirections are stripped so that *Circle and Circle share a name.
// Unnamed types fall back to their reflect string form.
func FQN(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// NameOf returns the fully-qualified name of the dynamic type of v.
func NameOf(v any) string {
	return FQN(reflect.TypeOf(v))
}

// Target resolves a factory's declared target name through the catalog. The
// error carries the owner and the offending name, and wraps
// ErrInvalidConfiguration. Nothing is cached: a name declared later resolves
// later.
func Target(c *Catalog, owner, name string) (Capability, error) {
	if c != nil {
		if found, err := c.Resolve(name); err == nil {
			return found, nil
		}
	}
	return Capability{}, fmt.Errorf("%w: the target for %q must be an existing interface, %q given", ErrInvalidConfiguration, owner, name)
}
