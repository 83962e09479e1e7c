package registry

import (
	"fmt"
	"reflect"

	"github.com/vk/capwire/internal/capability"
)

// Predicate selects entries during a lookup.
type Predicate func(entry any) bool

// Cloner lets an entry control how exclusive lookups duplicate it.
type Cloner interface {
	Clone() any
}

// ByFQN matches entries whose concrete type has the fully-qualified name fqn.
func ByFQN(fqn string) Predicate {
	return func(entry any) bool {
		return capability.NameOf(entry) == fqn
	}
}

// pick applies p to every item and returns the single match.
func pick[T any](owner string, items []T, value func(T) any, p Predicate) (T, bool, error) {
	var (
		match T
		found int
	)
	for _, item := range items {
		if !p(value(item)) {
			continue
		}
		found++
		if found > 1 {
			var zero T
			return zero, false, fmt.Errorf("%w: multiple services were found in %q, the result is ambiguous", ErrAmbiguousLookup, owner)
		}
		match = item
	}
	return match, found == 1, nil
}

func notFound(owner string) error {
	return fmt.Errorf("%w: unable to find the requested service in %q", ErrNotFound, owner)
}

func mismatch(entry any, target capability.Capability) error {
	return fmt.Errorf("%w: %s must implement %s", ErrCapabilityMismatch, capability.NameOf(entry), target.Name())
}

// duplicate returns an independent copy of a pointer entry.
func duplicate(entry any) any {
	if cloner, ok := entry.(Cloner); ok {
		return cloner.Clone()
	}
	src := reflect.ValueOf(entry)
	dst := reflect.New(src.Elem().Type())
	dst.Elem().Set(src.Elem())
	return dst.Interface()
}
