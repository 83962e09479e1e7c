package factory

import (
	"fmt"
	"reflect"

	"github.com/vk/capwire/internal/capability"
)

// Get returns the single entry of type T accepted by match. A nil match
// accepts every T.
func Get[T any](f Finder, match func(T) bool) (T, error) {
	var zero T

	result, err := f.FindOne(func(entry any) bool {
		typed, ok := entry.(T)
		return ok && (match == nil || match(typed))
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// GetByFQN is Finder.GetByFQN with the result asserted to T.
func GetByFQN[T any](f Finder, fqn string) (T, error) {
	var zero T

	result, err := f.GetByFQN(fqn)
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("get %s: %s is not a %s", fqn, capability.NameOf(result), reflect.TypeFor[T]())
	}
	return typed, nil
}
