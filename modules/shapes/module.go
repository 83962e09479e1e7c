package shapes

import (
	"errors"

	"github.com/vk/capwire/internal/capability"
)

// Module declares this package's types in the catalog.
type Module struct{}

// Register declares the Shape capability, the concrete shapes, and both
// shape factories.
func (m *Module) Register(types *capability.Catalog) error {
	return errors.Join(
		capability.Interface[Shape](types),
		capability.Concrete(types, func(capability.Resolver) (*Circle, error) {
			return &Circle{Radius: 1}, nil
		}),
		capability.Concrete(types, func(capability.Resolver) (*Square, error) {
			return &Square{Side: 2}, nil
		}),
		capability.Concrete(types, func(capability.Resolver) (*Logger, error) {
			return &Logger{Prefix: "[shapes] "}, nil
		}),
		capability.Concrete(types, func(capability.Resolver) (*ShapeFactory, error) {
			return NewShapeFactory(types), nil
		}),
		capability.Concrete(types, func(r capability.Resolver) (*ShapeServiceFactory, error) {
			return NewShapeServiceFactory(types, r), nil
		}),
	)
}
