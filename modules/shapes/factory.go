package shapes

import (
	"github.com/vk/capwire/internal/capability"
	"github.com/vk/capwire/internal/factory"
)

const shapeCapability = "github.com/vk/capwire/modules/shapes.Shape"

// ShapeFactory holds live shapes. It is wired in eager mode.
type ShapeFactory struct {
	*factory.Factory
}

// NewShapeFactory creates an empty ShapeFactory.
func NewShapeFactory(types *capability.Catalog) *ShapeFactory {
	f := &ShapeFactory{}
	f.Factory = factory.New(f, types)
	return f
}

func (ShapeFactory) TargetInterface() string { return shapeCapability }

// Largest returns the registered shape with the biggest area, or nil.
func (f *ShapeFactory) Largest() Shape {
	var largest Shape
	for _, entry := range f.Entries() {
		s := entry.(Shape)
		if largest == nil || s.Area() > largest.Area() {
			largest = s
		}
	}
	return largest
}

// ShapeServiceFactory holds shape service ids. It is wired in lazy mode.
type ShapeServiceFactory struct {
	*factory.ServiceFactory
}

// NewShapeServiceFactory creates an empty ShapeServiceFactory resolving
// through r.
func NewShapeServiceFactory(types *capability.Catalog, r capability.Resolver) *ShapeServiceFactory {
	f := &ShapeServiceFactory{}
	f.ServiceFactory = factory.NewService(f, types, r)
	return f
}

func (ShapeServiceFactory) TargetInterface() string { return shapeCapability }
