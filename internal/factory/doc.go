// Package factory binds a registry to exactly one target capability.
//
// A concrete factory embeds *Factory (or *ServiceFactory) and declares its
// target through TargetInterface. The declaration must not depend on any
// field, because the auto-wiring pass calls it on a zero value:
//
//	type ShapeFactory struct{ *factory.Factory }
//
//	func (ShapeFactory) TargetInterface() string { return "example.com/shapes.Shape" }
//
//	func NewShapeFactory(types *capability.Catalog) *ShapeFactory {
//		f := &ShapeFactory{}
//		f.Factory = factory.New(f, types)
//		return f
//	}
package factory
