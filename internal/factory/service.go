package factory

import (
	"github.com/vk/capwire/internal/capability"
	"github.com/vk/capwire/internal/registry"
)

// ServiceFactory holds service ids for one target capability and resolves
// them through the object universe on every lookup.
type ServiceFactory struct {
	name  string
	decl  Declarer
	types *capability.Catalog
	reg   *registry.Lazy
}

// NewService creates a lazy factory. resolver may be nil and set later with
// SetResolver.
func NewService(decl Declarer, types *capability.Catalog, resolver capability.Resolver) *ServiceFactory {
	f := &ServiceFactory{
		name:  capability.NameOf(decl),
		decl:  decl,
		types: types,
	}
	f.reg = registry.NewLazy(f.name, f.Target, resolver)
	return f
}

// Name returns the fully-qualified name of the declaring type.
func (f *ServiceFactory) Name() string {
	return f.name
}

// Target resolves the declared target. It is checked on every call.
func (f *ServiceFactory) Target() (capability.Capability, error) {
	return capability.Target(f.types, f.name, f.decl.TargetInterface())
}

// Register stores a service id.
func (f *ServiceFactory) Register(id string) error {
	return f.reg.Register(id)
}

// SetResolver sets the object universe used to resolve ids.
func (f *ServiceFactory) SetResolver(resolver capability.Resolver) {
	f.reg.SetResolver(resolver)
}

// Services resolves every registered id.
func (f *ServiceFactory) Services() ([]any, error) {
	return f.reg.Services()
}

// GetByFQN returns the service whose concrete type is named fqn.
func (f *ServiceFactory) GetByFQN(fqn string) (any, error) {
	return f.reg.FindByFQN(fqn)
}

// FindOne returns the single service matching p.
func (f *ServiceFactory) FindOne(p registry.Predicate) (any, error) {
	return f.reg.FindOne(p)
}

// FindOneOrNone returns the single service matching p, or nil.
func (f *ServiceFactory) FindOneOrNone(p registry.Predicate) (any, error) {
	return f.reg.FindOneOrNone(p)
}

// Seal rejects every later registration.
func (f *ServiceFactory) Seal() {
	f.reg.Seal()
}

// IDs returns the registered service ids.
func (f *ServiceFactory) IDs() []string {
	return f.reg.IDs()
}

// Len returns the number of registered ids.
func (f *ServiceFactory) Len() int {
	return f.reg.Len()
}
