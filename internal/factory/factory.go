package factory

import (
	"github.com/vk/capwire/internal/capability"
	"github.com/vk/capwire/internal/registry"
)

// Declarer names the interface a factory's entries must satisfy.
// TargetInterface must be callable on a zero value.
type Declarer interface {
	TargetInterface() string
}

// Registrar is the contract the auto-wiring pass looks for in eager mode.
type Registrar interface {
	Declarer
	Register(entry any, shared bool) error
}

// ServiceRegistrar is the contract the auto-wiring pass looks for in lazy mode.
type ServiceRegistrar interface {
	Declarer
	Register(id string) error
}

// Sealer is implemented by factories that can refuse later registrations.
type Sealer interface {
	Seal()
}

// Finder is implemented by both factory kinds.
type Finder interface {
	FindOne(p registry.Predicate) (any, error)
	FindOneOrNone(p registry.Predicate) (any, error)
	GetByFQN(fqn string) (any, error)
}

// Factory holds live entries for one target capability.
type Factory struct {
	name  string
	decl  Declarer
	types *capability.Catalog
	reg   *registry.Registry
}

// New creates a factory whose target is declared by decl.
func New(decl Declarer, types *capability.Catalog) *Factory {
	f := &Factory{
		name:  capability.NameOf(decl),
		decl:  decl,
		types: types,
	}
	f.reg = registry.New(f.name, f.Target)
	return f
}

// Name returns the fully-qualified name of the declaring type.
func (f *Factory) Name() string {
	return f.name
}

// Target resolves the declared target. It is checked on every call.
func (f *Factory) Target() (capability.Capability, error) {
	return capability.Target(f.types, f.name, f.decl.TargetInterface())
}

// Register adds entry. Unshared entries are copied on every lookup.
func (f *Factory) Register(entry any, shared bool) error {
	_, err := f.reg.Register(entry, shared)
	return err
}

// GetByFQN returns the entry whose concrete type is named fqn.
func (f *Factory) GetByFQN(fqn string) (any, error) {
	return f.reg.FindByFQN(fqn)
}

// FindOne returns the single entry matching p.
func (f *Factory) FindOne(p registry.Predicate) (any, error) {
	return f.reg.FindOne(p)
}

// FindOneOrNone returns the single entry matching p, or nil.
func (f *Factory) FindOneOrNone(p registry.Predicate) (any, error) {
	return f.reg.FindOneOrNone(p)
}

// Len returns the number of registered entries.
func (f *Factory) Len() int {
	return f.reg.Len()
}

// Entries returns the entries in registration order. Exclusive entries are
// copied, so mutating the result never reaches the stored instances.
func (f *Factory) Entries() []any {
	return f.reg.Entries()
}
