package autowire

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/vk/capwire/internal/capability"
	"github.com/vk/capwire/internal/container"
	"github.com/vk/capwire/internal/ctxlog"
	"github.com/vk/capwire/internal/factory"
)

// ErrDuplicateCapability indicates two factories declaring the same target.
var ErrDuplicateCapability = errors.New("autowire: duplicate capability")

var (
	registrarType        = reflect.TypeFor[factory.Registrar]()
	serviceRegistrarType = reflect.TypeFor[factory.ServiceRegistrar]()
)

// Universe is the set of definitions the pass wires together.
// *container.Container implements it.
type Universe interface {
	Definitions() []*container.Definition
	Resolve(id string) (any, error)
}

// Option configures a Wirer.
type Option func(*Wirer)

// WithMode sets the wiring mode. The default is ModeEager.
func WithMode(m Mode) Option {
	return func(w *Wirer) {
		w.mode = m
	}
}

// Wirer runs the wiring pass against a type catalog.
type Wirer struct {
	types *capability.Catalog
	mode  Mode
}

// New creates a Wirer.
func New(types *capability.Catalog, opts ...Option) *Wirer {
	w := &Wirer{types: types}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Mode returns the configured mode.
func (w *Wirer) Mode() Mode {
	return w.mode
}

// Wire plans and applies the pass.
func (w *Wirer) Wire(ctx context.Context, u Universe) (*Plan, error) {
	plan, err := w.Plan(ctx, u)
	if err != nil {
		return nil, err
	}
	if err := w.Apply(ctx, u, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

type discovered struct {
	def    *container.Definition
	target capability.Capability
}

// Plan discovers factories and matches candidates to them without touching
// any instance. Factory definitions must be shared.
func (w *Wirer) Plan(ctx context.Context, u Universe) (*Plan, error) {
	logger := ctxlog.FromContext(ctx).With("mode", w.mode.String())
	logger.Debug("Planning auto-wiring.")

	var factories []discovered
	var candidates []*container.Definition
	owners := make(map[reflect.Type]*container.Definition)

	for _, def := range u.Definitions() {
		switch {
		case def.Abstract:
			logger.Debug("Skipping abstract definition.", "id", def.ID)
			continue
		case !def.Resolved():
			logger.Debug("Skipping unresolved definition.", "id", def.ID, "type", def.TypeName)
			continue
		case !w.isFactory(def.Type):
			candidates = append(candidates, def)
			continue
		}

		if !def.Shared {
			return nil, fmt.Errorf("%w: factory %q must be shared, every resolve of a transient definition builds an unwired instance",
				capability.ErrInvalidConfiguration, def.ID)
		}
		target, err := w.target(def)
		if err != nil {
			return nil, err
		}
		if prev, exists := owners[target.Type()]; exists {
			return nil, fmt.Errorf("%w: %q is targeted by %q and %q, this is not allowed",
				ErrDuplicateCapability, target.Name(), prev.ID, def.ID)
		}
		owners[target.Type()] = def
		factories = append(factories, discovered{def: def, target: target})
		logger.Debug("Discovered factory.", "id", def.ID, "capability", target.Name())
	}

	plan := &Plan{Mode: w.mode}
	matched := make(map[string]struct{})
	for _, f := range factories {
		binding := FactoryBinding{ID: f.def.ID, Capability: f.target.Name()}
		for _, c := range candidates {
			if slices.Contains(w.types.Implemented(c.Type), f.target) {
				binding.Candidates = append(binding.Candidates, c.ID)
				matched[c.ID] = struct{}{}
			}
		}
		plan.Factories = append(plan.Factories, binding)
	}
	for _, c := range candidates {
		if _, ok := matched[c.ID]; !ok {
			plan.Unmatched = append(plan.Unmatched, c.ID)
		}
	}

	logger.Debug("Auto-wiring planned.", "factories", len(plan.Factories), "registrations", plan.Registrations(), "unmatched", len(plan.Unmatched))
	return plan, nil
}

// Apply performs the registrations described by plan. The first error aborts
// the pass.
func (w *Wirer) Apply(ctx context.Context, u Universe, plan *Plan) error {
	if plan.Mode != w.mode {
		return fmt.Errorf("apply %s plan with %s wirer", plan.Mode, w.mode)
	}
	logger := ctxlog.FromContext(ctx).With("mode", w.mode.String())

	defs := make(map[string]*container.Definition)
	for _, def := range u.Definitions() {
		defs[def.ID] = def
	}

	for _, b := range plan.Factories {
		instance, err := u.Resolve(b.ID)
		if err != nil {
			return fmt.Errorf("resolve factory %q: %w", b.ID, err)
		}

		switch w.mode {
		case ModeLazy:
			err = w.applyLazy(instance, b)
		default:
			err = w.applyEager(u, defs, instance, b)
		}
		if err != nil {
			return err
		}
		logger.Debug("Wired factory.", "id", b.ID, "capability", b.Capability, "candidates", len(b.Candidates))
	}

	logger.Info("Auto-wiring complete.", "factories", len(plan.Factories), "registrations", plan.Registrations())
	return nil
}

func (w *Wirer) applyEager(u Universe, defs map[string]*container.Definition, instance any, b FactoryBinding) error {
	f, ok := instance.(factory.Registrar)
	if !ok {
		return fmt.Errorf("factory %q: %s does not accept instances", b.ID, capability.NameOf(instance))
	}
	for _, id := range b.Candidates {
		def, ok := defs[id]
		if !ok {
			return fmt.Errorf("%w: %q", container.ErrUnknownService, id)
		}
		candidate, err := u.Resolve(id)
		if err != nil {
			return fmt.Errorf("resolve candidate %q: %w", id, err)
		}
		if err := f.Register(candidate, def.Shared); err != nil {
			return fmt.Errorf("register %q in %q: %w", id, b.ID, err)
		}
	}
	return nil
}

func (w *Wirer) applyLazy(instance any, b FactoryBinding) error {
	f, ok := instance.(factory.ServiceRegistrar)
	if !ok {
		return fmt.Errorf("factory %q: %s does not accept service ids", b.ID, capability.NameOf(instance))
	}
	for _, id := range b.Candidates {
		if err := f.Register(id); err != nil {
			return fmt.Errorf("register %q in %q: %w", id, b.ID, err)
		}
	}
	if s, ok := instance.(factory.Sealer); ok {
		s.Seal()
	}
	return nil
}

func (w *Wirer) isFactory(t reflect.Type) bool {
	if w.mode == ModeLazy {
		return t.Implements(serviceRegistrarType)
	}
	return t.Implements(registrarType)
}

// target reads the declared target from a zero value of the factory type.
func (w *Wirer) target(def *container.Definition) (target capability.Capability, err error) {
	owner := capability.FQN(def.Type)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s must declare its target on a zero value: %v", capability.ErrInvalidConfiguration, owner, r)
		}
	}()

	decl := zero(def.Type).(factory.Declarer)
	return capability.Target(w.types, owner, decl.TargetInterface())
}

func zero(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Elem().Interface()
}
