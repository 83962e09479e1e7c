package registry

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/vk/capwire/internal/capability"
)

// Lazy holds service ids for one owner and resolves them through the object
// universe on every lookup. Instance caching is the universe's concern.
type Lazy struct {
	owner  string
	target TargetFunc

	mu       sync.RWMutex
	resolver capability.Resolver
	ids      []string
	seen     map[string]struct{}
	sealed   bool
}

// NewLazy creates an empty lazy registry. resolver may be nil and set later.
func NewLazy(owner string, target TargetFunc, resolver capability.Resolver) *Lazy {
	return &Lazy{
		owner:    owner,
		target:   target,
		resolver: resolver,
		seen:     make(map[string]struct{}),
	}
}

// Owner returns the name of the owning factory.
func (l *Lazy) Owner() string {
	return l.owner
}

// SetResolver replaces the object universe used for lookups.
func (l *Lazy) SetResolver(resolver capability.Resolver) {
	l.mu.Lock()
	l.resolver = resolver
	l.mu.Unlock()
}

// Register stores a service id.
func (l *Lazy) Register(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty service id", ErrInvalidEntry)
	}
	if _, err := l.target(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sealed {
		return fmt.Errorf("%w: cannot register %q in %q after wiring", ErrSealed, id, l.owner)
	}
	if _, exists := l.seen[id]; exists {
		return fmt.Errorf("%w: %s is already registered", ErrDuplicateRegistration, id)
	}
	l.ids = append(l.ids, id)
	l.seen[id] = struct{}{}
	slog.Debug("Registered service id.", "owner", l.owner, "id", id)

	return nil
}

// Seal rejects every later registration.
func (l *Lazy) Seal() {
	l.mu.Lock()
	l.sealed = true
	l.mu.Unlock()
}

// Sealed reports whether Seal was called.
func (l *Lazy) Sealed() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sealed
}

// IDs returns the registered ids in insertion order.
func (l *Lazy) IDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.ids)
}

// Len returns the number of registered ids.
func (l *Lazy) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ids)
}

// Services resolves every registered id. Resolver errors are returned as is.
func (l *Lazy) Services() ([]any, error) {
	l.mu.RLock()
	resolver := l.resolver
	ids := slices.Clone(l.ids)
	l.mu.RUnlock()

	if len(ids) == 0 {
		return nil, nil
	}
	if resolver == nil {
		return nil, fmt.Errorf("%w: use SetResolver on %q before using the factory", ErrResolverNotSet, l.owner)
	}

	target, err := l.target()
	if err != nil {
		return nil, err
	}

	services := make([]any, 0, len(ids))
	for _, id := range ids {
		service, err := resolver.Resolve(id)
		if err != nil {
			return nil, err
		}
		if !target.SatisfiedBy(reflect.TypeOf(service)) {
			return nil, mismatch(service, target)
		}
		services = append(services, service)
	}
	return services, nil
}

// FindOneOrNone returns the single resolved service matching p, or nil.
func (l *Lazy) FindOneOrNone(p Predicate) (any, error) {
	services, err := l.Services()
	if err != nil {
		return nil, err
	}
	match, found, err := pick(l.owner, services, func(s any) any { return s }, p)
	if err != nil || !found {
		return nil, err
	}
	return match, nil
}

// FindOne is FindOneOrNone with zero matches reported as ErrNotFound.
func (l *Lazy) FindOne(p Predicate) (any, error) {
	result, err := l.FindOneOrNone(p)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, notFound(l.owner)
	}
	return result, nil
}

// FindByFQN returns the service whose concrete type is named fqn.
func (l *Lazy) FindByFQN(fqn string) (any, error) {
	return l.FindOne(ByFQN(fqn))
}
