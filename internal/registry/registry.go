package registry

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/vk/capwire/internal/capability"
)

// Handle identifies one registration. Exclusive entries are tracked by handle.
type Handle uuid.UUID

// String implements fmt.Stringer.
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// TargetFunc resolves the capability every entry must satisfy. It is called on
// each registration so that a target becoming resolvable later is honoured.
type TargetFunc func() (capability.Capability, error)

type entry struct {
	handle Handle
	value  any
}

// Registry holds live entries for one owner.
type Registry struct {
	owner  string
	target TargetFunc

	mu        sync.RWMutex
	entries   []entry
	index     map[any]Handle
	exclusive map[Handle]struct{}
}

// New creates an empty registry. owner names the factory in error messages.
func New(owner string, target TargetFunc) *Registry {
	return &Registry{
		owner:     owner,
		target:    target,
		index:     make(map[any]Handle),
		exclusive: make(map[Handle]struct{}),
	}
}

// Owner returns the name of the owning factory.
func (r *Registry) Owner() string {
	return r.owner
}

// Register stores value. Unshared entries are copied on every lookup.
// value must be a non-nil pointer to a value of non-zero size; the pointer is
// its identity. Zero-size values may share one address, so they are rejected.
func (r *Registry) Register(value any, shared bool) (Handle, error) {
	if err := checkEntry(value); err != nil {
		return Handle{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[value]; exists {
		return Handle{}, fmt.Errorf("%w: %s is already registered", ErrDuplicateRegistration, capability.NameOf(value))
	}

	target, err := r.target()
	if err != nil {
		return Handle{}, err
	}
	if !target.SatisfiedBy(reflect.TypeOf(value)) {
		return Handle{}, mismatch(value, target)
	}

	handle := Handle(uuid.New())
	r.entries = append(r.entries, entry{handle: handle, value: value})
	r.index[value] = handle
	if !shared {
		r.exclusive[handle] = struct{}{}
	}
	slog.Debug("Registered entry.", "owner", r.owner, "type", capability.NameOf(value), "shared", shared, "handle", handle.String())

	return handle, nil
}

// FindOneOrNone returns the single entry matching p, or nil when nothing matches.
func (r *Registry) FindOneOrNone(p Predicate) (any, error) {
	r.mu.RLock()
	match, found, err := pick(r.owner, r.entries, func(e entry) any { return e.value }, p)
	_, exclusive := r.exclusive[match.handle]
	r.mu.RUnlock()

	if err != nil || !found {
		return nil, err
	}
	if exclusive {
		return duplicate(match.value), nil
	}
	return match.value, nil
}

// FindOne is FindOneOrNone with zero matches reported as ErrNotFound.
func (r *Registry) FindOne(p Predicate) (any, error) {
	result, err := r.FindOneOrNone(p)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, notFound(r.owner)
	}
	return result, nil
}

// FindByFQN returns the entry whose concrete type is named fqn.
func (r *Registry) FindByFQN(fqn string) (any, error) {
	return r.FindOne(ByFQN(fqn))
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entries returns the registered entries in insertion order. Exclusive entries
// are copied, exactly as a lookup would return them.
func (r *Registry) Entries() []any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make([]any, 0, len(r.entries))
	for _, e := range r.entries {
		if _, exclusive := r.exclusive[e.handle]; exclusive {
			values = append(values, duplicate(e.value))
			continue
		}
		values = append(values, e.value)
	}
	return values
}

// Shared reports whether the entry registered under h is shared.
func (r *Registry) Shared(h Handle) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exclusive := r.exclusive[h]
	return !exclusive
}

func checkEntry(value any) error {
	if value == nil {
		return fmt.Errorf("%w: nil entry", ErrInvalidEntry)
	}
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Pointer {
		return fmt.Errorf("%w: %s is not a pointer", ErrInvalidEntry, v.Type())
	}
	if v.IsNil() {
		return fmt.Errorf("%w: nil %s", ErrInvalidEntry, v.Type())
	}
	if v.Type().Elem().Size() == 0 {
		return fmt.Errorf("%w: %s points to a zero-size value and has no identity", ErrInvalidEntry, v.Type())
	}
	return nil
}
