package registry

import "errors"

var (
	// ErrInvalidEntry indicates an entry that cannot carry an identity.
	ErrInvalidEntry = errors.New("registry: invalid entry")
	// ErrDuplicateRegistration indicates the same identity registered twice.
	ErrDuplicateRegistration = errors.New("registry: duplicate registration")
	// ErrCapabilityMismatch indicates an entry that does not implement the target.
	ErrCapabilityMismatch = errors.New("registry: capability mismatch")
	// ErrNotFound indicates a mandatory lookup that matched nothing.
	ErrNotFound = errors.New("registry: not found")
	// ErrAmbiguousLookup indicates a lookup that matched more than one entry.
	ErrAmbiguousLookup = errors.New("registry: ambiguous lookup")
	// ErrSealed indicates a registration attempt after wiring completed.
	ErrSealed = errors.New("registry: sealed")
	// ErrResolverNotSet indicates a lazy lookup without an object universe.
	ErrResolverNotSet = errors.New("registry: resolver not set")
)
