package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/capwire/internal/capability"
)

var errUnknownService = errors.New("unknown service")

// fakeUniverse builds a fresh instance per Resolve and counts the calls.
type fakeUniverse struct {
	build map[string]func() any
	calls map[string]int
}

func newFakeUniverse() *fakeUniverse {
	return &fakeUniverse{
		build: map[string]func() any{
			"shape.circle": func() any { return &circle{R: 1} },
			"shape.square": func() any { return &square{S: 2} },
			"shape.other":  func() any { return &circle{R: 3} },
			"stranger":     func() any { return &stranger{} },
		},
		calls: make(map[string]int),
	}
}

func (u *fakeUniverse) Resolve(id string) (any, error) {
	u.calls[id]++
	build, ok := u.build[id]
	if !ok {
		return nil, errUnknownService
	}
	return build(), nil
}

func TestLazy_RegisterAndFind(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	universe := newFakeUniverse()
	l := NewLazy("ShapeServiceFactory", shapeTarget, universe)
	require.NoError(t, l.Register("shape.circle"))
	require.NoError(t, l.Register("shape.square"))

	// --- Act ---
	got, err := l.FindByFQN(pkg + ".circle")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, &circle{R: 1}, got)
	assert.Equal(t, []string{"shape.circle", "shape.square"}, l.IDs())
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "ShapeServiceFactory", l.Owner())
}

func TestLazy_ResolvesOnEveryCall(t *testing.T) {
	t.Parallel()

	universe := newFakeUniverse()
	l := NewLazy("ShapeServiceFactory", shapeTarget, universe)
	require.NoError(t, l.Register("shape.circle"))

	for i := 1; i <= 3; i++ {
		services, err := l.Services()
		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Equal(t, i, universe.calls["shape.circle"])
	}
}

func TestLazy_ResolverErrorIsNotWrapped(t *testing.T) {
	t.Parallel()

	l := NewLazy("ShapeServiceFactory", shapeTarget, newFakeUniverse())
	require.NoError(t, l.Register("missing"))

	_, err := l.FindByFQN(pkg + ".circle")
	assert.Equal(t, errUnknownService, err)
}

func TestLazy_ResolverNotSet(t *testing.T) {
	t.Parallel()

	l := NewLazy("ShapeServiceFactory", shapeTarget, nil)

	_, err := l.FindByFQN(pkg + ".circle")
	require.ErrorIs(t, err, ErrNotFound, "nothing to resolve yet")

	require.NoError(t, l.Register("shape.circle"))
	_, err = l.FindByFQN(pkg + ".circle")
	require.ErrorIs(t, err, ErrResolverNotSet)
	assert.Contains(t, err.Error(), `"ShapeServiceFactory"`)

	l.SetResolver(newFakeUniverse())
	_, err = l.FindByFQN(pkg + ".circle")
	require.NoError(t, err)
}

func TestLazy_RegistrationErrors(t *testing.T) {
	t.Parallel()

	l := NewLazy("ShapeServiceFactory", shapeTarget, newFakeUniverse())
	require.ErrorIs(t, l.Register(""), ErrInvalidEntry)

	require.NoError(t, l.Register("shape.circle"))
	err := l.Register("shape.circle")
	require.ErrorIs(t, err, ErrDuplicateRegistration)
	assert.Contains(t, err.Error(), "shape.circle is already registered")

	assert.False(t, l.Sealed())
	l.Seal()
	assert.True(t, l.Sealed())
	require.ErrorIs(t, l.Register("shape.square"), ErrSealed)
	assert.Equal(t, []string{"shape.circle"}, l.IDs())

	errTarget := errors.New("no target")
	broken := NewLazy("Broken", func() (capability.Capability, error) {
		return capability.Capability{}, errTarget
	}, nil)
	require.ErrorIs(t, broken.Register("shape.circle"), errTarget)
}

func TestLazy_CapabilityMismatchOnResolve(t *testing.T) {
	t.Parallel()

	l := NewLazy("ShapeServiceFactory", shapeTarget, newFakeUniverse())
	require.NoError(t, l.Register("stranger"))

	_, err := l.Services()
	require.ErrorIs(t, err, ErrCapabilityMismatch)
	assert.Contains(t, err.Error(), fmt.Sprintf("%s.stranger must implement %s.shape", pkg, pkg))
}

func TestLazy_ZeroAndMultipleMatches(t *testing.T) {
	t.Parallel()

	l := NewLazy("ShapeServiceFactory", shapeTarget, newFakeUniverse())
	require.NoError(t, l.Register("shape.circle"))
	require.NoError(t, l.Register("shape.other"))

	none, err := l.FindOneOrNone(func(e any) bool { _, ok := e.(*square); return ok })
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = l.FindOne(func(e any) bool { _, ok := e.(*square); return ok })
	require.ErrorIs(t, err, ErrNotFound)

	_, err = l.FindOneOrNone(isCircle)
	require.ErrorIs(t, err, ErrAmbiguousLookup)
	_, err = l.FindOne(isCircle)
	require.ErrorIs(t, err, ErrAmbiguousLookup)
}
