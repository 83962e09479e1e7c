package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/capwire/internal/capability"
	"github.com/vk/capwire/internal/registry"
)

const pkg = "github.com/vk/capwire/internal/factory"

type Shape interface{ Area() float64 }

type Circle struct{ R float64 }

func (c *Circle) Area() float64 { return 3 * c.R * c.R }

type Square struct{ S float64 }

func (s *Square) Area() float64 { return s.S * s.S }

type Logger struct{ Prefix string }

type shapeFactory struct{ *Factory }

func (shapeFactory) TargetInterface() string { return pkg + ".Shape" }

type invalidFactory struct{ *Factory }

func (invalidFactory) TargetInterface() string { return "foo" }

func newCatalog(t *testing.T) *capability.Catalog {
	t.Helper()
	types := capability.NewCatalog()
	require.NoError(t, capability.Interface[Shape](types))
	return types
}

func newShapeFactory(types *capability.Catalog) *shapeFactory {
	f := &shapeFactory{}
	f.Factory = New(f, types)
	return f
}

func TestFactory_Contracts(t *testing.T) {
	t.Parallel()

	var _ Registrar = &shapeFactory{}
	var _ Finder = &shapeFactory{}
	var _ ServiceRegistrar = &shapeServiceFactory{}
	var _ Sealer = &shapeServiceFactory{}

	_, isRegistrar := any(&Factory{}).(Registrar)
	assert.False(t, isRegistrar, "the base type declares no target")
}

func TestFactory_Target(t *testing.T) {
	t.Parallel()

	f := newShapeFactory(newCatalog(t))
	target, err := f.Target()
	require.NoError(t, err)
	assert.Equal(t, capability.Of[Shape](), target)
	assert.Equal(t, pkg+".shapeFactory", f.Name())
}

func TestFactory_TargetWithInvalidTarget(t *testing.T) {
	t.Parallel()

	f := &invalidFactory{}
	f.Factory = New(f, newCatalog(t))

	_, err := f.Target()
	require.ErrorIs(t, err, capability.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), `the target for "`+pkg+`.invalidFactory" must be an existing interface, "foo" given`)

	err = f.Register(&Circle{}, true)
	require.ErrorIs(t, err, capability.ErrInvalidConfiguration)
}

func TestFactory_TargetIsNotCached(t *testing.T) {
	t.Parallel()

	types := capability.NewCatalog()
	f := newShapeFactory(types)

	_, err := f.Target()
	require.ErrorIs(t, err, capability.ErrInvalidConfiguration)

	require.NoError(t, capability.Interface[Shape](types))
	_, err = f.Target()
	require.NoError(t, err)
}

func TestFactory_GetByFQN(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	f := newShapeFactory(newCatalog(t))
	circle := &Circle{R: 2}
	require.NoError(t, f.Register(circle, true))
	require.NoError(t, f.Register(&Square{S: 1}, false))

	// --- Act ---
	got, err := f.GetByFQN(pkg + ".Circle")

	// --- Assert ---
	require.NoError(t, err)
	assert.Same(t, circle, got)
	assert.Equal(t, 2, f.Len())
	assert.Len(t, f.Entries(), 2)
}

func TestFactory_GetByFQNWithMissingFQN(t *testing.T) {
	t.Parallel()

	f := newShapeFactory(newCatalog(t))
	_, err := f.GetByFQN(pkg + ".Circle")
	require.ErrorIs(t, err, registry.ErrNotFound)
	assert.Contains(t, err.Error(), `unable to find the requested service in "`+pkg+`.shapeFactory"`)
}

func TestFactory_RegisterErrors(t *testing.T) {
	t.Parallel()

	f := newShapeFactory(newCatalog(t))
	err := f.Register(&Logger{}, true)
	require.ErrorIs(t, err, registry.ErrCapabilityMismatch)
	assert.Contains(t, err.Error(), pkg+".Logger must implement "+pkg+".Shape")

	c := &Circle{}
	require.NoError(t, f.Register(c, false))
	require.ErrorIs(t, f.Register(c, true), registry.ErrDuplicateRegistration)
}

func TestFactory_FindOneOrNone(t *testing.T) {
	t.Parallel()

	f := newShapeFactory(newCatalog(t))
	got, err := f.FindOneOrNone(func(any) bool { return true })
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, f.Register(&Circle{}, true))
	require.NoError(t, f.Register(&Square{}, true))
	_, err = f.FindOne(func(any) bool { return true })
	require.ErrorIs(t, err, registry.ErrAmbiguousLookup)
}

func TestGet(t *testing.T) {
	t.Parallel()

	f := newShapeFactory(newCatalog(t))
	require.NoError(t, f.Register(&Circle{R: 1}, true))
	require.NoError(t, f.Register(&Circle{R: 5}, false))
	require.NoError(t, f.Register(&Square{S: 3}, true))

	square, err := Get[*Square](f, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, square.S)

	big, err := Get(f, func(c *Circle) bool { return c.R > 2 })
	require.NoError(t, err)
	assert.Equal(t, 5.0, big.R)

	_, err = Get[*Circle](f, nil)
	require.ErrorIs(t, err, registry.ErrAmbiguousLookup)

	_, err = Get[*Logger](f, nil)
	require.ErrorIs(t, err, registry.ErrNotFound)

	typed, err := GetByFQN[*Square](f, pkg+".Square")
	require.NoError(t, err)
	assert.Equal(t, 3.0, typed.S)

	_, err = GetByFQN[*Circle](f, pkg+".Square")
	require.Error(t, err)
	assert.False(t, errors.Is(err, registry.ErrNotFound))
}
