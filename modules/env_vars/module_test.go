package env_vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/capwire/internal/capability"
)

type staticSource map[string]string

func (s staticSource) Values() map[string]string { return s }

func TestEnvSource_Values(t *testing.T) {
	t.Setenv("CAPWIRE_TEST_ENV_SOURCE", "on")
	t.Setenv("OTHER_TEST_ENV_SOURCE", "off")

	values := (&EnvSource{Prefix: "CAPWIRE_"}).Values()
	assert.Equal(t, "on", values["TEST_ENV_SOURCE"])
	assert.NotContains(t, values, "OTHER_TEST_ENV_SOURCE")

	all := (&EnvSource{}).Values()
	assert.Equal(t, "off", all["OTHER_TEST_ENV_SOURCE"])
}

func TestSourceFactory_Merged(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	types := capability.NewCatalog()
	require.NoError(t, (&Module{}).Register(types))
	f := NewSourceFactory(types)
	first := staticSource{"a": "1", "b": "1"}
	second := staticSource{"b": "2"}

	// --- Act ---
	require.NoError(t, f.Register(&first, true))
	require.NoError(t, f.Register(&second, true))

	// --- Assert ---
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, f.Merged())
}
