package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertBound checks that the wiring plan bound exactly the given candidates,
// in order, to the factory with the given id.
func AssertBound(t *testing.T, result *HarnessResult, factoryID string, candidates ...string) {
	t.Helper()

	require.NoError(t, result.Err)
	binding, ok := result.App.Plan().Factory(factoryID)
	require.True(t, ok, "factory %q was not wired", factoryID)
	if len(candidates) == 0 {
		require.Empty(t, binding.Candidates)
		return
	}
	require.Equal(t, candidates, binding.Candidates, "candidates bound to %q", factoryID)
}

// AssertLogged checks that the captured log output contains substr.
func AssertLogged(t *testing.T, result *HarnessResult, substr string) {
	t.Helper()

	require.True(t,
		strings.Contains(result.LogOutput, substr),
		"expected %q in log output:\n%s", substr, result.LogOutput,
	)
}
