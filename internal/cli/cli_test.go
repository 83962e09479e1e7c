package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifest = `
service "shapes.factory" {
  type = "github.com/vk/capwire/modules/shapes.ShapeFactory"
}

service "shapes.service_factory" {
  type = "github.com/vk/capwire/modules/shapes.ShapeServiceFactory"
}

service "shapes.square" {
  type = "github.com/vk/capwire/modules/shapes.Square"
}
`

func writeManifest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shapes.hcl"), []byte(manifest), 0o600))
	return dir
}

func execute(args ...string) (string, string, error) {
	var out, logs bytes.Buffer
	err := Execute(context.Background(), args, &out, &logs)
	return out.String(), logs.String(), err
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	assert.Equal(t, code, exitErr.Code)
}

func TestWire(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifest(t)

	// --- Act ---
	out, logs, err := execute("wire", "--mode", "lazy", "--log-level", "debug", dir)

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out, "lazy")
	assert.Contains(t, out, "shapes.service_factory")
	assert.Contains(t, out, "shapes.square")
	assert.Contains(t, logs, "Auto-wiring complete.")
}

func TestLookup(t *testing.T) {
	t.Parallel()

	dir := writeManifest(t)

	out, _, err := execute("lookup", "--factory", "shapes.factory", "github.com/vk/capwire/modules/shapes.Square", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "*shapes.Square")
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := writeManifest(t)
	cfgPath := filepath.Join(t.TempDir(), "capwire.yaml")
	cfg := "mode: lazy\nlog-format: json\nmanifests:\n  - " + dir + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	out, logs, err := execute("wire", "--config", cfgPath)

	require.NoError(t, err)
	assert.Contains(t, out, "shapes.service_factory")
	assert.Contains(t, logs, `"msg":"Auto-wiring complete."`)
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()

	dir := writeManifest(t)
	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown flag", args: []string{"wire", "--nope"}, wantErr: "unknown flag"},
		{name: "no manifests", args: []string{"wire"}, wantErr: "at least one manifest path is required"},
		{name: "bad mode", args: []string{"wire", "--mode", "sometimes", dir}, wantErr: "invalid wiring mode"},
		{name: "bad level", args: []string{"wire", "--log-level", "loud", dir}, wantErr: "invalid log-level"},
		{name: "lookup without fqn", args: []string{"lookup", "--factory", "x"}, wantErr: "fully-qualified type name"},
		{name: "lookup without factory", args: []string{"lookup", "some.Type", dir}, wantErr: "requires --factory"},
		{name: "missing config file", args: []string{"wire", "--config", filepath.Join(dir, "missing.yaml"), dir}, wantErr: "failed to read config file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(tc.args...)
			require.ErrorContains(t, err, tc.wantErr)
			requireExitCode(t, err, 2)
		})
	}
}

func TestLookupNotFoundIsNotAUsageError(t *testing.T) {
	t.Parallel()

	dir := writeManifest(t)
	_, _, err := execute("lookup", "--factory", "shapes.factory", "github.com/vk/capwire/modules/shapes.Circle", dir)

	require.ErrorContains(t, err, "unable to find the requested service")
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestHelp(t *testing.T) {
	t.Parallel()

	out, _, err := execute("--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "lookup")
	assert.Contains(t, out, "wire")
}
