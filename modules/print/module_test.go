package print

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/capwire/internal/capability"
	"github.com/vk/capwire/internal/factory"
)

func TestTextPrinter_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &TextPrinter{Indent: "  "}

	require.NoError(t, p.Print(&buf, map[string]string{"b": "2", "a": "1"}))
	assert.Equal(t, "  a = \"1\"\n  b = \"2\"\n", buf.String())

	buf.Reset()
	require.NoError(t, p.Print(&buf, nil))
	assert.Equal(t, "  (null)\n", buf.String())
}

func TestPrinterFactory(t *testing.T) {
	t.Parallel()

	types := capability.NewCatalog()
	require.NoError(t, (&Module{}).Register(types))
	f := NewPrinterFactory(types)
	require.NoError(t, f.Register(&TextPrinter{}, false))

	p, err := factory.Get[Printer](f, nil)
	require.NoError(t, err)
	assert.IsType(t, &TextPrinter{}, p)
}
