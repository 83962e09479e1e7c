// Package print provides the Printer capability and a factory that collects
// printers.
package print

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/vk/capwire/internal/capability"
	"github.com/vk/capwire/internal/factory"
)

// Module implements the app.Module interface for this package.
type Module struct{}

// Printer writes a set of values.
type Printer interface {
	Print(w io.Writer, values map[string]string) error
}

// TextPrinter prints one `key = "value"` line per entry, sorted by key.
type TextPrinter struct {
	Indent string
}

// Print implements Printer.
func (p *TextPrinter) Print(w io.Writer, values map[string]string) error {
	if values == nil {
		_, err := fmt.Fprintf(w, "%s(null)\n", p.Indent)
		return err
	}

	// Sort keys for consistent output
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s%s = %q\n", p.Indent, k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// PrinterFactory collects every Printer service.
type PrinterFactory struct {
	*factory.Factory
}

// NewPrinterFactory creates an empty PrinterFactory.
func NewPrinterFactory(types *capability.Catalog) *PrinterFactory {
	f := &PrinterFactory{}
	f.Factory = factory.New(f, types)
	return f
}

func (PrinterFactory) TargetInterface() string {
	return "github.com/vk/capwire/modules/print.Printer"
}

// Register declares the Printer capability, TextPrinter and PrinterFactory.
func (m *Module) Register(types *capability.Catalog) error {
	return errors.Join(
		capability.Interface[Printer](types),
		capability.Concrete(types, func(capability.Resolver) (*TextPrinter, error) {
			return &TextPrinter{Indent: "      "}, nil
		}),
		capability.Concrete(types, func(capability.Resolver) (*PrinterFactory, error) {
			return NewPrinterFactory(types), nil
		}),
	)
}
