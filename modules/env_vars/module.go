// Package env_vars provides the Source capability: named sets of key/value
// pairs. EnvSource reads the process environment.
package env_vars

import (
	"errors"
	"os"
	"strings"

	"github.com/vk/capwire/internal/capability"
	"github.com/vk/capwire/internal/factory"
)

// Module implements the app.Module interface for this package.
type Module struct{}

// Source is a set of key/value pairs.
type Source interface {
	Values() map[string]string
}

// EnvSource reads the process environment. With a non-empty Prefix only the
// matching variables are returned, with the prefix stripped.
type EnvSource struct {
	Prefix string
}

// Values implements Source.
func (s *EnvSource) Values() map[string]string {
	envMap := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) != 2 {
			continue
		}
		key, ok := strings.CutPrefix(pair[0], s.Prefix)
		if !ok || key == "" {
			continue
		}
		envMap[key] = pair[1]
	}
	return envMap
}

// SourceFactory collects every Source service.
type SourceFactory struct {
	*factory.Factory
}

// NewSourceFactory creates an empty SourceFactory.
func NewSourceFactory(types *capability.Catalog) *SourceFactory {
	f := &SourceFactory{}
	f.Factory = factory.New(f, types)
	return f
}

func (SourceFactory) TargetInterface() string {
	return "github.com/vk/capwire/modules/env_vars.Source"
}

// Merged returns the union of every registered source. Later registrations
// win on conflicting keys.
func (f *SourceFactory) Merged() map[string]string {
	merged := make(map[string]string)
	for _, entry := range f.Entries() {
		for k, v := range entry.(Source).Values() {
			merged[k] = v
		}
	}
	return merged
}

// Register declares the Source capability, EnvSource and SourceFactory.
func (m *Module) Register(types *capability.Catalog) error {
	return errors.Join(
		capability.Interface[Source](types),
		capability.Concrete(types, func(capability.Resolver) (*EnvSource, error) {
			return &EnvSource{Prefix: "CAPWIRE_"}, nil
		}),
		capability.Concrete(types, func(capability.Resolver) (*SourceFactory, error) {
			return NewSourceFactory(types), nil
		}),
	)
}
