package config

import (
	"fmt"
)

// Model is the unified, format-agnostic representation of every service
// definition found in the loaded manifests.
type Model struct {
	Services []*ServiceDefinition
}

// ServiceDefinition is the format-agnostic representation of a `service` block.
type ServiceDefinition struct {
	// ID is the opaque identifier the object universe resolves.
	ID string
	// Type is the fully-qualified name of the concrete type, for example
	// "github.com/vk/capwire/modules/shapes.Circle".
	Type     string
	Shared   bool
	Abstract bool
	// File is the manifest the definition was read from.
	File string
}

// Service returns the definition with the given id.
func (m *Model) Service(id string) (*ServiceDefinition, bool) {
	for _, s := range m.Services {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Add appends def, rejecting a second definition under the same id.
func (m *Model) Add(def *ServiceDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("service in %s: empty id", def.File)
	}
	if existing, ok := m.Service(def.ID); ok {
		return fmt.Errorf("service %q is defined in both %s and %s", def.ID, existing.File, def.File)
	}
	m.Services = append(m.Services, def)
	return nil
}
