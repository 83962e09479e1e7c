package container

import (
	"reflect"

	"github.com/vk/capwire/internal/capability"
	"github.com/vk/capwire/internal/config"
)

// Build creates a container from a manifest model. Type names are looked up in
// types; a name that is unknown or denotes an interface leaves the definition
// unresolved, which the wiring pass skips and Resolve rejects.
func Build(model *config.Model, types *capability.Catalog) (*Container, error) {
	defs := make([]*Definition, 0, len(model.Services))
	for _, s := range model.Services {
		def := &Definition{
			ID:       s.ID,
			TypeName: s.Type,
			Abstract: s.Abstract,
			Shared:   s.Shared,
		}
		if t, ok := types.Type(s.Type); ok && t.Kind() != reflect.Interface {
			def.Type = t
			def.Construct, _ = types.Constructor(s.Type)
		}
		defs = append(defs, def)
	}
	return New(defs...)
}
