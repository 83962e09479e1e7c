package app

import (
	"github.com/vk/capwire/internal/capability"
	"github.com/vk/capwire/modules/env_vars"
	"github.com/vk/capwire/modules/print"
	"github.com/vk/capwire/modules/shapes"
)

// Module declares a set of interfaces and concrete types in the catalog.
type Module interface {
	Register(types *capability.Catalog) error
}

// coreModules is the definitive list of all modules that are compiled into
// the capwire binary.
var coreModules = []Module{
	&env_vars.Module{},
	&print.Module{},
	&shapes.Module{},
}
