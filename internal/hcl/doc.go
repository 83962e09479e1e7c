// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, and the
// translation of `service` blocks into the format-agnostic model.
//
// A manifest looks like this:
//
//	service "shapes.circle" {
//	  type     = "github.com/vk/capwire/modules/shapes.Circle"
//	  shared   = false
//	  abstract = false
//	}
//
// `shared` defaults to true and `abstract` to false.
package hcl
