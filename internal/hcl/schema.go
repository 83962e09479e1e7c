package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes every top-level block of a manifest file.
type fileRoot struct {
	Services []*Service `hcl:"service,block"`
	Remain   hcl.Body   `hcl:",remain"`
}

// Service is the HCL schema of a `service` block. The optional flags are kept
// as expressions so that a missing attribute can be told apart from false.
type Service struct {
	ID       string         `hcl:"id,label"`
	Type     string         `hcl:"type"`
	Shared   hcl.Expression `hcl:"shared,optional"`
	Abstract hcl.Expression `hcl:"abstract,optional"`
}
