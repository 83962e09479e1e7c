package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/capwire/internal/config"
	"github.com/vk/capwire/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateService converts the HCL-specific service schema into the agnostic model.
func (l *Loader) translateService(ctx context.Context, file string, s *Service) (*config.ServiceDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("service_id", s.ID, "file", file)

	shared, err := evalBool(s.Shared, "shared", true)
	if err != nil {
		return nil, fmt.Errorf("service %q in %s: %w", s.ID, file, err)
	}
	abstract, err := evalBool(s.Abstract, "abstract", false)
	if err != nil {
		return nil, fmt.Errorf("service %q in %s: %w", s.ID, file, err)
	}

	logger.Debug("Translated HCL service to internal config model.", "type", s.Type, "shared", shared, "abstract", abstract)
	return &config.ServiceDefinition{
		ID:       s.ID,
		Type:     s.Type,
		Shared:   shared,
		Abstract: abstract,
		File:     file,
	}, nil
}

// evalBool evaluates a static boolean attribute. A missing attribute decodes
// to a null expression and yields def.
func evalBool(expr hcl.Expression, name string, def bool) (bool, error) {
	if expr == nil {
		return def, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return false, fmt.Errorf("attribute %q: %w", name, diags)
	}
	if val.IsNull() {
		return def, nil
	}
	val, err := convert.Convert(val, cty.Bool)
	if err != nil {
		return false, fmt.Errorf("attribute %q: %w", name, err)
	}
	if !val.IsKnown() {
		return false, fmt.Errorf("attribute %q: value must be known", name)
	}
	return val.True(), nil
}
