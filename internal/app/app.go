package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/vk/capwire/internal/autowire"
	"github.com/vk/capwire/internal/capability"
	"github.com/vk/capwire/internal/config"
	"github.com/vk/capwire/internal/container"
	"github.com/vk/capwire/internal/ctxlog"
	"github.com/vk/capwire/internal/factory"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	model     *config.Model
	types     *capability.Catalog
	container *container.Container
	plan      *autowire.Plan
}

// NewApp bootstraps the application: it loads the manifests, declares every
// module's types, builds the object universe and runs the wiring pass. Any
// failure aborts the bootstrap.
func NewApp(ctx context.Context, outW io.Writer, cfg *Config, loader config.Loader, modules ...Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.ManifestPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}
	logger.Debug("Manifests loaded and translated into unified model.", "services", len(model.Services))

	types := capability.NewCatalog()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		if err := mod.Register(types); err != nil {
			return nil, fmt.Errorf("failed to register module %s: %w", capability.NameOf(mod), err)
		}
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	universe, err := container.Build(model, types)
	if err != nil {
		return nil, fmt.Errorf("failed to build container: %w", err)
	}
	for _, def := range universe.Definitions() {
		if !def.Resolved() {
			logger.Warn("Service type is not declared by any module.", "id", def.ID, "type", def.TypeName)
		}
	}

	mode, err := autowire.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	plan, err := autowire.New(types, autowire.WithMode(mode)).Wire(ctx, universe)
	if err != nil {
		return nil, fmt.Errorf("auto-wiring failed: %w", err)
	}

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		model:     model,
		types:     types,
		container: universe,
		plan:      plan,
	}, nil
}

// Plan returns the result of the wiring pass.
func (a *App) Plan() *autowire.Plan {
	return a.plan
}

// Container returns the object universe.
func (a *App) Container() *container.Container {
	return a.container
}

// Catalog returns the type catalog.
func (a *App) Catalog() *capability.Catalog {
	return a.types
}

// Factory returns the wired factory with the given service id.
func (a *App) Factory(id string) (factory.Finder, error) {
	if _, ok := a.plan.Factory(id); !ok {
		return nil, fmt.Errorf("%q is not a wired factory", id)
	}
	instance, err := a.container.Resolve(id)
	if err != nil {
		return nil, err
	}
	finder, ok := instance.(factory.Finder)
	if !ok {
		return nil, fmt.Errorf("%q is a %s, which supports no lookups", id, capability.NameOf(instance))
	}
	return finder, nil
}

// Lookup returns the entry named fqn from the factory with the given id.
func (a *App) Lookup(factoryID, fqn string) (any, error) {
	f, err := a.Factory(factoryID)
	if err != nil {
		return nil, err
	}
	entry, err := f.GetByFQN(fqn)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Lookup succeeded.", "factory", factoryID, "fqn", fqn, "type", capability.NameOf(entry))
	return entry, nil
}

// Report writes a table of the wiring plan to w.
func (a *App) Report(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "MODE\t%s\n", a.plan.Mode)
	fmt.Fprintln(tw, "FACTORY\tCAPABILITY\tCANDIDATES")
	for _, b := range a.plan.Factories {
		candidates := "-"
		if len(b.Candidates) > 0 {
			candidates = strings.Join(b.Candidates, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.ID, b.Capability, candidates)
	}
	if len(a.plan.Unmatched) > 0 {
		fmt.Fprintf(tw, "UNMATCHED\t%s\n", strings.Join(a.plan.Unmatched, ", "))
	}
	return tw.Flush()
}
