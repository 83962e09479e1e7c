package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vk/capwire/internal/app"
	"github.com/vk/capwire/internal/hcl"
)

var version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: 2, Message: err.Error()}
}

// Execute runs the capwire command tree with args. Reports go to outW and logs
// to errW.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	cmd := NewRootCommand(outW, errW)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// command carries the state shared by every subcommand.
type command struct {
	v       *viper.Viper
	cfgFile string
	outW    io.Writer
	errW    io.Writer
}

// NewRootCommand builds the capwire command tree. Each call gets its own
// viper instance.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	c := &command{v: viper.New(), outW: outW, errW: errW}

	root := &cobra.Command{
		Use:           "capwire",
		Short:         "Capability-bound factories with auto-wiring",
		Long:          "capwire loads HCL service manifests, builds the object universe and wires every factory to the services implementing its target capability.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&c.cfgFile, "config", "c", "", "config file (YAML)")
	pf.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	pf.String("mode", "eager", "Wiring mode. Options: 'eager' or 'lazy'.")
	for _, name := range []string{"log-level", "log-format", "mode"} {
		_ = c.v.BindPFlag(name, pf.Lookup(name))
	}
	c.v.SetEnvPrefix("CAPWIRE")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(c.newWireCommand(), c.newLookupCommand())
	return root
}

func (c *command) initConfig() error {
	if c.cfgFile == "" {
		return nil
	}
	c.v.SetConfigFile(c.cfgFile)
	if err := c.v.ReadInConfig(); err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("failed to read config file %s: %v", c.cfgFile, err)}
	}
	return nil
}

// config merges positional manifest paths with the configured ones and
// validates the result.
func (c *command) config(paths []string) (*app.Config, error) {
	if len(paths) == 0 {
		paths = c.v.GetStringSlice("manifests")
	}
	cfg, err := app.NewConfig(app.Config{
		ManifestPaths: paths,
		Mode:          c.v.GetString("mode"),
		LogLevel:      c.v.GetString("log-level"),
		LogFormat:     c.v.GetString("log-format"),
	})
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}

func (c *command) bootstrap(ctx context.Context, paths []string) (*app.App, error) {
	cfg, err := c.config(paths)
	if err != nil {
		return nil, err
	}
	return app.NewApp(ctx, c.errW, cfg, hcl.NewLoader())
}

func (c *command) newWireCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wire [paths...]",
		Short: "Run the wiring pass and print the resulting plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.bootstrap(cmd.Context(), args)
			if err != nil {
				return err
			}
			return a.Report(c.outW)
		},
	}
}

func (c *command) newLookupCommand() *cobra.Command {
	var factoryID string

	cmd := &cobra.Command{
		Use:   "lookup --factory ID FQN [paths...]",
		Short: "Wire, then look up one entry of a factory by concrete type name",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return &ExitError{Code: 2, Message: "lookup requires the fully-qualified type name to find"}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if factoryID == "" {
				return &ExitError{Code: 2, Message: "lookup requires --factory"}
			}
			a, err := c.bootstrap(cmd.Context(), args[1:])
			if err != nil {
				return err
			}
			entry, err := a.Lookup(factoryID, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.outW, "%T %+v\n", entry, entry)
			return err
		},
	}
	cmd.Flags().StringVarP(&factoryID, "factory", "f", "", "service id of the factory to search")
	return cmd
}
