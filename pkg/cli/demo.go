package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/lazy_series/pkg/demo"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	ConfigPath string
	Range      int
	Terms      int
	Workers    int
}

// NewDemoCommand creates the demo command, which prints p·q for the
// enumerated family q = a + b·x + c·x^3 + d·x^4.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}
	def := demo.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Multiply x^2+x+1 by a family of small polynomials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.Flags().IntVar(&opts.Range, "range", def.Range, "coefficients a, b, c, d run over [0, range)")
	cmd.Flags().IntVar(&opts.Terms, "terms", def.Terms, "number of terms to print per series")
	cmd.Flags().IntVar(&opts.Workers, "workers", def.Workers, "number of parallel workers")

	return cmd
}

func runDemo(cmd *cobra.Command, opts *DemoOptions) error {
	cfg := demo.DefaultConfig()
	if opts.ConfigPath != "" {
		loaded, err := demo.LoadConfig(opts.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	flags := cmd.Flags()
	if opts.ConfigPath == "" || flags.Changed("range") {
		cfg.Range = opts.Range
	}
	if opts.ConfigPath == "" || flags.Changed("terms") {
		cfg.Terms = opts.Terms
	}
	if opts.ConfigPath == "" || flags.Changed("workers") {
		cfg.Workers = opts.Workers
	}
	if opts.ConfigPath == "" || flags.Changed("format") {
		cfg.Format = opts.Format
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	e, err := demo.New(cfg, demo.WithLogger(logger))
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid demo config", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := e.Run(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "demo failed", err)
	}
	if err := demo.Write(cmd.OutOrStdout(), report); err != nil {
		return WrapExitError(ExitFailure, "failed to write output", err)
	}
	return nil
}
