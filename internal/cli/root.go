// SPDX-License-Identifier: MIT

// Package cli implements the sublevel command line.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/sublevel/config"
	"github.com/katalvlaran/sublevel/diagram"
)

// RootOptions holds global flags and the state resolved before a subcommand runs.
type RootOptions struct {
	ConfigFile     string
	Format         string // "json" | "yaml" | "text"
	LogLevel       string
	NoiseThreshold float64
	NoCanonical    bool

	Config *config.Config
	Log    *logrus.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatJSON, config.FormatYAML, config.FormatText}

// flagKeys maps flag names to config keys. Flags are bound only when the
// running command defines them.
var flagKeys = map[string]string{
	"format":          config.KeyFormat,
	"log-level":       config.KeyLogLevel,
	"noise-threshold": config.KeyNoiseThreshold,
	"workers":         config.KeyWorkers,
	"mode":            config.KeyARMode,
	"oscillatory":     config.KeyAROscillatory,
	"noise":           config.KeyARNoise,
	"burn-in":         config.KeyARBurnIn,
}

// NewRootCommand creates the root command for the sublevel CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sublevel",
		Short: "sublevel - merge-tree persistence for time series",
		Long: `Compute 0-dimensional sublevel-set persistence diagrams of time series
and generate stationary AR(2) workloads to feed them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigFile, "config", "", "config file (yaml, toml or json)")
	pf.StringVar(&opts.Format, "format", config.FormatJSON, "output format (json|yaml|text)")
	pf.StringVar(&opts.LogLevel, "log-level", logrus.InfoLevel.String(), "log level (trace|debug|info|warn|error)")
	pf.Float64Var(&opts.NoiseThreshold, "noise-threshold", diagram.DefaultNoiseThreshold, "drop finite pairs with lifetime at or below this value")
	pf.BoolVar(&opts.NoCanonical, "no-canonical", false, "omit the canonical (0, 0, 0) row")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "flags", err)
	})

	cmd.AddCommand(NewDiagramCommand(opts))
	cmd.AddCommand(NewSampleCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewRegionCommand(opts))

	return cmd
}

// resolve layers defaults, config file, environment and flags into opts.Config
// and builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if cmd.Flags().Changed("format") && !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	v := viper.New()
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = WrapExitError(ExitCommandError, "bind flag "+f.Name, err)
		}
	})
	if bindErr != nil {
		return bindErr
	}
	if o.NoCanonical {
		v.Set(config.KeyCanonicalPoint, false)
	}

	cfg, err := config.Load(v, o.ConfigFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}
	o.Config = cfg

	o.Log = logrus.New()
	o.Log.SetOutput(cmd.ErrOrStderr())
	o.Log.SetLevel(cfg.Level())

	return nil
}

// formatter returns an OutputFormatter writing to the command's stdout.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Config.Format, Writer: cmd.OutOrStdout()}
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "sublevel: %v\n", err)
		return GetExitCode(err)
	}

	return ExitSuccess
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
