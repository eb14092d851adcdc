// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sublevel/arsample"
	"github.com/katalvlaran/sublevel/batch"
	"github.com/katalvlaran/sublevel/diagram"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	Count       int
	Seed        int64
	Length      int
	Workers     int
	Mode        string
	Oscillatory bool
	Noise       float64
	BurnIn      int
	Metrics     bool
	InputFormat string
}

// BatchItem is one series of a batch result. Seed and Coeffs are set only
// for generated workloads.
type BatchItem struct {
	Index   int              `json:"index" yaml:"index"`
	Seed    *int64           `json:"seed,omitempty" yaml:"seed,omitempty"`
	Coeffs  *arsample.Coeffs `json:"coeffs,omitempty" yaml:"coeffs,omitempty"`
	Shape   [3]int           `json:"shape" yaml:"shape"`
	Diagram diagram.Diagram  `json:"diagram" yaml:"diagram"`
}

// BatchResult is the payload of the batch command.
type BatchResult struct {
	Series []BatchItem `json:"series" yaml:"series"`
}

func (r BatchResult) renderText(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "index\tbirth\tdeath\tdim"); err != nil {
		return err
	}
	for _, item := range r.Series {
		for _, row := range item.Diagram.Rows() {
			if _, err := fmt.Fprintf(w, "%d\t%g\t%g\t%d\n", item.Index, row[0], row[1], int(row[2])); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{}

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Compute diagrams for many series in parallel",
		Long: `Compute persistence diagrams for a list of series.

With a file argument the series are read from a JSON or YAML list of lists.
Without one, --count AR(2) series are generated; series i uses seed
--seed+i, so the output does not depend on --workers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runBatch(rootOpts, opts, path, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 8, "number of generated series")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "seed of the first generated series")
	cmd.Flags().IntVar(&opts.Length, "length", 256, "samples per generated series")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent series (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.Metrics, "metrics", false, "write Prometheus metrics to stderr after the run")
	cmd.Flags().StringVar(&opts.InputFormat, "input-format", InputAuto, "input format (auto|json|yaml)")
	addARFlags(cmd, &opts.Mode, &opts.Oscillatory, &opts.Noise, &opts.BurnIn)

	return cmd
}

func runBatch(rootOpts *RootOptions, opts *BatchOptions, path string, cmd *cobra.Command) error {
	if !isValidInputFormat(opts.InputFormat) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid input format %q: must be one of %v", opts.InputFormat, ValidInputFormats))
	}

	cfg := rootOpts.Config
	reg := prometheus.NewRegistry()
	runner := batch.New(
		batch.WithWorkers(cfg.Workers),
		batch.WithLogger(rootOpts.Log),
		batch.WithDiagramOptions(cfg.DiagramOptions()...),
		batch.WithMetrics(batch.NewMetrics(reg)),
	)
	ctx := cmd.Context()

	var (
		series  [][]float64
		samples []batch.Sample
	)
	if path != "" {
		data, format, err := readAll(path, opts.InputFormat, cmd.InOrStdin())
		if err != nil {
			return WrapExitError(ExitCommandError, "read input", err)
		}
		if series, err = decodeBatch(data, format); err != nil {
			return WrapExitError(ExitCommandError, "parse input", err)
		}
	} else {
		var err error
		samples, err = runner.Generate(ctx, batch.GenerateRequest{
			Count:        opts.Count,
			Seed:         opts.Seed,
			Length:       opts.Length,
			Mode:         cfg.Mode(),
			Oscillatory:  cfg.AR.Oscillatory,
			SynthOptions: cfg.SynthOptions(),
		})
		if err != nil {
			return WrapExitError(ExitCommandError, "generate", err)
		}
		series = batch.Series(samples)
	}

	results, err := runner.Run(ctx, series)
	if err != nil {
		return WrapExitError(ExitFailure, "batch", err)
	}

	out := BatchResult{Series: make([]BatchItem, len(results))}
	for i, res := range results {
		out.Series[i] = BatchItem{Index: res.Index, Shape: res.Diagram.Shape(), Diagram: res.Diagram}
		if samples != nil {
			s := samples[i]
			out.Series[i].Seed = &s.Seed
			out.Series[i].Coeffs = &s.Coeffs
		}
	}
	if err := rootOpts.formatter(cmd).Success(out); err != nil {
		return err
	}

	if opts.Metrics {
		return writeMetrics(cmd.ErrOrStderr(), reg)
	}
	return nil
}

// writeMetrics dumps every family in reg in the Prometheus text format.
func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return WrapExitError(ExitFailure, "gather metrics", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return WrapExitError(ExitFailure, "write metrics", err)
		}
	}
	return nil
}
