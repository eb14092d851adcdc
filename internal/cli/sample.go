// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sublevel/arsample"
)

// SampleOptions holds flags for the sample command.
type SampleOptions struct {
	Seed        int64
	Length      int
	Mode        string
	Oscillatory bool
	Noise       float64
	BurnIn      int
	Mean        float64
}

// SampleResult is the payload of the sample command.
type SampleResult struct {
	Seed   int64           `json:"seed" yaml:"seed"`
	Mode   arsample.Mode   `json:"mode" yaml:"mode"`
	Coeffs arsample.Coeffs `json:"coeffs" yaml:"coeffs"`
	Series []float64       `json:"series" yaml:"series"`
}

func (r SampleResult) renderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# seed=%d mode=%s phi1=%g phi2=%g\n", r.Seed, r.Mode, r.Coeffs.Phi1, r.Coeffs.Phi2); err != nil {
		return err
	}
	for _, x := range r.Series {
		if _, err := fmt.Fprintf(w, "%g\n", x); err != nil {
			return err
		}
	}
	return nil
}

// addARFlags registers the synthesizer flags shared by sample and batch.
func addARFlags(cmd *cobra.Command, mode *string, osc *bool, noise *float64, burnIn *int) {
	cmd.Flags().StringVar(mode, "mode", arsample.Positive.String(), "phi1 sign policy (positive|negative|both)")
	cmd.Flags().BoolVar(osc, "oscillatory", false, "draw complex characteristic roots")
	cmd.Flags().Float64Var(noise, "noise", 1, "innovation standard deviation")
	cmd.Flags().IntVar(burnIn, "burn-in", 100, "samples discarded before output")
}

// NewSampleCommand creates the sample command.
func NewSampleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw stationary AR(2) coefficients and synthesize a series",
		Long: `Draw (phi1, phi2) uniformly inside the stationary region selected by
--mode and --oscillatory, then synthesize --length samples of the process.
The same --seed always yields the same output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.Length, "length", 128, "number of samples")
	cmd.Flags().Float64Var(&opts.Mean, "mean", 0, "constant added to every sample")
	addARFlags(cmd, &opts.Mode, &opts.Oscillatory, &opts.Noise, &opts.BurnIn)

	return cmd
}

func runSample(rootOpts *RootOptions, opts *SampleOptions, cmd *cobra.Command) error {
	if opts.Length < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid length %d: must be >= 1", opts.Length))
	}
	synth, err := synthOptions(rootOpts, opts.Mean)
	if err != nil {
		return err
	}

	cfg := rootOpts.Config
	rng := rand.New(rand.NewSource(opts.Seed))
	c, xs, err := arsample.SampleSeries(rng, cfg.Mode(), cfg.AR.Oscillatory, opts.Length, synth...)
	if err != nil {
		return WrapExitError(ExitFailure, "sample", err)
	}

	return rootOpts.formatter(cmd).Success(SampleResult{
		Seed:   opts.Seed,
		Mode:   cfg.Mode(),
		Coeffs: c,
		Series: xs,
	})
}

// synthOptions returns the configured synthesizer options plus a mean shift.
func synthOptions(rootOpts *RootOptions, mean float64) ([]arsample.Option, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid mean %v", mean))
	}
	return append(rootOpts.Config.SynthOptions(), arsample.WithMean(mean)), nil
}
