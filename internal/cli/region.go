// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sublevel/arsample"
)

// RegionOptions holds flags for the region command.
type RegionOptions struct {
	Mode   string
	Points int
}

// RegionResult is the payload of the region command.
type RegionResult struct {
	arsample.Region `yaml:",inline"`
	Triangle        []arsample.Point `json:"triangle" yaml:"triangle"`
	Parabola        []arsample.Point `json:"parabola" yaml:"parabola"`
}

func (r RegionResult) renderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "mode\t%s\nphi1\t[%g, %g]\n", r.Mode, r.Phi1Min, r.Phi1Max); err != nil {
		return err
	}
	if err := writePoints(w, "triangle", r.Triangle); err != nil {
		return err
	}
	return writePoints(w, "parabola", r.Parabola)
}

func writePoints(w io.Writer, label string, pts []arsample.Point) error {
	for _, p := range pts {
		if _, err := fmt.Fprintf(w, "%s\t%g\t%g\n", label, p.Phi1, p.Phi2); err != nil {
			return err
		}
	}
	return nil
}

// NewRegionCommand creates the region command.
func NewRegionCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RegionOptions{}

	cmd := &cobra.Command{
		Use:   "region",
		Short: "Print the AR(2) stability region of a mode",
		Long: `Print the stationarity triangle covered by a mode and sampled points
of the real/complex root boundary phi2 = -phi1^2/4, for plotting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegion(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Mode, "mode", arsample.Positive.String(), "phi1 sign policy (positive|negative|both)")
	cmd.Flags().IntVar(&opts.Points, "points", 5, "number of boundary samples (>= 2)")

	return cmd
}

func runRegion(rootOpts *RootOptions, opts *RegionOptions, cmd *cobra.Command) error {
	if opts.Points < 2 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid points %d: must be >= 2", opts.Points))
	}

	region, err := arsample.RegionOf(rootOpts.Config.Mode())
	if err != nil {
		return WrapExitError(ExitCommandError, "region", err)
	}

	return rootOpts.formatter(cmd).Success(RegionResult{
		Region:   region,
		Triangle: region.Triangle(),
		Parabola: region.Parabola(opts.Points),
	})
}
