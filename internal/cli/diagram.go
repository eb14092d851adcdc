// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sublevel"
	"github.com/katalvlaran/sublevel/diagram"
)

// DiagramOptions holds flags for the diagram command.
type DiagramOptions struct {
	InputFormat string
}

// DiagramResult is the payload of the diagram command.
type DiagramResult struct {
	Shape   [3]int          `json:"shape" yaml:"shape"`
	Diagram diagram.Diagram `json:"diagram" yaml:"diagram"`
}

func (r DiagramResult) renderText(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "birth\tdeath\tdim"); err != nil {
		return err
	}
	return writeRows(w, r.Diagram.Rows())
}

func writeRows(w io.Writer, rows []diagram.Row) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%g\t%g\t%d\n", row[0], row[1], int(row[2])); err != nil {
			return err
		}
	}
	return nil
}

// NewDiagramCommand creates the diagram command.
func NewDiagramCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DiagramOptions{}

	cmd := &cobra.Command{
		Use:   "diagram [file|-]",
		Short: "Compute the persistence diagram of one series",
		Long: `Read a series and print its (1, M, 3) persistence diagram.

Input is a JSON array, a YAML sequence, or numbers separated by whitespace,
commas or semicolons. The format follows the file extension, or is sniffed
from the content when reading stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runDiagram(rootOpts, opts, path, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.InputFormat, "input-format", InputAuto, "input format (auto|json|yaml|text)")

	return cmd
}

func runDiagram(rootOpts *RootOptions, opts *DiagramOptions, path string, cmd *cobra.Command) error {
	if !isValidInputFormat(opts.InputFormat) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid input format %q: must be one of %v", opts.InputFormat, ValidInputFormats))
	}

	data, format, err := readAll(path, opts.InputFormat, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "read input", err)
	}
	values, err := decodeSeries(data, format)
	if err != nil {
		return WrapExitError(ExitCommandError, "parse input", err)
	}

	start := time.Now()
	d, err := sublevel.Compute(values, rootOpts.Config.DiagramOptions()...)
	if err != nil {
		return WrapExitError(ExitFailure, "compute diagram", err)
	}
	rootOpts.Log.WithFields(logrus.Fields{
		"samples":  len(values),
		"points":   d.Len(),
		"duration": time.Since(start),
	}).Debug("diagram computed")

	return rootOpts.formatter(cmd).Success(DiagramResult{Shape: d.Shape(), Diagram: d})
}
