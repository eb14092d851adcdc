// SPDX-License-Identifier: MIT
// Package: sublevel/batch
//
// runner.go - bounded parallel Compute over many series.
//
// Contract:
//   • Results are returned in input order; Result.Index equals the input position.
//   • The first failing series cancels the rest; no partial slice is returned.
//   • Each series is computed independently; nothing is shared but the options.
//
// Complexity: O(Σ Nᵢ log Nᵢ) work spread over at most `workers` goroutines.

package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sublevel"
	"github.com/katalvlaran/sublevel/diagram"
)

const methodRun = "Run"

// Result is the diagram of one input series.
type Result struct {
	Index   int             `json:"index" yaml:"index"`
	Diagram diagram.Diagram `json:"diagram" yaml:"diagram"`
}

// Runner computes persistence diagrams in parallel. The zero value is not
// usable; build one with New. A Runner is safe for concurrent use.
type Runner struct {
	workers     int
	log         *logrus.Logger
	diagramOpts []diagram.Option
	metrics     *Metrics
}

// New returns a Runner configured by opts.
func New(opts ...Option) *Runner {
	r := &Runner{
		workers: defaultWorkers(),
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Workers returns the concurrency bound.
func (r *Runner) Workers() int { return r.workers }

// Run computes the diagram of every series.
//
// Errors: ErrNoSeries for an empty workload; otherwise the first series
// error (wrapping filtration.ErrInvalidInput) or the context error.
func (r *Runner) Run(ctx context.Context, series [][]float64) ([]Result, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%s: %w", methodRun, ErrNoSeries)
	}

	entry := r.log.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"series": len(series),
	})
	entry.Debug("batch run started")
	start := time.Now()

	results := make([]Result, len(series))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, values := range series {
		i, values := i, values
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			d, err := sublevel.Compute(values, r.diagramOpts...)
			r.metrics.observe(d.Len(), time.Since(t0), err)
			if err != nil {
				return fmt.Errorf("series %d: %w", i, err)
			}
			results[i] = Result{Index: i, Diagram: d}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		entry.WithError(err).Error("batch run failed")
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	points := 0
	for _, res := range results {
		points += res.Diagram.Len()
	}
	entry.WithFields(logrus.Fields{
		"points":   points,
		"duration": time.Since(start),
	}).Info("batch run finished")

	return results, nil
}

// Diagrams returns the diagrams of results stacked into one tensor.
func Diagrams(results []Result) [][]diagram.Row {
	ds := make([]diagram.Diagram, len(results))
	for i, res := range results {
		ds[i] = res.Diagram
	}

	return diagram.Stack(ds...)
}
