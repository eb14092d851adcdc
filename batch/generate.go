// SPDX-License-Identifier: MIT
// Package: sublevel/batch
//
// generate.go - reproducible AR(2) workloads.

package batch

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sublevel/arsample"
)

const methodGenerate = "Generate"

// GenerateRequest describes a synthetic workload.
type GenerateRequest struct {
	Count        int               // number of series, ≥ 1
	Seed         int64             // series i uses Seed+i
	Length       int               // samples per series, ≥ 1
	Mode         arsample.Mode     // sign policy for φ1
	Oscillatory  bool              // complex characteristic roots
	SynthOptions []arsample.Option // noise, burn-in, mean
}

// Sample is one generated series and the coefficients it was drawn with.
type Sample struct {
	Index  int             `json:"index" yaml:"index"`
	Seed   int64           `json:"seed" yaml:"seed"`
	Coeffs arsample.Coeffs `json:"coeffs" yaml:"coeffs"`
	Series []float64       `json:"series" yaml:"series"`
}

// Generate synthesizes req.Count AR(2) series in parallel. The output for a
// given request is identical across runs and worker counts.
func (r *Runner) Generate(ctx context.Context, req GenerateRequest) ([]Sample, error) {
	if req.Count < 1 || req.Length < 1 {
		return nil, fmt.Errorf("%s: count=%d length=%d: %w", methodGenerate, req.Count, req.Length, ErrBadRequest)
	}
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("%s: %w", methodGenerate, arsample.ErrUnknownMode)
	}

	out := make([]Sample, req.Count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := 0; i < req.Count; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seed := req.Seed + int64(i)
			rng := rand.New(rand.NewSource(seed))
			c, xs, err := arsample.SampleSeries(rng, req.Mode, req.Oscillatory, req.Length, req.SynthOptions...)
			if err != nil {
				return fmt.Errorf("series %d: %w", i, err)
			}
			out[i] = Sample{Index: i, Seed: seed, Coeffs: c, Series: xs}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	r.log.WithFields(logrus.Fields{
		"series": req.Count,
		"length": req.Length,
		"mode":   req.Mode.String(),
	}).Debug("workload generated")

	return out, nil
}

// Series returns the raw series of samples, in order.
func Series(samples []Sample) [][]float64 {
	out := make([][]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Series
	}

	return out
}
