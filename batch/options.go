// SPDX-License-Identifier: MIT
// Package: sublevel/batch
//
// options.go - Runner configuration.
//
// Contract:
//   • Option constructors panic on meaningless input.
//   • Defaults: GOMAXPROCS workers, logrus standard logger, default diagram
//     options, no metrics.

package batch

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sublevel/diagram"
)

// Option customizes a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of series processed at once. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("batch: WithWorkers(%d)", n))
	}
	return func(r *Runner) { r.workers = n }
}

// WithLogger sets the logger used for run-level entries. Panics on nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithDiagramOptions sets the finalization options applied to every series.
func WithDiagramOptions(opts ...diagram.Option) Option {
	cp := append([]diagram.Option(nil), opts...)
	return func(r *Runner) { r.diagramOpts = cp }
}

// WithMetrics attaches m. A nil m disables recording.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

func defaultWorkers() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}

	return 1
}
