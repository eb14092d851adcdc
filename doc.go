// Package sublevel computes 0-dimensional persistence diagrams of univariate
// time series under the sublevel-set filtration ("merge-tree" persistence).
//
// 🚀 What is inside?
//
//	A small, dependency-free numerical core plus the tooling around it:
//		• filtration/  - series → weighted path graph (vertex + edge births)
//		• persistence/ - elder-rule union-find sweep → raw (birth, death) pairs
//		• diagram/     - noise filter, canonical origin, (1, M, 3) tensor
//		• arsample/    - AR(2) coefficient sampler, stability region, synthesizer
//		• batch/       - parallel diagrams over many series, metrics, logging
//		• config/      - layered configuration
//		• cmd/sublevel - command-line front end
//
// ✨ Quick start:
//
//	d, err := sublevel.Compute([]float64{1, 5, 1})
//	// d.Tensor() == [[[0 0 0] [1 5 0]]]
//
// Data flows strictly forward: series → graph → raw pairs → diagram. Every
// stage returns a new value; nothing is cached or shared between calls, so
// Compute is safe to call from many goroutines at once.
//
//	go get github.com/katalvlaran/sublevel
package sublevel
