// SPDX-License-Identifier: MIT

// Package lp: functional configuration for the solvers.
// Defaults are the fixed tolerances of the engine; options exist so tests
// and the CLI can tighten the iteration cap or tolerances explicitly.
// Constructors panic only on nonsensical values (programmer error).
package lp

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations caps the simplex loop.
	DefaultMaxIterations = 100

	// DefaultPivotTolerance is the threshold for a positive reduced cost and
	// for an eligible entry in the ratio test.
	DefaultPivotTolerance = 1e-10

	// DefaultFeasibilityTolerance bounds constraint violation, negative
	// coordinates and near-zero determinants in the graphical solver.
	DefaultFeasibilityTolerance = 1e-8
)

const (
	panicMaxIterInvalid = "lp: WithMaxIterations: n must be > 0"
	panicTolInvalid     = "lp: %s: tolerance must be finite and non-negative"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxIter  int     // DefaultMaxIterations
	pivotTol float64 // DefaultPivotTolerance
	feasTol  float64 // DefaultFeasibilityTolerance
}

// defaultOptions returns Options filled with the documented defaults.
func defaultOptions() Options {
	return Options{
		maxIter:  DefaultMaxIterations,
		pivotTol: DefaultPivotTolerance,
		feasTol:  DefaultFeasibilityTolerance,
	}
}

// gatherOptions applies opts left to right over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxIterations sets the simplex iteration cap. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}
	return func(o *Options) { o.maxIter = n }
}

// WithPivotTolerance sets the simplex pivot tolerance.
func WithPivotTolerance(eps float64) Option {
	mustTolerance("WithPivotTolerance", eps)
	return func(o *Options) { o.pivotTol = eps }
}

// WithFeasibilityTolerance sets the graphical feasibility tolerance.
func WithFeasibilityTolerance(eps float64) Option {
	mustTolerance("WithFeasibilityTolerance", eps)
	return func(o *Options) { o.feasTol = eps }
}

func mustTolerance(name string, eps float64) {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf(panicTolInvalid, name))
	}
}
