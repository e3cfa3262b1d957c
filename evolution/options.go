// SPDX-License-Identifier: MIT

// Package evolution: functional configuration.
// Defaults are the single source of truth. Data-dependent problems (ε, k)
// are validated by New and returned as sentinels; WithX panics only on
// values that are programmer errors.
package evolution

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ramsey/quadrature"
)

const (
	// DefaultStepSize is the Trotter step ε.
	DefaultStepSize = 1e-3

	// DefaultWorkers evaluates U on the calling goroutine.
	DefaultWorkers = 1

	// DefaultModulationWindow is the width of the sign windows used by
	// FirstOrderExact: integer-time windows.
	DefaultModulationWindow = 1.0

	// ReferenceScale is the customary first-order scale factor for these
	// sequences. It is empirical; opt in explicitly through
	// WithScale(ReferenceScale).
	ReferenceScale = 10.0

	// minStepsPerWorker keeps goroutine overhead below the cost of the work.
	minStepsPerWorker = 256
)

const panicWorkersInvalid = "evolution: WithWorkers: n must be >= 1"

// Option configures an Evolution.
type Option func(*Evolution)

// WithStepSize sets ε. Validated by New (ErrInvalidStepSize).
func WithStepSize(eps float64) Option {
	return func(e *Evolution) { e.eps = eps }
}

// WithScale sets the first-order scale constant k. New fails with
// ErrScaleUnset when this option is absent.
func WithScale(k float64) Option {
	return func(e *Evolution) {
		e.scale = k
		e.scaleSet = true
	}
}

// WithWorkers computes the Trotter steps of U on n goroutines. Noise
// functions must then be safe for concurrent use.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(e *Evolution) { e.workers = n }
}

// WithTauWindows makes FirstOrderExact flip the orthogonal noise sign on
// windows of width τ instead of unit-time windows.
func WithTauWindows() Option {
	return func(e *Evolution) { e.tauWindows = true }
}

// WithIntegrator replaces the quadrature used by the first-order
// approximations. A nil integrator is ignored.
func WithIntegrator(in *quadrature.Integrator) Option {
	return func(e *Evolution) {
		if in != nil {
			e.integ = in
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Evolution) { e.log = log }
}
