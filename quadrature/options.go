// SPDX-License-Identifier: MIT

// Package quadrature: functional configuration.
// Defaults are the single source of truth; WithX panics only on nonsensical
// values (programmer error), never on data.
package quadrature

import "math"

const (
	// DefaultNodes is the Gauss–Legendre order of the coarse rule per panel.
	// The fine rule uses twice as many nodes.
	DefaultNodes = 32

	// DefaultPanelWidth bounds the width of a single panel.
	DefaultPanelWidth = 1.0

	// DefaultTolerance is the relative tolerance on the error estimate
	// (relative to max(1, |value|)).
	DefaultTolerance = 1e-8

	// DefaultConcurrency is passed to quad.Fixed; 0 evaluates serially.
	DefaultConcurrency = 0
)

const (
	panicNodesInvalid       = "quadrature: WithNodes: n must be positive"
	panicPanelInvalid       = "quadrature: WithPanelWidth: width must be finite and positive"
	panicToleranceInvalid   = "quadrature: WithTolerance: tol must be finite and positive"
	panicConcurrencyInvalid = "quadrature: WithConcurrency: n must be non-negative"
)

// Option mutates an Integrator under construction.
type Option func(*Integrator)

// WithNodes sets the coarse Gauss–Legendre order per panel.
func WithNodes(n int) Option {
	if n <= 0 {
		panic(panicNodesInvalid)
	}

	return func(in *Integrator) { in.nodes = n }
}

// WithPanelWidth sets the maximum width of a single panel.
func WithPanelWidth(w float64) Option {
	if !(w > 0) || math.IsInf(w, 0) {
		panic(panicPanelInvalid)
	}

	return func(in *Integrator) { in.panel = w }
}

// WithTolerance sets the relative tolerance on the error estimate.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(in *Integrator) { in.tol = tol }
}

// WithConcurrency lets quad.Fixed evaluate the integrand with n goroutines.
// The integrand must then be safe for concurrent use.
func WithConcurrency(n int) Option {
	if n < 0 {
		panic(panicConcurrencyInvalid)
	}

	return func(in *Integrator) { in.concurrent = n }
}
