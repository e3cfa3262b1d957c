// SPDX-License-Identifier: MIT

package distance

import (
	"math"

	"github.com/katalvlaran/ramsey/operator"
)

const panicToleranceInvalid = "distance: WithTolerance: tol must be positive and finite"

type config struct {
	tol float64
}

// Option tunes the unitarity check applied to operands.
type Option func(*config)

// WithTolerance sets the absolute tolerance on u·u† = I.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(c *config) { c.tol = tol }
}

func newConfig(opts []Option) config {
	c := config{tol: operator.DefaultTolerance}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
