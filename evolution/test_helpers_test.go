// SPDX-License-Identifier: MIT
// Package evolution_test contains shared fixtures for the evolution tests.
package evolution_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ramsey/evolution"
	"github.com/katalvlaran/ramsey/noise"
	"github.com/katalvlaran/ramsey/operator"
	"github.com/katalvlaran/ramsey/pulse"
)

const tol = 1e-12

// MustModel builds a noise model or fails the test.
func MustModel(t testing.TB, x, z noise.Func) noise.Model {
	t.Helper()
	m, err := noise.New(x, z)
	require.NoError(t, err)

	return m
}

// MustEvolution builds an Evolution with ReferenceScale unless opts override it.
func MustEvolution(t testing.TB, axis pulse.Axis, m noise.Model, opts ...evolution.Option) *evolution.Evolution {
	t.Helper()
	all := append([]evolution.Option{evolution.WithScale(evolution.ReferenceScale)}, opts...)
	ev, err := evolution.New(pulse.MustNew(axis), m, all...)
	require.NoError(t, err)

	return ev
}

// rotation returns exp(−iθ·(a σx + b σz)/|(a,b)|), the closed form of a
// constant-generator propagator.
func rotation(theta, a, b float64) operator.Operator {
	r := math.Hypot(a, b)
	n := operator.PauliX.Scale(complex(a/r, 0)).Add(operator.PauliZ.Scale(complex(b/r, 0)))

	return operator.Identity.Scale(complex(math.Cos(theta), 0)).
		Add(n.Scale(complex(0, -math.Sin(theta))))
}

// wobble is a smooth, non-commuting noise pair used by ordering tests.
func wobble() (noise.Func, noise.Func) {
	return noise.Sine(0.8, 3.1, 0.2), noise.Sum(noise.Constant(0.3), noise.Sine(0.5, 1.7, 0))
}
