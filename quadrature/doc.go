// SPDX-License-Identifier: MIT

// Package quadrature integrates real scalar functions over closed intervals.
//
// It is a thin adapter over gonum's integrate/quad: the interval is split
// into panels no wider than a configured width, every panel is integrated
// with fixed Gauss–Legendre rules of n and 2n nodes, and the difference
// between the two composite sums is reported as the error estimate. When the
// estimate exceeds the configured tolerance the call fails with
// ErrIntegrationFailed rather than returning a silently poor value.
//
// IntegratePiecewise additionally splits at caller-provided breakpoints, which
// is how discontinuous integrands (sign-modulated noise) are handled without
// losing accuracy: each piece is continuous.
//
//	in := quadrature.New(quadrature.WithNodes(48))
//	est, err := in.Integrate(math.Sin, 0, math.Pi) // est.Value ≈ 2
package quadrature
