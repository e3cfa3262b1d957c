// SPDX-License-Identifier: MIT

// Package operator: closed-form 2×2 algebra.
//
// Purpose:
//   - Provide the handful of kernels the evolution engine needs (product,
//     sum, scaling, conjugate transpose, trace, integer power, ket action).
//   - Keep every kernel allocation-free and deterministic: fixed loop order,
//     value receivers, value results.
//
// Complexity quicksheet:
//   - Mul: 8 complex multiplies; Add/Scale/Dagger/Trace: O(1); Power: O(log n) products.

package operator

import (
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// Mul returns the matrix product a·b.
// Ordering matters: a·b applies b first when acting on a ket.
func (a Operator) Mul(b Operator) Operator {
	var out Operator
	var i, j int // loop iterators (fixed i→j order)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j]
		}
	}

	return out
}

// Add returns the element-wise sum a + b.
func (a Operator) Add(b Operator) Operator {
	return Operator{
		{a[0][0] + b[0][0], a[0][1] + b[0][1]},
		{a[1][0] + b[1][0], a[1][1] + b[1][1]},
	}
}

// Sub returns the element-wise difference a - b.
func (a Operator) Sub(b Operator) Operator {
	return a.Add(b.Scale(-1))
}

// Scale returns c·a.
func (a Operator) Scale(c complex128) Operator {
	return Operator{
		{c * a[0][0], c * a[0][1]},
		{c * a[1][0], c * a[1][1]},
	}
}

// Dagger returns the conjugate transpose a†.
func (a Operator) Dagger() Operator {
	return Operator{
		{cmplx.Conj(a[0][0]), cmplx.Conj(a[1][0])},
		{cmplx.Conj(a[0][1]), cmplx.Conj(a[1][1])},
	}
}

// Trace returns a[0][0] + a[1][1].
func (a Operator) Trace() complex128 {
	return a[0][0] + a[1][1]
}

// Power returns a^n for n ≥ 0 by binary exponentiation; a^0 is Identity.
// Negative n is treated as 0 (the caller owns inversion semantics).
func (a Operator) Power(n int) Operator {
	out := Identity
	base := a
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}

	return out
}

// Apply returns the ket a|s⟩.
func (a Operator) Apply(s State) State {
	return State{
		a[0][0]*s[0] + a[0][1]*s[1],
		a[1][0]*s[0] + a[1][1]*s[1],
	}
}

// IsZero reports whether every entry is exactly zero.
func (a Operator) IsZero() bool {
	return a == Operator{}
}

// Equal reports whether every entry of a and b agrees within tol, compared
// separately on real and imaginary parts.
func (a Operator) Equal(b Operator, tol float64) bool {
	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			if !scalar.EqualWithinAbs(real(a[i][j]), real(b[i][j]), tol) ||
				!scalar.EqualWithinAbs(imag(a[i][j]), imag(b[i][j]), tol) {
				return false
			}
		}
	}

	return true
}

// Equal reports whether both amplitudes of s and o agree within tol.
func (s State) Equal(o State, tol float64) bool {
	for i := 0; i < Dim; i++ {
		if !scalar.EqualWithinAbs(real(s[i]), real(o[i]), tol) ||
			!scalar.EqualWithinAbs(imag(s[i]), imag(o[i]), tol) {
			return false
		}
	}

	return true
}
