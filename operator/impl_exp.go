// SPDX-License-Identifier: MIT

// Package operator - matrix exponential.
//
// Purpose:
//   - Compute exp(A) for an arbitrary complex 2×2 A without reimplementing a
//     Padé kernel: gonum's mat.Dense.Exp handles real matrices, so A = X + iY
//     is embedded as the real 4×4 block matrix
//
//     ⎡ X  −Y ⎤
//     ⎣ Y   X ⎦
//
//     which is an algebra homomorphism (products and sums commute with the
//     embedding), hence exp commutes with it too. Re(exp A) is the top-left
//     block of the result and Im(exp A) the bottom-left block.
//
// Complexity:
//   - One 4×4 Padé scaling-and-squaring run per call; a few µs.

package operator

import (
	"gonum.org/v1/gonum/mat"
)

// embedDim is the size of the real embedding of a complex 2×2 operator.
const embedDim = 2 * Dim

// Expm returns the matrix exponential exp(a).
// MAIN DESCRIPTION:
//   - Exact-to-machine-precision exponential for the short-time propagators
//     exp(-i·ε·H) and for the analytic first-order unitaries.
//
// Implementation:
//   - Stage 1: zero generator short-circuits to Identity (bit-exact).
//   - Stage 2: build the real embedding, run mat.Dense.Exp.
//   - Stage 3: read back the real and imaginary blocks.
//
// Behavior highlights:
//   - Receiver is not modified; result is a fresh value.
//   - For anti-Hermitian a (a = -iH, H Hermitian) the result is unitary up to
//     rounding.
//
// Complexity:
//   - Time O(1) (fixed 4×4 kernel), Space O(1) aside from the gonum scratch.
func (a Operator) Expm() Operator {
	if a.IsZero() {
		return Identity
	}

	emb := mat.NewDense(embedDim, embedDim, nil)
	var i, j int // loop iterators
	var re, im float64
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			re, im = real(a[i][j]), imag(a[i][j])
			emb.Set(i, j, re)         // top-left: X
			emb.Set(i+Dim, j+Dim, re) // bottom-right: X
			emb.Set(i, j+Dim, -im)    // top-right: -Y
			emb.Set(i+Dim, j, im)     // bottom-left: Y
		}
	}

	var e mat.Dense
	e.Exp(emb)

	var out Operator
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			out[i][j] = complex(e.At(i, j), e.At(i+Dim, j))
		}
	}

	return out
}
