// SPDX-License-Identifier: MIT

// Package operator: value types for the two-level system.
// This file holds ONLY the Operator/State types, the fixed constants and
// their constructors. Algebra lives in impl_algebra.go, the exponential in
// impl_exp.go.
package operator

import (
	"fmt"
	"math"
)

// Dim is the Hilbert-space dimension of a qubit.
const Dim = 2

// DefaultTolerance is the absolute tolerance used by equality and unitarity
// checks when the caller does not supply one.
const DefaultTolerance = 1e-9

// Operator is a 2×2 complex matrix stored row-major as Operator[row][col].
// It is a value type: every method returns a fresh Operator and leaves the
// receiver untouched.
type Operator [Dim][Dim]complex128

// State is a ket |ψ⟩ = State[0]|0⟩ + State[1]|1⟩.
type State [Dim]complex128

// Fixed single-qubit operators. They are values; taking a copy and modifying
// it never affects the package-level constant seen by other callers.
var (
	// Identity is the 2×2 identity.
	Identity = Operator{
		{1, 0},
		{0, 1},
	}

	// PauliX is σx.
	PauliX = Operator{
		{0, 1},
		{1, 0},
	}

	// PauliY is σy.
	PauliY = Operator{
		{0, -1i},
		{1i, 0},
	}

	// PauliZ is σz.
	PauliZ = Operator{
		{1, 0},
		{0, -1},
	}
)

// Computational basis kets.
var (
	Ket0 = State{1, 0} // |0⟩
	Ket1 = State{0, 1} // |1⟩
)

// Basis returns the i-th computational basis ket of the two-level system.
// Returns ErrOutOfRange for i ∉ {0,1}.
func Basis(i int) (State, error) {
	switch i {
	case 0:
		return Ket0, nil
	case 1:
		return Ket1, nil
	default:
		return State{}, operatorErrorf(opBasis, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
}

// FromRows converts a row-major [][]complex128 into an Operator.
// MAIN DESCRIPTION:
//   - Boundary constructor for operators produced outside this package.
//
// Implementation:
//   - Stage 1: require exactly 2 rows of exactly 2 entries (ErrDimensionMismatch).
//   - Stage 2: reject NaN/Inf entries (ErrNaNInf).
//
// Complexity:
//   - Time O(1), Space O(1).
func FromRows(rows [][]complex128) (Operator, error) {
	var out Operator
	if len(rows) != Dim {
		return out, operatorErrorf(opFromRows, fmt.Errorf("%d rows: %w", len(rows), ErrDimensionMismatch))
	}
	for i, row := range rows {
		if len(row) != Dim {
			return out, operatorErrorf(opFromRows, fmt.Errorf("row %d has %d cols: %w", i, len(row), ErrDimensionMismatch))
		}
		copy(out[i][:], row)
	}
	if err := ValidateFinite(out); err != nil {
		return Operator{}, operatorErrorf(opFromRows, err)
	}

	return out, nil
}

// StateFromSlice converts a 2-component amplitude slice into a State.
func StateFromSlice(amps []complex128) (State, error) {
	var s State
	if len(amps) != Dim {
		return s, operatorErrorf(opFromVector, fmt.Errorf("%d amplitudes: %w", len(amps), ErrDimensionMismatch))
	}
	copy(s[:], amps)

	return s, nil
}

// Rows returns a freshly allocated row-major copy of the operator.
func (a Operator) Rows() [][]complex128 {
	return [][]complex128{
		{a[0][0], a[0][1]},
		{a[1][0], a[1][1]},
	}
}

// At returns the entry at (i, j). Indices outside {0,1} yield ErrOutOfRange.
func (a Operator) At(i, j int) (complex128, error) {
	if i < 0 || i >= Dim || j < 0 || j >= Dim {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return a[i][j], nil
}

// String renders the operator as two bracketed rows.
func (a Operator) String() string {
	return fmt.Sprintf("[%v, %v]\n[%v, %v]", a[0][0], a[0][1], a[1][0], a[1][1])
}

// Norm returns the Euclidean norm of the ket.
func (s State) Norm() float64 {
	return math.Sqrt(real(s[0])*real(s[0]) + imag(s[0])*imag(s[0]) +
		real(s[1])*real(s[1]) + imag(s[1])*imag(s[1]))
}

// Probability returns |⟨i|ψ⟩|² for i ∈ {0,1}; any other index yields 0.
func (s State) Probability(i int) float64 {
	if i < 0 || i >= Dim {
		return 0
	}
	a := s[i]

	return real(a)*real(a) + imag(a)*imag(a)
}
