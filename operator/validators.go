// SPDX-License-Identifier: MIT
// Package: operator
//
// Purpose:
//  - Canonical validation checks for operators crossing a package boundary.
//  - Return sentinels wrapped with the validator tag so call sites can match
//    them through errors.Is regardless of extra context.

package operator

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ValidateFinite ensures no entry of a is NaN or ±Inf.
// Returns wrapped ErrNaNInf with the offending coordinates.
// Complexity: O(1).
func ValidateFinite(a Operator) error {
	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			if cmplx.IsNaN(a[i][j]) || cmplx.IsInf(a[i][j]) {
				return operatorErrorf(opFinite, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateUnitary ensures a is finite and a·a† equals Identity within tol.
// A non-positive or non-finite tol falls back to DefaultTolerance.
//
// Errors: ErrNaNInf, ErrNotUnitary (both wrapped with the validator tag).
// Complexity: O(1).
func ValidateUnitary(a Operator, tol float64) error {
	if err := ValidateFinite(a); err != nil {
		return operatorErrorf(opUnitary, err)
	}
	if !(tol > 0) || math.IsInf(tol, 0) {
		tol = DefaultTolerance
	}
	if !a.Mul(a.Dagger()).Equal(Identity, tol) {
		return operatorErrorf(opUnitary, ErrNotUnitary)
	}

	return nil
}

// IsUnitary is the boolean form of ValidateUnitary.
func (a Operator) IsUnitary(tol float64) bool {
	return ValidateUnitary(a, tol) == nil
}
