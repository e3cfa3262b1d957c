// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
// Every algorithm in this package returns one of these sentinels (possibly
// wrapped with an operation tag); tests check them via errors.Is.

package operator

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "operator: ..." for easy grepping across logs.
var (
	// ErrDimensionMismatch indicates that raw input does not describe a 2×2
	// operator (or a 2-component state).
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrOutOfRange indicates an index outside the two-level basis.
	ErrOutOfRange = errors.New("operator: index out of range")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("operator: NaN or Inf encountered")

	// ErrNotUnitary signals that U·U† deviates from the identity by more than
	// the supplied tolerance.
	ErrNotUnitary = errors.New("operator: operator is not unitary within tolerance")
)

// Operation tags used when wrapping sentinels.
const (
	opFromRows   = "FromRows"
	opFromVector = "StateFromSlice"
	opBasis      = "Basis"
	opFinite     = "ValidateFinite"
	opUnitary    = "ValidateUnitary"
)

// operatorErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func operatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
