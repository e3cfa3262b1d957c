// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates an operand that is not a 2×2 unitary.
var ErrDimensionMismatch = errors.New("distance: operand is not a single-qubit unitary")

const (
	opResidual    = "Residual"
	opProjections = "Projections"
	opFidelity    = "Fidelity"
	opCompare     = "Compare"
)

// distanceErrorf tags err with the operation; err must be non-nil.
func distanceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
