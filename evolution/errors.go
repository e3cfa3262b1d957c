// SPDX-License-Identifier: MIT
// Package evolution: sentinel error set.
// Noise sampling failures surface as noise.ErrNonFinite and quadrature
// failures as quadrature.ErrIntegrationFailed; they are wrapped, not replaced.

package evolution

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStepSize indicates ε ≤ 0, a non-finite ε, or ε not smaller
	// than a non-empty interval (which would give zero Trotter steps).
	ErrInvalidStepSize = errors.New("evolution: invalid step size")

	// ErrInvalidInterval indicates t2 < t1 or a non-finite bound.
	ErrInvalidInterval = errors.New("evolution: invalid time interval")

	// ErrInvalidSequence indicates N < 0 or a non-positive/non-finite τ.
	ErrInvalidSequence = errors.New("evolution: invalid sequence parameters")

	// ErrScaleUnset indicates the first-order scale constant k was never
	// configured with WithScale.
	ErrScaleUnset = errors.New("evolution: first-order scale not configured")

	// ErrInvalidScale indicates a non-finite scale constant.
	ErrInvalidScale = errors.New("evolution: invalid first-order scale")

	// ErrInvalidPulse indicates a zero-value or unknown pulse.
	ErrInvalidPulse = errors.New("evolution: invalid pulse")
)

// Operation tags used for error wrapping.
const (
	opNew        = "New"
	opPropagator = "NoisePropagator"
	opU          = "U"
	opSegment    = "Segment"
	opSequence   = "EvolveSequence"
	opFirstOrder = "FirstOrder"
	opFirstExact = "FirstOrderExact"
)

// evolutionErrorf wraps err with an operation tag; err must be non-nil.
func evolutionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
