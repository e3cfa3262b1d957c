// SPDX-License-Identifier: MIT

package sweep

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSweep indicates unusable sweep parameters (nil evolver,
	// non-positive or non-finite τ).
	ErrInvalidSweep = errors.New("sweep: invalid sweep parameters")

	// ErrInvalidRange indicates a Range call that cannot produce lengths.
	ErrInvalidRange = errors.New("sweep: invalid range")

	// ErrPanicked indicates that evaluating one point panicked; the panic is
	// confined to that point's Record.
	ErrPanicked = errors.New("sweep: point evaluation panicked")
)

const (
	opRun   = "Run"
	opRange = "Range"
	opPoint = "point"
)

func sweepErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
