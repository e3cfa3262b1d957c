// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds indicates a NaN or infinite integration bound.
	ErrInvalidBounds = errors.New("quadrature: invalid integration bounds")

	// ErrIntegrationFailed indicates a non-finite integral or an error
	// estimate above the configured tolerance.
	ErrIntegrationFailed = errors.New("quadrature: integration failed to converge")
)

const (
	opIntegrate = "Integrate"
	opPiecewise = "IntegratePiecewise"
)

// quadErrorf wraps err with an operation tag; err must be non-nil.
func quadErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
