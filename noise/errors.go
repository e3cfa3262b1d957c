// SPDX-License-Identifier: MIT

package noise

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite indicates a noise function returned NaN or ±Inf.
	ErrNonFinite = errors.New("noise: non-finite value")

	// ErrPanicked indicates a noise function panicked, i.e. it is undefined
	// at the requested time.
	ErrPanicked = errors.New("noise: function panicked")

	// ErrNilFunc indicates a required channel function is nil.
	ErrNilFunc = errors.New("noise: nil function")
)

// DomainError reports a noise sample outside the function's domain: a
// non-finite value, or a panic (Panic holds the recovered value).
type DomainError struct {
	Channel Channel
	Time    float64
	Value   float64
	Panic   any
}

func (e *DomainError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("noise: channel %s panicked at t=%g: %v", e.Channel, e.Time, e.Panic)
	}

	return fmt.Sprintf("noise: channel %s returned %v at t=%g", e.Channel, e.Value, e.Time)
}

// Unwrap matches ErrNonFinite for bad values. A panic matches ErrPanicked and,
// when the panic value is an error, that error too.
func (e *DomainError) Unwrap() []error {
	if e.Panic == nil {
		return []error{ErrNonFinite}
	}
	if err, ok := e.Panic.(error); ok {
		return []error{ErrPanicked, err}
	}

	return []error{ErrPanicked}
}
