// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/ramsey/operator"
)

// Projection is one Pauli-basis component of a residual.
type Projection struct {
	Label string
	Value complex128
}

// Result is the outcome of Compare.
type Result struct {
	Fidelity    float64
	Projections []Projection
}

// basis is the projection order: id, X, Y, Z.
var basis = []struct {
	label string
	op    operator.Operator
}{
	{"id", operator.Identity},
	{"X", operator.PauliX},
	{"Y", operator.PauliY},
	{"Z", operator.PauliZ},
}

// Residual returns u · v†.
func Residual(u, v operator.Operator, opts ...Option) (operator.Operator, error) {
	if err := validate(u, v, newConfig(opts)); err != nil {
		return operator.Operator{}, distanceErrorf(opResidual, err)
	}

	return residual(u, v), nil
}

// Projections returns tr(R·P) for each Pauli-basis element P of R = u·v†.
// u == v gives (2, 0, 0, 0).
func Projections(u, v operator.Operator, opts ...Option) ([]Projection, error) {
	if err := validate(u, v, newConfig(opts)); err != nil {
		return nil, distanceErrorf(opProjections, err)
	}

	return projections(residual(u, v)), nil
}

// Fidelity returns (|tr(u·v†)| / 2)², clamped into [0, 1].
func Fidelity(u, v operator.Operator, opts ...Option) (float64, error) {
	if err := validate(u, v, newConfig(opts)); err != nil {
		return 0, distanceErrorf(opFidelity, err)
	}

	return fidelity(residual(u, v)), nil
}

// Compare computes the fidelity and Pauli projections in one pass.
func Compare(u, v operator.Operator, opts ...Option) (Result, error) {
	if err := validate(u, v, newConfig(opts)); err != nil {
		return Result{}, distanceErrorf(opCompare, err)
	}
	r := residual(u, v)

	return Result{Fidelity: fidelity(r), Projections: projections(r)}, nil
}

func residual(u, v operator.Operator) operator.Operator {
	return u.Mul(v.Dagger())
}

func projections(r operator.Operator) []Projection {
	out := make([]Projection, len(basis))
	for i, b := range basis {
		out[i] = Projection{Label: b.label, Value: r.Mul(b.op).Trace()}
	}

	return out
}

func fidelity(r operator.Operator) float64 {
	f := cmplx.Abs(r.Trace()) / 2
	f *= f
	switch {
	case f > 1:
		return 1
	case f < 0:
		return 0
	}

	return f
}

func validate(u, v operator.Operator, c config) error {
	if err := operator.ValidateUnitary(u, c.tol); err != nil {
		return fmt.Errorf("u: %w: %w", ErrDimensionMismatch, err)
	}
	if err := operator.ValidateUnitary(v, c.tol); err != nil {
		return fmt.Errorf("v: %w: %w", ErrDimensionMismatch, err)
	}

	return nil
}
