// SPDX-License-Identifier: MIT

// Package distance compares two single-qubit unitaries.
//
// What:
//   - Residual(u, v)     = u · v†, the operator taking v to u.
//   - Projections(u, v)  = tr(R·P) for P ∈ {I, σX, σY, σZ}, labelled
//     "id", "X", "Y", "Z" in that order.
//   - Fidelity(u, v)     = (|tr R| / 2)², in [0, 1], insensitive to a global
//     phase.
//   - Compare(u, v)      bundles the above into a Result.
//
// Both operands must be unitary within the configured tolerance
// (WithTolerance, default operator.DefaultTolerance). A violation returns an
// error matching ErrDimensionMismatch and the underlying operator sentinel
// (operator.ErrNotUnitary or operator.ErrNaNInf).
//
// Example:
//
//	res, err := distance.Compare(dd, approx)
//	if err != nil { ... }
//	fmt.Printf("F=%.6f\n", res.Fidelity)
package distance
