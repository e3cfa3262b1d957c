// SPDX-License-Identifier: MIT

// Package operator is the single-qubit linear-algebra layer used by the
// evolution and distance packages.
//
// The operator package provides:
//
//   - Operator, a 2×2 complex value type with Mul, Add, Scale, Dagger, Trace,
//     Power and Apply. Values are copied, never shared, so nothing returned
//     from this package can be aliased or mutated behind the caller's back.
//   - The fixed constants Identity, PauliX, PauliY and PauliZ.
//   - State, a 2-component ket, and the computational basis (Basis, Ket0, Ket1).
//   - Expm, the matrix exponential, delegated to gonum's Padé
//     scaling-and-squaring kernel through a real 4×4 embedding of the complex
//     operator.
//   - Validators (ValidateFinite, ValidateUnitary) returning package sentinels.
//
// Error policy mirrors the rest of the module: plain sentinels, wrapped once
// with an operation tag, matched by callers through errors.Is.
//
//	u := operator.PauliX.Scale(complex(0, -theta)).Expm() // exp(-iθσx)
//	s := u.Apply(operator.Ket0)
package operator
