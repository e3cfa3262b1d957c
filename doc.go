// Package ramsey evaluates how well a noisy, pulsed qubit realizes an ideal
// dynamical-decoupling sequence.
//
// What is inside?
//
//	A single-qubit numerics toolkit built from small, focused packages:
//		• operator/   : 2×2 complex operators, Pauli constants, matrix exponential
//		• quadrature/ : Gauss–Legendre integration with an error estimate
//		• pulse/      : pulse axes X, Y, Z, I and their operators
//		• noise/      : time-dependent noise channels, sign modulation
//		• evolution/  : Trotter propagators, pulsed sequences, first-order approximants
//		• distance/   : fidelity and Pauli projections between unitaries
//		• sweep/      : runs a sequence over many lengths N, one record per N
//		• config/     : RAMSEY_* environment and .env loading
//
// How it fits together:
//
//	noise.Model ─┐
//	pulse.Pulse ─┴─► evolution.Evolution ──► EvolveSequence(N, τ) ──► DD
//	                                     └─► FirstOrder / FirstOrderExact ──► approximant
//	distance.Compare(DD, approximant) ──► fidelity, projections
//
// A runnable demo lives in examples/decoupling.
//
//	go get github.com/katalvlaran/ramsey
package ramsey
