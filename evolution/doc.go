// SPDX-License-Identifier: MIT

// Package evolution simulates a qubit under time-dependent noise interleaved
// with ideal pulses, and builds the analytic first-order approximations the
// simulation is judged against.
//
// 🚀 What is computed?
//
//	NoisePropagator(t)     exp(−i·ε·(x(t)σx + z(t)σz))         one short step
//	U(t1, t2)              P_0 · P_1 ··· P_M,  P_k = NoisePropagator(t1 + kε)
//	Segment(t1, t2)        pulse · U(t1, t2)
//	EvolveSequence(N, τ)   DD = S_{N−1} ··· S_0, S_i = Segment(iτ, (i+1)τ)
//	FirstOrder(T, t0)      exp(−i·k·∫f₁ · pulse)
//	FirstOrderExact(τ,T,t0) exp(−i·k·(∫f₁ · pulse + ∫f⊥^± · σ⊥))
//
// Ordering convention: the Trotter steps inside U are multiplied in
// chronological order with the earliest step LEFTMOST. Segments compose the
// other way: DD accumulates S_i·DD, so the latest segment is leftmost.
//
// Axis selection: a Z pulse treats Z-noise as first order and X-noise (σx) as
// orthogonal; every other pulse treats X-noise as first order and Z-noise (σz)
// as orthogonal.
//
// ⚙️ Usage:
//
//	ev, err := evolution.New(pulse.MustNew(pulse.X), model,
//	    evolution.WithStepSize(1e-3),
//	    evolution.WithScale(evolution.ReferenceScale),
//	)
//	seq, err := ev.EvolveSequence(20, 1.0)
//	approx, err := ev.FirstOrder(20.0, 0)
//
// Preconditions not checked here: ε must be small against every noise
// timescale (ε < 1/cutoff frequency), and the first-order approximations are
// only meaningful when the orthogonal noise varies slowly relative to the
// pulse rate.
//
// Performance:
//
//   - U costs O((t2−t1)/ε) 2×2 exponentials; WithWorkers spreads them over
//     goroutines and reduces the partial products in chronological order.
package evolution
