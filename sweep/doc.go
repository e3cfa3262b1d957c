// SPDX-License-Identifier: MIT

// Package sweep evaluates a decoupling sequence over a list of lengths N.
//
// For every N, Run computes the sequence propagator DD and state samples
// (EvolveSequence(N, τ)), the first-order approximant FirstOrder(N·τ, 0) and,
// with WithExact, FirstOrderExact(τ, N·τ, 0). Each approximant is compared
// with DD through distance.Compare.
//
// Failure isolation: an error at one N is stored in that Record's Err and
// the remaining points still run; a panic inside the Evolver is recovered
// into that Record as ErrPanicked. Cancelling ctx marks the points that have
// not started with ctx.Err(). Records come back in the order of ns even
// when WithWorkers evaluates points concurrently.
//
// Every Record of a call shares one RunID, which is also attached to the
// log context.
package sweep
