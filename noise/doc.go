// SPDX-License-Identifier: MIT

// Package noise describes the classical noise coupling a qubit sees between
// pulses.
//
// A Model holds one real function of time per axis. The two-axis evolution
// uses the X and Z channels; Y is carried for completeness and never read by
// the evolution engine. Functions must be pure: the integrators call them
// repeatedly, out of order, and possibly from several goroutines.
//
// Non-finite values are surfaced as *DomainError (matching ErrNonFinite) so a
// caller can tell which channel misbehaved and at what time.
package noise
