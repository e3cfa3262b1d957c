// SPDX-License-Identifier: MIT

// Package pulse models ideal, instantaneous control pulses on a qubit.
//
// A pulse is identified by its Axis (X, Y, Z or Identity) and resolves to one
// of four fixed unitaries through a single lookup table, so the mapping is
// defined once and is exhaustive. Pulse values can only be obtained through
// New/MustNew, which keeps Pulse.Operator consistent with Pulse.Axis.
//
//	p, err := pulse.New(pulse.X)
//	seg := p.Operator().Mul(u) // pulse applied after free evolution u
package pulse
