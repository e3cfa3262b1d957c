// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ramsey/operator"
)

// StateSequence is the outcome of EvolveSequence.
type StateSequence struct {
	// States holds |0⟩ followed by the state after segments 0, 2, 4, ….
	States []operator.State

	// DD is the accumulated propagator S_{N−1} ··· S_1 · S_0.
	DD operator.Operator
}

// SampledStates returns how many states EvolveSequence records for n segments.
func SampledStates(n int) int {
	if n <= 0 {
		return 1
	}

	return 1 + (n+1)/2
}

// EvolveSequence runs N pulsed segments of duration τ starting at t = 0.
//
// Implementation:
//   - One pass over i = 0..N−1 with two accumulators: DD ← S_i·DD and
//     ψ ← S_i·ψ (ψ starts at |0⟩). ψ is recorded when i is even, so the
//     sampling always follows the same segment order as the product.
//
// Behavior highlights:
//   - N = 0 yields DD = Identity and States = [|0⟩].
//   - DD equals the direct product of Segment(iτ, (i+1)τ) in time order.
//
// Errors:
//   - ErrInvalidSequence (N < 0, τ ≤ 0, non-finite τ).
//   - Anything Segment returns, annotated with the segment index.
func (e *Evolution) EvolveSequence(n int, tau float64) (StateSequence, error) {
	if n < 0 || !(tau > 0) || math.IsInf(tau, 0) {
		return StateSequence{}, evolutionErrorf(opSequence, fmt.Errorf("N=%d tau=%v: %w", n, tau, ErrInvalidSequence))
	}

	state := operator.Ket0
	dd := operator.Identity
	states := make([]operator.State, 0, SampledStates(n))
	states = append(states, state)

	for i := 0; i < n; i++ {
		seg, err := e.Segment(float64(i)*tau, float64(i+1)*tau)
		if err != nil {
			return StateSequence{}, evolutionErrorf(opSequence, fmt.Errorf("segment %d: %w", i, err))
		}
		state = seg.Apply(state)
		if i%2 == 0 {
			states = append(states, state)
		}
		dd = seg.Mul(dd)
	}

	e.log.Debug().
		Int("n", n).
		Float64("tau", tau).
		Int("states", len(states)).
		Msg("sequence evolved")

	return StateSequence{States: states, DD: dd}, nil
}
