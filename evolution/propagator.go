// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ramsey/operator"
)

// stepGuard is the relative slack applied to (t2−t1)/ε so that
// representation error does not drop a step: 0.3/0.1 counts 3, not 2.
const stepGuard = 1e-12

// NoisePropagator returns exp(−i·ε·(x(t)σx + z(t)σz)), the propagator of a
// single step of length ε starting at t. Accurate to leading order in ε.
func (e *Evolution) NoisePropagator(t float64) (operator.Operator, error) {
	h, err := e.noise.Hamiltonian(t)
	if err != nil {
		return operator.Operator{}, evolutionErrorf(opPropagator, err)
	}

	return h.Scale(complex(0, -e.eps)).Expm(), nil
}

// StepCount returns M = ⌊(t2−t1)/ε⌋ for a valid interval, the index of the
// last Trotter step; U multiplies M+1 step propagators.
//
// Errors: ErrInvalidInterval, ErrInvalidStepSize (ε ≥ t2−t1 > 0).
// A zero-length interval yields M = 0 and no error.
func (e *Evolution) StepCount(t1, t2 float64) (int, error) {
	if math.IsNaN(t1) || math.IsNaN(t2) || math.IsInf(t1, 0) || math.IsInf(t2, 0) {
		return 0, fmt.Errorf("[%v, %v]: %w", t1, t2, ErrInvalidInterval)
	}
	span := t2 - t1
	switch {
	case span < 0:
		return 0, fmt.Errorf("[%v, %v]: %w", t1, t2, ErrInvalidInterval)
	case span == 0:
		return 0, nil
	case e.eps >= span:
		return 0, fmt.Errorf("eps=%v over span %v: %w", e.eps, span, ErrInvalidStepSize)
	}

	return int(math.Floor(span / e.eps * (1 + stepGuard))), nil
}

// U returns the discretized propagator over [t1, t2]:
//
//	U = P_0 · P_1 ··· P_M,   P_k = NoisePropagator(t1 + k·ε),  M = ⌊(t2−t1)/ε⌋.
//
// A zero-length interval returns Identity. First-order Trotter: the error is
// O(ε) per step and shrinks monotonically as ε → 0 at linear cost in M.
//
// Errors: ErrInvalidInterval, ErrInvalidStepSize, noise.ErrNonFinite,
// noise.ErrPanicked.
func (e *Evolution) U(t1, t2 float64) (operator.Operator, error) {
	m, err := e.StepCount(t1, t2)
	if err != nil {
		return operator.Operator{}, evolutionErrorf(opU, err)
	}
	if t2 == t1 {
		return operator.Identity, nil
	}

	steps := m + 1
	workers := e.workers
	if limit := steps / minStepsPerWorker; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		u, err := e.product(t1, 0, steps)
		if err != nil {
			return operator.Operator{}, evolutionErrorf(opU, err)
		}
		return u, nil
	}

	u, err := e.parallelProduct(t1, steps, workers)
	if err != nil {
		return operator.Operator{}, evolutionErrorf(opU, err)
	}

	return u, nil
}

// product returns P_lo ··· P_{hi−1}, earliest step leftmost.
func (e *Evolution) product(t1 float64, lo, hi int) (operator.Operator, error) {
	acc := operator.Identity
	for k := lo; k < hi; k++ {
		p, err := e.NoisePropagator(t1 + float64(k)*e.eps)
		if err != nil {
			return operator.Operator{}, fmt.Errorf("step %d: %w", k, err)
		}
		acc = acc.Mul(p)
	}

	return acc, nil
}

// parallelProduct splits [0, steps) into contiguous chunks, multiplies each
// chunk on its own goroutine and folds the partial products in chunk order.
// Matrix multiplication is associative, so the result matches product(); it
// is not commutative, so the fold order is fixed.
func (e *Evolution) parallelProduct(t1 float64, steps, workers int) (operator.Operator, error) {
	chunk := (steps + workers - 1) / workers
	partial := make([]operator.Operator, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, steps)
		if lo >= hi {
			partial[w] = operator.Identity
			continue
		}
		w := w
		g.Go(func() error {
			p, err := e.product(t1, lo, hi)
			if err != nil {
				return err
			}
			partial[w] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return operator.Operator{}, err
	}

	acc := operator.Identity
	for _, p := range partial {
		acc = acc.Mul(p)
	}

	return acc, nil
}

// Segment returns pulse · U(t1, t2): free evolution over [t1, t2] followed
// by the ideal pulse.
func (e *Evolution) Segment(t1, t2 float64) (operator.Operator, error) {
	u, err := e.U(t1, t2)
	if err != nil {
		return operator.Operator{}, evolutionErrorf(opSegment, err)
	}

	return e.pulse.Operator().Mul(u), nil
}
