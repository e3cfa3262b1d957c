// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ramsey/distance"
	"github.com/katalvlaran/ramsey/evolution"
	"github.com/katalvlaran/ramsey/operator"
)

// Evolver is the part of *evolution.Evolution a sweep needs.
type Evolver interface {
	EvolveSequence(n int, tau float64) (evolution.StateSequence, error)
	FirstOrder(tFinal, t0 float64) (operator.Operator, error)
	FirstOrderExact(tau, tFinal, t0 float64) (operator.Operator, error)
}

// Approximation is an approximant of DD and how close it is.
type Approximation struct {
	U     operator.Operator
	Stats distance.Result
}

// Record is the outcome for one sequence length.
type Record struct {
	RunID    uuid.UUID
	N        int
	Duration float64 // N·τ

	DD     operator.Operator
	States []operator.State

	FirstOrder Approximation
	Exact      *Approximation // nil unless WithExact

	Elapsed time.Duration
	Err     error
}

// OK reports whether the point completed.
func (r Record) OK() bool { return r.Err == nil }

// Run evaluates ev for every N in ns with segment duration tau.
//
// The returned error is non-nil only for unusable parameters
// (ErrInvalidSweep); per-point failures live in Record.Err.
func Run(ctx context.Context, ev Evolver, tau float64, ns []int, opts ...Option) ([]Record, error) {
	if isNil(ev) {
		return nil, sweepErrorf(opRun, fmt.Errorf("nil evolver: %w", ErrInvalidSweep))
	}
	if !(tau > 0) || math.IsInf(tau, 0) {
		return nil, sweepErrorf(opRun, fmt.Errorf("tau=%v: %w", tau, ErrInvalidSweep))
	}
	c := newConfig(opts)
	runID := uuid.New()
	log := c.log.With().
		Str("component", "sweep").
		Stringer("run_id", runID).
		Float64("tau", tau).
		Logger()

	records := make([]Record, len(ns))
	var g errgroup.Group
	g.SetLimit(c.workers)
	for i, n := range ns {
		records[i] = Record{RunID: runID, N: n, Duration: float64(n) * tau}
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				records[i].Err = err
				return nil
			}
			start := time.Now()
			evaluate(ev, tau, &records[i], c)
			records[i].Elapsed = time.Since(start)
			report(log, records[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return records, sweepErrorf(opRun, err)
	}

	log.Debug().Int("points", len(ns)).Msg("sweep finished")

	return records, nil
}

// evaluate fills r; a panic inside ev is confined to r.Err.
func evaluate(ev Evolver, tau float64, r *Record, c config) {
	defer func() {
		if p := recover(); p != nil {
			r.Err = sweepErrorf(opPoint, fmt.Errorf("N=%d: %v: %w", r.N, p, ErrPanicked))
		}
	}()

	seq, err := ev.EvolveSequence(r.N, tau)
	if err != nil {
		r.Err = sweepErrorf(opPoint, err)
		return
	}
	r.DD, r.States = seq.DD, seq.States

	fo, err := approximate(seq.DD, c, func() (operator.Operator, error) {
		return ev.FirstOrder(r.Duration, 0)
	})
	if err != nil {
		r.Err = sweepErrorf(opPoint, err)
		return
	}
	r.FirstOrder = fo

	if !c.exact {
		return
	}
	ex, err := approximate(seq.DD, c, func() (operator.Operator, error) {
		return ev.FirstOrderExact(tau, r.Duration, 0)
	})
	if err != nil {
		r.Err = sweepErrorf(opPoint, err)
		return
	}
	r.Exact = &ex
}

func approximate(dd operator.Operator, c config, build func() (operator.Operator, error)) (Approximation, error) {
	u, err := build()
	if err != nil {
		return Approximation{}, err
	}
	stats, err := distance.Compare(dd, u, c.distance...)
	if err != nil {
		return Approximation{}, err
	}

	return Approximation{U: u, Stats: stats}, nil
}

func report(log zerolog.Logger, r Record) {
	if r.Err != nil {
		log.Error().Err(r.Err).Int("n", r.N).Msg("sweep point failed")
		return
	}
	ev := log.Info().
		Int("n", r.N).
		Float64("duration", r.Duration).
		Float64("fidelity", r.FirstOrder.Stats.Fidelity).
		Dur("elapsed", r.Elapsed)
	if r.Exact != nil {
		ev = ev.Float64("fidelity_exact", r.Exact.Stats.Fidelity)
	}
	ev.Msg("sweep point")
}

// isNil also catches a typed nil pointer stored in the interface.
func isNil(ev Evolver) bool {
	if ev == nil {
		return true
	}
	v := reflect.ValueOf(ev)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Range returns from, from+step, … up to but excluding to, matching the
// half-open ranges used to pick sequence lengths. from must be ≥ 0 and
// step > 0; an empty range (from ≥ to) yields an empty slice.
func Range(from, to, step int) ([]int, error) {
	if from < 0 || step <= 0 {
		return nil, sweepErrorf(opRange, fmt.Errorf("from=%d to=%d step=%d: %w", from, to, step, ErrInvalidRange))
	}
	if from >= to {
		return []int{}, nil
	}
	out := make([]int, 0, (to-from+step-1)/step)
	for n := from; n < to; n += step {
		out = append(out, n)
	}

	return out, nil
}
