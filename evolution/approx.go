// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ramsey/noise"
	"github.com/katalvlaran/ramsey/operator"
)

// FirstOrder returns the slow-varying first-order approximant
//
//	exp(−i·k·I₁·pulse),   I₁ = ∫_{t0}^{tFinal} f₁(t) dt,
//
// where f₁ is the first-order noise channel. Meaningful only when the
// orthogonal noise varies slowly relative to the pulse rate.
//
// Errors: ErrInvalidInterval (non-finite bounds), noise.ErrNonFinite,
// quadrature.ErrIntegrationFailed.
func (e *Evolution) FirstOrder(tFinal, t0 float64) (operator.Operator, error) {
	i1, err := e.firstOrderIntegral(tFinal, t0)
	if err != nil {
		return operator.Operator{}, evolutionErrorf(opFirstOrder, err)
	}

	e.log.Debug().
		Float64("t0", t0).
		Float64("t_final", tFinal).
		Float64("i1", i1).
		Msg("first-order approximant")

	return e.pulse.Operator().Scale(complex(0, -e.scale*i1)).Expm(), nil
}

// FirstOrderExact adds the sign-modulated orthogonal correction:
//
//	exp(−i·k·(I₁·pulse + I₂·σ⊥)),   I₂ = ∫_{t0}^{tFinal} f⊥^±(t) dt,
//
// with f⊥^± the orthogonal channel negated on every odd window measured from
// t0. Windows are unit-time by default and τ wide under WithTauWindows.
// The integral is split at every window edge so each quadrature piece sees a
// continuous integrand.
//
// Errors: ErrInvalidSequence (τ ≤ 0), plus everything FirstOrder returns.
func (e *Evolution) FirstOrderExact(tau, tFinal, t0 float64) (operator.Operator, error) {
	if !(tau > 0) || math.IsInf(tau, 0) {
		return operator.Operator{}, evolutionErrorf(opFirstExact, fmt.Errorf("tau=%v: %w", tau, ErrInvalidSequence))
	}
	i1, err := e.firstOrderIntegral(tFinal, t0)
	if err != nil {
		return operator.Operator{}, evolutionErrorf(opFirstExact, err)
	}
	i2, err := e.modulatedIntegral(tau, tFinal, t0)
	if err != nil {
		return operator.Operator{}, evolutionErrorf(opFirstExact, err)
	}

	e.log.Debug().
		Float64("t0", t0).
		Float64("t_final", tFinal).
		Float64("i1", i1).
		Float64("i2", i2).
		Msg("exact first-order approximant")

	gen := e.pulse.Operator().Scale(complex(i1, 0)).
		Add(e.sel.orthOp.Scale(complex(i2, 0))).
		Scale(complex(0, -e.scale))

	return gen.Expm(), nil
}

// FirstOrderIntegral returns I₁ = ∫_{t0}^{tFinal} f₁(t) dt.
func (e *Evolution) FirstOrderIntegral(tFinal, t0 float64) (float64, error) {
	i1, err := e.firstOrderIntegral(tFinal, t0)
	if err != nil {
		return 0, evolutionErrorf(opFirstOrder, err)
	}

	return i1, nil
}

// ModulatedIntegral returns I₂, the integral of the sign-modulated
// orthogonal channel used by FirstOrderExact.
func (e *Evolution) ModulatedIntegral(tau, tFinal, t0 float64) (float64, error) {
	if !(tau > 0) || math.IsInf(tau, 0) {
		return 0, evolutionErrorf(opFirstExact, fmt.Errorf("tau=%v: %w", tau, ErrInvalidSequence))
	}
	i2, err := e.modulatedIntegral(tau, tFinal, t0)
	if err != nil {
		return 0, evolutionErrorf(opFirstExact, err)
	}

	return i2, nil
}

func (e *Evolution) firstOrderIntegral(tFinal, t0 float64) (float64, error) {
	if err := finiteBounds(tFinal, t0); err != nil {
		return 0, err
	}
	g := noise.NewGuard(e.sel.first, e.noise.Func(e.sel.first))
	est, err := e.integ.Integrate(g.Eval, t0, tFinal)
	if gerr := g.Err(); gerr != nil {
		return 0, gerr
	}
	if err != nil {
		return 0, err
	}

	return est.Value, nil
}

func (e *Evolution) modulatedIntegral(tau, tFinal, t0 float64) (float64, error) {
	if err := finiteBounds(tFinal, t0); err != nil {
		return 0, err
	}
	width := DefaultModulationWindow
	if e.tauWindows {
		width = tau
	}
	g := noise.NewGuard(e.sel.orthogonal, e.noise.Func(e.sel.orthogonal))
	modulated := noise.Alternating(g.Eval, t0, width)
	breaks := noise.WindowBreaks(t0, width, t0, tFinal)

	est, err := e.integ.IntegratePiecewise(modulated, t0, tFinal, breaks)
	if gerr := g.Err(); gerr != nil {
		return 0, gerr
	}
	if err != nil {
		return 0, err
	}

	return est.Value, nil
}

func finiteBounds(tFinal, t0 float64) error {
	if math.IsNaN(tFinal) || math.IsNaN(t0) || math.IsInf(tFinal, 0) || math.IsInf(t0, 0) {
		return fmt.Errorf("[%v, %v]: %w", t0, tFinal, ErrInvalidInterval)
	}

	return nil
}
