// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ramsey/noise"
	"github.com/katalvlaran/ramsey/operator"
	"github.com/katalvlaran/ramsey/pulse"
	"github.com/katalvlaran/ramsey/quadrature"
)

// axisSelection says which noise channel is first order for a pulse axis,
// which one is orthogonal, and the operator the orthogonal channel couples to.
type axisSelection struct {
	first      noise.Channel
	orthogonal noise.Channel
	orthOp     operator.Operator
}

var (
	transverse = axisSelection{first: noise.ChannelX, orthogonal: noise.ChannelZ, orthOp: operator.PauliZ}
	dephasing  = axisSelection{first: noise.ChannelZ, orthogonal: noise.ChannelX, orthOp: operator.PauliX}
)

// selections maps every pulse axis to its channel split.
var selections = map[pulse.Axis]axisSelection{
	pulse.X:        transverse,
	pulse.Y:        transverse,
	pulse.Z:        dephasing,
	pulse.Identity: transverse,
}

// Evolution is an immutable simulation configuration: one pulse, one noise
// model, the Trotter step and the first-order scale. All methods are safe for
// concurrent use provided the noise functions are.
type Evolution struct {
	pulse pulse.Pulse
	noise noise.Model

	eps        float64
	scale      float64
	scaleSet   bool
	workers    int
	tauWindows bool

	sel   axisSelection
	integ *quadrature.Integrator
	log   zerolog.Logger
}

// New validates the configuration and derives the axis selection.
//
// Errors:
//   - ErrInvalidPulse     unknown or zero-value pulse.
//   - noise.ErrNilFunc    missing X or Z function.
//   - ErrInvalidStepSize  ε ≤ 0 or non-finite.
//   - ErrScaleUnset       WithScale not given.
//   - ErrInvalidScale     k non-finite.
func New(p pulse.Pulse, m noise.Model, opts ...Option) (*Evolution, error) {
	e := &Evolution{
		pulse:   p,
		noise:   m,
		eps:     DefaultStepSize,
		workers: DefaultWorkers,
		integ:   quadrature.Default,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	sel, ok := selections[p.Axis()]
	if !ok {
		return nil, evolutionErrorf(opNew, fmt.Errorf("%s: %w", p.Axis(), ErrInvalidPulse))
	}
	e.sel = sel

	if err := m.Validate(); err != nil {
		return nil, evolutionErrorf(opNew, err)
	}
	if !(e.eps > 0) || math.IsInf(e.eps, 0) {
		return nil, evolutionErrorf(opNew, fmt.Errorf("eps=%v: %w", e.eps, ErrInvalidStepSize))
	}
	if !e.scaleSet {
		return nil, evolutionErrorf(opNew, ErrScaleUnset)
	}
	if math.IsNaN(e.scale) || math.IsInf(e.scale, 0) {
		return nil, evolutionErrorf(opNew, fmt.Errorf("k=%v: %w", e.scale, ErrInvalidScale))
	}

	e.log = e.log.With().
		Str("component", "evolution").
		Stringer("pulse", p).
		Float64("eps", e.eps).
		Logger()

	return e, nil
}

// Pulse returns the configured pulse.
func (e *Evolution) Pulse() pulse.Pulse { return e.pulse }

// Noise returns the configured noise model.
func (e *Evolution) Noise() noise.Model { return e.noise }

// StepSize returns ε.
func (e *Evolution) StepSize() float64 { return e.eps }

// Scale returns the first-order scale constant k.
func (e *Evolution) Scale() float64 { return e.scale }

// FirstOrderChannel returns the noise channel co-aligned with the pulse.
func (e *Evolution) FirstOrderChannel() noise.Channel { return e.sel.first }

// OrthogonalChannel returns the noise channel orthogonal to the pulse.
func (e *Evolution) OrthogonalChannel() noise.Channel { return e.sel.orthogonal }

// OrthogonalOperator returns the Pauli operator of the orthogonal channel.
func (e *Evolution) OrthogonalOperator() operator.Operator { return e.sel.orthOp }
