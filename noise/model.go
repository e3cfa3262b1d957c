// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/ramsey/operator"
)

// Func is a real-valued function of time.
type Func func(t float64) float64

// Channel names a noise axis.
type Channel string

// Noise channels.
const (
	ChannelX Channel = "x"
	ChannelY Channel = "y"
	ChannelZ Channel = "z"
)

// Model is the set of noise functions driving the qubit.
type Model struct {
	X Func
	Z Func
	Y Func // optional, unused by two-axis evolution
}

// New builds a two-axis Model. Both functions are required.
func New(x, z Func) (Model, error) {
	if x == nil {
		return Model{}, fmt.Errorf("channel %s: %w", ChannelX, ErrNilFunc)
	}
	if z == nil {
		return Model{}, fmt.Errorf("channel %s: %w", ChannelZ, ErrNilFunc)
	}

	return Model{X: x, Z: z}, nil
}

// WithY returns a copy of m carrying y as the Y channel.
func (m Model) WithY(y Func) Model {
	m.Y = y
	return m
}

// Func returns the function for channel c, or nil for an unknown channel.
func (m Model) Func(c Channel) Func {
	switch c {
	case ChannelX:
		return m.X
	case ChannelY:
		return m.Y
	case ChannelZ:
		return m.Z
	default:
		return nil
	}
}

// Validate reports ErrNilFunc when X or Z is missing.
func (m Model) Validate() error {
	_, err := New(m.X, m.Z)
	return err
}

// Sample evaluates channel c at t, returning a *DomainError on NaN/Inf or
// when the function panics.
func (m Model) Sample(c Channel, t float64) (float64, error) {
	f := m.Func(c)
	if f == nil {
		return 0, fmt.Errorf("channel %s: %w", c, ErrNilFunc)
	}

	return sample(c, f, t)
}

// sample calls f(t), converting a non-finite result or a panic into a
// *DomainError.
func sample(c Channel, f Func, t float64) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = 0, &DomainError{Channel: c, Time: t, Value: math.NaN(), Panic: r}
		}
	}()

	v = f(t)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &DomainError{Channel: c, Time: t, Value: v}
	}

	return v, nil
}

// Hamiltonian returns the instantaneous noise Hamiltonian x(t)·σx + z(t)·σz.
func (m Model) Hamiltonian(t float64) (operator.Operator, error) {
	x, err := m.Sample(ChannelX, t)
	if err != nil {
		return operator.Operator{}, err
	}
	z, err := m.Sample(ChannelZ, t)
	if err != nil {
		return operator.Operator{}, err
	}

	return operator.Operator{
		{complex(z, 0), complex(x, 0)},
		{complex(x, 0), complex(-z, 0)},
	}, nil
}

// Guard wraps a channel function for use inside a numerical integrator,
// which cannot return errors: non-finite or panicking samples are replaced
// by 0 and the first failure is remembered. Guard is safe for concurrent use.
type Guard struct {
	channel Channel
	fn      Func

	once sync.Once
	err  error
}

// NewGuard returns a Guard around fn reporting failures as channel c.
func NewGuard(c Channel, fn Func) *Guard {
	return &Guard{channel: c, fn: fn}
}

// Eval samples the wrapped function at t.
func (g *Guard) Eval(t float64) float64 {
	v, err := sample(g.channel, g.fn, t)
	if err != nil {
		g.once.Do(func() { g.err = err })
		return 0
	}

	return v
}

// Err returns the first recorded *DomainError, or nil. Call it after the
// integrator has returned.
func (g *Guard) Err() error {
	return g.err
}
