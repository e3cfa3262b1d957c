// SPDX-License-Identifier: MIT
package noise_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ramsey/noise"
	"github.com/katalvlaran/ramsey/operator"
)

func TestNew_RequiresXZ(t *testing.T) {
	_, err := noise.New(nil, noise.Zero())
	assert.ErrorIs(t, err, noise.ErrNilFunc)
	_, err = noise.New(noise.Zero(), nil)
	assert.ErrorIs(t, err, noise.ErrNilFunc)

	m, err := noise.New(noise.Constant(1), noise.Constant(2))
	require.NoError(t, err)
	assert.Nil(t, m.Y)
	assert.NoError(t, m.Validate())

	withY := m.WithY(noise.Constant(3))
	assert.Nil(t, m.Y, "WithY must not mutate the receiver")
	assert.Equal(t, 3.0, withY.Func(noise.ChannelY)(0))
	assert.Nil(t, withY.Func(noise.Channel("w")))

	assert.ErrorIs(t, noise.Model{}.Validate(), noise.ErrNilFunc)
}

func TestHamiltonian(t *testing.T) {
	m, err := noise.New(noise.Constant(0.5), noise.Constant(-2))
	require.NoError(t, err)

	h, err := m.Hamiltonian(1)
	require.NoError(t, err)
	want := operator.PauliX.Scale(0.5).Add(operator.PauliZ.Scale(-2))
	assert.Equal(t, want, h)
	assert.Equal(t, h, h.Dagger(), "noise Hamiltonian is Hermitian")
}

func TestHamiltonian_NonFinite(t *testing.T) {
	bad := func(t float64) float64 {
		if t > 1 {
			return math.Inf(1)
		}
		return 0
	}
	m, err := noise.New(noise.Zero(), bad)
	require.NoError(t, err)

	_, err = m.Hamiltonian(0.5)
	require.NoError(t, err)

	_, err = m.Hamiltonian(2)
	require.ErrorIs(t, err, noise.ErrNonFinite)
	var de *noise.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, noise.ChannelZ, de.Channel)
	assert.Equal(t, 2.0, de.Time)
	assert.True(t, math.IsInf(de.Value, 1))
	assert.Contains(t, de.Error(), "channel z")

	_, err = noise.Model{X: noise.Zero()}.Sample(noise.ChannelY, 0)
	assert.ErrorIs(t, err, noise.ErrNilFunc)
}

func TestGuard(t *testing.T) {
	g := noise.NewGuard(noise.ChannelX, func(t float64) float64 {
		if t >= 3 {
			return math.NaN()
		}
		return t
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = g.Eval(float64(i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 2.0, g.Eval(2))
	assert.Equal(t, 0.0, g.Eval(5), "non-finite samples are zeroed")
	require.ErrorIs(t, g.Err(), noise.ErrNonFinite)

	var de *noise.DomainError
	require.True(t, errors.As(g.Err(), &de))
	assert.GreaterOrEqual(t, de.Time, 3.0)
}

func TestSample_Panicking(t *testing.T) {
	errUndefined := errors.New("undefined beyond t=2.5")
	x := func(t float64) float64 {
		if t > 2.5 {
			panic(errUndefined)
		}
		return 0.1
	}
	z := func(t float64) float64 {
		if t > 2.5 {
			panic("z undefined")
		}
		return 0
	}
	m, err := noise.New(x, z)
	require.NoError(t, err)

	v, err := m.Sample(noise.ChannelX, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.1, v)

	_, err = m.Sample(noise.ChannelX, 3)
	require.ErrorIs(t, err, noise.ErrPanicked)
	assert.ErrorIs(t, err, errUndefined)
	assert.NotErrorIs(t, err, noise.ErrNonFinite)

	var de *noise.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, noise.ChannelX, de.Channel)
	assert.Equal(t, 3.0, de.Time)
	assert.Equal(t, errUndefined, de.Panic)

	_, err = m.Sample(noise.ChannelZ, 3)
	require.ErrorIs(t, err, noise.ErrPanicked)
	assert.Contains(t, err.Error(), "z undefined")

	_, err = m.Hamiltonian(2.6)
	assert.ErrorIs(t, err, noise.ErrPanicked)
}

func TestGuard_Panicking(t *testing.T) {
	g := noise.NewGuard(noise.ChannelZ, func(t float64) float64 {
		if t > 1 {
			panic("out of range")
		}
		return 2
	})
	assert.Equal(t, 2.0, g.Eval(0.5))
	assert.Equal(t, 0.0, g.Eval(1.5))
	assert.Equal(t, 0.0, g.Eval(1.7))

	require.ErrorIs(t, g.Err(), noise.ErrPanicked)
	var de *noise.DomainError
	require.True(t, errors.As(g.Err(), &de))
	assert.Equal(t, 1.5, de.Time, "first failure wins")
	assert.Equal(t, "out of range", de.Panic)
}

func TestAlternating(t *testing.T) {
	f := noise.Alternating(noise.Constant(2), 0, 1)
	cases := []struct {
		t    float64
		want float64
	}{
		{0, 2}, {0.5, 2}, {0.999, 2},
		{1, -2}, {1.5, -2},
		{2, 2}, {2.5, 2},
		{3.2, -2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, f(tc.t), "t=%v", tc.t)
	}

	shifted := noise.Alternating(noise.Constant(1), 0.5, 0.25)
	assert.Equal(t, 1.0, shifted(0.6))
	assert.Equal(t, -1.0, shifted(0.8))
	assert.Equal(t, 1.0, shifted(1.0))
	assert.Equal(t, 1.0, shifted(0.4), "window just before t0 shares index 0")
	assert.Equal(t, -1.0, shifted(0.2))
	assert.Equal(t, 1.0, shifted(0.0))

	assert.EqualValues(t, 0, noise.WindowIndex(-0.5, 0, 1))
	assert.EqualValues(t, -1, noise.WindowIndex(-1.5, 0, 1))
	assert.EqualValues(t, 2, noise.WindowIndex(2.5, 0, 1))

	assert.Panics(t, func() { noise.Alternating(noise.Zero(), 0, 0) })
	assert.Panics(t, func() { noise.Alternating(noise.Zero(), 0, math.NaN()) })
}

func TestWindowBreaks(t *testing.T) {
	assert.Equal(t, []float64{1, 2}, noise.WindowBreaks(0, 1, 0, 3))
	assert.Equal(t, []float64{1, 2}, noise.WindowBreaks(0, 1, 3, 0), "order of bounds is irrelevant")
	assert.Empty(t, noise.WindowBreaks(0, 1, 0, 1))
	assert.Equal(t, []float64{1.5, 2}, noise.WindowBreaks(0.5, 0.5, 1.2, 2.2))
	assert.Nil(t, noise.WindowBreaks(0, 0, 0, 3))
	assert.Equal(t, []float64{-1, 0, 1}, noise.WindowBreaks(0, 1, -1.5, 1.5), "edges before t0 are kept")
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 0.0, noise.Zero()(12))
	assert.InDelta(t, 2.0, noise.Sine(2, math.Pi/2, 0)(1), 1e-15)
	assert.Equal(t, 3.5, noise.Sum(noise.Constant(1), noise.Constant(2.5))(0))
	assert.Equal(t, 0.0, noise.Sum()(0))
}
