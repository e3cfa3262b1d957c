// SPDX-License-Identifier: MIT
package evolution_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ramsey/distance"
	"github.com/katalvlaran/ramsey/evolution"
	"github.com/katalvlaran/ramsey/noise"
	"github.com/katalvlaran/ramsey/operator"
	"github.com/katalvlaran/ramsey/pulse"
	"github.com/katalvlaran/ramsey/quadrature"
)

func TestNew_Validation(t *testing.T) {
	m := MustModel(t, noise.Zero(), noise.Zero())
	p := pulse.MustNew(pulse.X)

	_, err := evolution.New(p, m)
	assert.ErrorIs(t, err, evolution.ErrScaleUnset, "k must never be assumed")

	_, err = evolution.New(p, m, evolution.WithScale(math.NaN()))
	assert.ErrorIs(t, err, evolution.ErrInvalidScale)

	for _, eps := range []float64{0, -1e-3, math.NaN(), math.Inf(1)} {
		_, err = evolution.New(p, m, evolution.WithScale(1), evolution.WithStepSize(eps))
		assert.ErrorIs(t, err, evolution.ErrInvalidStepSize, "eps=%v", eps)
	}

	_, err = evolution.New(pulse.Pulse{}, m, evolution.WithScale(1))
	assert.ErrorIs(t, err, evolution.ErrInvalidPulse)

	_, err = evolution.New(p, noise.Model{X: noise.Zero()}, evolution.WithScale(1))
	assert.ErrorIs(t, err, noise.ErrNilFunc)

	assert.Panics(t, func() { evolution.WithWorkers(0) })
}

func TestNew_AxisSelection(t *testing.T) {
	m := MustModel(t, noise.Constant(1), noise.Constant(2))
	cases := []struct {
		axis        pulse.Axis
		first, orth noise.Channel
		orthOp      operator.Operator
	}{
		{pulse.X, noise.ChannelX, noise.ChannelZ, operator.PauliZ},
		{pulse.Y, noise.ChannelX, noise.ChannelZ, operator.PauliZ},
		{pulse.Identity, noise.ChannelX, noise.ChannelZ, operator.PauliZ},
		{pulse.Z, noise.ChannelZ, noise.ChannelX, operator.PauliX},
	}
	for _, tc := range cases {
		t.Run(tc.axis.String(), func(t *testing.T) {
			ev := MustEvolution(t, tc.axis, m, evolution.WithStepSize(1e-2))
			assert.Equal(t, tc.first, ev.FirstOrderChannel())
			assert.Equal(t, tc.orth, ev.OrthogonalChannel())
			assert.Equal(t, tc.orthOp, ev.OrthogonalOperator())
			assert.Equal(t, 1e-2, ev.StepSize())
			assert.Equal(t, evolution.ReferenceScale, ev.Scale())
			assert.Equal(t, tc.axis, ev.Pulse().Axis())
		})
	}
}

func TestNoisePropagator(t *testing.T) {
	a, b := 0.7, -0.4
	ev := MustEvolution(t, pulse.X, MustModel(t, noise.Constant(a), noise.Constant(b)), evolution.WithStepSize(1e-2))

	p, err := ev.NoisePropagator(3)
	require.NoError(t, err)
	want := rotation(1e-2*math.Hypot(a, b), a, b)
	assert.True(t, p.Equal(want, tol), "got %v want %v", p, want)
	assert.True(t, p.IsUnitary(tol))
}

func TestU_ZeroLengthIsIdentity(t *testing.T) {
	x, z := wobble()
	ev := MustEvolution(t, pulse.X, MustModel(t, x, z))
	for _, t1 := range []float64{0, 0.37, 5} {
		u, err := ev.U(t1, t1)
		require.NoError(t, err)
		assert.Equal(t, operator.Identity, u)
	}
}

func TestU_InvalidInputs(t *testing.T) {
	ev := MustEvolution(t, pulse.X, MustModel(t, noise.Zero(), noise.Zero()), evolution.WithStepSize(0.5))

	_, err := ev.U(0, 0.5)
	assert.ErrorIs(t, err, evolution.ErrInvalidStepSize, "eps == span gives no steps")
	_, err = ev.U(0, 0.3)
	assert.ErrorIs(t, err, evolution.ErrInvalidStepSize, "eps > span gives no steps")
	_, err = ev.U(1, 0)
	assert.ErrorIs(t, err, evolution.ErrInvalidInterval)
	_, err = ev.U(math.NaN(), 1)
	assert.ErrorIs(t, err, evolution.ErrInvalidInterval)

	m, err := ev.StepCount(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, m)
}

func TestStepCount_RepresentationGuard(t *testing.T) {
	ev := MustEvolution(t, pulse.X, MustModel(t, noise.Zero(), noise.Zero()), evolution.WithStepSize(0.1))
	cases := []struct {
		t1, t2 float64
		want   int
	}{
		{0, 0.3, 3}, // 0.3/0.1 = 2.9999999999999996
		{0, 0.29, 2},
		{0, 0.2999999, 2}, // a genuine shortfall is not rounded up
		{1, 2, 10},
		{0, 10, 100},
	}
	for _, tc := range cases {
		m, err := ev.StepCount(tc.t1, tc.t2)
		require.NoError(t, err)
		assert.Equal(t, tc.want, m, "[%v, %v]", tc.t1, tc.t2)
	}
}

// TestU_ConstantNoise compares against the closed form: M+1 identical steps
// compose to exp(−i(M+1)ε·H).
func TestU_ConstantNoise(t *testing.T) {
	a, b := 0.6, 0.25
	eps := 1e-3
	ev := MustEvolution(t, pulse.X, MustModel(t, noise.Constant(a), noise.Constant(b)), evolution.WithStepSize(eps))

	u, err := ev.U(0, 1)
	require.NoError(t, err)

	steps := 1001.0
	want := rotation(steps*eps*math.Hypot(a, b), a, b)
	assert.True(t, u.Equal(want, 1e-10), "got %v want %v", u, want)
	assert.True(t, u.IsUnitary(1e-10))
}

// TestU_TimeOrdering pins the convention: the earliest step is leftmost.
func TestU_TimeOrdering(t *testing.T) {
	x := func(t float64) float64 {
		if t < 0.5 {
			return 1
		}
		return 0
	}
	z := func(t float64) float64 {
		if t < 0.5 {
			return 0
		}
		return 1
	}
	ev := MustEvolution(t, pulse.X, MustModel(t, x, z), evolution.WithStepSize(0.25))

	u, err := ev.U(0, 0.75) // steps at t = 0, 0.25, 0.5, 0.75
	require.NoError(t, err)

	early := operator.PauliX.Scale(-0.5i).Expm()
	late := operator.PauliZ.Scale(-0.5i).Expm()
	assert.True(t, u.Equal(early.Mul(late), tol), "U must be early·late")
	assert.False(t, u.Equal(late.Mul(early), 1e-3), "reverse ordering must differ")
}

func TestU_MatchesChronologicalProduct(t *testing.T) {
	x, z := wobble()
	for _, workers := range []int{1, 2} {
		ev := MustEvolution(t, pulse.X, MustModel(t, x, z), evolution.WithStepSize(1e-3), evolution.WithWorkers(workers))

		m, err := ev.StepCount(0, 1)
		require.NoError(t, err)
		want := operator.Identity
		for k := 0; k <= m; k++ {
			p, err := ev.NoisePropagator(float64(k) * 1e-3)
			require.NoError(t, err)
			want = want.Mul(p)
		}

		u, err := ev.U(0, 1)
		require.NoError(t, err)
		assert.True(t, u.Equal(want, 1e-12), "workers=%d: got %v want %v", workers, u, want)
	}
}

func TestU_ParallelMatchesSequential(t *testing.T) {
	x, z := wobble()
	m := MustModel(t, x, z)
	seq := MustEvolution(t, pulse.Y, m)
	par := MustEvolution(t, pulse.Y, m, evolution.WithWorkers(4))

	for _, span := range [][2]float64{{0, 2}, {0.3, 1.9}, {1, 1.2}} {
		us, err := seq.U(span[0], span[1])
		require.NoError(t, err)
		up, err := par.U(span[0], span[1])
		require.NoError(t, err)
		assert.True(t, us.Equal(up, 1e-12), "span %v: %v vs %v", span, us, up)
	}
}

func TestU_NonFiniteNoise(t *testing.T) {
	bad := func(t float64) float64 {
		if t > 0.5 {
			return math.NaN()
		}
		return 0.1
	}
	for _, workers := range []int{1, 3} {
		ev := MustEvolution(t, pulse.X, MustModel(t, bad, noise.Zero()), evolution.WithWorkers(workers))
		_, err := ev.U(0, 1)
		require.ErrorIs(t, err, noise.ErrNonFinite)

		var de *noise.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, noise.ChannelX, de.Channel)
		assert.Greater(t, de.Time, 0.5)
	}
}

func TestPanickingNoise(t *testing.T) {
	undefined := func(t float64) float64 {
		if t > 0.5 {
			panic("noise undefined beyond t=0.5")
		}
		return 0.1
	}
	for _, workers := range []int{1, 3} {
		ev := MustEvolution(t, pulse.X, MustModel(t, undefined, noise.Zero()), evolution.WithWorkers(workers))

		_, err := ev.U(0, 0.4)
		require.NoError(t, err)

		_, err = ev.U(0, 1)
		require.ErrorIs(t, err, noise.ErrPanicked, "workers=%d", workers)
		var de *noise.DomainError
		require.True(t, errors.As(err, &de))
		assert.Greater(t, de.Time, 0.5)

		_, err = ev.FirstOrder(1, 0)
		assert.ErrorIs(t, err, noise.ErrPanicked)
	}

	evOrth := MustEvolution(t, pulse.X, MustModel(t, noise.Zero(), undefined))
	_, err := evOrth.FirstOrderExact(1, 1, 0)
	assert.ErrorIs(t, err, noise.ErrPanicked)
}

func TestSegment(t *testing.T) {
	x, z := wobble()
	ev := MustEvolution(t, pulse.Z, MustModel(t, x, z))
	u, err := ev.U(0, 1)
	require.NoError(t, err)
	s, err := ev.Segment(0, 1)
	require.NoError(t, err)
	assert.Equal(t, operator.PauliZ.Mul(u), s)
}

func TestEvolveSequence_ZeroNoiseIsPulsePower(t *testing.T) {
	m := MustModel(t, noise.Zero(), noise.Zero())
	for _, axis := range pulse.Axes() {
		ev := MustEvolution(t, axis, m, evolution.WithStepSize(1e-2))
		for n := 0; n <= 5; n++ {
			seq, err := ev.EvolveSequence(n, 0.5)
			require.NoError(t, err)
			want, _ := axis.Operator()
			assert.Equal(t, want.Power(n), seq.DD, "%s^%d", axis, n)
			assert.Len(t, seq.States, evolution.SampledStates(n))
		}
	}
}

// TestEvolveSequence_XPairNoNoise is the two-X-pulse scenario: DD is the
// identity and matches the first-order approximant perfectly.
func TestEvolveSequence_XPairNoNoise(t *testing.T) {
	ev := MustEvolution(t, pulse.X, MustModel(t, noise.Zero(), noise.Zero()), evolution.WithStepSize(1e-3))

	seq, err := ev.EvolveSequence(2, 1.0)
	require.NoError(t, err)
	assert.Equal(t, operator.Identity, seq.DD)
	require.Len(t, seq.States, 2)
	assert.Equal(t, operator.Ket0, seq.States[0])
	assert.Equal(t, operator.Ket1, seq.States[1])

	fo, err := ev.FirstOrder(2.0, 0)
	require.NoError(t, err)
	f, err := distance.Fidelity(seq.DD, fo)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
}

func TestEvolveSequence_MatchesDirectProduct(t *testing.T) {
	x, z := wobble()
	ev := MustEvolution(t, pulse.X, MustModel(t, x, z), evolution.WithStepSize(5e-3))
	const n, tau = 5, 0.4

	seq, err := ev.EvolveSequence(n, tau)
	require.NoError(t, err)

	segs := make([]operator.Operator, n)
	for i := range segs {
		segs[i], err = ev.Segment(float64(i)*tau, float64(i+1)*tau)
		require.NoError(t, err)
	}
	dd := operator.Identity
	for _, s := range segs {
		dd = s.Mul(dd)
	}
	assert.Equal(t, dd, seq.DD)

	require.Len(t, seq.States, 4) // |0⟩, after S0, after S2, after S4
	assert.Equal(t, segs[0].Apply(operator.Ket0), seq.States[1])
	assert.Equal(t, segs[2].Apply(segs[1].Apply(segs[0].Apply(operator.Ket0))), seq.States[2])
	for _, s := range seq.States {
		assert.InDelta(t, 1.0, s.Norm(), 1e-9)
	}
}

func TestEvolveSequence_Invalid(t *testing.T) {
	ev := MustEvolution(t, pulse.X, MustModel(t, noise.Zero(), noise.Zero()))
	_, err := ev.EvolveSequence(-1, 1)
	assert.ErrorIs(t, err, evolution.ErrInvalidSequence)
	_, err = ev.EvolveSequence(2, 0)
	assert.ErrorIs(t, err, evolution.ErrInvalidSequence)
	_, err = ev.EvolveSequence(2, math.Inf(1))
	assert.ErrorIs(t, err, evolution.ErrInvalidSequence)

	coarse := MustEvolution(t, pulse.X, MustModel(t, noise.Zero(), noise.Zero()), evolution.WithStepSize(1))
	_, err = coarse.EvolveSequence(3, 0.5)
	assert.ErrorIs(t, err, evolution.ErrInvalidStepSize)
	assert.Equal(t, 1, evolution.SampledStates(0))
	assert.Equal(t, 3, evolution.SampledStates(4))
	assert.Equal(t, 4, evolution.SampledStates(5))
}

func TestFirstOrder_ConstantNoise(t *testing.T) {
	const c, k, tf = 0.05, evolution.ReferenceScale, 3.0

	// X pulse: first order is the X channel.
	evX := MustEvolution(t, pulse.X, MustModel(t, noise.Constant(c), noise.Zero()))
	got, err := evX.FirstOrder(tf, 0)
	require.NoError(t, err)
	want := operator.PauliX.Scale(complex(0, -k*c*tf)).Expm()
	assert.True(t, got.Equal(want, tol), "got %v want %v", got, want)

	// Z pulse: first order is the Z channel.
	evZ := MustEvolution(t, pulse.Z, MustModel(t, noise.Zero(), noise.Constant(c)))
	got, err = evZ.FirstOrder(tf, 0)
	require.NoError(t, err)
	want = operator.PauliZ.Scale(complex(0, -k*c*tf)).Expm()
	assert.True(t, got.Equal(want, tol), "got %v want %v", got, want)

	// Z pulse ignores X-noise at first order.
	evZx := MustEvolution(t, pulse.Z, MustModel(t, noise.Constant(c), noise.Zero()))
	got, err = evZx.FirstOrder(tf, 0)
	require.NoError(t, err)
	assert.True(t, got.Equal(operator.Identity, tol))

	i1, err := evX.FirstOrderIntegral(tf, 1)
	require.NoError(t, err)
	assert.InDelta(t, c*(tf-1), i1, tol)
}

func TestFirstOrder_CustomScale(t *testing.T) {
	ev := MustEvolution(t, pulse.Y, MustModel(t, noise.Constant(0.2), noise.Zero()), evolution.WithScale(1))
	got, err := ev.FirstOrder(2, 0)
	require.NoError(t, err)
	want := operator.PauliY.Scale(complex(0, -0.4)).Expm()
	assert.True(t, got.Equal(want, tol))
}

func TestModulatedIntegral_SignWindows(t *testing.T) {
	const c = 0.3
	ev := MustEvolution(t, pulse.X, MustModel(t, noise.Zero(), noise.Constant(c)))

	i2, err := ev.ModulatedIntegral(1, 2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, i2, tol, "one even/odd window pair cancels")

	i2, err = ev.ModulatedIntegral(1, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, c, i2, tol)

	i2, err = ev.ModulatedIntegral(1, 3.5, 0)
	require.NoError(t, err)
	assert.InDelta(t, c*(1-1+1-0.5), i2, tol)

	// Windows are measured from t0.
	i2, err = ev.ModulatedIntegral(1, 2.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0, i2, tol)

	// Reversed interval: the window just below t0 keeps the sign.
	i2, err = ev.ModulatedIntegral(1, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, -c, i2, tol)

	i2, err = ev.ModulatedIntegral(1, -1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, i2, tol)

	_, err = ev.ModulatedIntegral(0, 1, 0)
	assert.ErrorIs(t, err, evolution.ErrInvalidSequence)
}

func TestModulatedIntegral_TauWindows(t *testing.T) {
	const c = 0.3
	ev := MustEvolution(t, pulse.X, MustModel(t, noise.Zero(), noise.Constant(c)), evolution.WithTauWindows())

	i2, err := ev.ModulatedIntegral(0.5, 2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, i2, tol)

	i2, err = ev.ModulatedIntegral(0.5, 1.5, 0)
	require.NoError(t, err)
	assert.InDelta(t, c*0.5, i2, tol)
}

func TestFirstOrderExact(t *testing.T) {
	const a, c, k = 0.04, 0.07, evolution.ReferenceScale
	ev := MustEvolution(t, pulse.X, MustModel(t, noise.Constant(a), noise.Constant(c)))

	// Over one window the orthogonal term survives.
	got, err := ev.FirstOrderExact(1, 1, 0)
	require.NoError(t, err)
	gen := operator.PauliX.Scale(complex(a, 0)).Add(operator.PauliZ.Scale(complex(c, 0)))
	want := gen.Scale(complex(0, -k)).Expm()
	assert.True(t, got.Equal(want, tol), "got %v want %v", got, want)

	// Over a full window pair it cancels and the result collapses to FirstOrder.
	got, err = ev.FirstOrderExact(1, 2, 0)
	require.NoError(t, err)
	fo, err := ev.FirstOrder(2, 0)
	require.NoError(t, err)
	assert.True(t, got.Equal(fo, 1e-10))

	_, err = ev.FirstOrderExact(-1, 2, 0)
	assert.ErrorIs(t, err, evolution.ErrInvalidSequence)
	_, err = ev.FirstOrderExact(1, math.NaN(), 0)
	assert.ErrorIs(t, err, evolution.ErrInvalidInterval)
}

func TestFirstOrder_Failures(t *testing.T) {
	nan := func(float64) float64 { return math.NaN() }

	ev := MustEvolution(t, pulse.X, MustModel(t, nan, noise.Zero()))
	_, err := ev.FirstOrder(1, 0)
	assert.ErrorIs(t, err, noise.ErrNonFinite)

	evOrth := MustEvolution(t, pulse.X, MustModel(t, noise.Zero(), nan))
	_, err = evOrth.FirstOrderExact(1, 1, 0)
	assert.ErrorIs(t, err, noise.ErrNonFinite)
	_, err = evOrth.FirstOrder(1, 0)
	assert.NoError(t, err, "orthogonal channel is not read by FirstOrder")

	// A fast oscillation on a coarse rule trips the error estimate.
	fast := noise.Sine(1, 200, 0)
	strict := quadrature.New(quadrature.WithNodes(4), quadrature.WithTolerance(1e-12))
	evFast := MustEvolution(t, pulse.X, MustModel(t, fast, noise.Zero()), evolution.WithIntegrator(strict))
	_, err = evFast.FirstOrder(3, 0)
	assert.ErrorIs(t, err, quadrature.ErrIntegrationFailed)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ev := MustEvolution(t, pulse.X, MustModel(t, noise.Zero(), noise.Zero()), evolution.WithLogger(log))

	_, err := ev.EvolveSequence(2, 1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"sequence evolved"`)
	assert.Contains(t, buf.String(), `"pulse":"X"`)
}
