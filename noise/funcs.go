// SPDX-License-Identifier: MIT

package noise

import "math"

const panicWindowInvalid = "noise: Alternating: width must be finite and positive"

// Zero is the identically-zero function.
func Zero() Func {
	return func(float64) float64 { return 0 }
}

// Constant returns t ↦ c.
func Constant(c float64) Func {
	return func(float64) float64 { return c }
}

// Sine returns t ↦ amplitude·sin(omega·t + phase).
func Sine(amplitude, omega, phase float64) Func {
	return func(t float64) float64 { return amplitude * math.Sin(omega*t+phase) }
}

// Sum returns the pointwise sum of fs; an empty Sum is Zero.
func Sum(fs ...Func) Func {
	return func(t float64) float64 {
		var s float64
		for _, f := range fs {
			s += f(t)
		}
		return s
	}
}

// Alternating flips the sign of f on every other window of the given width
// measured from t0: the window index k = trunc((t−t0)/width) keeps the sign
// for even k and negates it for odd k. Truncation toward zero makes the
// window just before t0 share index 0 with the one after it. It models the averaging a train of π
// pulses applies to noise on the orthogonal axis.
//
// Panics if width is not finite and positive.
func Alternating(f Func, t0, width float64) Func {
	if !(width > 0) || math.IsInf(width, 0) {
		panic(panicWindowInvalid)
	}

	return func(t float64) float64 {
		if WindowIndex(t, t0, width)%2 != 0 {
			return -f(t)
		}
		return f(t)
	}
}

// WindowIndex returns (t−t0)/width truncated toward zero.
func WindowIndex(t, t0, width float64) int64 {
	return int64(math.Trunc((t - t0) / width))
}

// WindowBreaks lists the window edges t0 + k·width strictly inside the
// interval spanned by a and b, in ascending order.
func WindowBreaks(t0, width, a, b float64) []float64 {
	if !(width > 0) || math.IsInf(width, 0) {
		return nil
	}
	lo, hi := math.Min(a, b), math.Max(a, b)

	var breaks []float64
	for k := int64(math.Floor((lo-t0)/width)) + 1; ; k++ {
		edge := t0 + float64(k)*width
		if edge >= hi {
			break
		}
		if edge > lo {
			breaks = append(breaks, edge)
		}
	}

	return breaks
}
