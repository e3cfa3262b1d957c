// SPDX-License-Identifier: MIT

package pulse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ramsey/operator"
)

// ErrUnknownAxis is returned for an Axis outside {X, Y, Z, Identity}.
var ErrUnknownAxis = errors.New("pulse: unknown axis")

// Axis enumerates the supported pulse directions.
type Axis int

// Supported axes. The zero value is deliberately invalid.
const (
	X Axis = iota + 1
	Y
	Z
	Identity
)

// axisEntry is one row of the axis table.
type axisEntry struct {
	name string
	op   operator.Operator
}

// axisTable is the single source of truth for Axis → operator.
var axisTable = map[Axis]axisEntry{
	X:        {name: "X", op: operator.PauliX},
	Y:        {name: "Y", op: operator.PauliY},
	Z:        {name: "Z", op: operator.PauliZ},
	Identity: {name: "I", op: operator.Identity},
}

// Axes lists every valid axis in declaration order.
func Axes() []Axis { return []Axis{X, Y, Z, Identity} }

// Valid reports whether a is one of the declared axes.
func (a Axis) Valid() bool {
	_, ok := axisTable[a]
	return ok
}

// String returns "X", "Y", "Z", "I", or "Axis(n)" for unknown values.
func (a Axis) String() string {
	if e, ok := axisTable[a]; ok {
		return e.name
	}

	return fmt.Sprintf("Axis(%d)", int(a))
}

// Operator resolves the axis to its fixed unitary.
func (a Axis) Operator() (operator.Operator, error) {
	e, ok := axisTable[a]
	if !ok {
		return operator.Operator{}, fmt.Errorf("%s: %w", a, ErrUnknownAxis)
	}

	return e.op, nil
}

// ParseAxis accepts "X", "Y", "Z", "I" or "ID"/"IDENTITY", case-insensitively.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "Y":
		return Y, nil
	case "Z":
		return Z, nil
	case "I", "ID", "IDENTITY":
		return Identity, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownAxis)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so an Axis can be read
// straight from configuration.
func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%s: %w", a, ErrUnknownAxis)
	}

	return []byte(a.String()), nil
}

// Pulse is an ideal control operation: an Axis and its resolved operator.
type Pulse struct {
	axis Axis
	op   operator.Operator
}

// New builds the Pulse for axis a.
func New(a Axis) (Pulse, error) {
	op, err := a.Operator()
	if err != nil {
		return Pulse{}, err
	}

	return Pulse{axis: a, op: op}, nil
}

// MustNew is New for package-level tables and tests; it panics on an unknown axis.
func MustNew(a Axis) Pulse {
	p, err := New(a)
	if err != nil {
		panic(err)
	}

	return p
}

// Axis returns the pulse axis.
func (p Pulse) Axis() Axis { return p.axis }

// Operator returns the pulse unitary.
func (p Pulse) Operator() operator.Operator { return p.op }

// String returns the axis name, e.g. "X".
func (p Pulse) String() string { return p.axis.String() }
