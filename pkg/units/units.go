// Package units converts lengths between the linear units a figure can be
// specified in.
//
// Three units are supported: millimeters ([MM]), centimeters ([CM]) and
// inches ([Inches]). Conversions go through millimeters using the exact
// factors 1 in = 25.4 mm and 1 cm = 10 mm, with no rounding beyond native
// floating-point precision.
//
//	w, err := units.Convert(210, units.MM, units.Inches) // 8.267716...
package units

import (
	"strings"

	"github.com/matzehuels/panelgrid/pkg/errors"
)

// Unit names a linear length unit.
type Unit string

// Supported units.
const (
	MM     Unit = "mm"
	CM     Unit = "cm"
	Inches Unit = "inches"
)

// Default is the unit locators use when none is given.
const Default = MM

// millimetres per unit
var mmPer = map[Unit]float64{
	MM:     1,
	CM:     10,
	Inches: 25.4,
}

// All returns the supported units in a stable order.
func All() []Unit {
	return []Unit{MM, CM, Inches}
}

// String returns the unit tag.
func (u Unit) String() string { return string(u) }

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	_, ok := mmPer[u]
	return ok
}

// Validate returns an INVALID_UNIT error when u is not supported.
func (u Unit) Validate() error {
	if !u.Valid() {
		return invalid(string(u))
	}
	return nil
}

// Parse maps a unit tag to a Unit, ignoring case and surrounding space.
func Parse(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", invalid(s)
	}
	return u, nil
}

// UnmarshalText lets units decode from flags, JSON, TOML and YAML with validation.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalText encodes the canonical tag.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, invalid(string(u))
	}
	return []byte(u), nil
}

// Convert scales value from one unit to another.
func Convert(value float64, from, to Unit) (float64, error) {
	f, ok := mmPer[from]
	if !ok {
		return 0, invalid(string(from))
	}
	t, ok := mmPer[to]
	if !ok {
		return 0, invalid(string(to))
	}
	if from == to {
		return value, nil
	}
	return value * f / t, nil
}

// MustConvert is like Convert but panics on an unknown unit.
// Use it only where both units have already been validated.
func MustConvert(value float64, from, to Unit) float64 {
	v, err := Convert(value, from, to)
	if err != nil {
		panic(err)
	}
	return v
}

func invalid(s string) error {
	return errors.New(errors.ErrCodeInvalidUnit, "unsupported unit %q (must be one of: mm, cm, inches)", s)
}
