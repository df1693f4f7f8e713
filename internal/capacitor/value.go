package capacitor

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyMagnitude    = errors.New("magnitude is empty")
	ErrInvalidMagnitude  = errors.New("magnitude is not a number")
	ErrNegativeMagnitude = errors.New("magnitude is negative")
)

// Limits on magnitudes accepted from input. Anything outside them is far
// beyond the encodable range (below 0.5 pF or above 10^11 pF) in every unit.
const (
	maxMagnitudeExponent = 64
	maxMagnitudeDigits   = 64
)

// Value is a capacitance: a non-negative magnitude in a given unit.
type Value struct {
	Magnitude decimal.Decimal
	Unit      Unit
}

// NewValue builds a Value from a float magnitude. Intended for literals and tests;
// user input goes through ParseMagnitude.
func NewValue(magnitude float64, unit Unit) Value {
	return Value{Magnitude: decimal.NewFromFloat(magnitude), Unit: unit}
}

// ParseMagnitude parses a user-entered magnitude such as "10", "4.7" or "2.2e3".
// Surrounding whitespace is ignored. Locale-specific separators are not accepted.
func ParseMagnitude(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyMagnitude
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidMagnitude
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	if d.Exponent() > maxMagnitudeExponent || d.Exponent() < -maxMagnitudeExponent ||
		d.NumDigits() > maxMagnitudeDigits {
		return decimal.Zero, ErrInvalidMagnitude
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeMagnitude
	}
	return d, nil
}

// Picofarads returns the exact value in picofarads.
func (v Value) Picofarads() decimal.Decimal {
	return v.Magnitude.Shift(v.Unit.Exponent())
}

// String renders the value for display, e.g. "4.7 nF" or "10 µF".
func (v Value) String() string {
	return v.Magnitude.String() + " " + v.Unit.Symbol()
}

// BestFit re-expresses a picofarad amount in the largest unit it reaches:
// µF from 1 000 000 pF, nF from 1 000 pF, pF below that.
func BestFit(pf decimal.Decimal) Value {
	switch {
	case pf.Cmp(Microfarad.Scale()) >= 0:
		return Value{Magnitude: pf.Shift(-Microfarad.Exponent()), Unit: Microfarad}
	case pf.Cmp(Nanofarad.Scale()) >= 0:
		return Value{Magnitude: pf.Shift(-Nanofarad.Exponent()), Unit: Nanofarad}
	default:
		return Value{Magnitude: pf, Unit: Picofarad}
	}
}
