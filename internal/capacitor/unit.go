package capacitor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownUnit is returned by ParseUnit for an unrecognized token.
var ErrUnknownUnit = errors.New("unknown unit")

// Unit selects the multiplier applied to a magnitude.
type Unit int

const (
	Picofarad Unit = iota
	Nanofarad
	Microfarad
)

// unitTokens maps accepted input tokens (lowercase) to units.
var unitTokens = map[string]Unit{
	"pf":          Picofarad,
	"p":           Picofarad,
	"picofarad":   Picofarad,
	"picofarads":  Picofarad,
	"nf":          Nanofarad,
	"n":           Nanofarad,
	"nanofarad":   Nanofarad,
	"nanofarads":  Nanofarad,
	"uf":          Microfarad,
	"µf":          Microfarad, // micro sign U+00B5
	"μf":          Microfarad, // greek mu U+03BC
	"u":           Microfarad,
	"µ":           Microfarad,
	"μ":           Microfarad,
	"microfarad":  Microfarad,
	"microfarads": Microfarad,
}

// Units returns all units from smallest to largest.
func Units() []Unit {
	return []Unit{Picofarad, Nanofarad, Microfarad}
}

// ParseUnit resolves a unit token such as "pF", "nF", "uF" or "µF".
func ParseUnit(s string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if u, ok := unitTokens[key]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Token is the ASCII input token for the unit.
func (u Unit) Token() string {
	switch u {
	case Nanofarad:
		return "nF"
	case Microfarad:
		return "uF"
	default:
		return "pF"
	}
}

// Symbol is the display symbol for the unit.
func (u Unit) Symbol() string {
	if u == Microfarad {
		return "µF"
	}
	return u.Token()
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return u.Token()
}

// Exponent is the power of ten that converts the unit to picofarads.
func (u Unit) Exponent() int32 {
	switch u {
	case Nanofarad:
		return 3
	case Microfarad:
		return 6
	default:
		return 0
	}
}

// Scale is the picofarad multiplier: 1, 1000 or 1000000.
func (u Unit) Scale() decimal.Decimal {
	return decimal.New(1, u.Exponent())
}

// MarshalText encodes the unit as its token.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Token()), nil
}

// UnmarshalText decodes any token accepted by ParseUnit.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
