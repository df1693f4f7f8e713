// Package capacitor converts between capacitance values, three-digit
// capacitor codes and their color bands. Everything here is pure and
// safe for concurrent use.
package capacitor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMalformedCode = errors.New("code must be exactly 3 digits")
	ErrOutOfRange    = errors.New("value needs an exponent above 9")
)

// CodeLength is the number of characters in a numeric code.
const CodeLength = 3

// MaxExponent is the largest exponent a single code digit can carry.
const MaxExponent = 9

// Code is a three-digit capacitor marking "XYZ" meaning (X*10+Y) × 10^Z pF.
// Values of type Code are always valid when obtained from ParseCode, NewCode or Encode.
type Code string

// ParseCode validates s as exactly three ASCII digits. No trimming is done.
func ParseCode(s string) (Code, error) {
	if len(s) != CodeLength {
		return "", fmt.Errorf("%w: %q", ErrMalformedCode, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("%w: %q", ErrMalformedCode, s)
		}
	}
	return Code(s), nil
}

// NewCode builds a code from three digit values.
func NewCode(d0, d1, d2 int) (Code, error) {
	for _, d := range []int{d0, d1, d2} {
		if d < 0 || d > 9 {
			return "", fmt.Errorf("%w: digit %d", ErrMalformedCode, d)
		}
	}
	return Code([]byte{byte('0' + d0), byte('0' + d1), byte('0' + d2)}), nil
}

// Significand returns the two significant digits as a number (0..99).
func (c Code) Significand() int64 {
	return int64(c[0]-'0')*10 + int64(c[1]-'0')
}

// Exponent returns the multiplier digit (0..9).
func (c Code) Exponent() int32 {
	return int32(c[2] - '0')
}

// Picofarads returns the value the code stands for.
func (c Code) Picofarads() decimal.Decimal {
	return decimal.New(c.Significand(), c.Exponent())
}

// String implements fmt.Stringer.
func (c Code) String() string {
	return string(c)
}

// Encode converts a capacitance to its three-digit code.
//
// The picofarad amount is rounded to an integer half away from zero, so
// 99.5 pF encodes as "101" and 99.4 pF as "990". Amounts below 100 pF keep
// both digits with a zero exponent ("050" for 5 pF). Above that, digits past
// the second are truncated. Amounts that round to 10^11 pF or more need a
// two-digit exponent and return ErrOutOfRange.
func Encode(v Value) (Code, error) {
	if v.Magnitude.IsNegative() {
		return "", ErrNegativeMagnitude
	}

	pf := v.Picofarads()

	// Bound the work before rounding: a Value built without ParseMagnitude
	// can carry any exponent.
	if pf.IsZero() {
		pf = decimal.Zero
	} else {
		order := int64(pf.NumDigits()) + int64(pf.Exponent())
		if order > CodeLength+MaxExponent {
			return "", fmt.Errorf("%w: about 10^%d pF", ErrOutOfRange, order-1)
		}
		if order < 0 {
			pf = decimal.Zero
		}
	}

	rounded := pf.Round(0)

	if rounded.LessThan(decimal.NewFromInt(100)) {
		return Code(fmt.Sprintf("%02d0", rounded.IntPart())), nil
	}

	s := rounded.String()
	exponent := len(s) - 2
	if exponent > MaxExponent {
		return "", fmt.Errorf("%w: %s pF", ErrOutOfRange, s)
	}
	return Code(s[:2] + string(rune('0'+exponent))), nil
}

// Decode converts a code to its value, expressed in the best-fit unit.
// The magnitude is exact and not re-rounded.
func Decode(c Code) Value {
	return BestFit(c.Picofarads())
}

// Colorize maps each digit of the code to its band color, in order.
func Colorize(c Code) [CodeLength]DigitColor {
	var bands [CodeLength]DigitColor
	for i := 0; i < CodeLength; i++ {
		bands[i] = ColorOf(c[i])
	}
	return bands
}

// StripNonDigits drops every character that is not an ASCII digit.
// Input layers apply it to free-text code fields before validation.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
