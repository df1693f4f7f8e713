package ops

import (
	stderrors "errors"

	"github.com/hpungsan/capcode/internal/capacitor"
	"github.com/hpungsan/capcode/internal/errors"
)

// Direction names the conversion a result came from.
type Direction string

const (
	DirectionValue  Direction = "value"
	DirectionCode   Direction = "code"
	DirectionColors Direction = "colors"
)

// Directions lists every conversion direction.
var Directions = []Direction{DirectionValue, DirectionCode, DirectionColors}

// Capacitance is the display form of a capacitance.
type Capacitance struct {
	Magnitude  float64 `json:"magnitude" yaml:"magnitude"`
	Unit       string  `json:"unit" yaml:"unit"`
	Symbol     string  `json:"symbol" yaml:"symbol"`
	Display    string  `json:"display" yaml:"display"`
	Picofarads float64 `json:"picofarads" yaml:"picofarads"`
}

// ConversionResult is the output of every conversion.
// It is built fresh per call and not retained.
type ConversionResult struct {
	Direction   Direction              `json:"direction" yaml:"direction"`
	Capacitance Capacitance            `json:"capacitance" yaml:"capacitance"`
	Code        string                 `json:"code" yaml:"code"`
	Bands       []capacitor.DigitColor `json:"bands" yaml:"bands"`
}

// newCapacitance converts a domain value to its display form.
func newCapacitance(v capacitor.Value) Capacitance {
	return Capacitance{
		Magnitude:  v.Magnitude.InexactFloat64(),
		Unit:       v.Unit.Token(),
		Symbol:     v.Unit.Symbol(),
		Display:    v.String(),
		Picofarads: v.Picofarads().InexactFloat64(),
	}
}

// newResult packages a value and its code. Bands always has three entries.
func newResult(dir Direction, v capacitor.Value, code capacitor.Code) *ConversionResult {
	bands := capacitor.Colorize(code)
	return &ConversionResult{
		Direction:   dir,
		Capacitance: newCapacitance(v),
		Code:        code.String(),
		Bands:       bands[:],
	}
}

// mapDomainError converts capacitor package errors to CapErrors.
// input is the raw user value, echoed in the error details.
func mapDomainError(err error, input string) *errors.CapError {
	input = clip(input)
	switch {
	case stderrors.Is(err, capacitor.ErrEmptyMagnitude):
		return errors.NewMissingInput("magnitude")
	case stderrors.Is(err, capacitor.ErrInvalidMagnitude):
		return errors.NewInvalidMagnitude(input, "not a number in the supported range")
	case stderrors.Is(err, capacitor.ErrNegativeMagnitude):
		return errors.NewInvalidMagnitude(input, "must not be negative")
	case stderrors.Is(err, capacitor.ErrUnknownUnit):
		return errors.NewUnknownUnit(input)
	case stderrors.Is(err, capacitor.ErrMalformedCode):
		return errors.NewMalformedCode(input)
	case stderrors.Is(err, capacitor.ErrOutOfRange):
		return errors.NewOutOfRange(input)
	default:
		return errors.NewInternal(err)
	}
}

// maxEchoLen caps how much of a raw input is echoed back in an error.
const maxEchoLen = 64

func clip(s string) string {
	r := []rune(s)
	if len(r) <= maxEchoLen {
		return s
	}
	return string(r[:maxEchoLen]) + "…"
}
