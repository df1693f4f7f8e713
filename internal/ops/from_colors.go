package ops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hpungsan/capcode/internal/capacitor"
	"github.com/hpungsan/capcode/internal/errors"
)

// FromColorsInput contains parameters for the FromColors operation.
// A nil entry is an unselected band.
type FromColorsInput struct {
	Digits [capacitor.CodeLength]*int
}

// FromColors decodes three selected bands, first band first.
// It behaves like FromCode on the concatenated digits.
func FromColors(input FromColorsInput) (*ConversionResult, error) {
	var b strings.Builder
	for i, d := range input.Digits {
		if d == nil {
			return nil, errors.NewMissingInput(fmt.Sprintf("band %d", i+1))
		}
		if *d < 0 || *d > 9 {
			return nil, errors.NewMalformedCode(fmt.Sprintf("band %d = %d", i+1, *d))
		}
		b.WriteByte(byte('0' + *d))
	}
	return fromCode(DirectionColors, b.String())
}

// ParseBand accepts a band as a digit ("6") or a color name ("blue").
// Empty input returns (nil, nil) so callers can report it as unselected.
func ParseBand(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		d, _ := strconv.Atoi(s)
		return &d, nil
	}
	if d, ok := capacitor.DigitForName(s); ok {
		return &d, nil
	}
	return nil, errors.NewUnknownColor(s)
}

// ParseBands parses up to three bands into a FromColorsInput.
func ParseBands(bands []string) (FromColorsInput, error) {
	var input FromColorsInput
	if len(bands) > capacitor.CodeLength {
		return input, errors.NewInvalidRequest(fmt.Sprintf("expected %d bands, got %d", capacitor.CodeLength, len(bands)))
	}
	for i, s := range bands {
		d, err := ParseBand(s)
		if err != nil {
			return input, err
		}
		input.Digits[i] = d
	}
	return input, nil
}

// FromBands parses bands given as text (digits or color names) and decodes them.
func FromBands(bands []string) (*ConversionResult, error) {
	input, err := ParseBands(bands)
	if err != nil {
		return nil, err
	}
	return FromColors(input)
}
