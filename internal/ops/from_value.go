package ops

import (
	"strings"

	"github.com/hpungsan/capcode/internal/capacitor"
	"github.com/hpungsan/capcode/internal/errors"
)

// FromValueInput contains parameters for the FromValue operation.
// Fields hold raw form values.
type FromValueInput struct {
	Magnitude   string
	Unit        string // empty means DefaultUnit
	DefaultUnit string // empty means uF
}

// FromValue encodes a user-entered capacitance into a code and its bands.
// The displayed capacitance is the user's own magnitude and unit.
func FromValue(input FromValueInput) (*ConversionResult, error) {
	if strings.TrimSpace(input.Magnitude) == "" {
		return nil, errors.NewMissingInput("magnitude")
	}

	magnitude, err := capacitor.ParseMagnitude(input.Magnitude)
	if err != nil {
		return nil, mapDomainError(err, input.Magnitude)
	}

	unit, err := resolveUnit(input.Unit, input.DefaultUnit)
	if err != nil {
		return nil, err
	}

	value := capacitor.Value{Magnitude: magnitude, Unit: unit}
	code, err := capacitor.Encode(value)
	if err != nil {
		return nil, mapDomainError(err, value.String())
	}

	return newResult(DirectionValue, value, code), nil
}

// resolveUnit picks the explicit unit, then the default, then uF.
func resolveUnit(unit, fallback string) (capacitor.Unit, error) {
	token := strings.TrimSpace(unit)
	if token == "" {
		token = strings.TrimSpace(fallback)
	}
	if token == "" {
		return capacitor.Microfarad, nil
	}

	u, err := capacitor.ParseUnit(token)
	if err != nil {
		return 0, mapDomainError(err, token)
	}
	return u, nil
}
