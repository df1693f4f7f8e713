package ops

import (
	"github.com/hpungsan/capcode/internal/capacitor"
	"github.com/hpungsan/capcode/internal/errors"
)

// FromCodeInput contains parameters for the FromCode operation.
// Code is expected to be digits only; callers strip other characters.
type FromCodeInput struct {
	Code string
}

// FromCode decodes a three-digit code into its capacitance and bands.
func FromCode(input FromCodeInput) (*ConversionResult, error) {
	if input.Code == "" {
		return nil, errors.NewMissingInput("code")
	}
	return fromCode(DirectionCode, input.Code)
}

func fromCode(dir Direction, raw string) (*ConversionResult, error) {
	code, err := capacitor.ParseCode(raw)
	if err != nil {
		return nil, mapDomainError(err, raw)
	}
	return newResult(dir, capacitor.Decode(code), code), nil
}
