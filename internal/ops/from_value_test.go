package ops

import (
	"testing"

	"github.com/hpungsan/capcode/internal/errors"
)

func TestFromValue(t *testing.T) {
	tests := []struct {
		name        string
		input       FromValueInput
		wantCode    string
		wantDisplay string
		wantBands   []string
	}{
		{
			name:        "10 uF",
			input:       FromValueInput{Magnitude: "10", Unit: "uF"},
			wantCode:    "106",
			wantDisplay: "10 µF",
			wantBands:   []string{"Brown", "Black", "Blue"},
		},
		{
			name:        "4.7 nF",
			input:       FromValueInput{Magnitude: "4.7", Unit: "nF"},
			wantCode:    "472",
			wantDisplay: "4.7 nF",
			wantBands:   []string{"Yellow", "Violet", "Red"},
		},
		{
			name:        "displays user value, not decoded value",
			input:       FromValueInput{Magnitude: "4750", Unit: "pF"},
			wantCode:    "472",
			wantDisplay: "4750 pF",
			wantBands:   []string{"Yellow", "Violet", "Red"},
		},
		{
			name:        "small value",
			input:       FromValueInput{Magnitude: "5", Unit: "pF"},
			wantCode:    "050",
			wantDisplay: "5 pF",
			wantBands:   []string{"Black", "Green", "Black"},
		},
		{
			name:        "empty unit uses default",
			input:       FromValueInput{Magnitude: "100", DefaultUnit: "nF"},
			wantCode:    "104",
			wantDisplay: "100 nF",
			wantBands:   []string{"Brown", "Black", "Yellow"},
		},
		{
			name:        "no unit at all means uF",
			input:       FromValueInput{Magnitude: "1"},
			wantCode:    "105",
			wantDisplay: "1 µF",
			wantBands:   []string{"Brown", "Black", "Green"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromValue(tt.input)
			if err != nil {
				t.Fatalf("FromValue() error = %v", err)
			}
			if got.Direction != DirectionValue {
				t.Errorf("Direction = %q, want %q", got.Direction, DirectionValue)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Capacitance.Display != tt.wantDisplay {
				t.Errorf("Display = %q, want %q", got.Capacitance.Display, tt.wantDisplay)
			}
			names := bandNames(got)
			for i := range tt.wantBands {
				if names[i] != tt.wantBands[i] {
					t.Errorf("Bands = %v, want %v", names, tt.wantBands)
					break
				}
			}
		})
	}
}

func TestFromValue_NoResult(t *testing.T) {
	tests := []struct {
		name  string
		input FromValueInput
		want  errors.ErrorCode
	}{
		{name: "empty magnitude", input: FromValueInput{Magnitude: "", Unit: "uF"}, want: errors.ErrMissingInput},
		{name: "blank magnitude", input: FromValueInput{Magnitude: "  ", Unit: "uF"}, want: errors.ErrMissingInput},
		{name: "non numeric", input: FromValueInput{Magnitude: "ten", Unit: "uF"}, want: errors.ErrInvalidMagnitude},
		{name: "negative", input: FromValueInput{Magnitude: "-4.7", Unit: "nF"}, want: errors.ErrInvalidMagnitude},
		{name: "unknown unit", input: FromValueInput{Magnitude: "1", Unit: "mF"}, want: errors.ErrUnknownUnit},
		{name: "unknown default unit", input: FromValueInput{Magnitude: "1", DefaultUnit: "kF"}, want: errors.ErrUnknownUnit},
		{name: "exponent overflow", input: FromValueInput{Magnitude: "100000", Unit: "uF"}, want: errors.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromValue(tt.input)
			if got != nil {
				t.Errorf("FromValue() result = %+v, want nil", got)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("FromValue() error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestFromValue_Idempotent(t *testing.T) {
	input := FromValueInput{Magnitude: "22", Unit: "nF"}
	first, err := FromValue(input)
	if err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	second, err := FromValue(input)
	if err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if first.Code != second.Code || first.Capacitance != second.Capacitance {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}

func TestFromValue_ExtremeMagnitudesStayShort(t *testing.T) {
	tests := []struct {
		name      string
		magnitude string
		wantCode  string
		wantErr   errors.ErrorCode
	}{
		{name: "largest exponent", magnitude: "1e64", wantErr: errors.ErrOutOfRange},
		{name: "smallest exponent", magnitude: "1e-64", wantCode: "000"},
		{name: "huge exponent", magnitude: "1e1000000", wantErr: errors.ErrInvalidMagnitude},
		{name: "tiny exponent", magnitude: "1e-1000000", wantErr: errors.ErrInvalidMagnitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromValue(FromValueInput{Magnitude: tt.magnitude, Unit: "pF"})
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromValue(%s) error = %v, want %s", tt.magnitude, err, tt.wantErr)
				}
				if n := len(err.Error()); n > 160 {
					t.Errorf("error message is %d bytes, want at most 160", n)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromValue(%s) error = %v", tt.magnitude, err)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if n := len(got.Capacitance.Display); n > 80 {
				t.Errorf("Display is %d bytes, want at most 80", n)
			}
		})
	}
}
