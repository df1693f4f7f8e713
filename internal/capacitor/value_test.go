package capacitor

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseMagnitude(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "integer", input: "10", want: "10"},
		{name: "fraction", input: "4.7", want: "4.7"},
		{name: "trailing zeros", input: "4.70", want: "4.7"},
		{name: "leading dot", input: ".5", want: "0.5"},
		{name: "scientific", input: "2.2e3", want: "2200"},
		{name: "surrounding spaces", input: "  33 ", want: "33"},
		{name: "empty", input: "", wantErr: ErrEmptyMagnitude},
		{name: "blank", input: "   ", wantErr: ErrEmptyMagnitude},
		{name: "letters", input: "abc", wantErr: ErrInvalidMagnitude},
		{name: "comma decimal", input: "4,7", wantErr: ErrInvalidMagnitude},
		{name: "NaN", input: "NaN", wantErr: ErrInvalidMagnitude},
		{name: "Inf", input: "Inf", wantErr: ErrInvalidMagnitude},
		{name: "absurd exponent", input: "1e9999999", wantErr: ErrInvalidMagnitude},
		{name: "exponent above limit", input: "1e65", wantErr: ErrInvalidMagnitude},
		{name: "exponent below limit", input: "1e-65", wantErr: ErrInvalidMagnitude},
		{name: "too many digits", input: "1" + strings.Repeat("0", 64), wantErr: ErrInvalidMagnitude},
		{name: "zero with huge exponent", input: "0e900", want: "0"},
		{name: "exponent at limit", input: "1e64", want: "1" + strings.Repeat("0", 64)},
		{name: "negative", input: "-1", wantErr: ErrNegativeMagnitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMagnitude(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMagnitude(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMagnitude(%q) error = %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseMagnitude(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestValue_Picofarads(t *testing.T) {
	tests := []struct {
		value Value
		want  int64
	}{
		{value: NewValue(10, Microfarad), want: 10_000_000},
		{value: NewValue(4.7, Nanofarad), want: 4700},
		{value: NewValue(220, Picofarad), want: 220},
	}

	for _, tt := range tests {
		if got := tt.value.Picofarads(); !got.Equal(decimal.NewFromInt(tt.want)) {
			t.Errorf("%s.Picofarads() = %s, want %d", tt.value, got, tt.want)
		}
	}
}

func TestValue_String(t *testing.T) {
	if got := NewValue(10, Microfarad).String(); got != "10 µF" {
		t.Errorf("String() = %q, want %q", got, "10 µF")
	}
	if got := NewValue(4.7, Nanofarad).String(); got != "4.7 nF" {
		t.Errorf("String() = %q, want %q", got, "4.7 nF")
	}
}

func TestBestFit_Thresholds(t *testing.T) {
	tests := []struct {
		pf   int64
		want string
	}{
		{pf: 999, want: "999 pF"},
		{pf: 1000, want: "1 nF"},
		{pf: 999_999, want: "999.999 nF"},
		{pf: 1_000_000, want: "1 µF"},
		{pf: 10_000_000, want: "10 µF"},
	}

	for _, tt := range tests {
		if got := BestFit(decimal.NewFromInt(tt.pf)).String(); got != tt.want {
			t.Errorf("BestFit(%d) = %q, want %q", tt.pf, got, tt.want)
		}
	}
}
