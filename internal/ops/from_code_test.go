package ops

import (
	"testing"

	"github.com/hpungsan/capcode/internal/errors"
)

func TestFromCode(t *testing.T) {
	tests := []struct {
		code        string
		wantDisplay string
		wantUnit    string
		wantPF      float64
	}{
		{code: "106", wantDisplay: "10 µF", wantUnit: "uF", wantPF: 10_000_000},
		{code: "103", wantDisplay: "10 nF", wantUnit: "nF", wantPF: 10_000},
		{code: "100", wantDisplay: "10 pF", wantUnit: "pF", wantPF: 10},
		{code: "224", wantDisplay: "220 nF", wantUnit: "nF", wantPF: 220_000},
		{code: "050", wantDisplay: "5 pF", wantUnit: "pF", wantPF: 5},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := FromCode(FromCodeInput{Code: tt.code})
			if err != nil {
				t.Fatalf("FromCode(%q) error = %v", tt.code, err)
			}
			if got.Direction != DirectionCode {
				t.Errorf("Direction = %q, want %q", got.Direction, DirectionCode)
			}
			if got.Code != tt.code {
				t.Errorf("Code = %q, want %q", got.Code, tt.code)
			}
			if got.Capacitance.Display != tt.wantDisplay {
				t.Errorf("Display = %q, want %q", got.Capacitance.Display, tt.wantDisplay)
			}
			if got.Capacitance.Unit != tt.wantUnit {
				t.Errorf("Unit = %q, want %q", got.Capacitance.Unit, tt.wantUnit)
			}
			if got.Capacitance.Picofarads != tt.wantPF {
				t.Errorf("Picofarads = %v, want %v", got.Capacitance.Picofarads, tt.wantPF)
			}
			if len(got.Bands) != 3 {
				t.Errorf("len(Bands) = %d, want 3", len(got.Bands))
			}
		})
	}
}

func TestFromCode_NoResult(t *testing.T) {
	tests := []struct {
		name string
		code string
		want errors.ErrorCode
	}{
		{name: "empty", code: "", want: errors.ErrMissingInput},
		{name: "two characters", code: "10", want: errors.ErrMalformedCode},
		{name: "four characters", code: "1000", want: errors.ErrMalformedCode},
		{name: "non digit", code: "1x6", want: errors.ErrMalformedCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromCode(FromCodeInput{Code: tt.code})
			if got != nil {
				t.Errorf("FromCode(%q) result = %+v, want nil", tt.code, got)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("FromCode(%q) error = %v, want %s", tt.code, err, tt.want)
			}
		})
	}
}
