package capacitor

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input string
		want  Unit
	}{
		{input: "pF", want: Picofarad},
		{input: "PF", want: Picofarad},
		{input: "picofarad", want: Picofarad},
		{input: "nF", want: Nanofarad},
		{input: "n", want: Nanofarad},
		{input: "uF", want: Microfarad},
		{input: "µF", want: Microfarad},
		{input: "μF", want: Microfarad},
		{input: " microfarads ", want: Microfarad},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if err != nil {
				t.Fatalf("ParseUnit(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUnit_Unknown(t *testing.T) {
	for _, input := range []string{"", "mF", "F", "farad"} {
		if _, err := ParseUnit(input); !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("ParseUnit(%q) error = %v, want ErrUnknownUnit", input, err)
		}
	}
}

func TestUnit_Symbols(t *testing.T) {
	if Microfarad.Token() != "uF" || Microfarad.Symbol() != "µF" {
		t.Errorf("Microfarad token/symbol = %q/%q", Microfarad.Token(), Microfarad.Symbol())
	}
	if Nanofarad.Symbol() != "nF" || Picofarad.Symbol() != "pF" {
		t.Errorf("Nanofarad/Picofarad symbol = %q/%q", Nanofarad.Symbol(), Picofarad.Symbol())
	}
}

func TestUnit_Scale(t *testing.T) {
	if Picofarad.Scale().String() != "1" {
		t.Errorf("Picofarad.Scale() = %s", Picofarad.Scale())
	}
	if Nanofarad.Scale().String() != "1000" {
		t.Errorf("Nanofarad.Scale() = %s", Nanofarad.Scale())
	}
	if Microfarad.Scale().String() != "1000000" {
		t.Errorf("Microfarad.Scale() = %s", Microfarad.Scale())
	}
}

func TestUnit_JSON(t *testing.T) {
	var cfg struct {
		Unit Unit `json:"unit"`
	}
	if err := json.Unmarshal([]byte(`{"unit":"nF"}`), &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Unit != Nanofarad {
		t.Fatalf("Unit = %s, want nF", cfg.Unit)
	}

	b, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `{"unit":"nF"}` {
		t.Errorf("Marshal() = %s", b)
	}

	if err := json.Unmarshal([]byte(`{"unit":"kF"}`), &cfg); err == nil {
		t.Error("Unmarshal() expected error for unknown unit")
	}
}
