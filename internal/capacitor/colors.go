package capacitor

import (
	"fmt"
	"strings"
)

// DigitColor associates a code digit with its band color.
type DigitColor struct {
	Digit int    `json:"digit" yaml:"digit"`
	Hex   string `json:"hex" yaml:"hex"`
	Name  string `json:"name" yaml:"name"`
}

// digitColors is indexed by digit value. Read-only after init.
var digitColors = [10]DigitColor{
	{Digit: 0, Hex: "#000000", Name: "Black"},
	{Digit: 1, Hex: "#8B4513", Name: "Brown"},
	{Digit: 2, Hex: "#FF0000", Name: "Red"},
	{Digit: 3, Hex: "#FFA500", Name: "Orange"},
	{Digit: 4, Hex: "#FFFF00", Name: "Yellow"},
	{Digit: 5, Hex: "#008000", Name: "Green"},
	{Digit: 6, Hex: "#0000FF", Name: "Blue"},
	{Digit: 7, Hex: "#800080", Name: "Violet"},
	{Digit: 8, Hex: "#808080", Name: "Grey"},
	{Digit: 9, Hex: "#FFFFFF", Name: "White"},
}

// colorAliases lists accepted spellings besides the canonical names.
var colorAliases = map[string]int{
	"gray":   8,
	"purple": 7,
}

// colorDigits is a precomputed map from lowercase color name to digit.
var colorDigits = func() map[string]int {
	m := make(map[string]int, len(digitColors)+len(colorAliases))
	for _, c := range digitColors {
		m[strings.ToLower(c.Name)] = c.Digit
	}
	for name, d := range colorAliases {
		m[name] = d
	}
	return m
}()

// ColorOf returns the band color for a digit character '0'..'9'.
// Callers must validate the digit first; anything else panics.
func ColorOf(digit byte) DigitColor {
	if digit < '0' || digit > '9' {
		panic(fmt.Sprintf("capacitor: ColorOf called with non-digit %q", digit))
	}
	return digitColors[digit-'0']
}

// Table returns the ten band colors in digit order.
func Table() []DigitColor {
	out := make([]DigitColor, len(digitColors))
	copy(out, digitColors[:])
	return out
}

// DigitForName looks up a digit by color name, case-insensitively.
func DigitForName(name string) (int, bool) {
	d, ok := colorDigits[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// RGB splits the hex color into its components.
func (c DigitColor) RGB() (r, g, b uint8) {
	_, _ = fmt.Sscanf(strings.TrimPrefix(c.Hex, "#"), "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// Contrast returns black or white, whichever reads better on top of the band color.
func (c DigitColor) Contrast() string {
	r, g, b := c.RGB()
	// ITU-R BT.601 luma
	luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luma > 140 {
		return "#000000"
	}
	return "#FFFFFF"
}
