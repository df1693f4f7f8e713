package ops

import "github.com/hpungsan/capcode/internal/capacitor"

// TableOutput contains the digit/color reference table.
type TableOutput struct {
	Colors []capacitor.DigitColor `json:"colors" yaml:"colors"`
}

// Table returns the reference table of band colors.
func Table() TableOutput {
	return TableOutput{Colors: capacitor.Table()}
}
