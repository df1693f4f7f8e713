// Package tui holds the interactive terminal calculator and the lipgloss
// renderers shared with the CLI's text output.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hpungsan/capcode/internal/capacitor"
	"github.com/hpungsan/capcode/internal/ops"
)

var (
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	valueStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	activeTab    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Underline(true).Padding(0, 1)
	inactiveTab  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	bandBase     = lipgloss.NewStyle().Padding(0, 1).Width(8).Align(lipgloss.Center)
	tableHeading = lipgloss.NewStyle().Bold(true).Underline(true)
)

// RenderBand renders one color band as a swatch labelled with its color name.
func RenderBand(c capacitor.DigitColor) string {
	return bandBase.
		Background(lipgloss.Color(c.Hex)).
		Foreground(lipgloss.Color(c.Contrast())).
		Render(c.Name)
}

// RenderBands renders bands side by side, first band first.
func RenderBands(bands []capacitor.DigitColor) string {
	swatches := make([]string, 0, len(bands)*2)
	for i, b := range bands {
		if i > 0 {
			swatches = append(swatches, " ")
		}
		swatches = append(swatches, RenderBand(b))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, swatches...)
}

// RenderResult renders a conversion result: capacitance, code and bands.
func RenderResult(r *ops.ConversionResult) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(valueStyle.Render(r.Capacitance.Display))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  (%s pF)", formatFloat(r.Capacitance.Picofarads))))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("code "))
	b.WriteString(accentStyle.Render(r.Code))
	b.WriteString("\n")
	b.WriteString(RenderBands(r.Bands))
	return b.String()
}

// RenderTable renders the digit/color reference table.
func RenderTable(colors []capacitor.DigitColor) string {
	var b strings.Builder
	b.WriteString(tableHeading.Render("Digit  Color     Hex"))
	b.WriteString("\n")
	for _, c := range colors {
		fmt.Fprintf(&b, "%-6d %s  %s\n", c.Digit, RenderBand(c), mutedStyle.Render(c.Hex))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
