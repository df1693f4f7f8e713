package mcp

import "github.com/mark3labs/mcp-go/mcp"

var encodeToolDef = mcp.NewTool("code_encode",
	mcp.WithDescription("Convert a capacitance value to its 3-digit capacitor code and color bands. "+
		"Values are rounded to the nearest whole picofarad (halves round up)."),
	mcp.WithTitleAnnotation("Encode capacitance"),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithIdempotentHintAnnotation(true),
	mcp.WithString("magnitude",
		mcp.Required(),
		mcp.Description(`Non-negative decimal number, e.g. "4.7" or "2.2e3"`),
	),
	mcp.WithString("unit",
		mcp.Description("Unit of magnitude: pF, nF or uF (defaults to the configured default unit)"),
		mcp.Enum("pF", "nF", "uF", "µF"),
	),
)

var decodeToolDef = mcp.NewTool("code_decode",
	mcp.WithDescription("Convert a 3-digit capacitor code (two significant digits and a power-of-ten multiplier, in pF) to a capacitance."),
	mcp.WithTitleAnnotation("Decode capacitor code"),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithIdempotentHintAnnotation(true),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description(`Exactly three ASCII digits, e.g. "104"`),
	),
)

var fromColorsToolDef = mcp.NewTool("code_from_colors",
	mcp.WithDescription("Convert three color bands (first digit, second digit, multiplier) to a capacitance."),
	mcp.WithTitleAnnotation("Decode color bands"),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithIdempotentHintAnnotation(true),
	mcp.WithArray("bands",
		mcp.Required(),
		mcp.Description(`Three bands, each a color name ("brown") or digit ("1")`),
		mcp.MinItems(3),
		mcp.MaxItems(3),
		mcp.Items(map[string]any{"type": []string{"string", "integer"}}),
	),
)

var colorTableToolDef = mcp.NewTool("color_table",
	mcp.WithDescription("List the digit to color mapping used for capacitor bands."),
	mcp.WithTitleAnnotation("Color table"),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithIdempotentHintAnnotation(true),
)
