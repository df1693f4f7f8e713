package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hpungsan/capcode/internal/capacitor"
	"github.com/hpungsan/capcode/internal/config"
	"github.com/hpungsan/capcode/internal/errors"
	"github.com/hpungsan/capcode/internal/ops"
	"github.com/hpungsan/capcode/internal/tui"
	"github.com/hpungsan/capcode/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cfg *config.Config, log *zap.Logger) *cli.App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}

	app := &cli.App{
		Name:    "capcode",
		Usage:   "Capacitor value, 3-digit code and color band converter",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   cfg.OutputFormat,
				Usage:   "Output format: json|yaml|text",
			},
		},
		Commands: []*cli.Command{
			encodeCmd(cfg),
			decodeCmd(),
			colorsCmd(),
			tableCmd(),
			webCmd(cfg, log),
			tuiCmd(cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// encodeCmd creates the encode command.
func encodeCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Convert a capacitance to its 3-digit code and color bands",
		ArgsUsage: "<magnitude> [unit | --unit <unit>]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "unit", Aliases: []string{"u"}, Usage: "Unit: pF|nF|uF (default from config)"},
		},
		Action: func(c *cli.Context) error {
			magnitude, unit, err := encodeArgs(c.Args().Slice(), c.String("unit"))
			if err != nil {
				return outputError(err)
			}

			result, err := ops.FromValue(ops.FromValueInput{
				Magnitude:   magnitude,
				Unit:        unit,
				DefaultUnit: cfg.DefaultUnit,
			})
			if err != nil {
				return outputError(err)
			}
			return output(c, result)
		},
	}
}

// encodeArgs splits encode's arguments into magnitude and unit.
// Flag parsing stops at the first positional argument, so a trailing
// "--unit nF" or "-u=nF" arrives here as plain arguments.
func encodeArgs(args []string, flagUnit string) (magnitude, unit string, err error) {
	if len(args) == 0 {
		return "", "", errors.NewMissingInput("magnitude")
	}
	magnitude, rest := args[0], args[1:]

	switch {
	case len(rest) == 0:
	case len(rest) == 2 && isUnitFlag(rest[0]):
		unit = rest[1]
	case len(rest) == 1 && isUnitFlag(rest[0]):
		return "", "", errors.NewInvalidRequest(rest[0] + " needs a value")
	case len(rest) == 1 && strings.HasPrefix(rest[0], "-") && strings.Contains(rest[0], "="):
		name, value, _ := strings.Cut(rest[0], "=")
		if !isUnitFlag(name) {
			return "", "", errors.NewInvalidRequest("unknown flag " + name)
		}
		unit = value
	case len(rest) == 1:
		unit = rest[0]
	default:
		return "", "", errors.NewInvalidRequest("expected <magnitude> [unit]")
	}

	if unit == "" {
		return magnitude, flagUnit, nil
	}
	if flagUnit != "" && flagUnit != unit {
		return "", "", errors.NewInvalidRequest(fmt.Sprintf("unit given twice (%s and %s)", flagUnit, unit))
	}
	return magnitude, unit, nil
}

func isUnitFlag(s string) bool {
	return s == "--unit" || s == "-u" || s == "-unit"
}

// decodeCmd creates the decode command.
func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Convert a 3-digit code to a capacitance (non-digits are ignored)",
		ArgsUsage: "<code>",
		Action: func(c *cli.Context) error {
			code := capacitor.StripNonDigits(strings.Join(c.Args().Slice(), ""))
			result, err := ops.FromCode(ops.FromCodeInput{Code: code})
			if err != nil {
				return outputError(err)
			}
			return output(c, result)
		},
	}
}

// colorsCmd creates the colors command.
func colorsCmd() *cli.Command {
	return &cli.Command{
		Name:      "colors",
		Usage:     "Convert three color bands to a capacitance",
		ArgsUsage: "<band> <band> <band>  (color name or digit, first band first)",
		Action: func(c *cli.Context) error {
			result, err := ops.FromBands(c.Args().Slice())
			if err != nil {
				return outputError(err)
			}
			return output(c, result)
		},
	}
}

// tableCmd creates the table command.
func tableCmd() *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "Print the digit to color table",
		Action: func(c *cli.Context) error {
			return output(c, ops.Table())
		},
	}
}

// webCmd creates the web command.
func webCmd(cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Start the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: cfg.WebBind, Usage: "Address to listen on"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: cfg.WebPort, Usage: "Port to listen on"},
		},
		Action: func(c *cli.Context) error {
			port := c.Int("port")
			if port < 1 || port > 65535 {
				return outputError(errors.NewInvalidRequest(fmt.Sprintf("port %d out of range 1..65535", port)))
			}

			srv, err := web.NewServer(cfg, log, Version, c.String("bind"), port)
			if err != nil {
				return outputError(errors.NewInternal(err))
			}
			if err := web.Run(srv, log); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
}

// tuiCmd creates the tui command.
func tuiCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Start the interactive terminal calculator",
		Action: func(c *cli.Context) error {
			if err := tui.Run(cfg.DefaultUnit); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
}

// output writes v to the app's writer in the selected format.
func output(c *cli.Context, v any) error {
	w := c.App.Writer
	switch format := c.String("format"); format {
	case "", config.FormatJSON:
		return outputJSON(w, v)
	case config.FormatYAML:
		return outputYAML(w, v)
	case config.FormatText:
		return outputText(w, v)
	default:
		return outputError(errors.NewInvalidRequest(fmt.Sprintf("unknown format %q (want json, yaml or text)", format)))
	}
}

// outputJSON writes indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputYAML writes YAML with two-space indentation.
func outputYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// outputText writes the lipgloss rendering shared with the terminal UI.
func outputText(w io.Writer, v any) error {
	var s string
	switch val := v.(type) {
	case *ops.ConversionResult:
		s = tui.RenderResult(val)
	case ops.TableOutput:
		s = tui.RenderTable(val.Colors)
	default:
		return outputJSON(w, v)
	}
	_, err := fmt.Fprintln(w, s)
	return err
}

// outputError formats error for CLI.
func outputError(err error) error {
	capErr := errors.As(err)
	return cli.Exit(fmt.Sprintf("[%s] %s", capErr.Code, capErr.Message), 1)
}
