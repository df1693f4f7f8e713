package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/hpungsan/capcode/internal/config"
	"github.com/hpungsan/capcode/internal/errors"
	"github.com/hpungsan/capcode/internal/metrics"
	"github.com/hpungsan/capcode/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	cfg *config.Config
	log *zap.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	metrics.Init()
	return &Handlers{cfg: cfg, log: log}
}

// Request types for each tool

// EncodeRequest represents the arguments for code_encode.
// Magnitude may arrive as a JSON string or number.
type EncodeRequest struct {
	Magnitude any    `json:"magnitude"`
	Unit      string `json:"unit,omitempty"`
}

// DecodeRequest represents the arguments for code_decode.
type DecodeRequest struct {
	Code string `json:"code"`
}

// FromColorsRequest represents the arguments for code_from_colors.
// Each band is a color name or a digit, as a string or number.
type FromColorsRequest struct {
	Bands []any `json:"bands"`
}

// HandleEncode handles the code_encode tool call.
func (h *Handlers) HandleEncode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[EncodeRequest](req)
	if err != nil {
		return h.fail("code_encode", errors.NewInvalidRequest(err.Error())), nil
	}

	magnitude, err := scalarString("magnitude", input.Magnitude)
	if err != nil {
		return h.fail("code_encode", err), nil
	}

	start := time.Now()
	result, err := ops.FromValue(ops.FromValueInput{
		Magnitude:   magnitude,
		Unit:        input.Unit,
		DefaultUnit: h.cfg.DefaultUnit,
	})
	h.observe(ops.DirectionValue, start, err)
	if err != nil {
		return h.fail("code_encode", err), nil
	}

	return h.succeed("code_encode", result)
}

// HandleDecode handles the code_decode tool call.
func (h *Handlers) HandleDecode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DecodeRequest](req)
	if err != nil {
		return h.fail("code_decode", errors.NewInvalidRequest(err.Error())), nil
	}

	start := time.Now()
	result, err := ops.FromCode(ops.FromCodeInput{Code: input.Code})
	h.observe(ops.DirectionCode, start, err)
	if err != nil {
		return h.fail("code_decode", err), nil
	}

	return h.succeed("code_decode", result)
}

// HandleFromColors handles the code_from_colors tool call.
func (h *Handlers) HandleFromColors(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FromColorsRequest](req)
	if err != nil {
		return h.fail("code_from_colors", errors.NewInvalidRequest(err.Error())), nil
	}
	if len(input.Bands) == 0 {
		return h.fail("code_from_colors", errors.NewMissingInput("bands")), nil
	}

	bands := make([]string, len(input.Bands))
	for i, b := range input.Bands {
		s, err := scalarString(fmt.Sprintf("bands[%d]", i), b)
		if err != nil {
			return h.fail("code_from_colors", err), nil
		}
		bands[i] = s
	}

	start := time.Now()
	result, err := ops.FromBands(bands)
	h.observe(ops.DirectionColors, start, err)
	if err != nil {
		return h.fail("code_from_colors", err), nil
	}

	return h.succeed("code_from_colors", result)
}

// HandleColorTable handles the color_table tool call.
func (h *Handlers) HandleColorTable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.succeed("color_table", ops.Table())
}

// scalarString accepts a JSON string or number argument as text.
func scalarString(field string, v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	default:
		return "", errors.NewInvalidRequest(fmt.Sprintf("%s must be a string or number", field))
	}
}

func (h *Handlers) observe(dir ops.Direction, start time.Time, err error) {
	result := metrics.ResultOK
	if err != nil {
		result = string(errors.As(err).Code)
	}
	metrics.ObserveConversion(string(dir), result, time.Since(start))
}

func (h *Handlers) fail(tool string, err error) *mcp.CallToolResult {
	capErr := errors.As(err)
	h.log.Warn("tool call failed",
		zap.String("tool", tool),
		zap.String("code", string(capErr.Code)),
		zap.String("message", capErr.Message),
	)
	return errorResult(err)
}

func (h *Handlers) succeed(tool string, data any) (*mcp.CallToolResult, error) {
	h.log.Debug("tool call", zap.String("tool", tool))
	return successResult(data)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	capErr := errors.As(err)

	errorObj := map[string]any{
		"code":    capErr.Code,
		"message": capErr.Message,
		"status":  capErr.Status,
	}
	// Only include details for non-internal errors
	if capErr.Code != errors.ErrInternal && capErr.Details != nil {
		errorObj["details"] = capErr.Details
	}

	content, _ := json.Marshal(map[string]any{"error": errorObj})
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
