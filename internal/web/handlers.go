package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hpungsan/capcode/internal/capacitor"
	"github.com/hpungsan/capcode/internal/config"
	"github.com/hpungsan/capcode/internal/errors"
	"github.com/hpungsan/capcode/internal/metrics"
	"github.com/hpungsan/capcode/internal/ops"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	cfg      *config.Config
	log      *zap.Logger
	renderer *Renderer
}

// HandleIndex handles GET / — the calculator page.
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderer.renderPage(w, r, "index", h.indexData(FormValues{Unit: h.cfg.DefaultUnit}))
}

// HandleConvertValue handles GET /convert/value — capacitance to code.
func (h *Handlers) HandleConvertValue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	form := FormValues{
		Magnitude: q.Get("magnitude"),
		Unit:      q.Get("unit"),
	}

	start := time.Now()
	result, err := ops.FromValue(ops.FromValueInput{
		Magnitude:   form.Magnitude,
		Unit:        form.Unit,
		DefaultUnit: h.cfg.DefaultUnit,
	})
	h.respond(w, r, ops.DirectionValue, start, form, result, err)
}

// HandleConvertCode handles GET /convert/code — code to capacitance.
// Non-digit characters are dropped before decoding.
func (h *Handlers) HandleConvertCode(w http.ResponseWriter, r *http.Request) {
	form := FormValues{
		Code: capacitor.StripNonDigits(r.URL.Query().Get("code")),
		Unit: h.cfg.DefaultUnit,
	}

	start := time.Now()
	result, err := ops.FromCode(ops.FromCodeInput{Code: form.Code})
	h.respond(w, r, ops.DirectionCode, start, form, result, err)
}

// HandleConvertColors handles GET /convert/colors — three bands to capacitance.
// Each of band0..band2 is a digit or a color name.
func (h *Handlers) HandleConvertColors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	form := FormValues{Unit: h.cfg.DefaultUnit}
	for i := range form.Bands {
		form.Bands[i] = q.Get(fmt.Sprintf("band%d", i))
	}

	start := time.Now()
	result, err := ops.FromBands(form.Bands[:])
	h.respond(w, r, ops.DirectionColors, start, form, result, err)
}

// HandleTable handles GET /table — the digit/color table as JSON.
func (h *Handlers) HandleTable(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, ops.Table())
}

// HandleBandsCSS handles GET /bands.css — one class per digit color.
// Served as a stylesheet because the CSP forbids inline styles.
func (h *Handlers) HandleBandsCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(bandsCSS()))
}

// HandleHelp handles GET /help — the embedded guide.
func (h *Handlers) HandleHelp(w http.ResponseWriter, r *http.Request) {
	h.renderer.renderPage(w, r, "help", HelpPageData{
		PageData: h.renderer.page("Help", "help"),
		Body:     renderMarkdown(helpMarkdown),
	})
}

// respond records the conversion and renders its result or error.
func (h *Handlers) respond(w http.ResponseWriter, r *http.Request, dir ops.Direction, start time.Time,
	form FormValues, result *ops.ConversionResult, err error) {
	outcome := metrics.ResultOK
	if err != nil {
		outcome = string(errors.As(err).Code)
	}
	metrics.ObserveConversion(string(dir), outcome, time.Since(start))

	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	h.renderer.renderPage(w, r, "result", ResultPageData{
		IndexPageData: h.indexData(form),
		Result:        result,
	})
}

func (h *Handlers) indexData(form FormValues) IndexPageData {
	units := capacitor.Units()
	tokens := make([]string, len(units))
	for i, u := range units {
		tokens[i] = u.Token()
	}
	if form.Unit == "" {
		form.Unit = h.cfg.DefaultUnit
	}
	if u, err := capacitor.ParseUnit(form.Unit); err == nil {
		form.Unit = u.Token()
	}
	return IndexPageData{
		PageData: h.renderer.page("Capacitor code calculator", "calculator"),
		Units:    tokens,
		Colors:   ops.Table().Colors,
		Form:     form,
	}
}

// bandsCSS renders the stylesheet behind the band-N classes.
func bandsCSS() string {
	var b strings.Builder
	for _, c := range capacitor.Table() {
		fmt.Fprintf(&b, ".band-%d { background-color: %s; color: %s; }\n", c.Digit, c.Hex, c.Contrast())
	}
	return b.String()
}
