package api

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tco-calculator/core/input"
	"tco-calculator/core/output"
	"tco-calculator/core/tco"
	"tco-calculator/internal/errors"
)

// maxBodyBytes bounds a calculate request body
const maxBodyBytes = 1 << 16

// Handler handles calculation requests.
// It contains NO cost logic: every request builds a fresh form snapshot
// and hands it to the engine.
type Handler struct {
	opts Options
}

// NewHandler creates a new handler
func NewHandler(opts Options) *Handler {
	return &Handler{opts: opts}
}

// newForm returns the default form with the configured timeframe
func (h *Handler) newForm() *input.Form {
	form := input.NewForm()
	_ = form.Set(input.TimeframeKey, strconv.Itoa(h.opts.DefaultTimeframe))
	return form
}

// Calculate handles POST /v1/calculate. The body is a scenario document
// (flat or sectioned, numbers or strings); omitted fields keep their
// defaults and malformed values read as zero.
func (h *Handler) Calculate(c *gin.Context) {
	start := time.Now()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		h.writeError(c, errors.Wrap(errors.TypeInput, "failed to read body", err))
		return
	}
	if len(body) > maxBodyBytes {
		h.writeError(c, errors.Input("request body too large"))
		return
	}

	form := h.newForm()
	if len(bytes.TrimSpace(body)) > 0 {
		if err := form.ApplyJSON(bytes.NewReader(body)); err != nil {
			h.writeError(c, err)
			return
		}
	}

	result := output.NewResult(form.Scenario(), "api", h.opts.Version)
	if h.opts.Metrics != nil {
		h.opts.Metrics.ObserveReport(result.Report)
	}
	h.opts.Logger.Debug("scenario evaluated",
		zap.String("input_hash", result.Metadata.InputHash),
		zap.String("winner", result.Report.Comparison.Winner.String()),
		zap.Int("timeframe_years", result.Report.Years),
	)

	c.JSON(http.StatusOK, CalculateResponse{
		RequestID:  c.GetString(RequestIDHeader),
		Result:     result,
		Display:    output.NewDisplay(result.Report),
		DurationMs: time.Since(start).Milliseconds(),
	})
}

// Defaults handles GET /v1/defaults
func (h *Handler) Defaults(c *gin.Context) {
	form := h.newForm()
	c.JSON(http.StatusOK, DefaultsResponse{
		Values: form.Values(),
		Result: output.NewResult(form.Scenario(), "defaults", h.opts.Version),
	})
}

// Fields handles GET /v1/fields
func (h *Handler) Fields(c *gin.Context) {
	c.JSON(http.StatusOK, FieldsResponse{
		Fields:       input.Fields(),
		MinTimeframe: tco.MinTimeframe,
		MaxTimeframe: tco.MaxTimeframe,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.TypeOf(err) {
	case errors.TypeInput, errors.TypeParsing, errors.TypeNotFound:
		status = http.StatusBadRequest
	case errors.TypeNotSupported:
		status = http.StatusUnsupportedMediaType
	}

	h.opts.Logger.Warn("calculate rejected", zap.Error(err), zap.Int("status", status))
	c.AbortWithStatusJSON(status, ErrorBody{Error: ErrorDetail{
		Code:      string(errors.TypeOf(err)),
		Message:   err.Error(),
		RequestID: c.GetString(RequestIDHeader),
	}})
}
