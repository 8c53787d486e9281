package api

import (
	"tco-calculator/core/input"
	"tco-calculator/core/output"
)

// CalculateResponse is the body of POST /v1/calculate
type CalculateResponse struct {
	RequestID string `json:"request_id"`
	*output.Result
	Display    output.Display `json:"display"`
	DurationMs int64          `json:"duration_ms"`
}

// DefaultsResponse is the body of GET /v1/defaults
type DefaultsResponse struct {
	Values map[string]string `json:"values"`
	*output.Result
}

// FieldsResponse is the body of GET /v1/fields
type FieldsResponse struct {
	Fields       []input.Field `json:"fields"`
	MinTimeframe int           `json:"min_timeframe"`
	MaxTimeframe int           `json:"max_timeframe"`
}

// ErrorBody is the error envelope
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
