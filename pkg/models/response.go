package models

import (
	"time"

	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/utils"
)

// AnalyzeData is the success payload of POST /analyze/resume
type AnalyzeData struct {
	Score           float64  `json:"score"` // 0-100, rounded to 2 decimals
	MissingKeywords []string `json:"missing_keywords"`
	TotalMissing    int      `json:"total_missing"`
	Message         string   `json:"message"`
}

// AnalyzeResponse wraps the analysis payload
type AnalyzeResponse struct {
	Error bool        `json:"error"`
	Data  AnalyzeData `json:"data"`
}

// ErrorResponse is the uniform error envelope returned for every failure kind
type ErrorResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Error       bool   `json:"error"`
	ExceptionID string `json:"exception_id"`
	XRequestID  string `json:"x_request_id"`
}

// NewErrorResponse builds the error envelope with a fresh exception ID
func NewErrorResponse(message, requestID string) ErrorResponse {
	return ErrorResponse{
		Status:      "error",
		Message:     message,
		Error:       true,
		ExceptionID: utils.GenerateExceptionID(),
		XRequestID:  requestID,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}
