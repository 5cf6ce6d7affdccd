package models

// Acquisition methods recorded on a ParseResult
const (
	MethodStaticFetch   = "static_fetch"
	MethodRenderedFetch = "rendered_fetch"
	MethodLiteral       = "literal"
)

// ParseResult holds the outcome of resolving a job-description input into
// plain text. It is created once per request and never persisted.
type ParseResult struct {
	Content          string `json:"content,omitempty"`
	Method           string `json:"method"`
	Success          bool   `json:"success"`
	Error            string `json:"error,omitempty"`
	IsPositionClosed bool   `json:"is_position_closed"`
}
