package models

// SimilarityResult is the combined output of the lexical and contextual
// similarity signals. It is serialized verbatim as the cache value.
type SimilarityResult struct {
	Score            float64  `json:"similarity_score"` // [0,1], rounded to 2 decimals
	MissingKeywords  []string `json:"missing_keywords"`
	TotalMissing     int      `json:"total_missing"`
	Feedback         string   `json:"feedback"`
	IsPositionClosed bool     `json:"is_position_closed"`
}
