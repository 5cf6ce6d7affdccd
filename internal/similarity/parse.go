package similarity

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRe          = regexp.MustCompile(`[0-9]*\.?[0-9]+`)
	contextScoreRe    = regexp.MustCompile(`(?i)(?:score|pontua[çc][aã]o)\s*:\s*([0-9]*\.?[0-9]+)`)
	contextKeywordsRe = regexp.MustCompile(`(?i)(?:keywords|palavras-chave)\s*:\s*([^\n]*)`)
	contextFeedbackRe = regexp.MustCompile(`(?is)feedback\s*:\s*(.+)`)
)

// ParseLexicalScore extracts a [0,1] similarity value from a bare-score
// reply. Anything non-numeric degrades to 0.0, never an error.
func ParseLexicalScore(raw string) float64 {
	trimmed := strings.TrimSpace(raw)

	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return clamp01(v)
	}

	// Models occasionally wrap the number in prose despite instructions
	if match := numberRe.FindString(trimmed); match != "" {
		if v, err := strconv.ParseFloat(match, 64); err == nil {
			return clamp01(v)
		}
	}

	return 0.0
}

// ContextualAnalysis is the parsed form of the structured LLM reply
type ContextualAnalysis struct {
	Score    float64
	Keywords []string
	Feedback string
}

// ParseContextual extracts the score, keyword list, and feedback from a
// labeled reply. Both English and Portuguese labels are recognized; a
// missing label degrades to its zero value.
func ParseContextual(raw string) ContextualAnalysis {
	analysis := ContextualAnalysis{Keywords: []string{}}

	if m := contextScoreRe.FindStringSubmatch(raw); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			analysis.Score = clamp01(v)
		}
	}

	if m := contextKeywordsRe.FindStringSubmatch(raw); m != nil {
		for _, kw := range strings.Split(m[1], ",") {
			kw = strings.TrimSpace(kw)
			if kw != "" && !strings.EqualFold(kw, "none") && !strings.EqualFold(kw, "nenhuma") {
				analysis.Keywords = append(analysis.Keywords, kw)
			}
		}
	}

	if m := contextFeedbackRe.FindStringSubmatch(raw); m != nil {
		analysis.Feedback = strings.TrimSpace(m[1])
	}

	return analysis
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
