package acquirer

import "strings"

// Phrases that indicate a posting is no longer open. Matched as
// case-insensitive substrings against the acquired text.
var closedPositionPhrases = []string{
	// English
	"no longer accepting new applications",
	"no longer accepting applications",
	"we are no longer accepting applications",
	"this position has been filled",
	"position filled",
	"applications closed",
	"this job is no longer available",
	"this posting has expired",
	"job posting has closed",
	// Portuguese
	"vaga encerrada",
	"não estamos mais aceitando candidaturas",
	"processo seletivo encerrado",
	"esta vaga não está mais disponível",
	"candidaturas encerradas",
	"vaga preenchida",
}

// DetectClosedPosition reports whether the text announces a closed or
// filled position
func DetectClosedPosition(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range closedPositionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
