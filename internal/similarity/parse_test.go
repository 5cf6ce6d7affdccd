package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLexicalScoreBareNumber(t *testing.T) {
	assert.Equal(t, 0.75, ParseLexicalScore("0.75"))
	assert.Equal(t, 0.75, ParseLexicalScore("  0.75\n"))
	assert.Equal(t, 1.0, ParseLexicalScore("1"))
	assert.Equal(t, 0.0, ParseLexicalScore("0"))
}

func TestParseLexicalScoreWrappedInProse(t *testing.T) {
	assert.Equal(t, 0.6, ParseLexicalScore("The similarity is 0.6"))
}

func TestParseLexicalScoreNonNumeric(t *testing.T) {
	assert.Equal(t, 0.0, ParseLexicalScore("I cannot rate this."))
	assert.Equal(t, 0.0, ParseLexicalScore(""))
}

func TestParseLexicalScoreClamped(t *testing.T) {
	assert.Equal(t, 1.0, ParseLexicalScore("3.5"))
}

func TestParseContextualEnglishLabels(t *testing.T) {
	raw := "Score: 0.8\nKeywords: kubernetes, terraform, aws\nFeedback: Add cloud infrastructure experience to your resume."

	analysis := ParseContextual(raw)
	assert.Equal(t, 0.8, analysis.Score)
	assert.Equal(t, []string{"kubernetes", "terraform", "aws"}, analysis.Keywords)
	assert.Equal(t, "Add cloud infrastructure experience to your resume.", analysis.Feedback)
}

func TestParseContextualPortugueseLabels(t *testing.T) {
	raw := "Pontuação: 0.65\nPalavras-chave: docker, microsserviços\nFeedback: Destaque sua experiência com sistemas distribuídos."

	analysis := ParseContextual(raw)
	assert.Equal(t, 0.65, analysis.Score)
	assert.Equal(t, []string{"docker", "microsserviços"}, analysis.Keywords)
	assert.Equal(t, "Destaque sua experiência com sistemas distribuídos.", analysis.Feedback)
}

func TestParseContextualMissingLabels(t *testing.T) {
	analysis := ParseContextual("The resume looks fine to me.")
	assert.Equal(t, 0.0, analysis.Score)
	assert.Empty(t, analysis.Keywords)
	assert.Equal(t, "", analysis.Feedback)
}

func TestParseContextualEmptyKeywordList(t *testing.T) {
	analysis := ParseContextual("Score: 0.95\nKeywords: none\nFeedback: Excellent match.")
	assert.Equal(t, 0.95, analysis.Score)
	assert.Empty(t, analysis.Keywords)
}

func TestParseContextualMultilineFeedback(t *testing.T) {
	raw := "Score: 0.5\nKeywords: sql\nFeedback: First sentence.\nSecond sentence."

	analysis := ParseContextual(raw)
	assert.Equal(t, "First sentence.\nSecond sentence.", analysis.Feedback)
}
