package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexicalPromptSelection(t *testing.T) {
	en := BuildLexicalPrompt("resume", "job", "en")
	assert.Contains(t, en, "Resume:")
	assert.Contains(t, en, "resume")
	assert.Contains(t, en, "job")

	for _, tag := range []string{"pt-BR", "pt", "Portuguese", "PT-br"} {
		pt := BuildLexicalPrompt("resume", "job", tag)
		assert.Contains(t, pt, "Currículo:", "tag %q should select Portuguese", tag)
	}
}

func TestContextualPromptSelection(t *testing.T) {
	en := BuildContextualPrompt("resume", "job", "en-US")
	assert.Contains(t, en, "Score:")
	assert.Contains(t, en, "Keywords:")
	assert.Contains(t, en, "Feedback:")

	pt := BuildContextualPrompt("resume", "job", "pt-BR")
	assert.Contains(t, pt, "Pontuação:")
	assert.Contains(t, pt, "Palavras-chave:")
	assert.Contains(t, pt, "Feedback:")
}

func TestPromptsEmbedBothDocuments(t *testing.T) {
	prompt := BuildContextualPrompt("RESUME BODY", "JOB BODY", "en")
	assert.Contains(t, prompt, "RESUME BODY")
	assert.Contains(t, prompt, "JOB BODY")
}
