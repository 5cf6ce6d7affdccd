package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const englishResume = `
John Doe
john.doe@example.com | (123) 456-7890

Summary
Backend engineer with eight years of experience building distributed systems.

Experience
Senior Software Engineer, Acme Corp
Jan 2019 - Present
Built and operated payment services in Go.

Education
Bachelor of Science in Computer Science, State University
Graduated May 2014

Skills
Go, PostgreSQL, Redis, Kubernetes
`

const portugueseResume = `
Maria Silva
maria.silva@exemplo.com.br | (11) 98765-4321

Resumo
Engenheira de software com seis anos de experiência em sistemas distribuídos.

Experiência
Engenheira de Software Sênior, Empresa XYZ
Jan de 2020 - Atual
Desenvolvimento de serviços de pagamento em Go.

Formação
Bacharel em Ciência da Computação, Universidade de São Paulo
Formado em 2016

Habilidades
Go, PostgreSQL, Redis, Kubernetes
`

// Long enough to pass the length gate but with no resume traits
var nonResumeText = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 10)

func TestAcceptsEnglishResume(t *testing.T) {
	result := New().Validate(englishResume, "en")

	assert.True(t, result.Accepted)
	assert.GreaterOrEqual(t, result.Score.Total, 5)
	assert.True(t, result.Score.HasEmail)
	assert.True(t, result.Score.HasPhone)
	assert.True(t, result.Score.HasDates)
	assert.True(t, result.Score.HasEducation)
	assert.GreaterOrEqual(t, result.Score.SectionsFound, 3)
}

func TestAcceptsPortugueseResume(t *testing.T) {
	result := New().Validate(portugueseResume, "pt-BR")

	assert.True(t, result.Accepted)
	assert.GreaterOrEqual(t, result.Score.Total, 5)
	assert.True(t, result.Score.HasEmail)
	assert.True(t, result.Score.HasPhone)
	assert.True(t, result.Score.HasDates)
	assert.True(t, result.Score.HasEducation)
}

func TestRejectsShortText(t *testing.T) {
	v := New()

	result := v.Validate("too short", "en")
	assert.False(t, result.Accepted)
	assert.Equal(t, "The PDF is not a valid resume", result.Reason)

	result = v.Validate("muito curto", "pt-BR")
	assert.False(t, result.Accepted)
	assert.Equal(t, "O PDF não é um currículo válido", result.Reason)
}

func TestRejectsShortTextRegardlessOfPadding(t *testing.T) {
	// Whitespace does not count toward the length gate
	padded := "short" + strings.Repeat(" ", 200)
	result := New().Validate(padded, "en")
	assert.False(t, result.Accepted)
	assert.Equal(t, "The PDF is not a valid resume", result.Reason)
}

func TestLengthGateCountsCharactersNotBytes(t *testing.T) {
	// 72 characters but 112 bytes of UTF-8; accented text must not slip
	// past the length gate on byte count alone
	text := strings.Repeat("ç", 40) + " a@b.co (11) 98765-4321 Jan 2020"
	result := New().Validate(text, "pt-BR")

	assert.False(t, result.Accepted)
	assert.Equal(t, "O PDF não é um currículo válido", result.Reason)
}

func TestRejectsNonResumeText(t *testing.T) {
	v := New()

	result := v.Validate(nonResumeText, "en")
	assert.False(t, result.Accepted)
	assert.Equal(t, "Document lacks resume characteristics", result.Reason)

	result = v.Validate(nonResumeText, "pt-BR")
	assert.False(t, result.Accepted)
	assert.Equal(t, "O documento não possui características de um currículo", result.Reason)
}

func TestPortugueseTagVariants(t *testing.T) {
	v := New()
	for _, tag := range []string{"pt-BR", "pt-br", "pt", "PT", "portuguese", "Portuguese"} {
		result := v.Validate("x", tag)
		assert.Equal(t, "O PDF não é um currículo válido", result.Reason, "tag %q", tag)
	}
}

func TestUnknownTagFallsBackToEnglish(t *testing.T) {
	result := New().Validate("x", "fr")
	assert.Equal(t, "The PDF is not a valid resume", result.Reason)
}

func TestScoringIsMonotonic(t *testing.T) {
	v := New()

	// Base text passes the length gate and hits one section term
	base := nonResumeText + " experience "
	baseScore := v.Validate(base, "en").Score.Total
	assert.Equal(t, 1, baseScore)

	withEmail := base + " reach me at jane@example.com "
	assert.Equal(t, baseScore+2, v.Validate(withEmail, "en").Score.Total)

	withPhone := withEmail + " phone (123) 456-7890 "
	assert.Equal(t, baseScore+4, v.Validate(withPhone, "en").Score.Total)

	withDates := withPhone + " Jan 2020 "
	assert.Equal(t, baseScore+6, v.Validate(withDates, "en").Score.Total)

	withEducation := withDates + " university "
	assert.Equal(t, baseScore+7, v.Validate(withEducation, "en").Score.Total)
}

func TestScoreFlipsToAcceptAtCutoff(t *testing.T) {
	v := New()

	// email + phone + date = 6 without any section terms
	text := nonResumeText + " jane@example.com (123) 456-7890 Jan 2020 "
	result := v.Validate(text, "en")
	assert.True(t, result.Accepted)
	assert.Equal(t, 6, result.Score.Total)

	// email + phone alone = 4, below the cutoff
	text = nonResumeText + " jane@example.com (123) 456-7890 "
	result = v.Validate(text, "en")
	assert.False(t, result.Accepted)
	assert.Equal(t, 4, result.Score.Total)
}

func TestYearRangeDoesNotCountAsPhone(t *testing.T) {
	text := nonResumeText + " 2015-2019 "
	result := New().Validate(text, "en")

	assert.False(t, result.Score.HasPhone)
	assert.True(t, result.Score.HasDates)
}

func TestThreeSectionsScoreHigherThanOne(t *testing.T) {
	v := New()

	one := v.Validate(nonResumeText+" skills ", "en").Score.Total
	three := v.Validate(nonResumeText+" skills education experience ", "en").Score.Total

	assert.Equal(t, 1, one)
	assert.Equal(t, 3, three)
}
