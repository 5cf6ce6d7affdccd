package acquirer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsURLAcceptsAbsoluteURLs(t *testing.T) {
	urls := []string{
		"https://example.com/job/123",
		"http://example.com",
		"https://jobs.example.co.uk/openings?id=42",
		"http://localhost:8080/posting",
		"http://192.168.1.10/jobs/1",
		"https://example.com:8443/careers#apply",
	}

	for _, u := range urls {
		assert.True(t, IsURL(u), "should classify %q as URL", u)
	}
}

func TestIsURLRejectsLiteralText(t *testing.T) {
	texts := []string{
		"We need a backend engineer with 5 years experience...",
		"example.com/job/123",
		"ftp://example.com/file",
		"https://",
		"https://no spaces allowed.com",
		"Apply at https://example.com today",
		"",
	}

	for _, txt := range texts {
		assert.False(t, IsURL(txt), "should classify %q as literal text", txt)
	}
}

func TestDetectClosedPosition(t *testing.T) {
	closed := []string{
		"This role is currently no longer accepting new applications.",
		"Unfortunately this position has been filled.",
		"APPLICATIONS CLOSED as of last week",
		"Vaga encerrada, obrigado pelo interesse.",
		"Não estamos mais aceitando candidaturas para esta posição.",
	}
	for _, txt := range closed {
		assert.True(t, DetectClosedPosition(txt), "should detect closed position in %q", txt)
	}

	open := []string{
		"We are hiring a backend engineer. Apply now!",
		"Estamos contratando! Envie seu currículo.",
		"",
	}
	for _, txt := range open {
		assert.False(t, DetectClosedPosition(txt), "should not detect closed position in %q", txt)
	}
}
