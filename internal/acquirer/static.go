package acquirer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/acquirer/processors"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
)

// staticFetcher is the cheap first tier: a plain GET with browser-like
// headers and HTML text extraction, no JavaScript execution
type staticFetcher struct {
	client    *http.Client
	extractor *processors.HTMLExtractor
	config    *config.Config
}

func newStaticFetcher(cfg *config.Config) *staticFetcher {
	return &staticFetcher{
		client:    &http.Client{Timeout: cfg.Fetcher.StaticTimeout},
		extractor: processors.NewHTMLExtractor(),
		config:    cfg,
	}
}

// fetch GETs the URL and extracts readable text. Non-200 responses and
// bodies that extract to too little text are failures; the caller escalates
// to the rendered tier.
func (s *staticFetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("User-Agent", s.config.Fetcher.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,pt-BR;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	text, err := s.extractor.ExtractText(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	if utf8.RuneCountInString(text) <= s.config.Fetcher.MinContentLength {
		return "", fmt.Errorf("extracted text too short: %d chars", utf8.RuneCountInString(text))
	}

	return text, nil
}
