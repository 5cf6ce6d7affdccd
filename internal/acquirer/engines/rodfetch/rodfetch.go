package rodfetch

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-rod/rod"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/acquirer/processors"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
)

// Engine renders a page in a headless browser and extracts the job
// description text from the live DOM
type Engine struct {
	browsers  *BrowserManager
	extractor *processors.HTMLExtractor
	config    *config.Config
	logger    types.Logger
}

// NewEngine creates the rod-backed rendered fetch engine
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		browsers:  NewBrowserManager(cfg),
		extractor: processors.NewHTMLExtractor(),
		config:    cfg,
		logger:    logging.GetGlobalLogger(),
	}
}

// Fetch navigates to the URL, tries each content selector's visible text,
// and falls back to extracting from the full rendered HTML
func (e *Engine) Fetch(ctx context.Context, url string) (string, error) {
	page, err := e.browsers.NewPage(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := rod.Try(func() { page.MustClose() }); closeErr != nil {
			e.logger.Debug("Failed to close page", map[string]interface{}{
				"error": closeErr.Error(),
			})
		}
	}()

	if err := e.browsers.Navigate(ctx, page, url); err != nil {
		return "", err
	}

	minLength := e.config.Fetcher.MinContentLength

	for _, selector := range processors.ContentSelectors {
		var text string
		// MustElement waits for the selector, so bound each attempt
		err := rod.Try(func() {
			el := page.Timeout(2 * time.Second).MustElement(selector)
			text = el.MustText()
		})
		if err != nil {
			continue
		}

		text = processors.CleanText(text)
		if utf8.RuneCountInString(text) > minLength {
			e.logger.Debug("Rendered fetch matched selector", map[string]interface{}{
				"selector":    selector,
				"text_length": utf8.RuneCountInString(text),
			})
			return text, nil
		}
	}

	// No selector produced enough text, extract from the rendered document
	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get rendered HTML: %w", err)
	}

	text, err := e.extractor.ExtractText(html)
	if err != nil {
		return "", fmt.Errorf("failed to extract rendered text: %w", err)
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) <= minLength {
		return "", fmt.Errorf("rendered text too short: %d chars", utf8.RuneCountInString(text))
	}

	return text, nil
}

// Name identifies the engine in logs
func (e *Engine) Name() string {
	return "rod"
}

// Cleanup shuts down the underlying browser
func (e *Engine) Cleanup() {
	e.browsers.Cleanup()
}
