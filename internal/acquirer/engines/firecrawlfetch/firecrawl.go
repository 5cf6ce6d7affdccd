package firecrawlfetch

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/mendableai/firecrawl-go"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/acquirer/processors"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
)

// Engine is the hosted rendered fetch tier: Firecrawl renders the page
// remotely and returns its content, so no local browser is needed
type Engine struct {
	app       *firecrawl.FirecrawlApp
	extractor *processors.HTMLExtractor
	config    *config.Config
	logger    types.Logger
}

// NewEngine creates the Firecrawl-backed engine
func NewEngine(cfg *config.Config) (*Engine, error) {
	app, err := firecrawl.NewFirecrawlApp(cfg.Firecrawl.APIKey, cfg.Firecrawl.APIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firecrawl: %w", err)
	}

	return &Engine{
		app:       app,
		extractor: processors.NewHTMLExtractor(),
		config:    cfg,
		logger:    logging.GetGlobalLogger(),
	}, nil
}

// Fetch scrapes the URL through Firecrawl and cleans the returned content
func (e *Engine) Fetch(ctx context.Context, url string) (string, error) {
	result, err := e.app.ScrapeURL(url, &firecrawl.ScrapeParams{
		Formats: []string{"markdown", "html"},
	})
	if err != nil {
		return "", fmt.Errorf("firecrawl scrape failed: %w", err)
	}
	if result == nil {
		return "", fmt.Errorf("no result returned from Firecrawl")
	}

	var text string
	switch {
	case result.Markdown != "":
		text = processors.CleanText(result.Markdown)
	case result.HTML != "":
		text, err = e.extractor.ExtractText(result.HTML)
		if err != nil {
			return "", fmt.Errorf("failed to extract Firecrawl HTML: %w", err)
		}
	default:
		return "", fmt.Errorf("no content found in Firecrawl response")
	}

	if utf8.RuneCountInString(text) <= e.config.Fetcher.MinContentLength {
		return "", fmt.Errorf("firecrawl text too short: %d chars", utf8.RuneCountInString(text))
	}

	e.logger.Debug("Firecrawl fetch completed", map[string]interface{}{
		"url":         url,
		"text_length": utf8.RuneCountInString(text),
	})

	return text, nil
}

// Name identifies the engine in logs
func (e *Engine) Name() string {
	return "firecrawl"
}

// Cleanup is a no-op; the engine holds no local resources
func (e *Engine) Cleanup() {}
