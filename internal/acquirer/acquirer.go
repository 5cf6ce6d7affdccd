package acquirer

import (
	"context"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/models"
)

// RenderEngine is the second fetch tier: a browser-grade fetch for pages
// whose content only exists after JavaScript runs
type RenderEngine interface {
	Fetch(ctx context.Context, url string) (string, error)
	Name() string
	Cleanup()
}

// Acquirer resolves a job-description input into plain text. Literal text
// passes through untouched; URLs go through a cheap static fetch first and a
// rendered fetch only when that fails.
type Acquirer struct {
	static  *staticFetcher
	render  RenderEngine
	domains *domainLimiter
	config  *config.Config
	logger  types.Logger
}

// New builds the acquirer with the configured rendered fetch engine
func New(cfg *config.Config) (*Acquirer, error) {
	render, err := newRenderEngine(cfg)
	if err != nil {
		return nil, err
	}

	return &Acquirer{
		static:  newStaticFetcher(cfg),
		render:  render,
		domains: newDomainLimiter(cfg.Fetcher.DomainRateLimit),
		config:  cfg,
		logger:  logging.GetGlobalLogger(),
	}, nil
}

// NewWithEngine builds the acquirer with an explicit rendered fetch engine
func NewWithEngine(cfg *config.Config, render RenderEngine) *Acquirer {
	return &Acquirer{
		static:  newStaticFetcher(cfg),
		render:  render,
		domains: newDomainLimiter(cfg.Fetcher.DomainRateLimit),
		config:  cfg,
		logger:  logging.GetGlobalLogger(),
	}
}

// Resolve turns input into a ParseResult. Literal input always succeeds; a
// URL whose both tiers fail produces an unsuccessful result that the caller
// must reject.
func (a *Acquirer) Resolve(ctx context.Context, input string) *models.ParseResult {
	if !IsURL(input) {
		a.logger.Debug("Job description treated as literal text", map[string]interface{}{
			"method":      models.MethodLiteral,
			"text_length": len(input),
		})
		return &models.ParseResult{
			Content:          input,
			Method:           models.MethodLiteral,
			Success:          true,
			IsPositionClosed: DetectClosedPosition(input),
		}
	}

	if err := a.domains.wait(ctx, input); err != nil {
		return &models.ParseResult{
			Method:  models.MethodStaticFetch,
			Success: false,
			Error:   err.Error(),
		}
	}

	text, err := a.static.fetch(ctx, input)
	a.logAttempt(models.MethodStaticFetch, input, err)
	if err == nil {
		return &models.ParseResult{
			Content:          text,
			Method:           models.MethodStaticFetch,
			Success:          true,
			IsPositionClosed: DetectClosedPosition(text),
		}
	}

	text, err = a.render.Fetch(ctx, input)
	a.logAttempt(models.MethodRenderedFetch, input, err)
	if err == nil {
		return &models.ParseResult{
			Content:          text,
			Method:           models.MethodRenderedFetch,
			Success:          true,
			IsPositionClosed: DetectClosedPosition(text),
		}
	}

	return &models.ParseResult{
		Method:  models.MethodRenderedFetch,
		Success: false,
		Error:   err.Error(),
	}
}

func (a *Acquirer) logAttempt(method, url string, err error) {
	fields := map[string]interface{}{
		"method":  method,
		"url":     url,
		"success": err == nil,
	}
	if err != nil {
		fields["error"] = err.Error()
		a.logger.Info("Job description fetch attempt failed", fields)
		return
	}
	a.logger.Info("Job description fetch attempt succeeded", fields)
}

// Cleanup releases the rendered fetch engine's resources
func (a *Acquirer) Cleanup() {
	if a.render != nil {
		a.render.Cleanup()
	}
}
