package similarity

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/cache"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/llm"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/models"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/utils"
)

// Completer is the completion capability the engine consumes
type Completer interface {
	Complete(ctx context.Context, prompt string, opts llm.CompletionOptions) (string, error)
}

// Engine combines a lexical and a contextual similarity signal into a single
// result, consulting the result cache before paying for any LLM call.
type Engine struct {
	llm    Completer
	cache  *cache.ResultCache
	config *config.Config
	logger types.Logger
}

// NewEngine builds the engine on top of a completion provider and the cache
func NewEngine(completer Completer, resultCache *cache.ResultCache, cfg *config.Config) *Engine {
	return &Engine{
		llm:    completer,
		cache:  resultCache,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// ComputeSimilarity scores resumeText against the resolved job description.
// A cache hit returns immediately with zero LLM calls. On a miss the two
// signals run concurrently, each failing soft to its zero value, and the
// combined result is written back to the cache before returning.
func (e *Engine) ComputeSimilarity(ctx context.Context, resumeText string, jd *models.ParseResult, language string) (*models.SimilarityResult, error) {
	if cached, ok := e.cache.Lookup(ctx, resumeText, jd.Content, language); ok {
		e.logger.Debug("Similarity result served from cache")
		cached.IsPositionClosed = jd.IsPositionClosed
		return cached, nil
	}

	var (
		lexical    float64
		contextual ContextualAnalysis
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := e.llm.Complete(gctx, BuildLexicalPrompt(resumeText, jd.Content, language), llm.CompletionOptions{
			MaxTokens:   16,
			Temperature: float64(e.config.LLM.Temperature),
		})
		if err != nil {
			e.logger.Warn("Lexical similarity call failed, scoring 0", map[string]interface{}{
				"error": err.Error(),
			})
			return nil
		}
		lexical = ParseLexicalScore(raw)
		return nil
	})

	g.Go(func() error {
		raw, err := e.llm.Complete(gctx, BuildContextualPrompt(resumeText, jd.Content, language), llm.CompletionOptions{
			MaxTokens:   e.config.LLM.MaxTokens,
			Temperature: float64(e.config.LLM.Temperature),
		})
		if err != nil {
			e.logger.Warn("Contextual analysis call failed, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
			contextual = ContextualAnalysis{Keywords: []string{}}
			return nil
		}
		contextual = ParseContextual(raw)
		return nil
	})

	// Signals never return errors; Wait only reflects context cancellation
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &models.SimilarityResult{
		Score:            utils.Round2((lexical + contextual.Score) / 2),
		MissingKeywords:  contextual.Keywords,
		TotalMissing:     len(contextual.Keywords),
		Feedback:         contextual.Feedback,
		IsPositionClosed: jd.IsPositionClosed,
	}

	e.logger.Info("Similarity computed", map[string]interface{}{
		"lexical_score":    lexical,
		"contextual_score": contextual.Score,
		"combined_score":   result.Score,
		"total_missing":    result.TotalMissing,
	})

	e.cache.Store(ctx, resumeText, jd.Content, language, result)

	return result, nil
}
