package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/store"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/models"
)

const keyPrefix = "similarity_result:"

// ResultCache stores finished similarity results keyed by the exact
// (resume, job description, language) triple. Cache failures never fail the
// request; a broken cache degrades to recomputation.
type ResultCache struct {
	kv     store.KV
	ttl    time.Duration
	logger types.Logger
}

// NewResultCache wires the cache onto the shared store
func NewResultCache(kv store.KV, ttl time.Duration) *ResultCache {
	return &ResultCache{
		kv:     kv,
		ttl:    ttl,
		logger: logging.GetGlobalLogger(),
	}
}

// Key derives the deterministic cache key for an analysis input. The language
// participates in the digest because prompts and feedback are localized, so
// the same documents analyzed in different languages are distinct entries.
func Key(resume, jobDescription, language string) string {
	sum := sha256.Sum256([]byte(resume + ":" + jobDescription + ":" + language))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Lookup returns the cached result for the input triple, or (nil, false) on
// a miss. Store errors and corrupt entries are logged and treated as misses.
func (c *ResultCache) Lookup(ctx context.Context, resume, jobDescription, language string) (*models.SimilarityResult, bool) {
	key := Key(resume, jobDescription, language)

	raw, err := c.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.logger.Warn("Cache lookup failed, recomputing", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var result models.SimilarityResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		c.logger.Warn("Discarding corrupt cache entry", map[string]interface{}{
			"error": err.Error(),
		})
		if delErr := c.kv.Delete(ctx, key); delErr != nil {
			c.logger.Warn("Failed to delete corrupt cache entry", map[string]interface{}{
				"error": delErr.Error(),
			})
		}
		return nil, false
	}

	return &result, true
}

// Store writes a freshly computed result back under the input triple's key.
// Failures are logged and swallowed.
func (c *ResultCache) Store(ctx context.Context, resume, jobDescription, language string, result *models.SimilarityResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("Failed to serialize similarity result for caching", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := c.kv.Set(ctx, Key(resume, jobDescription, language), string(raw), c.ttl); err != nil {
		c.logger.Warn("Failed to cache similarity result", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
