package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/store"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/utils"
)

const keyPrefix = "rate_limit:"

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed bool
	Message string // set when Allowed is false
}

// Limiter enforces a fixed request quota per client IP over a long window.
// The counter lives in the shared store so all replicas see the same quota.
// Store failures fail open: an unreachable store must not take the service
// down with it.
type Limiter struct {
	kv     store.KV
	limit  int64
	window time.Duration
	logger types.Logger
}

// NewLimiter builds the limiter from configuration
func NewLimiter(kv store.KV, cfg *config.Config) *Limiter {
	return &Limiter{
		kv:     kv,
		limit:  int64(cfg.RateLimit.Limit),
		window: cfg.RateLimit.Window,
		logger: logging.GetGlobalLogger(),
	}
}

// Allow counts the request against clientIP's quota and decides whether it
// may proceed. Every attempt is counted, including rejected ones; hammering
// a exhausted quota does not shorten the wait.
func (l *Limiter) Allow(ctx context.Context, clientIP string) Decision {
	key := keyPrefix + clientIP

	count, err := l.kv.CountRequest(ctx, key, l.window)
	if err != nil {
		l.logger.Warn("Rate limit store unavailable, allowing request", map[string]interface{}{
			"client_ip": clientIP,
			"error":     err.Error(),
		})
		return Decision{Allowed: true}
	}

	if count <= l.limit {
		return Decision{Allowed: true}
	}

	remaining := l.window
	if ttl, err := l.kv.TTL(ctx, key); err == nil && ttl > 0 {
		remaining = ttl
	}

	l.logger.Info("Rate limit exceeded", map[string]interface{}{
		"client_ip": clientIP,
		"count":     count,
		"limit":     l.limit,
	})

	return Decision{
		Allowed: false,
		Message: fmt.Sprintf("Rate limit exceeded. Try again in %s.", utils.FormatWindowRemainder(remaining)),
	}
}
