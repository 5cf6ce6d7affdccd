package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/api/middleware"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/api/routes"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/ratelimit"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/models"
)

// quotaKV serves a fixed counter value so the limiter's decision is
// deterministic
type quotaKV struct {
	count int64
	ttl   time.Duration
}

func (q *quotaKV) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (q *quotaKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}
func (q *quotaKV) TTL(ctx context.Context, key string) (time.Duration, error) { return q.ttl, nil }
func (q *quotaKV) Delete(ctx context.Context, key string) error               { return nil }
func (q *quotaKV) CountRequest(ctx context.Context, key string, window time.Duration) (int64, error) {
	return q.count, nil
}
func (q *quotaKV) Ping(ctx context.Context) error { return nil }
func (q *quotaKV) Close() error                   { return nil }

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.RateLimit.Limit = 5
	cfg.RateLimit.Window = 168 * time.Hour
	return cfg
}

func newLimitedServer(kv *quotaKV) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = routes.ErrorHandler()
	e.Use(middleware.RequestID())
	limiter := ratelimit.NewLimiter(kv, limiterConfig())
	e.GET("/analyze/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, middleware.RateLimit(limiter))
	return e
}

func TestRateLimitAllowsUnderQuota(t *testing.T) {
	e := newLimitedServer(&quotaKV{count: 5, ttl: 168 * time.Hour})

	req := httptest.NewRequest(http.MethodGet, "/analyze/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitRejectionUsesErrorEnvelope(t *testing.T) {
	e := newLimitedServer(&quotaKV{count: 6, ttl: 168 * time.Hour})

	req := httptest.NewRequest(http.MethodGet, "/analyze/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Error)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Rate limit exceeded. Try again in 7 days and 0 hours.", body.Message)
	assert.NotEmpty(t, body.ExceptionID)
	assert.NotEmpty(t, body.XRequestID)
}
