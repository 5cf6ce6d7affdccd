package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/ratelimit"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/utils"
)

// RateLimit rejects requests from clients that exhausted their quota. The
// error handler renders the 429 in the same envelope as every other error.
func RateLimit(limiter *ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := limiter.Allow(c.Request().Context(), c.RealIP())
			if !decision.Allowed {
				return utils.NewRateLimitError(decision.Message)
			}
			return next(c)
		}
	}
}
