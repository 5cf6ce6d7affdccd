package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
)

// CORSConfig returns CORS middleware with the allowed origins taken from
// configuration
func CORSConfig(cfg *config.Config) echo.MiddlewareFunc {
	origins := cfg.Server.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	})
}
