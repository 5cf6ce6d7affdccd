package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/api/handlers"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/api/middleware"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/llm"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/ratelimit"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/store"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/models"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/utils"
)

// Dependencies bundles the collaborators the routes need
type Dependencies struct {
	Acquirer   handlers.TextAcquirer
	PDF        handlers.PDFExtractor
	Checker    handlers.ResumeChecker
	Engine     handlers.SimilarityComputer
	Store      store.KV
	LLMManager *llm.Manager
	Limiter    *ratelimit.Limiter
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, deps Dependencies) {
	e.HTTPErrorHandler = ErrorHandler()

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSConfig(cfg))
	e.Use(echomiddleware.BodyLimit(cfg.Server.MaxBodySize))
	e.Use(middleware.TimeoutConfig(cfg.Server.WriteTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(deps.Store, deps.LLMManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Analysis routes, quota-limited per client IP
	analyze := e.Group("/analyze", middleware.RateLimit(deps.Limiter))
	{
		analyze.POST("/resume", handlers.AnalyzeResumeHandler(deps.Acquirer, deps.PDF, deps.Checker, deps.Engine))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Intelligent Resume Matcher",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}

// ErrorHandler turns every error into the uniform JSON envelope. Domain
// errors keep their message and status; anything unclassified becomes a 500
// with a generic body and a logged exception ID for correlation.
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		requestID := middleware.GetRequestID(c)

		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			if jsonErr := c.JSON(customErr.Code, models.NewErrorResponse(customErr.Message, requestID)); jsonErr != nil {
				logging.GetGlobalLogger().Error("Failed to write error response", map[string]interface{}{
					"error": jsonErr.Error(),
				})
			}
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message := http.StatusText(httpErr.Code)
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
			_ = c.JSON(httpErr.Code, models.NewErrorResponse(message, requestID))
			return
		}

		// Unexpected: log the real error, never leak it to the caller
		response := models.NewErrorResponse("Internal server error", requestID)
		logging.GetGlobalLogger().Error("Unhandled error", map[string]interface{}{
			"error":        err.Error(),
			"exception_id": response.ExceptionID,
			"request_id":   requestID,
			"path":         c.Request().URL.Path,
		})
		_ = c.JSON(http.StatusInternalServerError, response)
	}
}
