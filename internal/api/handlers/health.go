package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/llm"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/store"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/models"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports whether the service's collaborators are reachable
func ReadinessHandler(kv store.KV, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{"api": "ok"}
		status := "ready"
		code := http.StatusOK

		if err := kv.Ping(c.Request().Context()); err != nil {
			checks["store"] = "unavailable"
			status = "degraded"
			code = http.StatusServiceUnavailable
		} else {
			checks["store"] = "ok"
		}

		if llmManager.IsHealthy() {
			checks["llm"] = "ok"
		} else {
			// Analysis degrades to zero scores without the LLM but the
			// service still serves requests
			checks["llm"] = "degraded"
		}

		return c.JSON(code, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}
