package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/api/middleware"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
)

func newCORSServer(origins []string) *echo.Echo {
	cfg := &config.Config{}
	cfg.Server.CORSOrigins = origins

	e := echo.New()
	e.Use(middleware.CORSConfig(cfg))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	e := newCORSServer([]string{"https://app.example.com"})

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	e := newCORSServer([]string{"https://app.example.com"})

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORSDefaultsToWildcard(t *testing.T) {
	e := newCORSServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://anywhere.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
