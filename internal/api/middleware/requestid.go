package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID echoes an inbound X-Request-ID header or generates a fresh UUID,
// and stamps it on the response so every reply is correlatable with its logs
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = utils.GenerateRequestID()
			}

			c.Set("request_id", requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID returns the request's correlation ID, if any
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok {
		return id
	}
	return c.Response().Header().Get(RequestIDHeader)
}
