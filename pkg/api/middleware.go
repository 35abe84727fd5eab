package api

import (
	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"
)

// securityHeaders sets the standard hardening headers on every response.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// requestID echoes the caller's X-Request-Id or mints one. Agents inside
// VMs send their ticket-scoped id so coordinator logs correlate with the
// agent's own; browser traffic gets a fresh one.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set("X-Request-Id", id)
			return next(c)
		}
	}
}
