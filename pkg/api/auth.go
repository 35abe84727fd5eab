package api

import (
	echo "github.com/labstack/echo/v5"
)

// Identity comes from the auth proxy in front of the coordinator; the
// server itself never authenticates. extractAuthor resolves the acting
// user for audit rows, preferring oauth2-proxy headers over
// kube-rbac-proxy, falling back to a fixed name for unproxied callers.
func extractAuthor(c *echo.Context) string {
	for _, h := range []string{"X-Forwarded-User", "X-Forwarded-Email", "X-Remote-User"} {
		if v := c.Request().Header.Get(h); v != "" {
			return v
		}
	}
	return "api-client"
}

// extractTenant resolves the tenant scope for a request. The proxy
// stamps X-Swarm-Tenant after its own mapping; absent that, work lands
// in the configured default tenant.
func (s *Server) extractTenant(c *echo.Context) string {
	if v := c.Request().Header.Get("X-Swarm-Tenant"); v != "" {
		return v
	}
	return s.defaultTenant()
}
