package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmstack/swarm/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only swarm's own components (database, fleet, event bus) are checked.
// External dependencies (LLM, VM backends, verifier) are excluded so an
// orchestrator never restarts swarm over a neighbor's outage.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	_, err := s.dbClient.Health(reqCtx)
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.fleet != nil {
		used, max := s.fleet.Usage()
		checks["fleet"] = HealthCheck{
			Status:  healthStatusHealthy,
			Message: fmt.Sprintf("%d/%d slots in use", used, max),
		}
	}

	if s.listener != nil {
		if s.listener.Running() {
			checks["event_bus"] = HealthCheck{Status: healthStatusHealthy}
		} else {
			// Live traffic stops fanning out but catch-up still serves
			// from the events table, so this is degraded, not down.
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["event_bus"] = HealthCheck{Status: healthStatusDegraded, Message: "NOTIFY listener is not running"}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}
