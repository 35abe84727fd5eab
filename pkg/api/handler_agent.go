package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/pkg/dispatch"
	"github.com/swarmstack/swarm/pkg/models"
	"github.com/swarmstack/swarm/pkg/services"
)

// claimHandler handles POST /api/v1/claim.
// Atomically hands the oldest eligible ready ticket to the calling agent.
// Returns 204 when nothing is claimable and 429 when the fleet is full.
func (s *Server) claimHandler(c *echo.Context) error {
	// 1. Bind and validate the claim.
	var req models.ClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}
	if req.TenantID == "" {
		req.TenantID = s.extractTenant(c)
	}

	ctx := c.Request().Context()

	// 2. Admission: a claim occupies a fleet slot like a dispatched VM.
	if s.fleet != nil {
		if err := s.fleet.Reserve(req.TenantID); err != nil {
			if errors.Is(err, dispatch.ErrFleetFull) || errors.Is(err, dispatch.ErrTenantFull) {
				return echo.NewHTTPError(http.StatusTooManyRequests, err.Error())
			}
			return mapServiceError(err)
		}
	}

	// 3. Claim. Nil ticket with nil error means nothing was eligible.
	claimed, err := s.tickets.ClaimNext(ctx, req)
	if err != nil {
		if s.fleet != nil {
			s.fleet.Unreserve(req.TenantID)
		}
		return mapServiceError(err)
	}
	if claimed == nil {
		if s.fleet != nil {
			s.fleet.Unreserve(req.TenantID)
		}
		return c.NoContent(http.StatusNoContent)
	}
	if s.fleet != nil {
		// No backend handle: the agent brings its own runtime, the slot
		// only counts toward capacity.
		s.fleet.Bind(claimed, "", "")
	}

	// 4. The delivered response is the readiness ack for a pulling agent,
	// so the ticket starts in_progress.
	started, err := s.tickets.StartWork(ctx, claimed.ID, req.AgentID)
	if err != nil {
		if s.fleet != nil {
			s.fleet.Release(claimed.ID)
		}
		return mapServiceError(err)
	}

	// 5. Assemble the work package. Credential values are never included.
	var proj *ent.Project
	if started.ProjectID != "" {
		proj, err = s.projects.GetProject(ctx, started.ProjectID)
		if err != nil {
			if s.fleet != nil {
				s.fleet.Release(started.ID)
			}
			return mapServiceError(err)
		}
	}

	resp := &ClaimResponse{Ticket: services.BuildJobContext(started, proj)}
	if proj != nil {
		resp.ProjectSettings = proj.Settings
	}
	return c.JSON(http.StatusOK, resp)
}

// heartbeatHandler handles POST /api/v1/tickets/:id/heartbeat.
func (s *Server) heartbeatHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	var req HeartbeatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}

	ack, err := s.tickets.RecordHeartbeat(c.Request().Context(), ticketID, req.AgentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, ack)
}

// completeHandler handles POST /api/v1/tickets/:id/complete.
// Persists the agent's report and moves the ticket to review; settlement
// (verification, PR, cascade) happens asynchronously in the verify worker.
func (s *Server) completeHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	var result models.AgentResult
	if err := c.Bind(&result); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if result.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}

	t, err := s.tickets.SubmitReview(c.Request().Context(), ticketID, result.AgentID, result)
	if err != nil {
		return mapServiceError(err)
	}

	if s.verifyWorker != nil {
		// The review row is durable; a full queue only delays settlement
		// until the next restart recovery.
		if err := s.verifyWorker.Submit(t.ID, result); err != nil {
			slog.Error("Failed to enqueue verification",
				"ticket_id", t.ID, "error", err)
		}
	}

	return c.JSON(http.StatusOK, t)
}

// releaseHandler handles POST /api/v1/tickets/:id/release.
// A voluntary hand-back: the ticket returns to ready without consuming
// an attempt, and the agent's slot is freed.
func (s *Server) releaseHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	var req ReleaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}

	released, err := s.tickets.ReleaseTicket(c.Request().Context(), ticketID, req.AgentID)
	if err != nil {
		return mapServiceError(err)
	}

	if s.releaser != nil {
		s.releaser.Release(c.Request().Context(), released.ID)
	} else if s.fleet != nil {
		s.fleet.Release(released.ID)
	}

	// A pending cancel turns a release into a terminal settle.
	s.settleIfTerminal(c.Request().Context(), released)

	return c.JSON(http.StatusOK, released)
}

func (s *Server) defaultTenant() string {
	if s.cfg != nil && s.cfg.Defaults != nil && s.cfg.Defaults.Tenant != "" {
		return s.cfg.Defaults.Tenant
	}
	return "default"
}
