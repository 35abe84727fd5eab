package api

import (
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/pkg/hitl"
	"github.com/swarmstack/swarm/pkg/models"
	"github.com/swarmstack/swarm/pkg/services"
)

// createSessionHandler handles POST /api/v1/sessions.
func (s *Server) createSessionHandler(c *echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Author == "" {
		req.Author = extractAuthor(c)
	}
	if req.TenantID == "" {
		req.TenantID = s.extractTenant(c)
	}

	sess, err := s.machine.Create(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, sess)
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	filter := services.SessionFilter{Limit: 25}

	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filter.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}
	filter.TenantID = c.QueryParam("tenant_id")
	filter.ProjectID = c.QueryParam("project_id")

	if v := c.QueryParam("state"); v != "" {
		// Validate each comma-separated state.
		states := strings.Split(v, ",")
		for _, st := range states {
			if err := session.StateValidator(session.State(st)); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid state: "+st)
			}
		}
		filter.States = states
	}

	sessions, total, err := s.sessions.ListSessions(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &SessionListResponse{
		Sessions: sessions,
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	sess, err := s.sessions.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

// respondHandler handles POST /api/v1/sessions/:id/respond.
// Runs one clarification turn; the reply and coverage movement are in the
// response, and the same data fans out on the session's event room.
func (s *Server) respondHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Content) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}
	if req.ActorID == "" {
		req.ActorID = extractAuthor(c)
	}

	turn, err := s.machine.Respond(c.Request().Context(), sessionID, req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &TurnResponse{
		Session:     turn.Session,
		Message:     turn.Message,
		Coverage:    turn.Coverage,
		Advanced:    turn.Advanced,
		Stalled:     turn.Stalled,
		ParseFailed: turn.ParseFailed,
	})
}

// skipClarificationHandler handles POST /api/v1/sessions/:id/skip-clarification.
func (s *Server) skipClarificationHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req ActorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := s.machine.SkipClarification(c.Request().Context(), sessionID, s.actor(c, req.ActorID))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

// generateSpecHandler handles POST /api/v1/sessions/:id/generate-spec.
func (s *Server) generateSpecHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req ActorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, spec, err := s.machine.GenerateSpec(c.Request().Context(), sessionID, s.actor(c, req.ActorID))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &SpecResponse{Session: sess, Spec: spec})
}

// updateSpecHandler handles POST /api/v1/sessions/:id/update-spec.
func (s *Server) updateSpecHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req UpdateSpecRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Spec) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "spec is required")
	}

	sess, err := s.machine.UpdateSpec(c.Request().Context(), sessionID, req.Spec, s.actor(c, req.ActorID))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

// approveHandler handles POST /api/v1/sessions/:id/approve.
func (s *Server) approveHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := s.machine.Approve(c.Request().Context(), sessionID, s.decision(c, req))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

// requestRevisionHandler handles POST /api/v1/sessions/:id/request-revision.
func (s *Server) requestRevisionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, spec, err := s.machine.RequestRevision(c.Request().Context(), sessionID, s.decision(c, req))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &SpecResponse{Session: sess, Spec: spec})
}

// startBuildHandler handles POST /api/v1/sessions/:id/start-build.
func (s *Server) startBuildHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req StartBuildBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, tickets, err := s.machine.StartBuild(c.Request().Context(), sessionID, hitl.StartBuildRequest{
		Confirmed:   req.Confirmed,
		ProjectName: req.ProjectName,
		RepoURL:     req.RepoURL,
		ActorID:     s.actor(c, req.ActorID),
		IPAddress:   c.RealIP(),
		UserAgent:   c.Request().UserAgent(),
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StartBuildResponse{Session: sess, Tickets: tickets})
}

// cancelSessionHandler handles POST /api/v1/sessions/:id/cancel.
func (s *Server) cancelSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req ActorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, cancelled, err := s.machine.Cancel(c.Request().Context(), sessionID, s.actor(c, req.ActorID))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &CancelSessionResponse{
		SessionID:        sessionID,
		CancelledTickets: cancelled,
		Message:          "Session cancellation requested",
	})
}

// listMessagesHandler handles GET /api/v1/sessions/:id/messages.
func (s *Server) listMessagesHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	afterSeq := 0
	if v := c.QueryParam("after_seq"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid after_seq")
		}
		afterSeq = n
	}
	limit := 100
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	msgs, err := s.messages.ListMessages(c.Request().Context(), sessionID, afterSeq, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &MessageListResponse{Messages: msgs})
}

// ticketStateAlias maps the loose state names agent tooling sends to
// the canonical vocabulary: pending and open both mean ready.
func ticketStateAlias(v string) string {
	switch v {
	case "pending", "open":
		return models.TicketReady
	default:
		return v
	}
}

// listSessionTicketsHandler handles GET /api/v1/sessions/:id/tickets.
// An optional state query narrows the list; pending and open are
// accepted as aliases for ready.
func (s *Server) listSessionTicketsHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	tickets, err := s.tickets.ListSessionTickets(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}

	if want := ticketStateAlias(c.QueryParam("state")); want != "" {
		filtered := make([]*ent.Ticket, 0, len(tickets))
		for _, t := range tickets {
			if string(t.State) == want {
				filtered = append(filtered, t)
			}
		}
		tickets = filtered
	}
	return c.JSON(http.StatusOK, &TicketListResponse{Tickets: tickets})
}

// decision assembles the audit-stamped human decision for approval flows.
func (s *Server) decision(c *echo.Context, req DecisionRequest) hitl.Decision {
	return hitl.Decision{
		ActorID:   s.actor(c, req.ActorID),
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		Feedback:  req.Feedback,
	}
}
