package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// getTicketHandler handles GET /api/v1/tickets/:id.
func (s *Server) getTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	t, deps, err := s.tickets.GetTicketWithDependencies(c.Request().Context(), ticketID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &TicketDetailResponse{
		Ticket:       t,
		Dependencies: deps,
	})
}

// cancelTicketHandler handles POST /api/v1/tickets/:id/cancel.
// Idle tickets cancel immediately; in-flight tickets get the cooperative
// cancel flag and settle as cancelled when the attempt finishes.
func (s *Server) cancelTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	var req ActorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := s.tickets.CancelTicket(c.Request().Context(), ticketID, s.actor(c, req.ActorID))
	if err != nil {
		return mapServiceError(err)
	}
	s.settleIfTerminal(c.Request().Context(), t)
	return c.JSON(http.StatusOK, t)
}

// holdTicketHandler handles POST /api/v1/tickets/:id/hold.
func (s *Server) holdTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	var req ActorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := s.tickets.HoldTicket(c.Request().Context(), ticketID, s.actor(c, req.ActorID))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// resumeTicketHandler handles POST /api/v1/tickets/:id/resume.
func (s *Server) resumeTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	var req ActorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := s.tickets.ResumeTicket(c.Request().Context(), ticketID, s.actor(c, req.ActorID))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// actor resolves the acting identity: an explicit actor_id in the body
// wins, then proxy headers, then the api-client fallback.
func (s *Server) actor(c *echo.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return extractAuthor(c)
}
