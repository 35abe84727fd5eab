package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// replayTicketHandler handles GET /api/v1/debug/tickets/:id/replay.
// Returns the ticket's full event history in seq order, reconstructed
// from the durable events table. Intended for operators chasing a
// stuck or misbehaving ticket.
func (s *Server) replayTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}
	if s.eventService == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "debug endpoints not configured")
	}

	evs, err := s.eventService.ReplayTicket(c.Request().Context(), ticketID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ReplayResponse{
		TicketID: ticketID,
		Events:   evs,
		Count:    len(evs),
	})
}
