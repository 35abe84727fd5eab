package api

import (
	"net/http"
	"sort"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmstack/swarm/pkg/verify"
)

// --- Response types ---

// SystemWarningsResponse is returned by GET /api/v1/system/warnings.
type SystemWarningsResponse struct {
	Warnings []SystemWarningItem `json:"warnings"`
}

// SystemWarningItem is a single system warning.
type SystemWarningItem struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	SourceID  string `json:"source_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

// SystemStatusResponse is returned by GET /api/v1/system/status.
type SystemStatusResponse struct {
	Fleet         *FleetStatus      `json:"fleet,omitempty"`
	Dispatcher    *DispatcherStatus `json:"dispatcher,omitempty"`
	Reaper        *ReaperStatus     `json:"reaper,omitempty"`
	Verify        *verify.Stats     `json:"verify,omitempty"`
	WSConnections int               `json:"ws_connections"`
}

// FleetStatus is the slot occupancy snapshot.
type FleetStatus struct {
	Used int `json:"used"`
	Max  int `json:"max"`
}

// DispatcherStatus summarizes dispatch loop activity.
type DispatcherStatus struct {
	Dispatched int    `json:"dispatched"`
	LastPoll   string `json:"last_poll,omitempty"`
}

// ReaperStatus summarizes lease reclaim activity.
type ReaperStatus struct {
	Reclaims int    `json:"reclaims"`
	LastScan string `json:"last_scan,omitempty"`
}

// --- Handlers ---

// systemWarningsHandler handles GET /api/v1/system/warnings.
func (s *Server) systemWarningsHandler(c *echo.Context) error {
	response := SystemWarningsResponse{
		Warnings: []SystemWarningItem{},
	}

	if s.warningService != nil {
		for _, w := range s.warningService.GetWarnings() {
			response.Warnings = append(response.Warnings, SystemWarningItem{
				ID:        w.ID,
				Category:  w.Category,
				Message:   w.Message,
				Details:   w.Details,
				SourceID:  w.SourceID,
				CreatedAt: w.CreatedAt.Format(time.RFC3339),
			})
		}
	}

	// Sort for deterministic output.
	sort.Slice(response.Warnings, func(i, j int) bool {
		if response.Warnings[i].Category != response.Warnings[j].Category {
			return response.Warnings[i].Category < response.Warnings[j].Category
		}
		return response.Warnings[i].ID < response.Warnings[j].ID
	})

	return c.JSON(http.StatusOK, response)
}

// systemStatusHandler handles GET /api/v1/system/status.
// A snapshot of the work plane: slot occupancy, loop counters, and the
// verification queue. Everything here is in-memory state of this process.
func (s *Server) systemStatusHandler(c *echo.Context) error {
	resp := SystemStatusResponse{}

	if s.fleet != nil {
		used, max := s.fleet.Usage()
		resp.Fleet = &FleetStatus{Used: used, Max: max}
	}
	if s.dispatcher != nil {
		dispatched, lastPoll := s.dispatcher.Stats()
		ds := &DispatcherStatus{Dispatched: dispatched}
		if !lastPoll.IsZero() {
			ds.LastPoll = lastPoll.Format(time.RFC3339)
		}
		resp.Dispatcher = ds
	}
	if s.reaper != nil {
		reclaims, lastScan := s.reaper.Stats()
		rs := &ReaperStatus{Reclaims: reclaims}
		if !lastScan.IsZero() {
			rs.LastScan = lastScan.Format(time.RFC3339)
		}
		resp.Reaper = rs
	}
	if s.verifyWorker != nil {
		stats := s.verifyWorker.Stats()
		resp.Verify = &stats
	}
	if s.connManager != nil {
		resp.WSConnections = s.connManager.ActiveConnections()
	}

	return c.JSON(http.StatusOK, resp)
}
