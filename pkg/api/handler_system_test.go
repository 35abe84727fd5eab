package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/dispatch"
	"github.com/swarmstack/swarm/pkg/services"
)

func TestSystemWarningsHandler(t *testing.T) {
	t.Run("no service returns empty list", func(t *testing.T) {
		s := &Server{}

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/system/warnings", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.systemWarningsHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp SystemWarningsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotNil(t, resp.Warnings)
		assert.Empty(t, resp.Warnings)
	})

	t.Run("returns active warnings", func(t *testing.T) {
		ws := services.NewSystemWarningsService()
		ws.AddWarning(services.WarningCategoryVMBackend, "spawn failing", "connection refused", "firecracker")
		s := &Server{warningService: ws}

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/system/warnings", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.systemWarningsHandler(c))

		var resp SystemWarningsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Warnings, 1)

		w := resp.Warnings[0]
		assert.Equal(t, services.WarningCategoryVMBackend, w.Category)
		assert.Equal(t, "spawn failing", w.Message)
		assert.Equal(t, "connection refused", w.Details)
		assert.Equal(t, "firecracker", w.SourceID)

		// created_at must be RFC3339.
		_, err := time.Parse(time.RFC3339, w.CreatedAt)
		assert.NoError(t, err)
	})
}

func TestSystemStatusHandler(t *testing.T) {
	t.Run("empty server reports zero values", func(t *testing.T) {
		s := &Server{}

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/system/status", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.systemStatusHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp SystemStatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.Fleet)
		assert.Nil(t, resp.Dispatcher)
		assert.Zero(t, resp.WSConnections)
	})

	t.Run("reports fleet occupancy", func(t *testing.T) {
		fleet := dispatch.NewFleet(&config.DispatchConfig{MaxFleet: 5})
		require.NoError(t, fleet.Reserve("default"))
		s := &Server{fleet: fleet}

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/system/status", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.systemStatusHandler(c))

		var resp SystemStatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Fleet)
		assert.Equal(t, 1, resp.Fleet.Used)
		assert.Equal(t, 5, resp.Fleet.Max)
	})
}

func TestReplayTicketHandler_NotConfigured(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil, nil, nil)

	rec := serveJSON(s, http.MethodGet, "/api/v1/debug/tickets/tkt-1/replay", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "debug endpoints not configured")
}
