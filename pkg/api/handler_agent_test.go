package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/dispatch"
)

func postJSON(t *testing.T, target, body string) (*echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// serveJSON routes a request through the full server so path parameters
// and echo's error handler behave as in production.
func serveJSON(s *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestClaimHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing agent_id returns 400", func(t *testing.T) {
		c, _ := postJSON(t, "/api/v1/claim", `{}`)

		err := s.claimHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok, "expected echo.HTTPError") {
				assert.Equal(t, http.StatusBadRequest, he.Code)
				assert.Contains(t, he.Message, "agent_id")
			}
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		c, _ := postJSON(t, "/api/v1/claim", `{"agent_id": 42`)

		err := s.claimHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok) {
				assert.Equal(t, http.StatusBadRequest, he.Code)
			}
		}
	})
}

func TestClaimHandler_FleetFull(t *testing.T) {
	// A full fleet rejects the claim before any database work; the
	// handler never touches the (nil) ticket service.
	fleet := dispatch.NewFleet(&config.DispatchConfig{MaxFleet: 1})
	require.NoError(t, fleet.Reserve("other-tenant"))

	s := &Server{fleet: fleet}
	c, _ := postJSON(t, "/api/v1/claim", `{"agent_id":"agent-1"}`)

	err := s.claimHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusTooManyRequests, he.Code)
		}
	}
}

func TestDefaultTenant(t *testing.T) {
	t.Run("falls back to default", func(t *testing.T) {
		s := &Server{}
		assert.Equal(t, "default", s.defaultTenant())
	})

	t.Run("uses configured tenant", func(t *testing.T) {
		s := &Server{cfg: &config.Config{Defaults: &config.Defaults{Tenant: "acme"}}}
		assert.Equal(t, "acme", s.defaultTenant())
	})
}

func TestAgentEndpoints_Validation(t *testing.T) {
	// Validation failures happen before any service access, so a server
	// with nil services is safe to route through.
	s := NewServer(nil, nil, nil, nil, nil, nil, nil, nil)

	tests := []struct {
		name   string
		target string
		body   string
		errMsg string
	}{
		{
			name:   "heartbeat without agent_id",
			target: "/api/v1/tickets/tkt-1/heartbeat",
			body:   `{}`,
			errMsg: "agent_id",
		},
		{
			name:   "complete without agent_id",
			target: "/api/v1/tickets/tkt-1/complete",
			body:   `{"success":true}`,
			errMsg: "agent_id",
		},
		{
			name:   "release without agent_id",
			target: "/api/v1/tickets/tkt-1/release",
			body:   `{}`,
			errMsg: "agent_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveJSON(s, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.errMsg)
		})
	}
}
