package api

import (
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("prompt", "missing field"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "missing field",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "concurrent modification maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrConcurrentModification),
			expectCode: http.StatusConflict,
			expectMsg:  "modified concurrently",
		},
		{
			name:       "invalid state maps to 422",
			err:        fault.New(fault.InvalidState, "ticket.start", "ticket is review, not claimed"),
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "ticket is review, not claimed",
		},
		{
			name:       "fault not found maps to 404",
			err:        fault.New(fault.NotFound, "session.get", "session missing"),
			expectCode: http.StatusNotFound,
			expectMsg:  "session missing",
		},
		{
			name:       "conflict maps to 409",
			err:        fault.New(fault.Conflict, "ticket.claim", "claim raced"),
			expectCode: http.StatusConflict,
			expectMsg:  "claim raced",
		},
		{
			name:       "policy violation maps to 403",
			err:        fault.New(fault.PolicyViolation, "ticket.review", "not the holder"),
			expectCode: http.StatusForbidden,
			expectMsg:  "not the holder",
		},
		{
			name:       "timeout maps to 504",
			err:        fault.New(fault.Timeout, "verifier.verify", "deadline exceeded"),
			expectCode: http.StatusGatewayTimeout,
			expectMsg:  "deadline exceeded",
		},
		{
			name:       "transient maps to 503",
			err:        fault.New(fault.Transient, "ticket.claim", "database unavailable"),
			expectCode: http.StatusServiceUnavailable,
			expectMsg:  "database unavailable",
		},
		{
			name:       "fatal maps to 500",
			err:        fault.New(fault.Fatal, "spec.parse", "spec is malformed"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "spec is malformed",
		},
		{
			name:       "wrapped fault keeps its class",
			err:        fmt.Errorf("outer: %w", fault.New(fault.InvalidState, "session.transition", "already terminal")),
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "already terminal",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}
