package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		return echo.NewHTTPError(http.StatusConflict, "resource was modified concurrently")
	}

	switch fault.ClassOf(err) {
	case fault.InvalidState:
		return echo.NewHTTPError(http.StatusUnprocessableEntity, fault.Reason(err))
	case fault.NotFound:
		return echo.NewHTTPError(http.StatusNotFound, fault.Reason(err))
	case fault.Conflict:
		return echo.NewHTTPError(http.StatusConflict, fault.Reason(err))
	case fault.PolicyViolation:
		return echo.NewHTTPError(http.StatusForbidden, fault.Reason(err))
	case fault.Timeout:
		return echo.NewHTTPError(http.StatusGatewayTimeout, fault.Reason(err))
	case fault.Transient:
		return echo.NewHTTPError(http.StatusServiceUnavailable, fault.Reason(err))
	case fault.Fatal:
		return echo.NewHTTPError(http.StatusInternalServerError, fault.Reason(err))
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
