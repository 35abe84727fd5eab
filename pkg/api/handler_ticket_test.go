package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestTicketHandlers_MissingID(t *testing.T) {
	s := &Server{}

	handlers := map[string]func(*echo.Context) error{
		"get":    s.getTicketHandler,
		"cancel": s.cancelTicketHandler,
		"hold":   s.holdTicketHandler,
		"resume": s.resumeTicketHandler,
	}

	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/tickets//x", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, "ticket id")
				}
			}
		})
	}
}

func TestActorResolution(t *testing.T) {
	s := &Server{}

	t.Run("explicit actor wins", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Forwarded-User", "alice")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.Equal(t, "ops-bot", s.actor(c, "ops-bot"))
	})

	t.Run("falls back to proxy headers", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Forwarded-User", "alice")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.Equal(t, "alice", s.actor(c, ""))
	})
}
