package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/fault"
)

func TestClient_Post_StatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		class   fault.Class
		wantErr bool
	}{
		{"200 ok", http.StatusOK, fault.Unknown, false},
		{"204 ok", http.StatusNoContent, fault.Unknown, false},
		{"429 retryable", http.StatusTooManyRequests, fault.Transient, true},
		{"500 retryable", http.StatusInternalServerError, fault.Transient, true},
		{"503 retryable", http.StatusServiceUnavailable, fault.Transient, true},
		{"400 permanent", http.StatusBadRequest, fault.Fatal, true},
		{"404 permanent", http.StatusNotFound, fault.Fatal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := NewClient(srv.URL).Post(context.Background(), Message{Event: "test"}, time.Second)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.class, fault.ClassOf(err))
		})
	}
}

func TestClient_Post_Unreachable(t *testing.T) {
	// A server that is already closed refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	err := NewClient(srv.URL).Post(context.Background(), Message{Event: "test"}, time.Second)
	require.Error(t, err)
	assert.Equal(t, fault.Transient, fault.ClassOf(err))
}

func TestClient_Host(t *testing.T) {
	c := NewClient("https://hooks.example.com/services/T000/B000/secret")
	assert.Equal(t, "hooks.example.com", c.Host())
}
