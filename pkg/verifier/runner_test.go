package verifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/fault"
)

func newTestRunner(server *httptest.Server) *HTTPRunner {
	return &HTTPRunner{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    server.URL,
		token:      "verifier-token",
		logger:     slog.Default(),
	}
}

func TestHTTPRunner_Verify(t *testing.T) {
	t.Run("passed verdict", func(t *testing.T) {
		var gotReq VerifyRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/verify", r.URL.Path)
			require.Equal(t, "Bearer verifier-token", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			_ = json.NewEncoder(w).Encode(Verdict{
				Status: VerdictPassed,
				Phases: []PhaseResult{{Phase: "lint", Status: "passed"}},
			})
		}))
		defer server.Close()

		runner := newTestRunner(server)
		verdict, err := runner.Verify(context.Background(), &VerifyRequest{
			TicketID: "tk-1",
			Repo:     "https://github.com/acme/shop",
			Branch:   "swarm/tk-1",
			Attempt:  1,
		})

		require.NoError(t, err)
		assert.True(t, verdict.Passed())
		assert.Equal(t, "tk-1", gotReq.TicketID)
		assert.Equal(t, 1, gotReq.Attempt)
	})

	t.Run("failed verdict is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(Verdict{
				Status:   VerdictFailed,
				Feedback: "tests failed: TestCheckout",
			})
		}))
		defer server.Close()

		runner := newTestRunner(server)
		verdict, err := runner.Verify(context.Background(), &VerifyRequest{TicketID: "tk-1"})

		require.NoError(t, err)
		assert.False(t, verdict.Passed())
		assert.Contains(t, verdict.Feedback, "TestCheckout")
	})

	t.Run("unknown status fails fast", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "maybe"})
		}))
		defer server.Close()

		runner := newTestRunner(server)
		_, err := runner.Verify(context.Background(), &VerifyRequest{TicketID: "tk-1"})

		require.Error(t, err)
		assert.Equal(t, fault.Fatal, fault.ClassOf(err))
	})

	t.Run("unavailable runner is Transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		runner := newTestRunner(server)
		_, err := runner.Verify(context.Background(), &VerifyRequest{TicketID: "tk-1"})

		require.Error(t, err)
		assert.True(t, fault.Retryable(err))
	})

	t.Run("missing base URL fails fast", func(t *testing.T) {
		runner := &HTTPRunner{httpClient: http.DefaultClient, logger: slog.Default()}
		_, err := runner.Verify(context.Background(), &VerifyRequest{TicketID: "tk-1"})

		require.Error(t, err)
		assert.Equal(t, fault.Fatal, fault.ClassOf(err))
	})
}
