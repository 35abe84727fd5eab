// Package verifier calls the verification runner that checks out a
// ticket branch and runs static and automated checks. A failed verdict
// is a normal result, not an error; errors mean the runner itself could
// not deliver a verdict.
package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/fault"
)

// Verdict status values.
const (
	VerdictPassed = "passed"
	VerdictFailed = "failed"
)

// VerifyRequest asks the runner to check one ticket branch.
type VerifyRequest struct {
	TicketID string   `json:"ticket_id"`
	Repo     string   `json:"repo"`
	Branch   string   `json:"branch"`
	Attempt  int      `json:"attempt"`
	Phases   []string `json:"phases,omitempty"`
}

// PhaseResult is one check phase outcome inside a verdict.
type PhaseResult struct {
	Phase  string `json:"phase"`
	Status string `json:"status"`
	Output string `json:"output,omitempty"`
}

// Verdict is the runner's structured answer. Feedback is written for the
// agent that retries the ticket.
type Verdict struct {
	Status   string        `json:"status"`
	Feedback string        `json:"feedback"`
	Phases   []PhaseResult `json:"phases,omitempty"`
}

// Passed reports whether the verdict allows the ticket to complete.
func (v *Verdict) Passed() bool {
	return v.Status == VerdictPassed
}

// Runner delivers verdicts for ticket branches.
type Runner interface {
	Verify(ctx context.Context, req *VerifyRequest) (*Verdict, error)
}

// HTTPRunner implements Runner against the verification service API.
type HTTPRunner struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

// NewHTTPRunner creates a runner client from resolved configuration.
func NewHTTPRunner(cfg *config.VerifierConfig) *HTTPRunner {
	return &HTTPRunner{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		token:      os.Getenv(cfg.TokenEnv),
		logger:     slog.Default(),
	}
}

// Verify posts the request and waits for the full verdict. Verification
// runs are long; the HTTP timeout comes from configuration.
func (r *HTTPRunner) Verify(ctx context.Context, req *VerifyRequest) (*Verdict, error) {
	const op = "verifier.verify"

	if r.baseURL == "" {
		return nil, fault.New(fault.Fatal, op, "verifier base_url is not configured")
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fault.Wrap(fault.Fatal, op, "encode request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/verify", bytes.NewReader(data))
	if err != nil {
		return nil, fault.Wrap(fault.Fatal, op, "create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fault.Wrap(fault.Timeout, op, "verification deadline exceeded", err)
		}
		return nil, fault.Wrap(fault.Transient, op, "verifier unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, r.classify(op, resp)
	}

	var verdict Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, fault.Wrap(fault.Transient, op, "decode verdict", err)
	}
	if verdict.Status != VerdictPassed && verdict.Status != VerdictFailed {
		return nil, fault.Newf(fault.Fatal, op, "verifier returned unknown status %q", verdict.Status)
	}

	r.logger.Info("Verification verdict received",
		"ticket_id", req.TicketID,
		"branch", req.Branch,
		"status", verdict.Status)

	return &verdict, nil
}

func (r *HTTPRunner) classify(op string, resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	msg := body.Message
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fault.Newf(fault.PolicyViolation, op, "verifier denied request: %s", msg)
	case resp.StatusCode == http.StatusNotFound:
		return fault.Newf(fault.NotFound, op, "verifier: %s", msg)
	case resp.StatusCode == http.StatusRequestTimeout, resp.StatusCode == http.StatusGatewayTimeout:
		return fault.Newf(fault.Timeout, op, "verifier timed out: %s", msg)
	case resp.StatusCode >= 500, resp.StatusCode == http.StatusTooManyRequests:
		return fault.Newf(fault.Transient, op, "verifier error HTTP %d: %s", resp.StatusCode, msg)
	default:
		return fault.New(fault.Fatal, op, fmt.Sprintf("verifier returned HTTP %d: %s", resp.StatusCode, msg))
	}
}
