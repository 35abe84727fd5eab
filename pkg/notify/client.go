package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/swarmstack/swarm/pkg/fault"
)

// Client posts JSON payloads to a webhook endpoint. The URL is the
// secret: hosted webhook receivers embed their token in the path, so it
// reaches the process only through the environment and is never logged.
type Client struct {
	httpClient *http.Client
	url        string
	host       string
}

// NewClient creates a webhook client for the given endpoint.
func NewClient(endpoint string) *Client {
	host := ""
	if u, err := url.Parse(endpoint); err == nil {
		host = u.Host
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		url:        endpoint,
		host:       host,
	}
}

// Host returns the webhook host, safe for logs and warnings.
func (c *Client) Host() string {
	return c.host
}

// Post delivers one payload. Transport errors, 429, and 5xx are
// Transient so the caller's retry budget applies; any other non-2xx
// status is Fatal because resending a rejected payload cannot help.
func (c *Client) Post(ctx context.Context, payload any, timeout time.Duration) error {
	const op = "notify.post"

	data, err := json.Marshal(payload)
	if err != nil {
		return fault.Wrap(fault.Fatal, op, "encode payload", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return fault.Wrap(fault.Fatal, op, "create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fault.Wrap(fault.Transient, op, "webhook unreachable", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fault.Newf(fault.Transient, op, "webhook returned %d", resp.StatusCode)
	default:
		return fault.Newf(fault.Fatal, op, "webhook returned %d", resp.StatusCode)
	}
}
