package llm

import (
	"context"

	"github.com/swarmstack/swarm/pkg/retry"
)

// RetryingClient decorates a Client with bounded retries for transient
// sidecar failures. Fatal classifications pass through untouched.
type RetryingClient struct {
	inner  Client
	policy retry.Policy
}

// NewRetryingClient wraps inner with the given retry policy.
func NewRetryingClient(inner Client, policy retry.Policy) *RetryingClient {
	return &RetryingClient{inner: inner, policy: policy}
}

func (c *RetryingClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	var resp *Response
	err := retry.Do(ctx, c.policy, "llm.complete", func() error {
		var callErr error
		resp, callErr = c.inner.Complete(ctx, req)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RetryingClient) Close() error {
	return c.inner.Close()
}
