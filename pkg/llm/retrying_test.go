package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/retry"
)

type scriptedClient struct {
	responses []func() (*Response, error)
	calls     int
}

func (s *scriptedClient) Complete(_ context.Context, _ *Request) (*Response, error) {
	idx := s.calls
	s.calls++
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx]()
}

func (s *scriptedClient) Close() error { return nil }

func testPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts:     3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
	}
}

func TestRetryingClientRecoversFromTransient(t *testing.T) {
	inner := &scriptedClient{responses: []func() (*Response, error){
		func() (*Response, error) { return nil, fault.New(fault.Transient, "llm.complete", "sidecar restarting") },
		func() (*Response, error) { return &Response{Content: "ok"}, nil },
	}}

	client := NewRetryingClient(inner, testPolicy())
	resp, err := client.Complete(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, 2, inner.calls)
}

func TestRetryingClientPassesFatalThrough(t *testing.T) {
	inner := &scriptedClient{responses: []func() (*Response, error){
		func() (*Response, error) { return nil, fault.New(fault.Fatal, "llm.complete", "bad request") },
	}}

	client := NewRetryingClient(inner, testPolicy())
	_, err := client.Complete(context.Background(), &Request{})

	require.Error(t, err)
	assert.Equal(t, fault.Fatal, fault.ClassOf(err))
	assert.Equal(t, 1, inner.calls)
}
