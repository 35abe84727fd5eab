// Package llm provides the client used for clarification, spec drafting and
// ticket generation. The actual provider calls run in the LLM sidecar; this
// package speaks gRPC to it and classifies its failures.
package llm

import (
	"context"

	"github.com/swarmstack/swarm/pkg/config"
)

// Message is one turn of a conversation sent to the sidecar.
// Role values follow pkg/models (system, user, assistant).
type Message struct {
	Role    string
	Content string
}

// Request is a single completion call. Provider names the registry entry
// (used for per-provider pacing and logs); Config is the resolved entry.
type Request struct {
	SessionID string
	RequestID string
	Provider  string
	Config    *config.LLMProviderConfig
	Messages  []Message
}

// Usage reports token consumption for one completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is a completed (non-streaming) LLM response.
type Response struct {
	Content string
	Usage   Usage
}

// Client completes conversations. Implementations classify all failures
// through pkg/fault so callers can branch on class alone.
type Client interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Close() error
}
