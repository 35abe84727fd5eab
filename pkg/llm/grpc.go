package llm

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/models"
	pb "github.com/swarmstack/swarm/proto"
)

// GRPCClient implements Client by calling the LLM sidecar via gRPC.
//
// One sidecar serves all providers; the client keeps a rate limiter per
// provider entry so a chatty clarification loop cannot starve drafting.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.LLMServiceClient

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewGRPCClient connects to the LLM sidecar.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:     conn,
		client:   pb.NewLLMServiceClient(conn),
		limiters: make(map[string]*rate.Limiter),
	}, nil
}

// Complete sends the conversation and waits for the full response.
func (c *GRPCClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	const op = "llm.complete"

	if req.Config == nil {
		return nil, fault.New(fault.Fatal, op, "request has no provider config")
	}
	if len(req.Messages) == 0 {
		return nil, fault.New(fault.Fatal, op, "request has no messages")
	}

	if limiter := c.limiterFor(req.Provider, req.Config); limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fault.Wrap(fault.Timeout, op, "rate limit wait aborted", err)
		}
	}

	resp, err := c.client.Complete(ctx, toProtoRequest(req))
	if err != nil {
		return nil, classifyGRPC(op, err)
	}

	if resp.Error != nil {
		class := fault.Fatal
		if resp.Error.Retryable {
			class = fault.Transient
		}
		return nil, fault.Newf(class, op, "provider error %s: %s", resp.Error.Code, resp.Error.Message)
	}

	return &Response{
		Content: resp.Content,
		Usage: Usage{
			InputTokens:  int(resp.GetUsage().GetInputTokens()),
			OutputTokens: int(resp.GetUsage().GetOutputTokens()),
			TotalTokens:  int(resp.GetUsage().GetTotalTokens()),
		},
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// limiterFor returns the pacing limiter for a provider entry, or nil when
// the entry sets no rate limit.
func (c *GRPCClient) limiterFor(name string, cfg *config.LLMProviderConfig) *rate.Limiter {
	if cfg.RateLimitRPS <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.limiters[name]; ok {
		return l
	}
	burst := cfg.RateLimitBurst
	if burst < 1 {
		burst = 1
	}
	l := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	c.limiters[name] = l
	return l
}

func toProtoRequest(req *Request) *pb.CompleteRequest {
	return &pb.CompleteRequest{
		SessionId: req.SessionID,
		RequestId: req.RequestID,
		Messages:  toProtoMessages(req.Messages),
		Config: &pb.LLMConfig{
			Provider:        string(req.Config.Type),
			Model:           req.Config.Model,
			ApiKeyEnv:       req.Config.APIKeyEnv,
			BaseUrl:         req.Config.BaseURL,
			MaxOutputTokens: int32(req.Config.MaxOutputTokens),
		},
	}
}

func toProtoMessages(msgs []Message) []*pb.Message {
	out := make([]*pb.Message, len(msgs))
	for i, m := range msgs {
		var role pb.Message_Role
		switch m.Role {
		case models.RoleSystem:
			role = pb.Message_ROLE_SYSTEM
		case models.RoleAssistant:
			role = pb.Message_ROLE_ASSISTANT
		default:
			role = pb.Message_ROLE_USER
		}
		out[i] = &pb.Message{
			Role:    role,
			Content: m.Content,
		}
	}
	return out
}

// classifyGRPC maps gRPC transport failures onto the fault taxonomy.
func classifyGRPC(op string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fault.Wrap(fault.Transient, op, "llm service call failed", err)
	}
	switch st.Code() {
	case codes.DeadlineExceeded:
		return fault.Wrap(fault.Timeout, op, "llm service deadline exceeded", err)
	case codes.Canceled:
		return fault.Wrap(fault.Timeout, op, "llm call canceled", err)
	case codes.InvalidArgument:
		return fault.Wrap(fault.Fatal, op, "llm service rejected request", err)
	case codes.Unimplemented:
		return fault.Wrap(fault.Fatal, op, "llm service does not support this call", err)
	default:
		// Unavailable, ResourceExhausted, Aborted, Internal and anything
		// unexpected: assume the sidecar can recover.
		return fault.Wrap(fault.Transient, op, "llm service unavailable", err)
	}
}
