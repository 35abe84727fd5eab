package vm

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/fault"
	pb "github.com/swarmstack/swarm/proto"
)

// GRPCBackend implements Backend against one host agent.
type GRPCBackend struct {
	name   string
	cfg    *config.VMBackendConfig
	conn   *grpc.ClientConn
	client pb.VMServiceClient
}

// NewGRPCBackend connects to the host agent named in the registry entry.
func NewGRPCBackend(name string, cfg *config.VMBackendConfig) (*GRPCBackend, error) {
	conn, err := grpc.NewClient(cfg.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to VM backend %s at %s: %w", name, cfg.Address, err)
	}
	return &GRPCBackend{
		name:   name,
		cfg:    cfg,
		conn:   conn,
		client: pb.NewVMServiceClient(conn),
	}, nil
}

// Spawn boots an agent VM under the backend's spawn deadline.
func (b *GRPCBackend) Spawn(ctx context.Context, req *SpawnRequest) (*VM, error) {
	const op = "vm.spawn"

	ctx, cancel := context.WithTimeout(ctx, b.cfg.SpawnTimeout)
	defer cancel()

	resp, err := b.client.Spawn(ctx, &pb.SpawnRequest{
		TicketId: req.TicketID,
		Image:    b.cfg.Image,
		Cpus:     int32(b.cfg.CPUs),
		MemoryMb: int32(b.cfg.MemoryMB),
		Env:      req.Env,
	})
	if err != nil {
		return nil, b.classify(op, err)
	}
	if resp.VmId == "" {
		return nil, fault.Newf(fault.Transient, op, "backend %s returned no vm id", b.name)
	}

	return &VM{ID: resp.VmId, Address: resp.Address}, nil
}

// Teardown releases a VM. NotFound from the host agent is treated as
// success: the VM is gone either way, and reaped leases tear down twice.
func (b *GRPCBackend) Teardown(ctx context.Context, vmID string) error {
	const op = "vm.teardown"

	ctx, cancel := context.WithTimeout(ctx, b.cfg.TeardownTimeout)
	defer cancel()

	_, err := b.client.Teardown(ctx, &pb.TeardownRequest{VmId: vmID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return b.classify(op, err)
	}
	return nil
}

// Health reports the host agent's pool state. A non-empty vmID asks
// the host about that VM too; a dead or unknown VM comes back as a
// NotFound fault.
func (b *GRPCBackend) Health(ctx context.Context, vmID string) (*HealthStatus, error) {
	const op = "vm.health"

	resp, err := b.client.Health(ctx, &pb.HealthRequest{VmId: vmID})
	if err != nil {
		return nil, b.classify(op, err)
	}

	var s string
	switch resp.Status {
	case pb.HealthResponse_STATUS_SERVING:
		s = "serving"
	case pb.HealthResponse_STATUS_DEGRADED:
		s = "degraded"
	case pb.HealthResponse_STATUS_DRAINING:
		s = "draining"
	default:
		s = "unknown"
	}

	return &HealthStatus{
		Status:    s,
		ActiveVMs: int(resp.ActiveVms),
		Capacity:  int(resp.Capacity),
	}, nil
}

// Close releases the gRPC connection.
func (b *GRPCBackend) Close() error {
	return b.conn.Close()
}

func (b *GRPCBackend) classify(op string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fault.Wrap(fault.Transient, op, fmt.Sprintf("backend %s call failed", b.name), err)
	}
	switch st.Code() {
	case codes.DeadlineExceeded:
		return fault.Wrap(fault.Timeout, op, fmt.Sprintf("backend %s deadline exceeded", b.name), err)
	case codes.Canceled:
		return fault.Wrap(fault.Timeout, op, fmt.Sprintf("backend %s call canceled", b.name), err)
	case codes.ResourceExhausted:
		// Pool full. The dispatcher backs off and re-polls.
		return fault.Wrap(fault.Conflict, op, fmt.Sprintf("backend %s has no capacity", b.name), err)
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fault.Wrap(fault.Fatal, op, fmt.Sprintf("backend %s rejected request", b.name), err)
	case codes.NotFound:
		return fault.Wrap(fault.NotFound, op, fmt.Sprintf("backend %s has no such vm", b.name), err)
	default:
		return fault.Wrap(fault.Transient, op, fmt.Sprintf("backend %s unavailable", b.name), err)
	}
}
