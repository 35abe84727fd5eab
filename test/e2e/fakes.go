package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/hitl"
	"github.com/swarmstack/swarm/pkg/llm"
	"github.com/swarmstack/swarm/pkg/models"
	"github.com/swarmstack/swarm/pkg/vcs"
	"github.com/swarmstack/swarm/pkg/verifier"
	"github.com/swarmstack/swarm/pkg/vm"
)

// ScriptedLLM replays canned completions in order. The harness installs
// it where the gRPC sidecar client would sit.
type ScriptedLLM struct {
	mu      sync.Mutex
	replies []string
	calls   int
}

// NewScriptedLLM creates an empty script; push replies before driving
// any turn that reaches the model.
func NewScriptedLLM() *ScriptedLLM {
	return &ScriptedLLM{}
}

func (s *ScriptedLLM) Complete(_ context.Context, _ *llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.replies) == 0 {
		return nil, fault.New(fault.Fatal, "llm.scripted", "script exhausted")
	}
	next := s.replies[0]
	s.replies = s.replies[1:]
	return &llm.Response{Content: next, Usage: llm.Usage{InputTokens: 50, OutputTokens: 25, TotalTokens: 75}}, nil
}

func (s *ScriptedLLM) Close() error { return nil }

// Push appends replies to the script.
func (s *ScriptedLLM) Push(replies ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, replies...)
}

// Calls reports how many completions ran.
func (s *ScriptedLLM) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// clarifyReply builds the JSON of one well-formed clarification turn.
func clarifyReply(msg string, gathered models.GatheredContext, ready bool) string {
	b, _ := json.Marshal(hitl.TurnReply{Message: msg, Gathered: gathered, ReadyForSpec: ready})
	return string(b)
}

// specReply builds a minimal valid drafted spec with one feature.
func specReply(title string) string {
	b, _ := json.Marshal(models.Spec{
		Title:   title,
		Summary: "Shortens links.",
		Features: []models.SpecFeature{{
			ID:    "shorten",
			Title: "Shorten endpoint",
			Acceptance: []models.AcceptanceCriterion{
				{ID: "shorten-ac-1", Text: "POST /api/shorten returns a short code"},
			},
		}},
		Acceptance: []string{"service boots and serves traffic"},
	})
	return string(b)
}

// saturatedContext fills every requirement category past the point where
// weighted coverage clears the ready threshold.
func saturatedContext() models.GatheredContext {
	full := models.GatheredContext{}
	for _, cat := range []string{
		config.CategoryProjectType, config.CategoryTechStack, config.CategoryScale,
		config.CategoryFeatures, config.CategoryConstraints,
	} {
		full[cat] = map[string]any{"a": "1", "b": "2", "c": "3"}
	}
	return full
}

// FakeVMBackend is a scriptable vm.Backend registered as "fake". Spawn
// errors are consumed in order.
type FakeVMBackend struct {
	mu        sync.Mutex
	spawnErrs []error
	spawns    []*vm.SpawnRequest
	teardowns []string
	dead      map[string]bool
	seq       int
}

func (b *FakeVMBackend) Spawn(_ context.Context, req *vm.SpawnRequest) (*vm.VM, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.spawnErrs) > 0 {
		err := b.spawnErrs[0]
		b.spawnErrs = b.spawnErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	b.seq++
	b.spawns = append(b.spawns, req)
	return &vm.VM{ID: fmt.Sprintf("h-%d", b.seq), Address: "10.0.0.1:7777"}, nil
}

func (b *FakeVMBackend) Teardown(_ context.Context, vmID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.teardowns = append(b.teardowns, vmID)
	return nil
}

func (b *FakeVMBackend) Health(_ context.Context, vmID string) (*vm.HealthStatus, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if vmID != "" && b.dead[vmID] {
		return nil, fault.Newf(fault.NotFound, "vm.health", "no such vm %s", vmID)
	}
	return &vm.HealthStatus{Status: "serving"}, nil
}

func (b *FakeVMBackend) Close() error { return nil }

// Kill makes the backend report the VM as gone on future health probes,
// as if the host lost it.
func (b *FakeVMBackend) Kill(vmID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dead == nil {
		b.dead = make(map[string]bool)
	}
	b.dead[vmID] = true
}

// LastHandle returns the backend handle of the most recent spawn, or "".
func (b *FakeVMBackend) LastHandle() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.seq == 0 {
		return ""
	}
	return fmt.Sprintf("h-%d", b.seq)
}

// PushSpawnError queues boot failures consumed ahead of successful spawns.
func (b *FakeVMBackend) PushSpawnError(errs ...error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.spawnErrs = append(b.spawnErrs, errs...)
}

// SpawnCount reports how many VMs booted.
func (b *FakeVMBackend) SpawnCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.spawns)
}

// LastSpawn returns the most recent spawn request, or nil.
func (b *FakeVMBackend) LastSpawn() *vm.SpawnRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.spawns) == 0 {
		return nil
	}
	return b.spawns[len(b.spawns)-1]
}

// TornDown returns the handles of every VM torn down so far.
func (b *FakeVMBackend) TornDown() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.teardowns...)
}

// ScriptedRunner is a verifier.Runner that consumes scripted verdicts in
// order and passes everything once the script runs out.
type ScriptedRunner struct {
	mu       sync.Mutex
	verdicts []*verifier.Verdict
	errs     []error
	requests []*verifier.VerifyRequest
}

// NewScriptedRunner creates a runner that passes every branch until
// verdicts are pushed.
func NewScriptedRunner() *ScriptedRunner {
	return &ScriptedRunner{}
}

func (r *ScriptedRunner) Verify(_ context.Context, req *verifier.VerifyRequest) (*verifier.Verdict, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	if len(r.verdicts) > 0 {
		v := r.verdicts[0]
		r.verdicts = r.verdicts[1:]
		return v, nil
	}
	return &verifier.Verdict{Status: verifier.VerdictPassed}, nil
}

// PushVerdict queues verdicts ahead of the pass-through default.
func (r *ScriptedRunner) PushVerdict(vs ...*verifier.Verdict) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verdicts = append(r.verdicts, vs...)
}

// PushError queues transport errors; a nil slot means "no error".
func (r *ScriptedRunner) PushError(errs ...error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, errs...)
}

// Requests returns every verify call seen so far.
func (r *ScriptedRunner) Requests() []*verifier.VerifyRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*verifier.VerifyRequest(nil), r.requests...)
}

// rejection builds a failed verdict carrying feedback for the retry.
func rejection(feedback string) *verifier.Verdict {
	return &verifier.Verdict{Status: verifier.VerdictFailed, Feedback: feedback}
}

// AgentFailure builds the result an agent reports when it gives up.
func AgentFailure(reason string) models.AgentResult {
	return models.AgentResult{Success: false, Error: reason}
}

// VCSRecorder is a vcs.Client that fabricates repository state in memory
// and records every pull request it is asked to open.
type VCSRecorder struct {
	mu     sync.Mutex
	prSeq  int
	opened []*vcs.PullRequest
}

func (c *VCSRecorder) Clone(_ context.Context, repoURL string) (*vcs.RepoHandle, error) {
	ref, err := vcs.ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}
	return &vcs.RepoHandle{Owner: ref.Owner, Repo: ref.Repo, DefaultBranch: "main", HeadSHA: "sha-base"}, nil
}

func (c *VCSRecorder) Branch(context.Context, *vcs.RepoHandle, string, string) error {
	return nil
}

func (c *VCSRecorder) Commit(context.Context, *vcs.RepoHandle, *vcs.CommitInput) (string, error) {
	return "sha-commit", nil
}

func (c *VCSRecorder) Push(context.Context, *vcs.RepoHandle, string, string) error {
	return nil
}

func (c *VCSRecorder) OpenPR(_ context.Context, repo *vcs.RepoHandle, pr *vcs.PullRequest) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prSeq++
	c.opened = append(c.opened, pr)
	return fmt.Sprintf("https://git.example.com/%s/%s/pull/%d", repo.Owner, repo.Repo, c.prSeq), nil
}

// OpenedPRs returns every pull request opened so far.
func (c *VCSRecorder) OpenedPRs() []*vcs.PullRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*vcs.PullRequest(nil), c.opened...)
}
