package api

// HeartbeatRequest is the HTTP request body for POST /api/v1/tickets/:id/heartbeat.
type HeartbeatRequest struct {
	AgentID string `json:"agent_id"`
}

// ReleaseRequest is the HTTP request body for POST /api/v1/tickets/:id/release.
type ReleaseRequest struct {
	AgentID string `json:"agent_id"`
}

// ActorRequest carries the optional acting identity for ticket control
// endpoints (cancel, hold, resume). When absent, proxy headers decide.
type ActorRequest struct {
	ActorID string `json:"actor_id,omitempty"`
}

// DecisionRequest is the body for approve and request-revision. Feedback
// is required for revisions and ignored on approval.
type DecisionRequest struct {
	ActorID  string `json:"actor_id,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

// UpdateSpecRequest replaces the draft spec with a user-edited blob.
type UpdateSpecRequest struct {
	Spec    map[string]interface{} `json:"spec"`
	ActorID string                 `json:"actor_id,omitempty"`
}

// StartBuildBody is the explicit build activation command.
type StartBuildBody struct {
	Confirmed   bool   `json:"confirmed"`
	ProjectName string `json:"project_name,omitempty"`
	RepoURL     string `json:"repo_url,omitempty"`
	ActorID     string `json:"actor_id,omitempty"`
}
