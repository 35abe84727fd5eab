package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/project"
	"github.com/swarmstack/swarm/ent/secret"
)

// ProjectService manages projects and their secrets. Secret values are
// write-only through the API surface: reads return names, and only the VM
// backend receives values at spawn time.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new project service.
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProjectRequest is the input for creating a project.
type CreateProjectRequest struct {
	TenantID        string                 `json:"tenant_id,omitempty"`
	Name            string                 `json:"name"`
	RepoURL         string                 `json:"repo_url"`
	BaseBranch      string                 `json:"base_branch,omitempty"`
	Settings        map[string]interface{} `json:"settings,omitempty"`
	CredentialNames []string               `json:"credential_names,omitempty"`
	ConcurrencyCap  int                    `json:"concurrency_cap,omitempty"`
}

// CreateProject registers a project. Names are unique per tenant.
func (s *ProjectService) CreateProject(ctx context.Context, req CreateProjectRequest) (*ent.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewValidationError("name", "required")
	}
	if strings.TrimSpace(req.RepoURL) == "" {
		return nil, NewValidationError("repo_url", "required")
	}
	tenant := req.TenantID
	if tenant == "" {
		tenant = "default"
	}
	base := req.BaseBranch
	if base == "" {
		base = "main"
	}

	create := s.client.Project.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenant).
		SetName(req.Name).
		SetRepoURL(req.RepoURL).
		SetBaseBranch(base).
		SetConcurrencyCap(req.ConcurrencyCap)
	if req.Settings != nil {
		create = create.SetSettings(req.Settings)
	}
	if len(req.CredentialNames) > 0 {
		create = create.SetCredentialNames(req.CredentialNames)
	}

	p, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, classifyEnt("project.create", err)
	}
	return p, nil
}

// GetProject returns a project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*ent.Project, error) {
	p, err := s.client.Project.Query().Where(project.IDEQ(id)).Only(ctx)
	if err != nil {
		return nil, classifyEnt("project.get", err)
	}
	return p, nil
}

// GetProjectByName returns a project by tenant-scoped name.
func (s *ProjectService) GetProjectByName(ctx context.Context, tenantID, name string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.TenantIDEQ(tenantID), project.NameEQ(name)).
		Only(ctx)
	if err != nil {
		return nil, classifyEnt("project.get", err)
	}
	return p, nil
}

// EnsureProject finds a project by name or creates it. Build starts call
// this so a session can name a project that does not exist yet; a
// concurrent create resolves by re-reading the winner's row.
func (s *ProjectService) EnsureProject(ctx context.Context, tenantID, name, repoURL string) (*ent.Project, error) {
	p, err := s.GetProjectByName(ctx, tenantID, name)
	if err == nil {
		return p, nil
	}
	if repoURL == "" {
		// Nothing to create from; surface the lookup failure.
		return nil, err
	}

	p, cerr := s.CreateProject(ctx, CreateProjectRequest{
		TenantID: tenantID,
		Name:     name,
		RepoURL:  repoURL,
	})
	if cerr == nil {
		return p, nil
	}
	if cerr == ErrAlreadyExists {
		return s.GetProjectByName(ctx, tenantID, name)
	}
	return nil, cerr
}

// ListProjects returns a tenant's projects by name.
func (s *ProjectService) ListProjects(ctx context.Context, tenantID string) ([]*ent.Project, error) {
	q := s.client.Project.Query()
	if tenantID != "" {
		q = q.Where(project.TenantIDEQ(tenantID))
	}
	rows, err := q.Order(ent.Asc(project.FieldName)).All(ctx)
	if err != nil {
		return nil, classifyEnt("project.list", err)
	}
	return rows, nil
}

// SetSecret upserts one named secret for a project.
func (s *ProjectService) SetSecret(ctx context.Context, projectID, name, value string) error {
	if name == "" {
		return NewValidationError("name", "required")
	}
	if value == "" {
		return NewValidationError("value", "required")
	}

	existing, err := s.client.Secret.Query().
		Where(secret.ProjectIDEQ(projectID), secret.NameEQ(name)).
		Only(ctx)
	switch {
	case err == nil:
		err = s.client.Secret.UpdateOne(existing).SetValue(value).Exec(ctx)
		return classifyEnt("secret.set", err)
	case ent.IsNotFound(err):
		_, err = s.client.Secret.Create().
			SetID(uuid.NewString()).
			SetProjectID(projectID).
			SetName(name).
			SetValue(value).
			Save(ctx)
		return classifyEnt("secret.set", err)
	default:
		return classifyEnt("secret.set", err)
	}
}

// SecretNames lists the secret names registered for a project.
func (s *ProjectService) SecretNames(ctx context.Context, projectID string) ([]string, error) {
	names, err := s.client.Secret.Query().
		Where(secret.ProjectIDEQ(projectID)).
		Order(ent.Asc(secret.FieldName)).
		Select(secret.FieldName).
		Strings(ctx)
	if err != nil {
		return nil, classifyEnt("secret.names", err)
	}
	return names, nil
}

// SecretValues returns a project's secrets by name. Only the VM backend
// and the masking registry may call this; values never reach API
// responses or logs.
func (s *ProjectService) SecretValues(ctx context.Context, projectID string) (map[string]string, error) {
	rows, err := s.client.Secret.Query().
		Where(secret.ProjectIDEQ(projectID)).
		All(ctx)
	if err != nil {
		return nil, classifyEnt("secret.values", err)
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Value
	}
	return out, nil
}
