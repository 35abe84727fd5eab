package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/fault"
	testdb "github.com/swarmstack/swarm/test/database"
)

func TestProjectService_CreateProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("validates input", func(t *testing.T) {
		_, err := service.CreateProject(ctx, CreateProjectRequest{RepoURL: "https://git.example.com/x.git"})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateProject(ctx, CreateProjectRequest{Name: "checkout"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("applies defaults", func(t *testing.T) {
		p, err := service.CreateProject(ctx, CreateProjectRequest{
			Name:    "checkout",
			RepoURL: "https://git.example.com/acme/checkout.git",
		})
		require.NoError(t, err)
		assert.Equal(t, "default", p.TenantID)
		assert.Equal(t, "main", p.BaseBranch)
		assert.Zero(t, p.ConcurrencyCap)
	})

	t.Run("stores repo coordinates", func(t *testing.T) {
		p, err := service.CreateProject(ctx, CreateProjectRequest{
			TenantID:        "acme",
			Name:            "billing",
			RepoURL:         "https://git.example.com/acme/billing.git",
			BaseBranch:      "develop",
			Settings:        map[string]interface{}{"verify_cmd": "make check"},
			CredentialNames: []string{"GIT_TOKEN"},
			ConcurrencyCap:  4,
		})
		require.NoError(t, err)
		assert.Equal(t, "develop", p.BaseBranch)
		assert.Equal(t, "make check", p.Settings["verify_cmd"])
		assert.Equal(t, []string{"GIT_TOKEN"}, p.CredentialNames)
		assert.Equal(t, 4, p.ConcurrencyCap)
	})

	t.Run("names are unique per tenant", func(t *testing.T) {
		_, err := service.CreateProject(ctx, CreateProjectRequest{
			Name:    "checkout",
			RepoURL: "https://git.example.com/acme/checkout2.git",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)

		// Same name under another tenant is fine.
		_, err = service.CreateProject(ctx, CreateProjectRequest{
			TenantID: "acme",
			Name:     "checkout",
			RepoURL:  "https://git.example.com/acme/checkout.git",
		})
		require.NoError(t, err)
	})
}

func TestProjectService_Lookups(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	created, err := service.CreateProject(ctx, CreateProjectRequest{
		Name:    "checkout",
		RepoURL: "https://git.example.com/acme/checkout.git",
	})
	require.NoError(t, err)

	t.Run("by id", func(t *testing.T) {
		p, err := service.GetProject(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "checkout", p.Name)

		_, err = service.GetProject(ctx, "missing")
		assert.Equal(t, fault.NotFound, fault.ClassOf(err))
	})

	t.Run("by tenant and name", func(t *testing.T) {
		p, err := service.GetProjectByName(ctx, "default", "checkout")
		require.NoError(t, err)
		assert.Equal(t, created.ID, p.ID)

		_, err = service.GetProjectByName(ctx, "acme", "checkout")
		assert.Equal(t, fault.NotFound, fault.ClassOf(err))
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		_, err := service.CreateProject(ctx, CreateProjectRequest{
			Name:    "billing",
			RepoURL: "https://git.example.com/acme/billing.git",
		})
		require.NoError(t, err)

		rows, err := service.ListProjects(ctx, "default")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "billing", rows[0].Name)
		assert.Equal(t, "checkout", rows[1].Name)
	})
}

func TestProjectService_EnsureProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("creates on first use", func(t *testing.T) {
		p, err := service.EnsureProject(ctx, "default", "shortener", "https://git.example.com/acme/shortener.git")
		require.NoError(t, err)
		assert.Equal(t, "shortener", p.Name)
		assert.Equal(t, "main", p.BaseBranch)
	})

	t.Run("returns the existing row", func(t *testing.T) {
		first, err := service.EnsureProject(ctx, "default", "shortener", "")
		require.NoError(t, err)

		second, err := service.EnsureProject(ctx, "default", "shortener", "https://git.example.com/elsewhere.git")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "https://git.example.com/acme/shortener.git", second.RepoURL,
			"an existing project keeps its repository")
	})

	t.Run("missing project without a repo to create from", func(t *testing.T) {
		_, err := service.EnsureProject(ctx, "default", "ghost", "")
		assert.Equal(t, fault.NotFound, fault.ClassOf(err))
	})
}

func TestProjectService_Secrets(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	p, err := service.CreateProject(ctx, CreateProjectRequest{
		Name:    "checkout",
		RepoURL: "https://git.example.com/acme/checkout.git",
	})
	require.NoError(t, err)

	t.Run("validates input", func(t *testing.T) {
		assert.True(t, IsValidationError(service.SetSecret(ctx, p.ID, "", "v")))
		assert.True(t, IsValidationError(service.SetSecret(ctx, p.ID, "GIT_TOKEN", "")))
	})

	t.Run("set, list, and rotate", func(t *testing.T) {
		require.NoError(t, service.SetSecret(ctx, p.ID, "GIT_TOKEN", "tok-1"))
		require.NoError(t, service.SetSecret(ctx, p.ID, "NPM_TOKEN", "tok-2"))

		names, err := service.SecretNames(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"GIT_TOKEN", "NPM_TOKEN"}, names)

		// Rotation replaces the value under the same name.
		require.NoError(t, service.SetSecret(ctx, p.ID, "GIT_TOKEN", "tok-3"))

		values, err := service.SecretValues(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"GIT_TOKEN": "tok-3",
			"NPM_TOKEN": "tok-2",
		}, values)

		names, err = service.SecretNames(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, names, 2, "rotation does not add a row")
	})
}
