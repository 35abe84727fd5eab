package vcs

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/fault"
)

func newTestGitHubClient(token string, server *httptest.Server) *GitHubClient {
	return &GitHubClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		token:      token,
		apiBase:    server.URL,
		logger:     slog.Default(),
	}
}

func TestGitHubClient_Clone(t *testing.T) {
	t.Run("resolves default branch and head", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/acme/shop":
				_ = json.NewEncoder(w).Encode(map[string]any{"default_branch": "main"})
			case "/repos/acme/shop/git/ref/heads/main":
				_ = json.NewEncoder(w).Encode(map[string]any{
					"ref":    "refs/heads/main",
					"object": map[string]string{"sha": "abc123"},
				})
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		client := newTestGitHubClient("", server)

		handle, err := client.Clone(context.Background(), "https://github.com/acme/shop.git")
		require.NoError(t, err)
		assert.Equal(t, "acme", handle.Owner)
		assert.Equal(t, "shop", handle.Repo)
		assert.Equal(t, "main", handle.DefaultBranch)
		assert.Equal(t, "abc123", handle.HeadSHA)
	})

	t.Run("missing repo is NotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
		}))
		defer server.Close()

		client := newTestGitHubClient("", server)

		_, err := client.Clone(context.Background(), "https://github.com/acme/missing")
		require.Error(t, err)
		assert.Equal(t, fault.NotFound, fault.ClassOf(err))
	})

	t.Run("bad repo URL fails fast", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestGitHubClient("", server)

		_, err := client.Clone(context.Background(), "not a url at all ://")
		require.Error(t, err)
		assert.Equal(t, fault.Fatal, fault.ClassOf(err))
	})
}

func TestGitHubClient_OpenPR(t *testing.T) {
	t.Run("returns PR web URL", func(t *testing.T) {
		var gotBody map[string]string
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/repos/acme/shop/pulls", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"html_url": "https://github.com/acme/shop/pull/7",
				"number":   7,
			})
		}))
		defer server.Close()

		client := newTestGitHubClient("pr-token", server)
		repo := &RepoHandle{Owner: "acme", Repo: "shop", DefaultBranch: "main"}

		url, err := client.OpenPR(context.Background(), repo, &PullRequest{
			Title: "Add checkout flow",
			Body:  "Implements the checkout tickets",
			Head:  "swarm/ticket-42",
			Base:  "main",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://github.com/acme/shop/pull/7", url)
		assert.Equal(t, "Bearer pr-token", gotAuth)
		assert.Equal(t, "swarm/ticket-42", gotBody["head"])
		assert.Equal(t, "main", gotBody["base"])
	})

	t.Run("duplicate PR is Conflict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "A pull request already exists"})
		}))
		defer server.Close()

		client := newTestGitHubClient("", server)
		repo := &RepoHandle{Owner: "acme", Repo: "shop"}

		_, err := client.OpenPR(context.Background(), repo, &PullRequest{Head: "b", Base: "main"})
		require.Error(t, err)
		assert.Equal(t, fault.Conflict, fault.ClassOf(err))
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("rate limit is Transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "API rate limit exceeded"})
		}))
		defer server.Close()

		client := newTestGitHubClient("", server)
		repo := &RepoHandle{Owner: "acme", Repo: "shop"}

		_, err := client.OpenPR(context.Background(), repo, &PullRequest{Head: "b", Base: "main"})
		require.Error(t, err)
		assert.True(t, fault.Retryable(err))
	})

	t.Run("bad credentials is PolicyViolation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
		}))
		defer server.Close()

		client := newTestGitHubClient("stale", server)
		repo := &RepoHandle{Owner: "acme", Repo: "shop"}

		_, err := client.OpenPR(context.Background(), repo, &PullRequest{Head: "b", Base: "main"})
		require.Error(t, err)
		assert.Equal(t, fault.PolicyViolation, fault.ClassOf(err))
	})
}

func TestGitHubClient_CommitAndPush(t *testing.T) {
	t.Run("builds blobs, tree, commit, then moves ref", func(t *testing.T) {
		var refPatched bool
		var treeReq map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/repos/acme/shop/git/ref/heads/feature" && r.Method == http.MethodGet:
				_ = json.NewEncoder(w).Encode(map[string]any{
					"object": map[string]string{"sha": "parent-sha"},
				})
			case r.URL.Path == "/repos/acme/shop/git/commits/parent-sha":
				_ = json.NewEncoder(w).Encode(map[string]any{
					"sha":  "parent-sha",
					"tree": map[string]string{"sha": "base-tree-sha"},
				})
			case r.URL.Path == "/repos/acme/shop/git/blobs":
				_ = json.NewEncoder(w).Encode(map[string]string{"sha": "blob-sha"})
			case r.URL.Path == "/repos/acme/shop/git/trees":
				require.NoError(t, json.NewDecoder(r.Body).Decode(&treeReq))
				_ = json.NewEncoder(w).Encode(map[string]string{"sha": "new-tree-sha"})
			case r.URL.Path == "/repos/acme/shop/git/commits" && r.Method == http.MethodPost:
				_ = json.NewEncoder(w).Encode(map[string]any{"sha": "new-commit-sha"})
			case r.URL.Path == "/repos/acme/shop/git/refs/heads/feature" && r.Method == http.MethodPatch:
				refPatched = true
				_ = json.NewEncoder(w).Encode(map[string]any{})
			default:
				t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		client := newTestGitHubClient("", server)
		repo := &RepoHandle{Owner: "acme", Repo: "shop"}

		sha, err := client.Commit(context.Background(), repo, &CommitInput{
			Branch:  "feature",
			Message: "apply generated changes",
			Files:   []FileChange{{Path: "main.go", Content: "package main"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "new-commit-sha", sha)
		assert.Equal(t, "base-tree-sha", treeReq["base_tree"])

		require.NoError(t, client.Push(context.Background(), repo, "feature", sha))
		assert.True(t, refPatched)
	})

	t.Run("empty commit fails fast", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			t.Error("no API call expected")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestGitHubClient("", server)
		repo := &RepoHandle{Owner: "acme", Repo: "shop"}

		_, err := client.Commit(context.Background(), repo, &CommitInput{Branch: "feature"})
		require.Error(t, err)
		assert.Equal(t, fault.Fatal, fault.ClassOf(err))
	})
}
