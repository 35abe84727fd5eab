package vcs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/fault"
)

const defaultAPIBaseURL = "https://api.github.com"

// GitHubClient implements Client against the GitHub REST API.
// Commits are assembled through the git data API (blobs, trees, commits)
// so no local checkout is needed.
type GitHubClient struct {
	httpClient *http.Client
	token      string
	apiBase    string
	logger     *slog.Logger
}

// NewGitHubClient creates a client from resolved VCS configuration.
// The token is read from the environment by name; an empty token works
// for public repos only, with lower rate limits.
func NewGitHubClient(cfg *config.VCSConfig) *GitHubClient {
	apiBase := cfg.APIBaseURL
	if apiBase == "" {
		apiBase = defaultAPIBaseURL
	}
	return &GitHubClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      os.Getenv(cfg.TokenEnv),
		apiBase:    strings.TrimSuffix(apiBase, "/"),
		logger:     slog.Default(),
	}
}

type repoResponse struct {
	DefaultBranch string `json:"default_branch"`
}

type refResponse struct {
	Ref    string `json:"ref"`
	Object struct {
		SHA string `json:"sha"`
	} `json:"object"`
}

// Clone resolves a repository and its default branch head. No data is
// copied; later calls build on the returned handle.
func (c *GitHubClient) Clone(ctx context.Context, repoURL string) (*RepoHandle, error) {
	const op = "vcs.clone"

	ref, err := ParseRepoURL(repoURL)
	if err != nil {
		return nil, fault.Wrap(fault.Fatal, op, "unparseable repo URL", err)
	}

	var repo repoResponse
	if err := c.do(ctx, op, http.MethodGet,
		fmt.Sprintf("/repos/%s/%s", ref.Owner, ref.Repo), nil, &repo); err != nil {
		return nil, err
	}

	var head refResponse
	if err := c.do(ctx, op, http.MethodGet,
		fmt.Sprintf("/repos/%s/%s/git/ref/heads/%s", ref.Owner, ref.Repo, repo.DefaultBranch), nil, &head); err != nil {
		return nil, err
	}

	return &RepoHandle{
		Owner:         ref.Owner,
		Repo:          ref.Repo,
		DefaultBranch: repo.DefaultBranch,
		HeadSHA:       head.Object.SHA,
	}, nil
}

// Branch creates refs/heads/{name} pointing at fromSHA.
func (c *GitHubClient) Branch(ctx context.Context, repo *RepoHandle, name, fromSHA string) error {
	const op = "vcs.branch"

	body := map[string]string{
		"ref": "refs/heads/" + name,
		"sha": fromSHA,
	}
	return c.do(ctx, op, http.MethodPost,
		fmt.Sprintf("/repos/%s/%s/git/refs", repo.Owner, repo.Repo), body, nil)
}

type treeEntry struct {
	Path string  `json:"path"`
	Mode string  `json:"mode"`
	Type string  `json:"type"`
	SHA  *string `json:"sha"`
}

type commitResponse struct {
	SHA  string `json:"sha"`
	Tree struct {
		SHA string `json:"sha"`
	} `json:"tree"`
}

// Commit builds a tree on top of the branch head and creates a commit.
// The branch ref is not moved; Push does that.
func (c *GitHubClient) Commit(ctx context.Context, repo *RepoHandle, in *CommitInput) (string, error) {
	const op = "vcs.commit"

	if len(in.Files) == 0 {
		return "", fault.New(fault.Fatal, op, "commit has no file changes")
	}

	var parent refResponse
	if err := c.do(ctx, op, http.MethodGet,
		fmt.Sprintf("/repos/%s/%s/git/ref/heads/%s", repo.Owner, repo.Repo, in.Branch), nil, &parent); err != nil {
		return "", err
	}

	var parentCommit commitResponse
	if err := c.do(ctx, op, http.MethodGet,
		fmt.Sprintf("/repos/%s/%s/git/commits/%s", repo.Owner, repo.Repo, parent.Object.SHA), nil, &parentCommit); err != nil {
		return "", err
	}

	entries := make([]treeEntry, 0, len(in.Files))
	for _, f := range in.Files {
		entry := treeEntry{Path: f.Path, Mode: "100644", Type: "blob"}
		if f.Delete {
			// A null sha removes the path from the tree
			entries = append(entries, entry)
			continue
		}

		var blob struct {
			SHA string `json:"sha"`
		}
		blobReq := map[string]string{"content": f.Content, "encoding": "utf-8"}
		if err := c.do(ctx, op, http.MethodPost,
			fmt.Sprintf("/repos/%s/%s/git/blobs", repo.Owner, repo.Repo), blobReq, &blob); err != nil {
			return "", err
		}
		sha := blob.SHA
		entry.SHA = &sha
		entries = append(entries, entry)
	}

	var tree struct {
		SHA string `json:"sha"`
	}
	treeReq := map[string]any{
		"base_tree": parentCommit.Tree.SHA,
		"tree":      entries,
	}
	if err := c.do(ctx, op, http.MethodPost,
		fmt.Sprintf("/repos/%s/%s/git/trees", repo.Owner, repo.Repo), treeReq, &tree); err != nil {
		return "", err
	}

	var commit commitResponse
	commitReq := map[string]any{
		"message": in.Message,
		"tree":    tree.SHA,
		"parents": []string{parent.Object.SHA},
	}
	if err := c.do(ctx, op, http.MethodPost,
		fmt.Sprintf("/repos/%s/%s/git/commits", repo.Owner, repo.Repo), commitReq, &commit); err != nil {
		return "", err
	}

	return commit.SHA, nil
}

// Push fast-forwards refs/heads/{branch} to the given commit.
func (c *GitHubClient) Push(ctx context.Context, repo *RepoHandle, branch, sha string) error {
	const op = "vcs.push"

	body := map[string]any{"sha": sha, "force": false}
	return c.do(ctx, op, http.MethodPatch,
		fmt.Sprintf("/repos/%s/%s/git/refs/heads/%s", repo.Owner, repo.Repo, branch), body, nil)
}

type pullResponse struct {
	HTMLURL string `json:"html_url"`
	Number  int    `json:"number"`
}

// OpenPR opens a pull request and returns its web URL.
func (c *GitHubClient) OpenPR(ctx context.Context, repo *RepoHandle, pr *PullRequest) (string, error) {
	const op = "vcs.open_pr"

	body := map[string]string{
		"title": pr.Title,
		"body":  pr.Body,
		"head":  pr.Head,
		"base":  pr.Base,
	}

	var resp pullResponse
	if err := c.do(ctx, op, http.MethodPost,
		fmt.Sprintf("/repos/%s/%s/pulls", repo.Owner, repo.Repo), body, &resp); err != nil {
		return "", err
	}

	c.logger.Info("Opened pull request",
		"repo", repo.Owner+"/"+repo.Repo,
		"head", pr.Head,
		"base", pr.Base,
		"url", resp.HTMLURL)

	return resp.HTMLURL, nil
}

// do performs one API call, classifying failures by status code.
func (c *GitHubClient) do(ctx context.Context, op, method, path string, reqBody, respBody any) error {
	var payload io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fault.Wrap(fault.Fatal, op, "encode request", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, payload)
	if err != nil {
		return fault.Wrap(fault.Fatal, op, "create request", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fault.Wrap(fault.Transient, op, "git service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return c.classify(op, resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fault.Wrap(fault.Transient, op, "decode response", err)
		}
	}

	return nil
}

type apiError struct {
	Message string `json:"message"`
}

func (c *GitHubClient) classify(op string, resp *http.Response) error {
	var apiErr apiError
	_ = json.NewDecoder(resp.Body).Decode(&apiErr)
	msg := apiErr.Message
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fault.Newf(fault.PolicyViolation, op, "git service authentication failed: %s", msg)
	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusTooManyRequests:
		// Rate limiting surfaces as 403 with a zeroed remaining header
		if resp.Header.Get("X-RateLimit-Remaining") == "0" || resp.StatusCode == http.StatusTooManyRequests {
			return fault.Newf(fault.Transient, op, "git service rate limited: %s", msg)
		}
		return fault.Newf(fault.PolicyViolation, op, "git service denied request: %s", msg)
	case resp.StatusCode == http.StatusNotFound:
		return fault.Newf(fault.NotFound, op, "git service: %s", msg)
	case resp.StatusCode == http.StatusConflict, resp.StatusCode == http.StatusUnprocessableEntity:
		// Already-exists refs and duplicate PRs land here
		return fault.Newf(fault.Conflict, op, "git service rejected: %s", msg)
	case resp.StatusCode >= 500:
		return fault.Newf(fault.Transient, op, "git service error HTTP %d: %s", resp.StatusCode, msg)
	default:
		return fault.Newf(fault.Fatal, op, "git service returned HTTP %d: %s", resp.StatusCode, msg)
	}
}
