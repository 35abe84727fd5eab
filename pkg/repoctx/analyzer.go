// Package repoctx fetches lightweight repository context, metadata and
// the README, used to seed clarification and spec drafting for sessions
// that bring an existing repository. Fetches are domain-allowlisted and
// cached briefly so repeated drafts in one review cycle hit GitHub once.
package repoctx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/vcs"
)

const defaultAPIBaseURL = "https://api.github.com"

// Analyzer resolves repository context for the spec drafter. It
// implements the analyzer contract of the HITL machine.
type Analyzer struct {
	httpClient *http.Client
	token      string
	cache      *Cache
	cfg        *config.RepoContextConfig
	apiBase    string
	logger     *slog.Logger
}

// NewAnalyzer creates an analyzer from resolved configuration.
// token may be empty (public repos only, lower rate limits).
func NewAnalyzer(cfg *config.RepoContextConfig, token string) *Analyzer {
	ttl := time.Minute
	if cfg != nil && cfg.CacheTTL > 0 {
		ttl = cfg.CacheTTL
	}
	return &Analyzer{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      token,
		cache:      NewCache(ttl),
		cfg:        cfg,
		apiBase:    defaultAPIBaseURL,
		logger:     slog.Default(),
	}
}

// repoMetadata is the subset of the repository API response the drafter
// cares about.
type repoMetadata struct {
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	Language      string   `json:"language"`
	Topics        []string `json:"topics"`
	DefaultBranch string   `json:"default_branch"`
	Archived      bool     `json:"archived"`
}

// Analyze fetches repository metadata and README and returns them as the
// analysis blob stored on the session. A missing README is tolerated;
// a repository outside the domain allowlist is not.
func (a *Analyzer) Analyze(ctx context.Context, repoURL string) (map[string]interface{}, error) {
	const op = "repoctx.analyze"

	var allowed []string
	if a.cfg != nil {
		allowed = a.cfg.AllowedDomains
	}
	if err := ValidateRepoURL(repoURL, allowed); err != nil {
		return nil, fault.Wrap(fault.PolicyViolation, op, "repository URL rejected", err)
	}

	ref, err := vcs.ParseRepoURL(repoURL)
	if err != nil {
		return nil, fault.Wrap(fault.Fatal, op, "unparseable repository URL", err)
	}

	key := ref.Owner + "/" + ref.Repo
	if analysis, ok := a.cache.Get(key); ok {
		return analysis, nil
	}

	meta, err := a.fetchMetadata(ctx, ref)
	if err != nil {
		return nil, err
	}

	readme, err := a.fetchReadme(ctx, ref)
	if err != nil {
		// Context still helps without a README; keep what we have.
		a.logger.Warn("README fetch failed; continuing with metadata only",
			"repo", key, "error", err)
		readme = ""
	}

	analysis := map[string]interface{}{
		"full_name":      meta.FullName,
		"description":    meta.Description,
		"language":       meta.Language,
		"topics":         meta.Topics,
		"default_branch": meta.DefaultBranch,
		"archived":       meta.Archived,
	}
	if readme != "" {
		analysis["readme"] = readme
	}

	a.cache.Set(key, analysis)
	return analysis, nil
}

// fetchMetadata loads the repository record.
func (a *Analyzer) fetchMetadata(ctx context.Context, ref *vcs.RepoRef) (*repoMetadata, error) {
	const op = "repoctx.metadata"

	req, err := a.newRequest(ctx, fmt.Sprintf("%s/repos/%s/%s", a.apiBase, ref.Owner, ref.Repo))
	if err != nil {
		return nil, fault.Wrap(fault.Fatal, op, "create request", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fault.Wrap(fault.Transient, op, "git service unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fault.Newf(fault.NotFound, op, "repository %s/%s not found", ref.Owner, ref.Repo)
	case resp.StatusCode != http.StatusOK:
		return nil, fault.Newf(fault.Transient, op, "git service returned %d", resp.StatusCode)
	}

	var meta repoMetadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fault.Wrap(fault.Transient, op, "decode repository response", err)
	}
	return &meta, nil
}

// fetchReadme downloads the repository README as raw text, capped at the
// configured byte limit. A repository without one returns empty.
func (a *Analyzer) fetchReadme(ctx context.Context, ref *vcs.RepoRef) (string, error) {
	const op = "repoctx.readme"

	req, err := a.newRequest(ctx, fmt.Sprintf("%s/repos/%s/%s/readme", a.apiBase, ref.Owner, ref.Repo))
	if err != nil {
		return "", fault.Wrap(fault.Fatal, op, "create request", err)
	}
	req.Header.Set("Accept", "application/vnd.github.raw+json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fault.Wrap(fault.Transient, op, "git service unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", nil
	case resp.StatusCode != http.StatusOK:
		return "", fault.Newf(fault.Transient, op, "git service returned %d", resp.StatusCode)
	}

	maxBytes := int64(256 * 1024)
	if a.cfg != nil && a.cfg.MaxFileBytes > 0 {
		maxBytes = a.cfg.MaxFileBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return "", fault.Wrap(fault.Transient, op, "read README body", err)
	}
	if int64(len(body)) > maxBytes {
		body = body[:maxBytes]
	}
	return string(body), nil
}

func (a *Analyzer) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	return req, nil
}
