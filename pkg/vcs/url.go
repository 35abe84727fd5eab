package vcs

import (
	"fmt"
	"net/url"
	"regexp"
)

// RepoRef holds the owner/name pair parsed from a repository URL.
type RepoRef struct {
	Owner string
	Repo  string
}

// repoPathPattern matches /{owner}/{repo} with an optional .git suffix.
var repoPathPattern = regexp.MustCompile(`^/([^/]+)/([^/]+?)(?:\.git)?/?$`)

// ParseRepoURL parses an https repository URL into owner and repo.
// Supports: https://github.com/{owner}/{repo}[.git]
func ParseRepoURL(rawURL string) (*RepoRef, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("malformed URL: %w", err)
	}

	if parsed.Host == "" {
		return nil, fmt.Errorf("not an absolute repository URL: %s", rawURL)
	}

	matches := repoPathPattern.FindStringSubmatch(parsed.Path)
	if matches == nil {
		return nil, fmt.Errorf("URL does not match owner/repo pattern: %s", parsed.Path)
	}

	return &RepoRef{Owner: matches[1], Repo: matches[2]}, nil
}
