// Package vcs is the version-control adapter. The coordinator uses it to
// resolve repositories and open pull requests after verification passes;
// the full commit surface exists for host-side tooling that prepares
// branches without a local checkout.
package vcs

import "context"

// RepoHandle identifies a resolved repository.
type RepoHandle struct {
	Owner         string
	Repo          string
	DefaultBranch string
	HeadSHA       string
}

// FileChange is one entry of a commit tree.
type FileChange struct {
	Path    string
	Content string
	Delete  bool
}

// CommitInput describes a commit built server-side on top of a branch head.
type CommitInput struct {
	Branch  string
	Message string
	Files   []FileChange
}

// PullRequest describes a PR to open.
type PullRequest struct {
	Title string
	Body  string
	Head  string
	Base  string
}

// Client is the git-service surface the core depends on. Commits are
// created server-side; Push fast-forwards the branch ref to a commit.
type Client interface {
	Clone(ctx context.Context, repoURL string) (*RepoHandle, error)
	Branch(ctx context.Context, repo *RepoHandle, name, fromSHA string) error
	Commit(ctx context.Context, repo *RepoHandle, in *CommitInput) (string, error)
	Push(ctx context.Context, repo *RepoHandle, branch, sha string) error
	OpenPR(ctx context.Context, repo *RepoHandle, pr *PullRequest) (string, error)
}
