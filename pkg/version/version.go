// Package version derives the coordinator's reported version from build
// metadata: an -ldflags override wins, then the vcs.revision stamped by
// the Go toolchain, then "dev" for test and non-git builds.
package version

import "runtime/debug"

// AppName prefixes version strings in logs and health responses.
const AppName = "swarm"

// gitCommitOverride is set via -ldflags for container builds where .git
// is not available. Empty means no override.
var gitCommitOverride string

// GitCommit is the short commit hash, or "dev" when no build info exists.
var GitCommit = initGitCommit()

func initGitCommit() string {
	if gitCommitOverride != "" {
		return short(gitCommitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return short(s.Value)
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "swarm/<commit>" for logs and user-agent strings.
func Full() string {
	return AppName + "/" + GitCommit
}
