package app

import (
	"os/exec"
	"strings"

	"statuskit/internal/statusline"
)

// ProbeGit returns branch and dirty state for the working tree at cwd, or
// nil when anything goes wrong (no git on PATH, not a repo, empty cwd) —
// callers treat unknown as "no git segment".
func ProbeGit(cwd string) *statusline.GitSnapshot {
	if cwd == "" {
		return nil
	}
	out, err := exec.Command("git", "-C", cwd, "rev-parse", "--abbrev-ref", "HEAD").Output()
	if err != nil {
		return nil
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" {
		return nil
	}
	return &statusline.GitSnapshot{
		Branch: branch,
		Dirty:  gitDirty(cwd),
	}
}

// gitDirty reports uncommitted changes; any error reads as clean.
func gitDirty(cwd string) bool {
	out, err := exec.Command("git", "-C", cwd, "status", "--porcelain").Output()
	if err != nil {
		return false
	}
	return len(out) > 0
}
