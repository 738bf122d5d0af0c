package git

import (
	"context"
	"os/exec"
)

// lookbackWindow is the fixed range the standup report covers. Git's
// approxidate parser understands this form directly.
const lookbackWindow = "24 hours ago"

// LogRunner executes the standup log query for one repository and returns
// the raw output. Swappable so tests can feed canned streams through the
// decoder without a git binary.
type LogRunner func(ctx context.Context, repoPath string) ([]byte, error)

// runLog shells out to git for the last day of non-merge commits, one
// boundary-marked subject line per commit followed by its numstat block.
func runLog(ctx context.Context, repoPath string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git",
		"-C", repoPath,
		"log",
		"--since="+lookbackWindow,
		"--no-merges",
		"--pretty=format:"+recordMarker+"%x1f%s",
		"--numstat",
	)
	return cmd.Output()
}
