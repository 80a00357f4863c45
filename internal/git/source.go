package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DiffSource produces the raw unified diff text for a commit.
// Implementations must produce zero-context diffs without filename
// prefixes: the churn engine's line-number arithmetic depends on hunk
// headers describing exactly the changed region.
type DiffSource interface {
	DiffText(ctx context.Context, sha string) (string, error)
}

// CLIDiffSource retrieves diff text by shelling out to `git show`.
// Binary file changes are excluded by git itself in this output.
type CLIDiffSource struct {
	RepoPath   string
	ExcludeDir string // repository subdirectory excluded from the diff, case-insensitive
}

// DiffText runs `git show --format= --unified=0 --no-prefix <sha>` and
// returns its stdout.
func (d *CLIDiffSource) DiffText(ctx context.Context, sha string) (string, error) {
	out, err := exec.CommandContext(ctx, "git", d.showArgs(sha)...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git show %s failed: %w: %s", sha, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git show %s failed: %w", sha, err)
	}
	return string(out), nil
}

func (d *CLIDiffSource) showArgs(sha string) []string {
	args := []string{
		"-C", d.RepoPath,
		"show",
		"--format=",
		"--unified=0",
		"--no-prefix",
		sha,
	}
	if d.ExcludeDir != "" {
		args = append(args, "--", ".", fmt.Sprintf(":(exclude,icase)%s", d.ExcludeDir))
	}
	return args
}

// Compile-time interface conformance check.
var _ DiffSource = (*CLIDiffSource)(nil)
