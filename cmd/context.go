package cmd

import (
	"fmt"
	"time"

	"github.com/masmgr/truechurn-go/config"
	"github.com/masmgr/truechurn-go/internal/git"
	"github.com/masmgr/truechurn-go/internal/output"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Branch   string
	Author   string
	Since    *time.Time
	Until    time.Time
	Commits  []git.CommitInfo
}

// NewCommandContext creates a context from CLI flags. It performs
// configuration loading, date parsing, repository opening, and commit
// listing. A malformed date range is fatal here, before any accounting
// starts.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	since, err := ParseDate(c.String("since"))
	if err != nil {
		return nil, fmt.Errorf("invalid since date: %w", err)
	}
	until, err := ParseDate(c.String("until"))
	if err != nil {
		return nil, fmt.Errorf("invalid until date: %w", err)
	}

	untilTime := time.Now()
	if until != nil {
		untilTime = *until
	}

	repoPath := c.String("repo")
	branch := c.String("branch")
	if branch == "" {
		branch = cfg.Git.DefaultBranch
	}
	author := c.String("author")

	reader, err := git.NewHistoryReader(git.ReadOptions{
		RepoPath: repoPath,
		Branch:   branch,
		Author:   author,
		Since:    since,
		Until:    until,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	commits, err := reader.ListCommits()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Branch:   branch,
		Author:   author,
		Since:    since,
		Until:    untilTime,
		Commits:  commits,
	}, nil
}

// HasCommits returns true if commits were found in the specified range.
func (ctx *CommandContext) HasCommits() bool {
	return len(ctx.Commits) > 0
}

// PrintNoCommitsMessage prints a message when no commits are found.
func (ctx *CommandContext) PrintNoCommitsMessage() {
	fmt.Println("No commits found in the specified range.")
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		Top:        c.Int("top"),
		OutputPath: c.String("output"),
		ShowLines:  c.Bool("lines"),
	}
}
