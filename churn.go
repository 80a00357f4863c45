package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/masmgr/truechurn-go/cmd"
	"github.com/masmgr/truechurn-go/config"
	"github.com/masmgr/truechurn-go/internal/churn"
	"github.com/masmgr/truechurn-go/internal/git"
)

// LegacyArgs holds the positional arguments of the v1 interface:
// after, before, author, and repository directory, in that order,
// each optionally carrying its `name=` prefix.
type LegacyArgs struct {
	After      string
	Before     string
	Author     string
	Dir        string
	ExcludeDir string
}

func parseLegacyArgs(args []string) (LegacyArgs, error) {
	if len(args) < 4 {
		return LegacyArgs{}, fmt.Errorf("legacy mode needs 4 arguments: after=YYYY[-MM[-DD]] before=YYYY[-MM[-DD]] author=NAME dir=PATH")
	}

	parsed := LegacyArgs{
		After:  stripPrefix(args[0], "after="),
		Before: stripPrefix(args[1], "before="),
		Author: stripPrefix(args[2], "author="),
		Dir:    stripPrefix(args[3], "dir="),
	}

	info, err := os.Stat(parsed.Dir)
	if err != nil || !info.IsDir() {
		return LegacyArgs{}, fmt.Errorf("%s is not a valid path", parsed.Dir)
	}

	return parsed, nil
}

func stripPrefix(arg, prefix string) string {
	return strings.TrimPrefix(arg, prefix)
}

// Churn runs a single-shot churn analysis and prints the aggregate result
// in the v1 format: author, contribution, and churn (negated, as a cost).
func Churn(ctx context.Context, args LegacyArgs) error {
	since, err := cmd.ParseDate(args.After)
	if err != nil {
		return fmt.Errorf("invalid after date: %w", err)
	}
	until, err := cmd.ParseDate(args.Before)
	if err != nil {
		return fmt.Errorf("invalid before date: %w", err)
	}

	reader, err := git.NewHistoryReader(git.ReadOptions{
		RepoPath: args.Dir,
		Author:   args.Author,
		Since:    since,
		Until:    until,
	})
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	commits, err := reader.ListCommits()
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	source := &git.CLIDiffSource{RepoPath: args.Dir, ExcludeDir: args.ExcludeDir}
	runner := churn.NewRunner(churn.RunnerOptions{
		PrefetchDepth: config.DefaultConfig().Churn.PrefetchDepth,
	})
	result := runner.Run(ctx, commits, source)

	color.Green("Scanning %v repo", args.Dir)
	fmt.Printf("author:       %s\n", args.Author)
	fmt.Printf("contribution: %d\n", result.Totals.Contribution)
	fmt.Printf("churn:        %d\n", -result.Totals.Churn)

	return nil
}
