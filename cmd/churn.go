package cmd

import (
	"time"

	"github.com/masmgr/truechurn-go/internal/churn"
	"github.com/masmgr/truechurn-go/internal/git"
	"github.com/masmgr/truechurn-go/internal/output"
	"github.com/urfave/cli/v2"
)

// ChurnCmd returns the churn command.
func ChurnCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:  "exclude-dir",
			Usage: "Repository subdirectory to exclude from diffs (case-insensitive)",
		},
		&cli.BoolFlag{
			Name:  "lines",
			Usage: "Show per-file and per-line churn breakdown",
		},
		&cli.IntFlag{
			Name:  "prefetch",
			Usage: "Number of commit diffs to retrieve ahead of accumulation",
		},
	)

	return &cli.Command{
		Name:    "churn",
		Aliases: []string{"c"},
		Usage:   "Compute true code churn: lines an author rewrote shortly after authoring them",
		Flags:   flags,
		Action:  churnAction,
	}
}

func churnAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	if !ctx.HasCommits() {
		ctx.PrintNoCommitsMessage()
		return nil
	}

	source := &git.CLIDiffSource{
		RepoPath:   ctx.RepoPath,
		ExcludeDir: c.String("exclude-dir"),
	}

	prefetch := ctx.Config.Churn.PrefetchDepth
	if n := c.Int("prefetch"); n > 0 {
		prefetch = n
	}

	runner := churn.NewRunner(churn.RunnerOptions{
		Filter: churn.PathFilter{
			Include: ctx.Config.Filters.Include,
			Exclude: ctx.Config.Filters.Exclude,
		},
		PrefetchDepth: prefetch,
	})
	result := runner.Run(c.Context, ctx.Commits, source)

	opts := OutputOptions(c)

	report := &output.ChurnReport{
		RepoPath:         ctx.RepoPath,
		Since:            ctx.Since,
		Until:            ctx.Until,
		GeneratedAt:      time.Now(),
		Author:           ctx.Author,
		CommitCount:      len(ctx.Commits),
		MissingDiffs:     result.MissingDiffs,
		MalformedCommits: result.MalformedCommits,
		Contribution:     result.Totals.Contribution,
		Churn:            result.Totals.Churn,
		Files:            output.FilesFromLedger(result.Ledger, opts.ShowLines),
	}

	// With no author filter, surface who contributed in the range.
	if ctx.Author == "" {
		for _, tally := range git.DistinctAuthors(ctx.Commits) {
			report.Authors = append(report.Authors, tally.Author.Name)
		}
	}

	writer := output.NewChurnReportWriter(opts.Format)
	return writer.Write(report, opts)
}
