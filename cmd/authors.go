package cmd

import (
	"time"

	"github.com/masmgr/truechurn-go/internal/git"
	"github.com/masmgr/truechurn-go/internal/output"
	"github.com/urfave/cli/v2"
)

// AuthorsCmd returns the authors command.
func AuthorsCmd() *cli.Command {
	return &cli.Command{
		Name:    "authors",
		Aliases: []string{"au"},
		Usage:   "List distinct commit authors in the range",
		Flags:   commonFlags(),
		Action:  authorsAction,
	}
}

func authorsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	if !ctx.HasCommits() {
		ctx.PrintNoCommitsMessage()
		return nil
	}

	report := &output.AuthorsReport{
		RepoPath:    ctx.RepoPath,
		Since:       ctx.Since,
		Until:       ctx.Until,
		GeneratedAt: time.Now(),
		CommitCount: len(ctx.Commits),
		Authors:     git.DistinctAuthors(ctx.Commits),
	}

	opts := OutputOptions(c)
	writer := output.NewAuthorsReportWriter(opts.Format)
	return writer.Write(report, opts)
}
