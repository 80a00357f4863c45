package churn

import (
	"context"

	"github.com/masmgr/truechurn-go/internal/git"
)

// RunnerOptions configures a churn run.
type RunnerOptions struct {
	Filter        PathFilter
	PrefetchDepth int // diffs retrieved ahead of accumulation
}

// Result is the outcome of folding one ordered batch of commits.
type Result struct {
	Totals Totals
	Ledger Ledger

	// CommitsProcessed counts commits folded in full.
	CommitsProcessed int
	// MissingDiffs counts commits whose diff the source could not
	// produce; each contributed zero hunks.
	MissingDiffs int
	// MalformedCommits counts commits cut short by a hunk header that
	// failed to decode; their remaining hunks were skipped.
	MalformedCommits int
}

// Runner drives a full churn run: it obtains diff text for each commit,
// oldest first, and folds the hunks into a fresh accumulator. A single bad
// commit never aborts the run; the result reports whatever was accumulated
// from the commits that parsed, plus skip counters for the caller to
// surface.
type Runner struct {
	opts RunnerOptions
}

// NewRunner creates a runner with the given options.
func NewRunner(opts RunnerOptions) *Runner {
	return &Runner{opts: opts}
}

// Run folds the commits, which must already be ordered oldest first.
// Cancelling ctx stops the run at a commit boundary and returns the partial
// result accumulated so far.
func (r *Runner) Run(ctx context.Context, commits []git.CommitInfo, source git.DiffSource) *Result {
	acc := NewAccumulator()

	accept := func(string) bool { return true }
	if !r.opts.Filter.Empty() {
		accept = r.opts.Filter.Match
	}

	res := &Result{}
	for cd := range git.Prefetch(ctx, source, commits, r.opts.PrefetchDepth) {
		if cd.Err != nil {
			res.MissingDiffs++
			continue
		}
		if err := acc.ApplyDiff(cd.Text, accept); err != nil {
			res.MalformedCommits++
			continue
		}
		res.CommitsProcessed++
	}

	res.Totals = acc.Totals()
	res.Ledger = acc.Ledger()
	return res
}
