package git

import "context"

// CommitDiff pairs a commit with its retrieved diff text. Err is set when
// the source could not produce the diff; the commit then counts as having
// zero hunks downstream.
type CommitDiff struct {
	Commit CommitInfo
	Text   string
	Err    error
}

// Prefetch retrieves diff text for the commits in order, running up to
// depth commits ahead of the consumer. Retrieval is the only slow step of a
// churn run, so pipelining it hides I/O latency while the single consumer
// still folds commits strictly oldest to newest: the returned channel
// preserves the input order.
//
// When ctx is cancelled the channel closes at a commit boundary, so a
// partial run never includes a partially-retrieved commit.
func Prefetch(ctx context.Context, source DiffSource, commits []CommitInfo, depth int) <-chan CommitDiff {
	if depth < 1 {
		depth = 1
	}
	out := make(chan CommitDiff, depth)

	go func() {
		defer close(out)
		for _, c := range commits {
			text, err := source.DiffText(ctx, c.SHA)
			if ctx.Err() != nil {
				return
			}
			select {
			case out <- CommitDiff{Commit: c, Text: text, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
