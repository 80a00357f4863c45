package git

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// HistoryReader lists commit history from a Git repository.
type HistoryReader struct {
	repo *git.Repository
	opts ReadOptions
}

// NewHistoryReader opens the repository at opts.RepoPath.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	repo, err := git.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	return &HistoryReader{repo: repo, opts: opts}, nil
}

// ListCommits returns the commits matching the configured branch, author,
// and date range, ordered oldest first. Chronological order matters to the
// churn accounting downstream: folding newest-first would invert the
// first-touch classification. Merge commits are skipped, matching
// `git log --no-merges` (contribution commits are rarely overhauled by the
// merge itself).
func (r *HistoryReader) ListCommits() ([]CommitInfo, error) {
	from, err := r.startHash()
	if err != nil {
		return nil, err
	}

	logOpts := &git.LogOptions{From: from}
	if r.opts.Since != nil {
		logOpts.Since = r.opts.Since
	}
	if r.opts.Until != nil {
		logOpts.Until = r.opts.Until
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, err
	}

	var commits []CommitInfo

	err = cIter.ForEach(func(c *object.Commit) error {
		if c.NumParents() > 1 {
			return nil
		}
		if !r.matchesAuthor(c) {
			return nil
		}

		// First line of the commit message only.
		message := c.Message
		if idx := strings.IndexByte(message, '\n'); idx != -1 {
			message = message[:idx]
		}

		commits = append(commits, CommitInfo{
			SHA:     c.Hash.String(),
			When:    c.Committer.When,
			Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
			Message: message,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// git log walks newest first; the fold needs oldest first.
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}

	return commits, nil
}

// startHash resolves the configured branch (or HEAD) to a commit hash.
func (r *HistoryReader) startHash() (plumbing.Hash, error) {
	branch := strings.TrimSpace(r.opts.Branch)
	if branch == "" || strings.EqualFold(branch, "HEAD") {
		ref, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return ref.Hash(), nil
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(branch))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return *hash, nil
}

// matchesAuthor reports whether the commit's author matches the configured
// author filter, a case-insensitive substring of name or email.
func (r *HistoryReader) matchesAuthor(c *object.Commit) bool {
	if r.opts.Author == "" {
		return true
	}
	needle := strings.ToLower(r.opts.Author)
	return strings.Contains(strings.ToLower(c.Author.Name), needle) ||
		strings.Contains(strings.ToLower(c.Author.Email), needle)
}
