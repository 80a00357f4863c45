package git

import (
	"sort"
	"strings"
	"time"
)

// CommitInfo represents minimal information about a Git commit.
type CommitInfo struct {
	SHA     string
	When    time.Time
	Author  AuthorInfo
	Message string
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// ContributorKey returns a normalized identifier for grouping contributors.
func (a AuthorInfo) ContributorKey() string {
	return strings.ToLower(a.Email)
}

// Display returns a human-readable "Name <email>" label.
func (a AuthorInfo) Display() string {
	if a.Email == "" {
		return a.Name
	}
	return a.Name + " <" + a.Email + ">"
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath string
	Branch   string // empty means HEAD
	Author   string // substring match on author name or email
	Since    *time.Time
	Until    *time.Time
}

// AuthorTally is the commit count for one distinct author.
type AuthorTally struct {
	Author  AuthorInfo
	Commits int
}

// DistinctAuthors groups commits by normalized author email and returns one
// tally per author, most commits first. The name attached to each tally is
// the one seen on that author's latest commit.
func DistinctAuthors(commits []CommitInfo) []AuthorTally {
	byKey := make(map[string]*AuthorTally)
	var order []string

	for _, c := range commits {
		key := c.Author.ContributorKey()
		tally, ok := byKey[key]
		if !ok {
			tally = &AuthorTally{Author: c.Author}
			byKey[key] = tally
			order = append(order, key)
		}
		tally.Author = c.Author
		tally.Commits++
	}

	tallies := make([]AuthorTally, 0, len(order))
	for _, key := range order {
		tallies = append(tallies, *byKey[key])
	}
	sort.SliceStable(tallies, func(i, j int) bool {
		if tallies[i].Commits != tallies[j].Commits {
			return tallies[i].Commits > tallies[j].Commits
		}
		return tallies[i].Author.Name < tallies[j].Author.Name
	})
	return tallies
}
