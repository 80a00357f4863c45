package git

import (
	"testing"
	"time"
)

func TestAuthorInfo_ContributorKey(t *testing.T) {
	a := AuthorInfo{Name: "Alice", Email: "Alice@Example.COM"}
	if got := a.ContributorKey(); got != "alice@example.com" {
		t.Errorf("ContributorKey() = %q, expected %q", got, "alice@example.com")
	}
}

func TestAuthorInfo_Display(t *testing.T) {
	a := AuthorInfo{Name: "Alice", Email: "alice@example.com"}
	if got := a.Display(); got != "Alice <alice@example.com>" {
		t.Errorf("Display() = %q", got)
	}

	noEmail := AuthorInfo{Name: "Bob"}
	if got := noEmail.Display(); got != "Bob" {
		t.Errorf("Display() without email = %q", got)
	}
}

func TestDistinctAuthors(t *testing.T) {
	when := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	commits := []CommitInfo{
		{SHA: "1", When: when, Author: AuthorInfo{Name: "Alice", Email: "alice@example.com"}},
		{SHA: "2", When: when, Author: AuthorInfo{Name: "Bob", Email: "bob@example.com"}},
		{SHA: "3", When: when, Author: AuthorInfo{Name: "alice", Email: "ALICE@example.com"}},
		{SHA: "4", When: when, Author: AuthorInfo{Name: "alice", Email: "alice@example.com"}},
	}

	tallies := DistinctAuthors(commits)
	if len(tallies) != 2 {
		t.Fatalf("tallies = %d, expected 2", len(tallies))
	}

	// Alice has 3 commits (emails grouped case-insensitively) and sorts first.
	if tallies[0].Author.ContributorKey() != "alice@example.com" || tallies[0].Commits != 3 {
		t.Errorf("tallies[0] = %+v", tallies[0])
	}
	// The name reflects the latest commit seen.
	if tallies[0].Author.Name != "alice" {
		t.Errorf("tallies[0].Author.Name = %q, expected latest spelling", tallies[0].Author.Name)
	}
	if tallies[1].Author.Name != "Bob" || tallies[1].Commits != 1 {
		t.Errorf("tallies[1] = %+v", tallies[1])
	}
}

func TestDistinctAuthors_Empty(t *testing.T) {
	if got := DistinctAuthors(nil); len(got) != 0 {
		t.Errorf("DistinctAuthors(nil) = %v, expected empty", got)
	}
}
