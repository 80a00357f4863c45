package git

import (
	"testing"
	"time"
)

func TestHistoryReader_ListCommitsOldestFirst(t *testing.T) {
	dir, repo := createTestRepo(t)
	alice := AuthorInfo{Name: "Alice", Email: "alice@example.com"}

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sha1 := addCommit(t, repo, "first commit", map[string]string{"a.txt": "one\n"}, alice, base)
	sha2 := addCommit(t, repo, "second commit", map[string]string{"a.txt": "one\ntwo\n"}, alice, base.Add(time.Hour))
	sha3 := addCommit(t, repo, "third commit", map[string]string{"b.txt": "bee\n"}, alice, base.Add(2*time.Hour))

	reader, err := NewHistoryReader(ReadOptions{RepoPath: dir})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}
	commits, err := reader.ListCommits()
	if err != nil {
		t.Fatalf("ListCommits: %v", err)
	}

	if len(commits) != 3 {
		t.Fatalf("commits = %d, expected 3", len(commits))
	}
	want := []string{sha1, sha2, sha3}
	for i, sha := range want {
		if commits[i].SHA != sha {
			t.Errorf("commits[%d].SHA = %s, expected %s", i, commits[i].SHA, sha)
		}
	}
	if commits[0].Message != "first commit" {
		t.Errorf("commits[0].Message = %q", commits[0].Message)
	}
	if commits[0].Author.Email != "alice@example.com" {
		t.Errorf("commits[0].Author = %+v", commits[0].Author)
	}
}

func TestHistoryReader_AuthorFilter(t *testing.T) {
	dir, repo := createTestRepo(t)
	alice := AuthorInfo{Name: "Alice Smith", Email: "alice@example.com"}
	bob := AuthorInfo{Name: "Bob Jones", Email: "bob@example.com"}

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	addCommit(t, repo, "by alice", map[string]string{"a.txt": "one\n"}, alice, base)
	addCommit(t, repo, "by bob", map[string]string{"b.txt": "two\n"}, bob, base.Add(time.Hour))
	addCommit(t, repo, "by alice again", map[string]string{"a.txt": "one\nmore\n"}, alice, base.Add(2*time.Hour))

	tests := []struct {
		name   string
		author string
		want   int
	}{
		{name: "ByName", author: "alice", want: 2},
		{name: "ByEmail", author: "bob@example.com", want: 1},
		{name: "CaseInsensitive", author: "ALICE", want: 2},
		{name: "NoMatch", author: "carol", want: 0},
		{name: "Everyone", author: "", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewHistoryReader(ReadOptions{RepoPath: dir, Author: tt.author})
			if err != nil {
				t.Fatalf("NewHistoryReader: %v", err)
			}
			commits, err := reader.ListCommits()
			if err != nil {
				t.Fatalf("ListCommits: %v", err)
			}
			if len(commits) != tt.want {
				t.Errorf("commits = %d, expected %d", len(commits), tt.want)
			}
		})
	}
}

func TestHistoryReader_DateRange(t *testing.T) {
	dir, repo := createTestRepo(t)
	alice := AuthorInfo{Name: "Alice", Email: "alice@example.com"}

	jan := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	addCommit(t, repo, "january", map[string]string{"a.txt": "1\n"}, alice, jan)
	addCommit(t, repo, "february", map[string]string{"a.txt": "1\n2\n"}, alice, feb)
	addCommit(t, repo, "march", map[string]string{"a.txt": "1\n2\n3\n"}, alice, mar)

	since := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	reader, err := NewHistoryReader(ReadOptions{RepoPath: dir, Since: &since, Until: &until})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}
	commits, err := reader.ListCommits()
	if err != nil {
		t.Fatalf("ListCommits: %v", err)
	}

	if len(commits) != 1 {
		t.Fatalf("commits = %d, expected 1", len(commits))
	}
	if commits[0].Message != "february" {
		t.Errorf("commits[0].Message = %q, expected %q", commits[0].Message, "february")
	}
}

func TestNewHistoryReader_MissingRepo(t *testing.T) {
	if _, err := NewHistoryReader(ReadOptions{RepoPath: t.TempDir()}); err == nil {
		t.Fatal("expected error for directory without a repository")
	}
}
