package churn

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PathFilter restricts churn accounting to file paths matching the
// configured glob patterns. Exclude wins over include; with no include
// patterns every non-excluded path is accepted.
type PathFilter struct {
	Include []string
	Exclude []string
}

// Match reports whether the path passes the filter.
func (f PathFilter) Match(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range f.Exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}

	for _, pattern := range f.Include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}

// Empty reports whether the filter accepts everything.
func (f PathFilter) Empty() bool {
	return len(f.Include) == 0 && len(f.Exclude) == 0
}
