package diff

import (
	"fmt"
	"regexp"
	"strconv"
)

// Span is one side of a hunk header: a starting line number in the diff's
// own numbering and a count of lines covered.
type Span struct {
	Start int
	Count int
}

// Hunk is a decoded "-rStart,rCount +aStart,aCount" hunk header. Counts
// default to 1 when the comma suffix is omitted (unified-diff convention
// for a single-line region).
type Hunk struct {
	Removal  Span
	Addition Span
}

// ParseError reports a hunk header that does not match the expected grammar.
type ParseError struct {
	Header string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed hunk header %q", e.Header)
}

var headerPattern = regexp.MustCompile(`^-(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))?$`)

// ParseHeader decodes the "-L1[,N1] +L2[,N2]" portion of a hunk header.
// The leading "-" and "+" are structural markers, not numeric signs: all
// four numbers are non-negative line positions and counts. Anything not
// matching the grammar fails with a *ParseError.
func ParseHeader(header string) (Hunk, error) {
	m := headerPattern.FindStringSubmatch(header)
	if m == nil {
		return Hunk{}, &ParseError{Header: header}
	}
	return Hunk{
		Removal:  Span{Start: toInt(m[1]), Count: toCount(m[2])},
		Addition: Span{Start: toInt(m[3]), Count: toCount(m[4])},
	}, nil
}

func toInt(s string) int {
	// The pattern guarantees digits only.
	n, _ := strconv.Atoi(s)
	return n
}

func toCount(s string) int {
	if s == "" {
		return 1
	}
	return toInt(s)
}
