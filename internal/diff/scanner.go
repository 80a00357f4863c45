package diff

import "strings"

// Scanner walks the raw text of `git show --format= --unified=0 --no-prefix`
// output and yields one event per hunk header, tagged with the destination
// file announced by the most recent "+++ " line. Added/removed content lines
// carry no information for churn accounting and are skipped.
//
// State only changes on an observed difference: a hunk header identical to
// the previous one is collapsed, and the previous-header state spans the
// whole walk rather than resetting per file. For a deleted file the "+++ "
// line names "/dev/null", so its hunks are keyed under that name.
type Scanner struct {
	lines  []string
	pos    int
	file   string
	header string
}

// NewScanner creates a scanner over one commit's diff text.
func NewScanner(diffText string) *Scanner {
	return &Scanner{lines: strings.Split(diffText, "\n")}
}

// Scan advances to the next hunk event. It returns false when the diff text
// is exhausted.
func (s *Scanner) Scan() bool {
	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		s.pos++

		if name, ok := destFileName(line); ok {
			s.file = name
			continue
		}

		if header, ok := hunkHeader(line); ok && header != s.header {
			s.header = header
			return true
		}
	}
	return false
}

// File returns the destination file of the current hunk.
func (s *Scanner) File() string { return s.file }

// Header returns the current hunk header: the "-... +..." portion of the
// "@@" line, suitable for ParseHeader.
func (s *Scanner) Header() string { return s.header }

// destFileName extracts the destination file from a "+++ " marker line,
// the token after the last space.
func destFileName(line string) (string, bool) {
	if !strings.HasPrefix(line, "+++ ") {
		return "", false
	}
	return line[strings.LastIndexByte(line, ' ')+1:], true
}

// hunkHeader extracts the line-range portion of an "@@" line: the substring
// between the opening "@@ " and the closing " @@".
func hunkHeader(line string) (string, bool) {
	if !strings.HasPrefix(line, "@@") {
		return "", false
	}
	rest := line[strings.IndexByte(line, ' ')+1:]
	if end := strings.Index(rest, " @@"); end != -1 {
		rest = rest[:end]
	}
	return rest, true
}
