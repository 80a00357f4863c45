package output

import (
	"sort"
	"time"

	"github.com/masmgr/truechurn-go/internal/churn"
	"github.com/masmgr/truechurn-go/internal/git"
)

// Compile-time interface conformance checks.
// These ensure that all writer types correctly implement their respective interfaces.
var (
	// ChurnReportWriter implementations
	_ ChurnReportWriter = (*ConsoleChurnWriter)(nil)
	_ ChurnReportWriter = (*JSONChurnWriter)(nil)
	_ ChurnReportWriter = (*CSVChurnWriter)(nil)
	_ ChurnReportWriter = (*MarkdownChurnWriter)(nil)
	_ ChurnReportWriter = (*CIChurnWriter)(nil)

	// AuthorsReportWriter implementations
	_ AuthorsReportWriter = (*ConsoleAuthorsWriter)(nil)
	_ AuthorsReportWriter = (*JSONAuthorsWriter)(nil)
	_ AuthorsReportWriter = (*CSVAuthorsWriter)(nil)
	_ AuthorsReportWriter = (*MarkdownAuthorsWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string
	ShowLines  bool // include per-line slot detail in file breakdowns
}

// LineChurn is the cumulative removed/added count at one line slot.
type LineChurn struct {
	Line    int
	Removed int
	Added   int
}

// FileChurn is the per-file breakdown of the churn ledger.
type FileChurn struct {
	Path    string
	Slots   int // distinct line slots touched
	Removed int
	Added   int
	Lines   []LineChurn // populated when per-line detail is requested
}

// Total returns combined removed + added lines for the file.
func (f FileChurn) Total() int {
	return f.Removed + f.Added
}

// ChurnReport holds the results of a churn analysis run.
type ChurnReport struct {
	RepoPath         string
	Since            *time.Time
	Until            time.Time
	GeneratedAt      time.Time
	Author           string   // the requested author filter, empty for all
	Authors          []string // distinct authors seen when no filter was given
	CommitCount      int
	MissingDiffs     int
	MalformedCommits int
	Contribution     int
	Churn            int // magnitude; console output displays it negated
	Files            []FileChurn
}

// AuthorsReport holds the distinct-author listing for a commit range.
type AuthorsReport struct {
	RepoPath    string
	Since       *time.Time
	Until       time.Time
	GeneratedAt time.Time
	CommitCount int
	Authors     []git.AuthorTally
}

// ChurnReportWriter writes churn analysis reports.
type ChurnReportWriter interface {
	Write(report *ChurnReport, options OutputOptions) error
}

// AuthorsReportWriter writes author listing reports.
type AuthorsReportWriter interface {
	Write(report *AuthorsReport, options OutputOptions) error
}

// NewChurnReportWriter creates a report writer for the specified format.
func NewChurnReportWriter(format OutputFormat) ChurnReportWriter {
	switch format {
	case FormatJSON:
		return &JSONChurnWriter{}
	case FormatCSV:
		return &CSVChurnWriter{}
	case FormatMarkdown:
		return &MarkdownChurnWriter{}
	case FormatCI:
		return &CIChurnWriter{}
	default:
		return &ConsoleChurnWriter{}
	}
}

// NewAuthorsReportWriter creates an authors report writer for the specified format.
func NewAuthorsReportWriter(format OutputFormat) AuthorsReportWriter {
	switch format {
	case FormatJSON:
		return &JSONAuthorsWriter{}
	case FormatCSV:
		return &CSVAuthorsWriter{}
	case FormatMarkdown:
		return &MarkdownAuthorsWriter{}
	default:
		return &ConsoleAuthorsWriter{}
	}
}

// FilesFromLedger flattens the churn ledger into per-file breakdowns,
// ordered by total lines touched (descending), then path. Per-line rows are
// included when withLines is set, ordered by line number.
func FilesFromLedger(ledger churn.Ledger, withLines bool) []FileChurn {
	files := make([]FileChurn, 0, len(ledger))

	for path, byLine := range ledger {
		fc := FileChurn{Path: path, Slots: len(byLine)}
		for line, stats := range byLine {
			fc.Removed += stats.Removed
			fc.Added += stats.Added
			if withLines {
				fc.Lines = append(fc.Lines, LineChurn{
					Line:    line,
					Removed: stats.Removed,
					Added:   stats.Added,
				})
			}
		}
		if withLines {
			sort.Slice(fc.Lines, func(i, j int) bool { return fc.Lines[i].Line < fc.Lines[j].Line })
		}
		files = append(files, fc)
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Total() != files[j].Total() {
			return files[i].Total() > files[j].Total()
		}
		return files[i].Path < files[j].Path
	})

	return files
}
