package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONChurnWriter writes churn reports as JSON.
type JSONChurnWriter struct{}

// JSONChurnReport is the JSON output structure for a churn run.
// Churn is emitted as a magnitude; negating it is a display convention.
type JSONChurnReport struct {
	RepoPath         string         `json:"repo"`
	Since            *string        `json:"since,omitempty"`
	Until            string         `json:"until"`
	GeneratedAt      string         `json:"generatedAt"`
	Author           string         `json:"author,omitempty"`
	Authors          []string       `json:"authors,omitempty"`
	CommitCount      int            `json:"commitCount"`
	MissingDiffs     int            `json:"missingDiffs"`
	MalformedCommits int            `json:"malformedCommits"`
	Contribution     int            `json:"contribution"`
	Churn            int            `json:"churn"`
	Files            []JSONFileItem `json:"files,omitempty"`
}

// JSONFileItem is the JSON output structure for a single file.
type JSONFileItem struct {
	Path    string         `json:"path"`
	Slots   int            `json:"slots"`
	Removed int            `json:"linesRemoved"`
	Added   int            `json:"linesAdded"`
	Total   int            `json:"linesTotal"`
	Lines   []JSONLineItem `json:"lines,omitempty"`
}

// JSONLineItem is the JSON output structure for a single line slot.
type JSONLineItem struct {
	Line    int `json:"line"`
	Removed int `json:"removed"`
	Added   int `json:"added"`
}

// Write outputs the churn report as JSON.
func (w *JSONChurnWriter) Write(report *ChurnReport, options OutputOptions) error {
	files := limitTop(report.Files, options.Top)

	jsonFiles := make([]JSONFileItem, len(files))
	for i, f := range files {
		item := JSONFileItem{
			Path:    f.Path,
			Slots:   f.Slots,
			Removed: f.Removed,
			Added:   f.Added,
			Total:   f.Total(),
		}
		if options.ShowLines {
			item.Lines = make([]JSONLineItem, len(f.Lines))
			for j, l := range f.Lines {
				item.Lines[j] = JSONLineItem{Line: l.Line, Removed: l.Removed, Added: l.Added}
			}
		}
		jsonFiles[i] = item
	}

	jsonReport := JSONChurnReport{
		RepoPath:         report.RepoPath,
		Since:            formatSinceDate(report.Since),
		Until:            report.Until.Format(reportDateLayout),
		GeneratedAt:      report.GeneratedAt.Format(time.RFC3339),
		Author:           report.Author,
		Authors:          report.Authors,
		CommitCount:      report.CommitCount,
		MissingDiffs:     report.MissingDiffs,
		MalformedCommits: report.MalformedCommits,
		Contribution:     report.Contribution,
		Churn:            report.Churn,
		Files:            jsonFiles,
	}

	return writeJSON(jsonReport, options.OutputPath)
}

// JSONAuthorsWriter writes author listings as JSON.
type JSONAuthorsWriter struct{}

// JSONAuthorsReport is the JSON output structure for an author listing.
type JSONAuthorsReport struct {
	RepoPath    string           `json:"repo"`
	Since       *string          `json:"since,omitempty"`
	Until       string           `json:"until"`
	GeneratedAt string           `json:"generatedAt"`
	CommitCount int              `json:"commitCount"`
	Authors     []JSONAuthorItem `json:"authors"`
}

// JSONAuthorItem is the JSON output structure for a single author.
type JSONAuthorItem struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Commits int    `json:"commits"`
}

// Write outputs the authors report as JSON.
func (w *JSONAuthorsWriter) Write(report *AuthorsReport, options OutputOptions) error {
	authors := limitTop(report.Authors, options.Top)

	jsonAuthors := make([]JSONAuthorItem, len(authors))
	for i, a := range authors {
		jsonAuthors[i] = JSONAuthorItem{Name: a.Author.Name, Email: a.Author.Email, Commits: a.Commits}
	}

	jsonReport := JSONAuthorsReport{
		RepoPath:    report.RepoPath,
		Since:       formatSinceDate(report.Since),
		Until:       report.Until.Format(reportDateLayout),
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		CommitCount: report.CommitCount,
		Authors:     jsonAuthors,
	}

	return writeJSON(jsonReport, options.OutputPath)
}

// writeJSON marshals v with indentation and writes it to the output path,
// or stdout when the path is empty.
func writeJSON(v any, outputPath string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(outputPath, append(data, '\n'), 0644)
}
