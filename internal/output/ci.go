package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// CIChurnWriter writes churn reports as NDJSON (one JSON object per line)
// for CI pipelines: a summary line followed by one line per file.
type CIChurnWriter struct{}

// CISummary is the first line of CI output, containing the aggregate totals.
type CISummary struct {
	Type             string `json:"type"`
	Contribution     int    `json:"contribution"`
	Churn            int    `json:"churn"`
	CommitCount      int    `json:"commitCount"`
	MissingDiffs     int    `json:"missingDiffs"`
	MalformedCommits int    `json:"malformedCommits"`
}

// CIFileEntry represents a single file entry in CI output.
type CIFileEntry struct {
	Type    string `json:"type"`
	Path    string `json:"path"`
	Slots   int    `json:"slots"`
	Removed int    `json:"linesRemoved"`
	Added   int    `json:"linesAdded"`
}

// Write outputs the churn report as NDJSON.
func (w *CIChurnWriter) Write(report *ChurnReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	summary := CISummary{
		Type:             "summary",
		Contribution:     report.Contribution,
		Churn:            report.Churn,
		CommitCount:      report.CommitCount,
		MissingDiffs:     report.MissingDiffs,
		MalformedCommits: report.MalformedCommits,
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, f := range limitTop(report.Files, options.Top) {
		entry := CIFileEntry{
			Type:    "file",
			Path:    f.Path,
			Slots:   f.Slots,
			Removed: f.Removed,
			Added:   f.Added,
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeNDJSONLine(out io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
