package output

import (
	"fmt"
	"strings"
)

// MarkdownChurnWriter writes churn reports as Markdown.
type MarkdownChurnWriter struct{}

// Write outputs the churn report as Markdown.
func (w *MarkdownChurnWriter) Write(report *ChurnReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# True Code Churn Analysis")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "- **Repository**: %s\n", report.RepoPath)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Fprintf(out, "- **%s**: %s\n", label, value)
	if report.Author != "" {
		fmt.Fprintf(out, "- **Author**: %s\n", report.Author)
	} else if len(report.Authors) > 0 {
		fmt.Fprintf(out, "- **Authors**: %s\n", strings.Join(report.Authors, ", "))
	}
	fmt.Fprintf(out, "- **Commits analyzed**: %d\n", report.CommitCount)
	if report.MissingDiffs > 0 {
		fmt.Fprintf(out, "- **Commits with unavailable diffs**: %d\n", report.MissingDiffs)
	}
	if report.MalformedCommits > 0 {
		fmt.Fprintf(out, "- **Commits with malformed headers**: %d\n", report.MalformedCommits)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "- **Contribution**: %d\n", report.Contribution)
	fmt.Fprintf(out, "- **Churn**: %d\n", -report.Churn)

	if len(report.Files) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "## Files")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "| # | Path | Slots | Removed | Added | Total |")
		fmt.Fprintln(out, "|---|------|-------|---------|-------|-------|")
		for i, f := range limitTop(report.Files, options.Top) {
			fmt.Fprintf(out, "| %d | %s | %d | %d | %d | %d |\n",
				i+1, f.Path, f.Slots, f.Removed, f.Added, f.Total())
		}
	}

	return nil
}

// MarkdownAuthorsWriter writes author listings as Markdown.
type MarkdownAuthorsWriter struct{}

// Write outputs the authors report as Markdown.
func (w *MarkdownAuthorsWriter) Write(report *AuthorsReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Distinct Authors")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "- **Repository**: %s\n", report.RepoPath)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Fprintf(out, "- **%s**: %s\n", label, value)
	fmt.Fprintf(out, "- **Commits analyzed**: %d\n", report.CommitCount)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "| # | Name | Email | Commits |")
	fmt.Fprintln(out, "|---|------|-------|---------|")
	for i, a := range limitTop(report.Authors, options.Top) {
		fmt.Fprintf(out, "| %d | %s | %s | %d |\n", i+1, a.Author.Name, a.Author.Email, a.Commits)
	}

	return nil
}
