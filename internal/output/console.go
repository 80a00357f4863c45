package output

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleChurnWriter writes churn reports to the console.
type ConsoleChurnWriter struct{}

// Write outputs the churn report to the console. Churn is displayed negated,
// as a cost, matching the convention the metric is usually reported with.
func (w *ConsoleChurnWriter) Write(report *ChurnReport, options OutputOptions) error {
	color.Green("True Code Churn Analysis Results")
	fmt.Printf("Repository: %s\n", report.RepoPath)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Printf("%s: %s\n", label, value)
	if report.Author != "" {
		fmt.Printf("Author: %s\n", report.Author)
	} else if len(report.Authors) > 0 {
		fmt.Printf("Authors: %s\n", strings.Join(report.Authors, ", "))
	}
	fmt.Printf("Commits analyzed: %d\n", report.CommitCount)

	if report.MissingDiffs > 0 {
		color.Yellow("Skipped %d commit(s) with unavailable diffs", report.MissingDiffs)
	}
	if report.MalformedCommits > 0 {
		color.Yellow("Skipped remaining hunks of %d commit(s) with malformed headers", report.MalformedCommits)
	}

	fmt.Printf("\ncontribution: %d\n", report.Contribution)
	fmt.Printf("churn:        %d\n", -report.Churn)

	if len(report.Files) > 0 && options.ShowLines {
		fmt.Println()
		files := limitTop(report.Files, options.Top)

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tPath\tSlots\tRemoved\tAdded\tTotal")
		for i, f := range files {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\n",
				i+1, f.Path, f.Slots, f.Removed, f.Added, f.Total())
		}
		tw.Flush()
	}

	return nil
}

// ConsoleAuthorsWriter writes author listings to the console.
type ConsoleAuthorsWriter struct{}

// Write outputs the authors report to the console.
func (w *ConsoleAuthorsWriter) Write(report *AuthorsReport, options OutputOptions) error {
	color.Green("Distinct Authors")
	fmt.Printf("Repository: %s\n", report.RepoPath)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Printf("%s: %s\n", label, value)
	fmt.Printf("Commits analyzed: %d\n\n", report.CommitCount)

	authors := limitTop(report.Authors, options.Top)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tName\tEmail\tCommits")
	for i, a := range authors {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, a.Author.Name, a.Author.Email, a.Commits)
	}
	tw.Flush()

	return nil
}
