package output

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVChurnWriter writes churn reports as CSV, one row per file plus a
// leading totals row.
type CSVChurnWriter struct{}

// Write outputs the churn report as CSV.
func (w *CSVChurnWriter) Write(report *ChurnReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writer.Write([]string{"Path", "Slots", "LinesRemoved", "LinesAdded", "LinesTotal", "Contribution", "Churn"}); err != nil {
		return err
	}

	// Totals row first; per-file rows carry empty total columns.
	totals := []string{
		"(total)", "", "", "", "",
		fmt.Sprintf("%d", report.Contribution),
		fmt.Sprintf("%d", report.Churn),
	}
	if err := writer.Write(totals); err != nil {
		return err
	}

	for _, f := range limitTop(report.Files, options.Top) {
		row := []string{
			f.Path,
			fmt.Sprintf("%d", f.Slots),
			fmt.Sprintf("%d", f.Removed),
			fmt.Sprintf("%d", f.Added),
			fmt.Sprintf("%d", f.Total()),
			"", "",
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVAuthorsWriter writes author listings as CSV.
type CSVAuthorsWriter struct{}

// Write outputs the authors report as CSV.
func (w *CSVAuthorsWriter) Write(report *AuthorsReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writer.Write([]string{"Name", "Email", "Commits"}); err != nil {
		return err
	}

	for _, a := range limitTop(report.Authors, options.Top) {
		row := []string{a.Author.Name, a.Author.Email, fmt.Sprintf("%d", a.Commits)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// createCSVWriter creates a csv.Writer for the output path, or stdout when
// the path is empty. The returned file, if any, must be closed by the caller.
func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	if outputPath == "" {
		return csv.NewWriter(os.Stdout), nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(file), file, nil
}
