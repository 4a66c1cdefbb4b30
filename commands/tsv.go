package commands

import (
	"encoding/csv"
	"io"

	"github.com/kompetanse/competency-app-sheets/survey"
)

// matrixValues lays out the answer matrix for a file export: the three row
// column header block, prefixed with the email/user id/updated at labels, and
// then one row per user.
func matrixValues(catalog survey.Catalog, result survey.Result) [][]any {
	prefix := [][]any{
		{"", "", ""},
		{"", "", ""},
		{"email", "user id", "updated at"},
	}

	values := [][]any{}
	for i, row := range catalog.Header() {
		values = append(values, append(append([]any{}, prefix[i]...), row...))
	}

	values = append(values, result.Rows...)

	return values
}

func notAnsweredValues(result survey.Result) [][]any {
	values := [][]any{{"email"}}
	for _, email := range result.NotAnswered {
		values = append(values, []any{email})
	}

	return values
}

func writeTSV(f io.Writer, values [][]any) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, row := range values {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = format(v)
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
