package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// table is a plain text table for console output. Column widths are measured
// in display cells so that category names with non-ASCII letters still line
// up.
type table struct {
	header  []string
	records [][]string
}

func makeTable(header []string, records [][]string) *table {
	return &table{
		header:  header,
		records: records,
	}
}

func (t *table) write(w io.Writer) {
	columns := len(t.header)
	for _, record := range t.records {
		if len(record) > columns {
			columns = len(record)
		}
	}

	widths := make([]int, columns)
	measure := func(row []string) {
		for i, v := range row {
			if width := runewidth.StringWidth(v); width > widths[i] {
				widths[i] = width
			}
		}
	}

	measure(t.header)
	for _, record := range t.records {
		measure(record)
	}

	line := func(row []string) {
		cells := make([]string, columns)
		for i := range cells {
			v := ""
			if i < len(row) {
				v = row[i]
			}

			cells[i] = runewidth.FillRight(v, widths[i])
		}

		fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(cells, "  "), " "))
	}

	if len(t.header) > 0 {
		line(t.header)

		rule := make([]string, columns)
		for i, width := range widths {
			rule[i] = strings.Repeat("-", width)
		}

		line(rule)
	}

	for _, record := range t.records {
		line(record)
	}
}

// format renders a matrix cell as text.
func format(v any) string {
	switch value := v.(type) {
	case nil:
		return ""

	case string:
		return value

	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)

	default:
		return fmt.Sprintf("%v", value)
	}
}

// summarise writes a console summary of a run: the matrix dimensions and the
// not-answered roster.
func summarise(w io.Writer, r run) {
	summary := makeTable([]string{"Run", "Updated", "Knowledge", "Jobs", "Dropped", "Rows", "Columns", "Not answered"}, [][]string{
		{
			r.id,
			r.updated.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%v", len(r.catalog.Knowledge)),
			fmt.Sprintf("%v", len(r.catalog.Jobs)),
			fmt.Sprintf("%v", len(r.catalog.Dropped)),
			fmt.Sprintf("%v", len(r.result.Rows)),
			fmt.Sprintf("%v", r.catalog.Width()),
			fmt.Sprintf("%v", len(r.result.NotAnswered)),
		},
	})

	fmt.Fprintln(w)
	summary.write(w)
	fmt.Fprintln(w)

	if len(r.result.NotAnswered) > 0 {
		roster := [][]string{}
		for _, email := range r.result.NotAnswered {
			roster = append(roster, []string{email})
		}

		makeTable([]string{"Not answered"}, roster).write(w)
		fmt.Fprintln(w)
	}
}
