package commands

import (
	"google.golang.org/api/sheets/v4"

	"github.com/kompetanse/competency-app-sheets/config"
	"github.com/kompetanse/competency-app-sheets/survey"
)

// Data sheet layout:
//
//	row 1:   last updated label in A, section labels above the first knowledge
//	         and first motivation columns
//	row 2-4: column header block (category, topic, question id) from column D
//	row 4:   'email', 'user id', 'updated at' in A:C
//	row 5+:  answer matrix
const (
	headerRow = 2
	labelRow  = 4
	dataRow   = 5
	firstCol  = 4
)

func dataSheet(sheet string, catalog survey.Catalog, result survey.Result, labels config.Labels, updated string) []*sheets.ValueRange {
	jobs := len(catalog.Jobs)
	knowledge := len(catalog.Knowledge)

	data := []*sheets.ValueRange{
		{
			Range:  area(sheet, 1, 1, 1, 1),
			Values: [][]any{{updated}},
		},
		{
			Range:  area(sheet, 1, labelRow, 3, 1),
			Values: [][]any{{"email", "user id", "updated at"}},
		},
	}

	if knowledge > 0 {
		data = append(data,
			&sheets.ValueRange{
				Range:  area(sheet, firstCol+jobs, 1, 1, 1),
				Values: [][]any{{labels.Knowledge}},
			},
			&sheets.ValueRange{
				Range:  area(sheet, firstCol+jobs+knowledge, 1, 1, 1),
				Values: [][]any{{labels.Motivation}},
			})
	}

	if width := jobs + 2*knowledge; width > 0 {
		header := catalog.Header()
		data = append(data, &sheets.ValueRange{
			Range:  area(sheet, firstCol, headerRow, width, len(header)),
			Values: header,
		})
	}

	if len(result.Rows) > 0 {
		data = append(data, &sheets.ValueRange{
			Range:  area(sheet, 1, dataRow, catalog.Width(), len(result.Rows)),
			Values: result.Rows,
		})
	}

	return data
}

// notAnsweredSheet lays out the not-answered roster as a single email column
// under the last updated label. Nothing is written for an empty roster.
func notAnsweredSheet(sheet string, result survey.Result, updated string) []*sheets.ValueRange {
	if len(result.NotAnswered) == 0 {
		return []*sheets.ValueRange{}
	}

	roster := [][]any{}
	for _, email := range result.NotAnswered {
		roster = append(roster, []any{email})
	}

	return []*sheets.ValueRange{
		{
			Range:  area(sheet, 1, 1, 1, 1),
			Values: [][]any{{updated}},
		},
		{
			Range:  area(sheet, 1, 2, 1, 1),
			Values: [][]any{{"email"}},
		},
		{
			Range:  area(sheet, 1, 3, 1, len(roster)),
			Values: roster,
		},
	}
}
