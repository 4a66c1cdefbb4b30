package commands

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

func clear(google *sheets.Service, spreadsheet *sheets.Spreadsheet, ranges []string, ctx context.Context) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	if _, err := google.Spreadsheets.Values.BatchClear(spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

func update(google *sheets.Service, spreadsheet *sheets.Spreadsheet, data []*sheets.ValueRange, ctx context.Context) error {
	if len(data) == 0 {
		return nil
	}

	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}

	if _, err := google.Spreadsheets.Values.BatchUpdate(spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

// column converts a 1-based column number to its A1 letters, e.g. 1 is 'A'
// and 28 is 'AB'.
func column(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+n%26)) + s
		n /= 26
	}

	return s
}

func quote(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// area returns the A1 range for a block of width x height cells with its top
// left corner at (col, row).
func area(sheet string, col, row, width, height int) string {
	if width <= 1 && height <= 1 {
		return fmt.Sprintf("%v!%v%v", quote(sheet), column(col), row)
	}

	return fmt.Sprintf("%v!%v%v:%v%v", quote(sheet), column(col), row, column(col+width-1), row+height-1)
}
