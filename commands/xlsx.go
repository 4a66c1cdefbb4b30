package commands

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

type worksheet struct {
	name   string
	values [][]any
}

// writeXLSX writes each worksheet to a new workbook, starting at A1. Numeric
// cells are kept as numbers.
func writeXLSX(w io.Writer, worksheets ...worksheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, ws := range worksheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", ws.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(ws.name); err != nil {
			return err
		}

		for r, row := range ws.values {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}

			values := row
			if err := f.SetSheetRow(ws.name, cell, &values); err != nil {
				return fmt.Errorf("error writing row %v of '%v' (%w)", r+1, ws.name, err)
			}
		}
	}

	return f.Write(w)
}
