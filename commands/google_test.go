package commands

import (
	"testing"
)

func TestColumn(t *testing.T) {
	tests := map[int]string{
		1:   "A",
		4:   "D",
		26:  "Z",
		27:  "AA",
		28:  "AB",
		52:  "AZ",
		53:  "BA",
		702: "ZZ",
		703: "AAA",
	}

	for n, expected := range tests {
		if s := column(n); s != expected {
			t.Errorf("Incorrect column for %v - expected:%v, got:%v", n, expected, s)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := map[string]string{
		"data":         "'data'",
		"not answered": "'not answered'",
		"Ola's ark":    "'Ola''s ark'",
	}

	for sheet, expected := range tests {
		if s := quote(sheet); s != expected {
			t.Errorf("Incorrect quoted sheet name for '%v' - expected:%v, got:%v", sheet, expected, s)
		}
	}
}

func TestArea(t *testing.T) {
	tests := []struct {
		col, row, width, height int
		expected                string
	}{
		{1, 1, 1, 1, "'data'!A1"},
		{1, 4, 3, 1, "'data'!A4:C4"},
		{4, 2, 5, 3, "'data'!D2:H4"},
		{1, 5, 30, 2, "'data'!A5:AD6"},
	}

	for _, test := range tests {
		if s := area("data", test.col, test.row, test.width, test.height); s != test.expected {
			t.Errorf("Incorrect area - expected:%v, got:%v", test.expected, s)
		}
	}
}
