package ingest

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// headRowCount is how many leading rows are scanned for an in-sheet period
// header.
const headRowCount = 5

func openWorkbook(data []byte) (*excelize.File, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return f, nil
}

// sheetRows reads all rows of a named sheet; sheet "" means the first sheet.
func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func headRows(rows [][]string) [][]string {
	if len(rows) > headRowCount {
		return rows[:headRowCount]
	}
	return rows
}
