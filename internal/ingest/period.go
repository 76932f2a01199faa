package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthTokens maps month-name substrings to month numbers. Order matters:
// the first token found in the text wins, so full names come before their
// abbreviations and the table is scanned in calendar order. "sept" is a
// spelling that shows up in real report filenames.
var monthTokens = []struct {
	token string
	month int
}{
	{"january", 1}, {"jan", 1},
	{"february", 2}, {"feb", 2},
	{"march", 3}, {"mar", 3},
	{"april", 4}, {"apr", 4},
	{"may", 5},
	{"june", 6}, {"jun", 6},
	{"july", 7}, {"jul", 7},
	{"august", 8}, {"aug", 8},
	{"september", 9}, {"sep", 9}, {"sept", 9},
	{"october", 10}, {"oct", 10},
	{"november", 11}, {"nov", 11},
	{"december", 12}, {"dec", 12},
}

var (
	yearPattern     = regexp.MustCompile(`(20\d{2})`)
	numMonthPattern = regexp.MustCompile(`[_\-\s](\d{1,2})[_\-\s]`)
)

// ResolvePeriod produces a definite (month, year) for an uploaded report.
// Sources, lowest to highest: wall clock, in-sheet header text, filename,
// explicit caller override. Month and year resolve independently: a filename
// can supply the year while the sheet header supplies the month. Falling
// back to "now" on total failure is deliberate, not an error.
func ResolvePeriod(filename string, headRows [][]string, overrideMonth, overrideYear int, now time.Time) (month, year int) {
	month, year = PeriodFromFilename(filename)

	if month == 0 || year == 0 {
		sheetMonth, sheetYear := PeriodFromRows(headRows)
		if month == 0 {
			month = sheetMonth
		}
		if year == 0 {
			year = sheetYear
		}
	}

	if overrideMonth != 0 {
		month = overrideMonth
	}
	if overrideYear != 0 {
		year = overrideYear
	}

	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

// PeriodFromFilename extracts (month, year) from a report filename such as
// "Sales_Collection_Nov_2025.xlsx" or "Sales_11_2025.xlsx". Either field may
// come back 0 when the filename carries no usable token.
func PeriodFromFilename(filename string) (month, year int) {
	lower := strings.ToLower(filename)

	if m := yearPattern.FindStringSubmatch(filename); m != nil {
		year, _ = strconv.Atoi(m[1])
	}

	month = monthFromText(lower)

	// No month name: accept a separator-bounded 1-2 digit token in [1,12].
	if month == 0 {
		if m := numMonthPattern.FindStringSubmatch(filename); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 12 {
				month = n
			}
		}
	}
	return month, year
}

// PeriodFromRows scans the leading sheet rows for a cell whose text carries
// both a year and a month name, e.g. a "Sales Report - November 2025" title
// line. The first such cell, row-major, wins.
func PeriodFromRows(rows [][]string) (month, year int) {
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			lower := strings.ToLower(cell)

			var cellYear int
			if m := yearPattern.FindStringSubmatch(lower); m != nil {
				cellYear, _ = strconv.Atoi(m[1])
			}
			cellMonth := monthFromText(lower)

			if cellMonth != 0 && cellYear != 0 {
				return cellMonth, cellYear
			}
		}
	}
	return 0, 0
}

func monthFromText(lower string) int {
	for _, mt := range monthTokens {
		if strings.Contains(lower, mt.token) {
			return mt.month
		}
	}
	return 0
}

// MonthName returns the full English month name, or "" out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// MonthShort returns the three-letter month name, or "" out of range.
func MonthShort(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()[:3]
}

// Quarter returns the calendar quarter for a month.
func Quarter(month int) int {
	return (month-1)/3 + 1
}

// FiscalYear renders the July-June fiscal year label, e.g. FY2025-26.
func FiscalYear(month, year int) string {
	if month >= 7 {
		return "FY" + strconv.Itoa(year) + "-" + twoDigit(year+1)
	}
	return "FY" + strconv.Itoa(year-1) + "-" + twoDigit(year)
}

func twoDigit(year int) string {
	s := strconv.Itoa(year)
	return s[len(s)-2:]
}
