package ingest

// SalesLayout describes where each field of the sales & collection sheet
// lives, so a layout variant can be swapped without touching extraction
// logic. Indexes are zero-based columns; reads past a short row yield 0.
type SalesLayout struct {
	HeaderRows int

	AreaCode int
	AreaName int

	SalesTarget int
	GrossSales  int
	SalesReturn int
	NetSales    int

	CollTarget       int
	TotalCollection  int
	CashCollection   int
	CreditCollection int
	SeedCollection   int

	// ValidAreaCodes gates data rows: a row whose area-code cell is not in
	// this set is a header, footer or aggregate row, not a region.
	ValidAreaCodes map[string]bool
}

// DefaultSalesLayout matches the standard Surovi monthly report: four header
// rows, then one row per region with sales measures in C-F and collection
// measures spread across H, I, L, O and R.
func DefaultSalesLayout() SalesLayout {
	return SalesLayout{
		HeaderRows:       4,
		AreaCode:         0,
		AreaName:         1,
		SalesTarget:      2,
		GrossSales:       3,
		SalesReturn:      4,
		NetSales:         5,
		CollTarget:       7,
		TotalCollection:  8,
		CashCollection:   11,
		CreditCollection: 14,
		SeedCollection:   17,
		ValidAreaCodes:   map[string]bool{"A": true, "B": true, "C": true, "D": true, "E": true},
	}
}

// cellAt returns the cell at idx or "" when the row is shorter. Report
// variants trim trailing empty columns, so this is the normal case for the
// rightmost collection columns.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
