package ingest

import "strings"

// SalesRecord is one extracted region row of a sales & collection report,
// measures normalized and derived metrics computed.
type SalesRecord struct {
	AreaCode string
	AreaName string
	Division string

	SalesTarget         float64
	GrossSales          float64
	SalesReturn         float64
	NetSales            float64
	SalesAchievementPct float64

	CollTarget         float64
	TotalCollection    float64
	CashCollection     float64
	CreditCollection   float64
	SeedCollection     float64
	CollAchievementPct float64

	Outstanding   float64
	ReturnRatePct float64
}

// SalesReport is the parsed form of a sales & collection workbook.
type SalesReport struct {
	// HeadRows are the leading rows of the first sheet, kept for in-sheet
	// period resolution.
	HeadRows [][]string
	Records  []SalesRecord
}

// ParseSalesWorkbook extracts region records from the first sheet of a sales
// & collection workbook.
func ParseSalesWorkbook(data []byte) (*SalesReport, error) {
	f, err := openWorkbook(data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := sheetRows(f, "")
	if err != nil {
		return nil, err
	}

	return &SalesReport{
		HeadRows: headRows(rows),
		Records:  ExtractSalesRecords(rows, DefaultSalesLayout()),
	}, nil
}

// ExtractSalesRecords walks data rows below the header block and emits one
// record per valid region row. A row is valid when its area code is one of
// the layout's single-letter codes and its area name is non-blank and not an
// aggregate ("Total") line. Everything else on the sheet is ignored.
func ExtractSalesRecords(rows [][]string, layout SalesLayout) []SalesRecord {
	var records []SalesRecord

	for i := layout.HeaderRows; i < len(rows); i++ {
		row := rows[i]

		areaCode := strings.TrimSpace(cellAt(row, layout.AreaCode))
		if !layout.ValidAreaCodes[areaCode] {
			continue
		}
		areaName := strings.TrimSpace(cellAt(row, layout.AreaName))
		if areaName == "" || strings.Contains(strings.ToLower(areaName), "total") {
			continue
		}

		rec := SalesRecord{
			AreaCode: areaCode,
			AreaName: areaName,
			Division: DivisionForArea(areaName),

			SalesTarget: Numeric(cellAt(row, layout.SalesTarget)),
			GrossSales:  Numeric(cellAt(row, layout.GrossSales)),
			SalesReturn: Numeric(cellAt(row, layout.SalesReturn)),
			NetSales:    Numeric(cellAt(row, layout.NetSales)),

			CollTarget:       Numeric(cellAt(row, layout.CollTarget)),
			TotalCollection:  Numeric(cellAt(row, layout.TotalCollection)),
			CashCollection:   Numeric(cellAt(row, layout.CashCollection)),
			CreditCollection: Numeric(cellAt(row, layout.CreditCollection)),
			SeedCollection:   Numeric(cellAt(row, layout.SeedCollection)),
		}

		rec.SalesAchievementPct = pctOf(rec.NetSales, rec.SalesTarget)
		rec.CollAchievementPct = pctOf(rec.TotalCollection, rec.CollTarget)
		rec.ReturnRatePct = pctOf(rec.SalesReturn, rec.GrossSales)
		rec.Outstanding = rec.NetSales - rec.TotalCollection

		records = append(records, rec)
	}

	return records
}
