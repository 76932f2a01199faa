package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/estiak0001/SUROVI-DASH/internal/ingest"
)

const companyName = "SUROVI AGRO INDUSTRIES LTD."

// templateStyles holds the style IDs used across both template types.
type templateStyles struct {
	header    int
	subHeader int
	colHeader int
	cell      int
	number    int
}

func buildStyles(f *excelize.File) (*templateStyles, error) {
	thin := []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, err
	}
	subHeader, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, err
	}
	colHeader, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border:    thin,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	cell, err := f.NewStyle(&excelize.Style{Border: thin})
	if err != nil {
		return nil, err
	}
	numFmt := "#,##0"
	number, err := f.NewStyle(&excelize.Style{
		Border:       thin,
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, err
	}

	return &templateStyles{
		header:    header,
		subHeader: subHeader,
		colHeader: colHeader,
		cell:      cell,
		number:    number,
	}, nil
}

// GenerateTemplate builds a downloadable sample workbook for the given report
// type ("sales_collection" or "product_comparison") and returns the file
// bytes with a suggested filename.
func GenerateTemplate(templateType string, now time.Time) ([]byte, string, error) {
	monthShort := ingest.MonthShort(int(now.Month()))
	year := now.Year()

	f := excelize.NewFile()
	defer f.Close()

	styles, err := buildStyles(f)
	if err != nil {
		return nil, "", fmt.Errorf("build template styles: %w", err)
	}

	var filename string
	switch templateType {
	case "sales_collection":
		if err := writeSalesSheet(f, styles, monthShort, year); err != nil {
			return nil, "", err
		}
		filename = fmt.Sprintf("Sales_Collection_%s_%d_TEMPLATE.xlsx", monthShort, year)
	case "product_comparison":
		if err := writeProductSheets(f, styles, monthShort, year); err != nil {
			return nil, "", err
		}
		filename = fmt.Sprintf("Product_Comparison_%s_%d_TEMPLATE.xlsx", monthShort, year)
	default:
		return nil, "", fmt.Errorf("unknown template type: %s", templateType)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("write template workbook: %w", err)
	}
	return buf.Bytes(), filename, nil
}

func writeSheetTitle(f *excelize.File, styles *templateStyles, sheet, title, lastCol string) error {
	if err := f.SetCellValue(sheet, "A1", companyName); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", styles.header); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A2", title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A2", "A2", styles.subHeader); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A2", lastCol+"2"); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A3", "(Sample Template - Replace with actual data)"); err != nil {
		return err
	}
	return f.MergeCell(sheet, "A3", lastCol+"3")
}

func writeHeaderRow(f *excelize.File, styles *templateStyles, sheet string, headers []string) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.colHeader); err != nil {
			return err
		}
	}
	return nil
}

func writeDataRows(f *excelize.File, styles *templateStyles, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+5)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
			style := styles.cell
			if _, ok := value.(int); ok {
				style = styles.number
			}
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSalesSheet(f *excelize.File, styles *templateStyles, monthShort string, year int) error {
	const sheet = "Sales Collection"
	f.SetSheetName("Sheet1", sheet)

	title := fmt.Sprintf("Sales & Collection Report - %s %d", monthShort, year)
	if err := writeSheetTitle(f, styles, sheet, title, "R"); err != nil {
		return err
	}

	headers := []string{
		"Area Code", "Area Name", "Sales Target", "Gross Sales", "Sales Return",
		"Net Sales", "Label", "Collection Target", "Total Collection",
		"Detail1", "Detail2", "Cash Collection", "Detail3", "Detail4",
		"Credit Collection", "Detail5", "Detail6", "Seed Collection",
	}
	if err := writeHeaderRow(f, styles, sheet, headers); err != nil {
		return err
	}

	rows := [][]any{
		{"A", "Rangpur", 5000000, 4800000, 50000, 4750000, "Collection", 4500000, 4200000, "-", "-", 2000000, "-", "-", 1500000, "-", "-", 700000},
		{"B", "Bogura", 4000000, 3900000, 40000, 3860000, "Collection", 3800000, 3500000, "-", "-", 1800000, "-", "-", 1200000, "-", "-", 500000},
		{"C", "Dhaka", 6000000, 5800000, 60000, 5740000, "Collection", 5500000, 5200000, "-", "-", 2500000, "-", "-", 2000000, "-", "-", 700000},
		{"D", "Chattogram", 5500000, 5300000, 55000, 5245000, "Collection", 5000000, 4800000, "-", "-", 2300000, "-", "-", 1800000, "-", "-", 700000},
		{"E", "Sylhet", 3500000, 3400000, 35000, 3365000, "Collection", 3200000, 3000000, "-", "-", 1500000, "-", "-", 1000000, "-", "-", 500000},
	}
	if err := writeDataRows(f, styles, sheet, rows); err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 15); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "C", "R", 15)
}

func writeProductSheets(f *excelize.File, styles *templateStyles, monthShort string, year int) error {
	periodHeaders := []string{
		"SL", "Product Name",
		fmt.Sprintf("%s %d", monthShort, year-1),
		fmt.Sprintf("%s %d", monthShort, year),
		"Diff", "Growth %",
	}

	valueSheet := "Monthly Value"
	f.SetSheetName("Sheet1", valueSheet)

	title := fmt.Sprintf("Product Comparison (Value) - %s %d", monthShort, year)
	if err := writeSheetTitle(f, styles, valueSheet, title, "F"); err != nil {
		return err
	}
	if err := writeHeaderRow(f, styles, valueSheet, periodHeaders); err != nil {
		return err
	}

	valueRows := [][]any{
		{1, "Surovi Ghee 200ml", 1500000, 1800000, 300000, "20%"},
		{2, "Surovi Ghee 500ml", 2500000, 2800000, 300000, "12%"},
		{3, "Surovi Ghee 1000ml", 3000000, 3500000, 500000, "17%"},
		{4, "Surovi Butter 100g", 800000, 950000, 150000, "19%"},
		{5, "Surovi Butter 200g", 1200000, 1400000, 200000, "17%"},
	}
	if err := writeDataRows(f, styles, valueSheet, valueRows); err != nil {
		return err
	}
	if err := f.SetColWidth(valueSheet, "B", "B", 25); err != nil {
		return err
	}
	if err := f.SetColWidth(valueSheet, "C", "F", 15); err != nil {
		return err
	}

	volumeSheet := "Monthly Volume"
	if _, err := f.NewSheet(volumeSheet); err != nil {
		return err
	}

	title = fmt.Sprintf("Product Comparison (Volume) - %s %d", monthShort, year)
	if err := writeSheetTitle(f, styles, volumeSheet, title, "F"); err != nil {
		return err
	}
	if err := writeHeaderRow(f, styles, volumeSheet, periodHeaders); err != nil {
		return err
	}

	volumeRows := [][]any{
		{1, "Surovi Ghee 200ml", 5000, 6000, 1000, "20%"},
		{2, "Surovi Ghee 500ml", 4000, 4500, 500, "13%"},
		{3, "Surovi Ghee 1000ml", 2500, 3000, 500, "20%"},
		{4, "Surovi Butter 100g", 8000, 9500, 1500, "19%"},
		{5, "Surovi Butter 200g", 6000, 7000, 1000, "17%"},
	}
	if err := writeDataRows(f, styles, volumeSheet, volumeRows); err != nil {
		return err
	}
	if err := f.SetColWidth(volumeSheet, "B", "B", 25); err != nil {
		return err
	}
	return f.SetColWidth(volumeSheet, "C", "F", 15)
}
