package ingest

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func salesRow(code, name, target, gross, ret, net, collTarget, totalColl, cash, credit, seed string) []string {
	return []string{
		code, name, target, gross, ret, net,
		"Collection", collTarget, totalColl,
		"-", "-", cash,
		"-", "-", credit,
		"-", "-", seed,
	}
}

func TestExtractSalesRecords(t *testing.T) {
	rows := [][]string{
		{"SUROVI AGRO INDUSTRIES LTD."},
		{"Sales & Collection Report - November 2025"},
		{},
		{"Area Code", "Area Name", "Sales Target"},
		salesRow("A", "Rangpur", "5000000", "4800000", "50000", "4750000", "4500000", "4200000", "2000000", "1500000", "700000"),
		salesRow("B", "Bogura", "4,000,000", "3900000", "", "3860000", "3800000", "3500000", "1800000", "1200000", "500000"),
		salesRow("Z", "Sylhet", "1", "1", "1", "1", "1", "1", "1", "1", "1"),
		salesRow("A", "Total", "9000000", "8700000", "90000", "8610000", "8300000", "7700000", "3800000", "2700000", "1200000"),
		salesRow("C", "", "1", "1", "1", "1", "1", "1", "1", "1", "1"),
		{"E", "Dhaka", "1000"},
	}

	records := ExtractSalesRecords(rows, DefaultSalesLayout())
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	first := records[0]
	if first.AreaCode != "A" || first.AreaName != "Rangpur" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.Division != "Rangpur Division" {
		t.Errorf("Division = %q, want Rangpur Division", first.Division)
	}
	if first.SalesAchievementPct != 95.0 {
		t.Errorf("SalesAchievementPct = %v, want 95.0", first.SalesAchievementPct)
	}
	if first.CollAchievementPct != 93.33 {
		t.Errorf("CollAchievementPct = %v, want 93.33", first.CollAchievementPct)
	}
	if first.ReturnRatePct != 1.04 {
		t.Errorf("ReturnRatePct = %v, want 1.04", first.ReturnRatePct)
	}
	if first.Outstanding != 550000 {
		t.Errorf("Outstanding = %v, want 550000", first.Outstanding)
	}

	second := records[1]
	if second.SalesTarget != 4000000 {
		t.Errorf("thousands separator not stripped: SalesTarget = %v", second.SalesTarget)
	}
	if second.SalesReturn != 0 {
		t.Errorf("blank return cell should load as 0, got %v", second.SalesReturn)
	}

	// Short row: every missing measure loads as 0.
	third := records[2]
	if third.AreaName != "Dhaka" {
		t.Fatalf("unexpected third record: %+v", third)
	}
	if third.SalesTarget != 1000 || third.CollTarget != 0 || third.SeedCollection != 0 {
		t.Errorf("short row measures: %+v", third)
	}
	if third.CollAchievementPct != 0 {
		t.Errorf("zero coll target must give 0 achievement, got %v", third.CollAchievementPct)
	}
}

func TestParseSalesWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]

	if err := f.SetCellValue(sheet, "A2", "Sales & Collection Report - November 2025"); err != nil {
		t.Fatal(err)
	}
	row := salesRow("A", "Rangpur", "5000000", "4800000", "50000", "4750000", "4500000", "4200000", "2000000", "1500000", "700000")
	for i, v := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, 5)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	report, err := ParseSalesWorkbook(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseSalesWorkbook: %v", err)
	}

	if len(report.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(report.Records))
	}
	if report.Records[0].NetSales != 4750000 {
		t.Errorf("NetSales = %v, want 4750000", report.Records[0].NetSales)
	}

	month, year := PeriodFromRows(report.HeadRows)
	if month != 11 || year != 2025 {
		t.Errorf("head rows period = (%d, %d), want (11, 2025)", month, year)
	}
}

func TestParseSalesWorkbookRejectsGarbage(t *testing.T) {
	if _, err := ParseSalesWorkbook([]byte("not a workbook")); err == nil {
		t.Fatal("expected error for non-xlsx input")
	}
}
