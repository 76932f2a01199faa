package ingest

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func productSheetRows(rows ...[]string) [][]string {
	head := [][]string{
		{"", "SUROVI AGRO INDUSTRIES LTD."},
		{"", "Product Comparison (Value) - November 2025"},
		{},
		{},
		{"SL", "Product Name", "Nov 2024", "Nov 2025", "Diff", "Growth %"},
	}
	return append(head, rows...)
}

func TestProductNames(t *testing.T) {
	rows := productSheetRows(
		[]string{"1", "Premium Ghee 500ml", "1000000", "1200000"},
		[]string{"2", "Premium Ghee 500ml", "999", "999"},
		[]string{"3", "Grand Total", "5000000", "6000000"},
		[]string{"4", "Product Name", "", ""},
		[]string{"5", "X", "1", "1"},
		[]string{"6", "Butter 200g", "800000", "950000"},
		[]string{"7", "", "1", "1"},
	)

	names := productNames(rows)
	want := []string{"Premium Ghee 500ml", "Butter 200g"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestParseProductWorkbook(t *testing.T) {
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetList()[0], "Monthly Value")
	if _, err := f.NewSheet("Monthly Volume"); err != nil {
		t.Fatal(err)
	}

	setRows := func(sheet string, rows [][]string) {
		for r, row := range rows {
			for c, v := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					t.Fatal(err)
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					t.Fatal(err)
				}
			}
		}
	}

	setRows("Monthly Value", productSheetRows(
		[]string{"1", "Premium Ghee 500ml", "1000000", "1200000"},
		[]string{"2", "Butter 200g", "800000", "950000"},
	))
	setRows("Monthly Volume", productSheetRows(
		[]string{"1", "Premium Ghee 500ml", "5000", "6000"},
	))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	report, err := ParseProductWorkbook(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseProductWorkbook: %v", err)
	}

	if len(report.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(report.Records))
	}

	ghee := report.Records[0]
	if ghee.Name != "Premium Ghee 500ml" {
		t.Fatalf("unexpected first record: %+v", ghee)
	}
	if ghee.ValueGrowth != 200000 {
		t.Errorf("ValueGrowth = %v, want 200000", ghee.ValueGrowth)
	}
	if ghee.ValueGrowthPct != 20.0 {
		t.Errorf("ValueGrowthPct = %v, want 20.0", ghee.ValueGrowthPct)
	}
	if ghee.VolumePrev != 5000 || ghee.VolumeCurr != 6000 {
		t.Errorf("volumes = (%v, %v), want (5000, 6000)", ghee.VolumePrev, ghee.VolumeCurr)
	}
	if ghee.VolumeGrowthPct != 20.0 {
		t.Errorf("VolumeGrowthPct = %v, want 20.0", ghee.VolumeGrowthPct)
	}

	// Absent from the volume sheet: volumes load as zero and the product is
	// reported as missing.
	butter := report.Records[1]
	if butter.VolumePrev != 0 || butter.VolumeCurr != 0 {
		t.Errorf("missing volume should load as zero, got (%v, %v)", butter.VolumePrev, butter.VolumeCurr)
	}
	if len(report.MissingVolume) != 1 || report.MissingVolume[0] != "Butter 200g" {
		t.Errorf("MissingVolume = %v, want [Butter 200g]", report.MissingVolume)
	}
}

func TestParseProductWorkbookWithoutVolumeSheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]

	rows := productSheetRows([]string{"1", "Premium Ghee 500ml", "1000000", "1200000"})
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	report, err := ParseProductWorkbook(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseProductWorkbook: %v", err)
	}
	if len(report.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(report.Records))
	}
	rec := report.Records[0]
	if rec.ValueCurr != 1200000 {
		t.Errorf("ValueCurr = %v, want 1200000", rec.ValueCurr)
	}
	if rec.VolumePrev != 0 || rec.VolumeCurr != 0 || rec.VolumeGrowthPct != 0 {
		t.Errorf("volumes without a volume sheet should be zero: %+v", rec)
	}
}
