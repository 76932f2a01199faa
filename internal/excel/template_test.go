package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

var templateNow = time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC)

func TestGenerateSalesTemplate(t *testing.T) {
	data, filename, err := GenerateTemplate("sales_collection", templateNow)
	if err != nil {
		t.Fatalf("GenerateTemplate: %v", err)
	}
	if filename != "Sales_Collection_Nov_2025_TEMPLATE.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("template is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sales Collection")
	if err != nil {
		t.Fatalf("missing Sales Collection sheet: %v", err)
	}
	if len(rows) < 9 {
		t.Fatalf("expected title, header and sample rows, got %d rows", len(rows))
	}
	if rows[0][0] != "SUROVI AGRO INDUSTRIES LTD." {
		t.Errorf("title row = %q", rows[0][0])
	}
	if rows[3][0] != "Area Code" || rows[3][1] != "Area Name" {
		t.Errorf("header row = %v", rows[3][:2])
	}
	if rows[4][0] != "A" || rows[4][1] != "Rangpur" {
		t.Errorf("first sample row = %v", rows[4][:2])
	}
}

func TestGenerateProductTemplate(t *testing.T) {
	data, filename, err := GenerateTemplate("product_comparison", templateNow)
	if err != nil {
		t.Fatalf("GenerateTemplate: %v", err)
	}
	if filename != "Product_Comparison_Nov_2025_TEMPLATE.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("template is not a readable workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Monthly Value", "Monthly Volume"} {
		rows, err := f.GetRows(sheet)
		if err != nil {
			t.Fatalf("missing %s sheet: %v", sheet, err)
		}
		if len(rows) < 9 {
			t.Fatalf("%s: expected sample rows, got %d rows", sheet, len(rows))
		}
		if rows[3][1] != "Product Name" {
			t.Errorf("%s header row = %v", sheet, rows[3])
		}
		if rows[3][2] != "Nov 2024" || rows[3][3] != "Nov 2025" {
			t.Errorf("%s period columns = %v", sheet, rows[3][2:4])
		}
	}
}

func TestGenerateTemplateRejectsUnknownType(t *testing.T) {
	if _, _, err := GenerateTemplate("bogus", templateNow); err == nil {
		t.Fatal("expected error for unknown template type")
	}
}

func TestSampleFormatInfo(t *testing.T) {
	info := SampleFormatInfo()
	for _, key := range []string{"sales_collection", "product_comparison"} {
		if _, ok := info[key]; !ok {
			t.Errorf("missing %s entry", key)
		}
	}
}
