package ingest

import (
	"testing"

	"github.com/estiak0001/SUROVI-DASH/internal/domain"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		filename string
		want     domain.FileType
	}{
		{"Sales_Collection_Nov_2025.xlsx", domain.FileTypeSalesCollection},
		{"SALES AND COLLECTION nov.xlsx", domain.FileTypeSalesCollection},
		{"Product_Comparison_Nov_2025.xlsx", domain.FileTypeProductComparison},
		{"comparison_report.xlsx", domain.FileTypeProductComparison},
		{"monthly_value_2025.xlsx", domain.FileTypeProductComparison},
		{"volume_report.xlsx", domain.FileTypeProductComparison},
		// "sales" without "collection" is not enough on its own.
		{"sales_report.xlsx", domain.FileTypeUnknown},
		{"report.xlsx", domain.FileTypeUnknown},
	}

	for _, tt := range tests {
		if got := DetectFileType(tt.filename); got != tt.want {
			t.Errorf("DetectFileType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
