package ingest

import "testing"

func TestNumeric(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want float64
	}{
		{"plain integer", "5000000", 5000000},
		{"decimal", "93.33", 93.33},
		{"thousands separators", "4,750,000", 4750000},
		{"surrounding whitespace", "  1200  ", 1200},
		{"negative", "-350", -350},
		{"blank", "", 0},
		{"whitespace only", "   ", 0},
		{"dash placeholder", "-", 0},
		{"text", "Collection", 0},
		{"nan literal", "NaN", 0},
		{"inf literal", "+Inf", 0},
		{"scientific notation", "1.5e3", 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Numeric(tt.cell); got != tt.want {
				t.Errorf("Numeric(%q) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestPctOf(t *testing.T) {
	tests := []struct {
		name        string
		part, whole float64
		want        float64
	}{
		{"simple ratio", 4750000, 5000000, 95.0},
		{"rounds to 2dp", 93.333333, 100, 93.33},
		{"zero denominator", 100, 0, 0},
		{"negative denominator", 100, -50, 0},
		{"zero numerator", 0, 5000, 0},
		{"over 100 percent", 150, 100, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pctOf(tt.part, tt.whole); got != tt.want {
				t.Errorf("pctOf(%v, %v) = %v, want %v", tt.part, tt.whole, got, tt.want)
			}
		})
	}
}
