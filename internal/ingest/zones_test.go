package ingest

import "testing"

func TestZoneForDivision(t *testing.T) {
	tests := []struct {
		division string
		want     string
	}{
		{"Rangpur Division", "North"},
		{"Greater Bogura", "North"},
		{"Jhenaidah Division", "South"},
		{"Dhaka", "Central"},
		{"Chattagram", "East"},
		{"Chittagong Area", "East"},
		{"", "Central"},
		{"Somewhere Else", "Central"},
		{"DHAKA METRO", "Central"},
	}

	for _, tt := range tests {
		if got := ZoneForDivision(tt.division); got != tt.want {
			t.Errorf("ZoneForDivision(%q) = %q, want %q", tt.division, got, tt.want)
		}
	}
}

func TestDivisionForArea(t *testing.T) {
	tests := []struct {
		area string
		want string
	}{
		{"Rangpur", "Rangpur Division"},
		{"Lalmonirhat", "Rangpur Division"},
		{"Bogura", "Greater Bogura"},
		{"Kushtia", "Greater Bogura"},
		{"Barishal", "Jhenaidah Division"},
		{"Dhaka", "Dhaka"},
		{"Chattagram", "Chattagram"},
		{"Sylhet", "Unknown"},
		{"", "Unknown"},
	}

	for _, tt := range tests {
		if got := DivisionForArea(tt.area); got != tt.want {
			t.Errorf("DivisionForArea(%q) = %q, want %q", tt.area, got, tt.want)
		}
	}
}
