package ingest

import "strings"

// zoneRules is the canonical division-to-zone classification, applied as
// ordered case-insensitive keyword matches against the division string.
// Divisions matching no keyword fall into Central.
var zoneRules = []struct {
	keyword string
	zone    string
}{
	{"rangpur", "North"},
	{"bogura", "North"},
	{"jhenaidah", "South"},
	{"dhaka", "Central"},
	{"chattagram", "East"},
	{"chittagong", "East"},
}

const defaultZone = "Central"

// ZoneForDivision classifies a division string into one of the sales zones
// (North, South, East, Central).
func ZoneForDivision(division string) string {
	lower := strings.ToLower(division)
	for _, r := range zoneRules {
		if strings.Contains(lower, r.keyword) {
			return r.zone
		}
	}
	return defaultZone
}

// divisions maps area names appearing in sales reports to their division.
// Areas not listed here load with division "Unknown" (zone Central).
var divisions = map[string]string{
	"Rangpur":     "Rangpur Division",
	"Lalmonirhat": "Rangpur Division",
	"Thakurgaon":  "Rangpur Division",
	"Nilphamari":  "Rangpur Division",
	"Bogura":      "Greater Bogura",
	"Sherpur":     "Greater Bogura",
	"Dupcachia":   "Greater Bogura",
	"Naogaon":     "Greater Bogura",
	"Kushtia":     "Greater Bogura",
	"Jhenaidah":   "Jhenaidah Division",
	"Barishal":    "Jhenaidah Division",
	"Dhaka":       "Dhaka",
	"Chattagram":  "Chattagram",
}

const unknownDivision = "Unknown"

// DivisionForArea looks up the division for an area name.
func DivisionForArea(areaName string) string {
	if d, ok := divisions[areaName]; ok {
		return d
	}
	return unknownDivision
}
