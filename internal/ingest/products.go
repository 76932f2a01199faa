package ingest

import "strings"

const (
	valueSheetName  = "Monthly Value"
	volumeSheetName = "Monthly Volume"

	// Product sheets carry four title/period rows plus a column-header row
	// before the first product.
	productHeaderRows = 5

	productNameCol = 1
	prevPeriodCol  = 2
	currPeriodCol  = 3
)

// nonProductTokens mark footer, label and repeated-header rows in the value
// sheet; any name containing one of these (case-insensitive) is not a
// product.
var nonProductTokens = []string{
	"product name", "surovi", "monthly", "period", "total", "grand", "sl", "no",
}

// ProductRecord is one product's extracted YoY comparison.
type ProductRecord struct {
	Name string

	ValuePrev  float64
	ValueCurr  float64
	VolumePrev float64
	VolumeCurr float64

	ValueGrowth     float64
	VolumeGrowth    float64
	ValueGrowthPct  float64
	VolumeGrowthPct float64
}

// ProductReport is the parsed form of a product comparison workbook.
type ProductReport struct {
	HeadRows [][]string
	Records  []ProductRecord
	// MissingVolume lists products present in the value sheet but absent
	// from the volume sheet; their volumes load as 0.
	MissingVolume []string
}

// ParseProductWorkbook extracts per-product YoY records from the "Monthly
// Value" and "Monthly Volume" sheets. The value sheet drives the product
// set; when "Monthly Value" is missing the first sheet is used, and a
// missing volume sheet yields zero volumes rather than an error.
func ParseProductWorkbook(data []byte) (*ProductReport, error) {
	f, err := openWorkbook(data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	valueRows, err := sheetRows(f, valueSheetName)
	if err != nil {
		valueRows, err = sheetRows(f, "")
		if err != nil {
			return nil, err
		}
	}

	volumeRows, volErr := sheetRows(f, volumeSheetName)
	if volErr != nil {
		volumeRows = nil
	}

	report := &ProductReport{HeadRows: headRows(valueRows)}

	for _, name := range productNames(valueRows) {
		rec := ProductRecord{Name: name}

		if row, ok := findProductRow(valueRows, name); ok {
			rec.ValuePrev = Numeric(cellAt(row, prevPeriodCol))
			rec.ValueCurr = Numeric(cellAt(row, currPeriodCol))
		}

		if row, ok := findProductRow(volumeRows, name); ok {
			rec.VolumePrev = Numeric(cellAt(row, prevPeriodCol))
			rec.VolumeCurr = Numeric(cellAt(row, currPeriodCol))
		} else {
			report.MissingVolume = append(report.MissingVolume, name)
		}

		rec.ValueGrowth = rec.ValueCurr - rec.ValuePrev
		rec.VolumeGrowth = rec.VolumeCurr - rec.VolumePrev
		rec.ValueGrowthPct = pctOf(rec.ValueGrowth, rec.ValuePrev)
		rec.VolumeGrowthPct = pctOf(rec.VolumeGrowth, rec.VolumePrev)

		report.Records = append(report.Records, rec)
	}

	return report, nil
}

// productNames collects the distinct, retained product names from the value
// sheet in first-appearance order. Names shorter than two characters or
// containing a non-product token are footer/label rows, not products.
func productNames(rows [][]string) []string {
	var names []string
	seen := make(map[string]bool)

	for i := productHeaderRows; i < len(rows); i++ {
		name := strings.TrimSpace(cellAt(rows[i], productNameCol))
		if len([]rune(name)) < 2 || seen[name] || isNonProduct(name) {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func isNonProduct(name string) bool {
	lower := strings.ToLower(name)
	for _, token := range nonProductTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// findProductRow returns the first data row whose name cell matches, which
// is the one that counts when a name repeats.
func findProductRow(rows [][]string, name string) ([]string, bool) {
	for i := productHeaderRows; i < len(rows); i++ {
		if strings.TrimSpace(cellAt(rows[i], productNameCol)) == name {
			return rows[i], true
		}
	}
	return nil, false
}
