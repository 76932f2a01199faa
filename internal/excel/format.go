package excel

// columnSpec documents one expected column of an upload format.
type columnSpec struct {
	Col     string `json:"col"`
	Name    string `json:"name"`
	Example string `json:"example"`
}

type sheetSpec struct {
	Name    string       `json:"name"`
	Columns []columnSpec `json:"columns"`
}

// SampleFormatInfo describes the two accepted upload formats for the help
// endpoint. The column letters match the extraction layout.
func SampleFormatInfo() map[string]any {
	return map[string]any{
		"sales_collection": map[string]any{
			"description":     "Sales & Collection Monthly Data",
			"filename_format": "Sales_Collection_<Month>_<Year>.xlsx (e.g., Sales_Collection_Nov_2025.xlsx)",
			"columns": []columnSpec{
				{Col: "A", Name: "Area Code", Example: "A, B, C, D, E"},
				{Col: "B", Name: "Area Name", Example: "Rangpur, Bogura, Dhaka"},
				{Col: "C", Name: "Sales Target", Example: "5000000"},
				{Col: "D", Name: "Gross Sales", Example: "4800000"},
				{Col: "E", Name: "Sales Return", Example: "50000"},
				{Col: "F", Name: "Net Sales", Example: "4750000"},
				{Col: "G", Name: "(Label)", Example: "Collection"},
				{Col: "H", Name: "Collection Target", Example: "4500000"},
				{Col: "I", Name: "Total Collection", Example: "4200000"},
				{Col: "J-K", Name: "(Details)", Example: "-"},
				{Col: "L", Name: "Cash Collection", Example: "2000000"},
				{Col: "M-N", Name: "(Details)", Example: "-"},
				{Col: "O", Name: "Credit Collection", Example: "1500000"},
				{Col: "P-Q", Name: "(Details)", Example: "-"},
				{Col: "R", Name: "Seed Collection", Example: "700000"},
			},
			"notes": []string{
				"First 4 rows are header (Company name, Period info)",
				"Data starts from row 5",
				"Include month/year in filename OR in header rows",
				"Existing data for the same month will be replaced",
			},
		},
		"product_comparison": map[string]any{
			"description":     "Product Sales Comparison (YoY)",
			"filename_format": "Product_Comparison_<Month>_<Year>.xlsx (e.g., Product_Comparison_Nov_2025.xlsx)",
			"sheets": []sheetSpec{
				{
					Name: "Monthly Value",
					Columns: []columnSpec{
						{Col: "A", Name: "SL/Index", Example: "1, 2, 3"},
						{Col: "B", Name: "Product Name", Example: "Surovi Ghee 200ml"},
						{Col: "C", Name: "Previous Year Value", Example: "1500000"},
						{Col: "D", Name: "Current Year Value", Example: "1800000"},
						{Col: "E", Name: "(Optional)", Example: "-"},
						{Col: "F", Name: "Growth %", Example: "20%"},
					},
				},
				{
					Name: "Monthly Volume",
					Columns: []columnSpec{
						{Col: "A", Name: "SL/Index", Example: "1, 2, 3"},
						{Col: "B", Name: "Product Name", Example: "Surovi Ghee 200ml"},
						{Col: "C", Name: "Previous Year Volume", Example: "5000"},
						{Col: "D", Name: "Current Year Volume", Example: "6000"},
						{Col: "E", Name: "(Optional)", Example: "-"},
						{Col: "F", Name: "Growth %", Example: "20%"},
					},
				},
			},
			"notes": []string{
				"Two sheets required: \"Monthly Value\" and \"Monthly Volume\"",
				"First 4 rows are header",
				"Data starts from row 5",
				"Product names must match across both sheets",
				"Existing data for the same month will be replaced",
			},
		},
	}
}
