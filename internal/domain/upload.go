package domain

// FileType tags an uploaded workbook with the report layout it carries,
// detected from keywords in the filename.
type FileType string

const (
	FileTypeSalesCollection   FileType = "sales_collection"
	FileTypeProductComparison FileType = "product_comparison"
	FileTypeUnknown           FileType = "unknown"
)

// UploadResult is returned to the API layer after a load attempt. Message is
// human readable; Details carries the processing counts.
type UploadResult struct {
	Success          bool           `json:"success"`
	Message          string         `json:"message"`
	FileType         FileType       `json:"file_type"`
	RecordsProcessed int            `json:"records_processed"`
	Details          map[string]any `json:"details,omitempty"`
}
