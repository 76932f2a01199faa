package ingest

import (
	"strings"

	"github.com/estiak0001/SUROVI-DASH/internal/domain"
)

// DetectFileType classifies an uploaded report by filename keywords.
func DetectFileType(filename string) domain.FileType {
	lower := strings.ToLower(filename)
	switch {
	case strings.Contains(lower, "sales") && strings.Contains(lower, "collection"):
		return domain.FileTypeSalesCollection
	case strings.Contains(lower, "product") || strings.Contains(lower, "comparison"):
		return domain.FileTypeProductComparison
	case strings.Contains(lower, "value") || strings.Contains(lower, "volume"):
		return domain.FileTypeProductComparison
	default:
		return domain.FileTypeUnknown
	}
}
