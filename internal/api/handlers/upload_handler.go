package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/estiak0001/SUROVI-DASH/internal/excel"
	"github.com/estiak0001/SUROVI-DASH/internal/service"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type UploadHandler struct {
	uploadService *service.UploadService
	maxUploadMB   int64
}

func NewUploadHandler(uploadService *service.UploadService, maxUploadMB int64) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxUploadMB:   maxUploadMB,
	}
}

// Upload accepts a report workbook as multipart form data with optional
// month/year overrides and loads it into the star schema.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	lower := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(lower, ".xlsx") && !strings.HasSuffix(lower, ".xls") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only Excel files (.xlsx, .xls) are supported"})
		return
	}
	if h.maxUploadMB > 0 && fileHeader.Size > h.maxUploadMB*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File exceeds the %d MB upload limit", h.maxUploadMB)})
		return
	}

	month, ok := parseOptionalInt(c, c.PostForm("month"), "month")
	if !ok {
		return
	}
	year, ok := parseOptionalInt(c, c.PostForm("year"), "year")
	if !ok {
		return
	}
	if month != 0 && (month < 1 || month > 12) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be between 1 and 12"})
		return
	}
	if year != 0 && (year < 2020 || year > 2030) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year must be between 2020 and 2030"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}

	result, err := h.uploadService.Process(c.Request.Context(), fileHeader.Filename, data, month, year)
	if err != nil {
		if errors.Is(err, service.ErrUnknownFileType) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown file type. Filename should contain 'Sales_Collection' or 'Product_Comparison'. " +
					"Use GET /api/v1/upload/sample-format to see expected formats.",
			})
			return
		}
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("upload processing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// SampleFormat documents the accepted upload layouts.
func (h *UploadHandler) SampleFormat(c *gin.Context) {
	c.JSON(http.StatusOK, excel.SampleFormatInfo())
}

// DownloadTemplate streams a blank sample workbook for the requested report
// type.
func (h *UploadHandler) DownloadTemplate(c *gin.Context) {
	templateType := c.Param("template_type")
	if templateType != "sales_collection" && templateType != "product_comparison" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template type. Use 'sales_collection' or 'product_comparison'"})
		return
	}

	data, filename, err := excel.GenerateTemplate(templateType, time.Now())
	if err != nil {
		log.Error().Err(err).Str("template_type", templateType).Msg("template generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating template"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, excelContentType, data)
}

// parseOptionalInt parses an optional form/query value, responding 400 on
// garbage. Empty means "not provided" and parses to 0.
func parseOptionalInt(c *gin.Context, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s: %s", name, raw)})
		return 0, false
	}
	return n, true
}
