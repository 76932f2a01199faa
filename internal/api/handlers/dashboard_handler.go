package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/estiak0001/SUROVI-DASH/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetRegions(c *gin.Context) {
	regions, err := h.dashboardService.ListRegions(c.Request.Context())
	if err != nil {
		serverError(c, err, "failed to list regions")
		return
	}
	c.JSON(http.StatusOK, regions)
}

func (h *DashboardHandler) GetRegion(c *gin.Context) {
	regionID, err := strconv.ParseInt(c.Param("region_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region id"})
		return
	}

	region, err := h.dashboardService.GetRegion(c.Request.Context(), regionID)
	if err != nil {
		serverError(c, err, "failed to get region")
		return
	}
	if region == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
		return
	}
	c.JSON(http.StatusOK, region)
}

func (h *DashboardHandler) GetProducts(c *gin.Context) {
	products, err := h.dashboardService.ListProducts(c.Request.Context())
	if err != nil {
		serverError(c, err, "failed to list products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *DashboardHandler) GetTimePeriods(c *gin.Context) {
	periods, err := h.dashboardService.ListTimePeriods(c.Request.Context())
	if err != nil {
		serverError(c, err, "failed to list time periods")
		return
	}
	c.JSON(http.StatusOK, periods)
}

func (h *DashboardHandler) GetSales(c *gin.Context) {
	month, year, ok := optionalPeriod(c)
	if !ok {
		return
	}
	rows, err := h.dashboardService.ListSales(c.Request.Context(), month, year)
	if err != nil {
		serverError(c, err, "failed to list sales")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *DashboardHandler) GetCollections(c *gin.Context) {
	month, year, ok := optionalPeriod(c)
	if !ok {
		return
	}
	rows, err := h.dashboardService.ListCollections(c.Request.Context(), month, year)
	if err != nil {
		serverError(c, err, "failed to list collections")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *DashboardHandler) GetProductSales(c *gin.Context) {
	month, year, ok := optionalPeriod(c)
	if !ok {
		return
	}
	rows, err := h.dashboardService.ListProductSales(c.Request.Context(), month, year)
	if err != nil {
		serverError(c, err, "failed to list product sales")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *DashboardHandler) GetProductComparison(c *gin.Context) {
	year, ok := parseOptionalInt(c, c.Query("year"), "year")
	if !ok {
		return
	}
	if year == 0 {
		year = time.Now().Year()
	}

	comparison, err := h.dashboardService.GetProductComparison(c.Request.Context(), year)
	if err != nil {
		serverError(c, err, "failed to build product comparison")
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// GetDashboardSummary defaults to the current wall-clock period when no
// month/year is given.
func (h *DashboardHandler) GetDashboardSummary(c *gin.Context) {
	month, year, ok := optionalPeriod(c)
	if !ok {
		return
	}
	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), month, year)
	if err != nil {
		serverError(c, err, "failed to build dashboard summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) GetSalesByZone(c *gin.Context) {
	month, year, ok := optionalPeriod(c)
	if !ok {
		return
	}
	zones, err := h.dashboardService.GetSalesByZone(c.Request.Context(), month, year)
	if err != nil {
		serverError(c, err, "failed to aggregate sales by zone")
		return
	}
	c.JSON(http.StatusOK, zones)
}

func (h *DashboardHandler) GetTopProducts(c *gin.Context) {
	year, ok := parseOptionalInt(c, c.Query("year"), "year")
	if !ok {
		return
	}
	if year == 0 {
		year = time.Now().Year()
	}
	limit, ok := parseOptionalInt(c, c.Query("limit"), "limit")
	if !ok {
		return
	}

	products, err := h.dashboardService.GetTopProducts(c.Request.Context(), year, limit)
	if err != nil {
		serverError(c, err, "failed to list top products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *DashboardHandler) GetMonthlyTrend(c *gin.Context) {
	year, ok := parseOptionalInt(c, c.Query("year"), "year")
	if !ok {
		return
	}
	if year == 0 {
		year = time.Now().Year()
	}

	trend, err := h.dashboardService.GetMonthlyTrend(c.Request.Context(), year)
	if err != nil {
		serverError(c, err, "failed to build monthly trend")
		return
	}
	c.JSON(http.StatusOK, trend)
}

func optionalPeriod(c *gin.Context) (month, year int, ok bool) {
	month, ok = parseOptionalInt(c, c.Query("month"), "month")
	if !ok {
		return 0, 0, false
	}
	year, ok = parseOptionalInt(c, c.Query("year"), "year")
	if !ok {
		return 0, 0, false
	}
	if month != 0 && (month < 1 || month > 12) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be between 1 and 12"})
		return 0, 0, false
	}
	return month, year, true
}

func serverError(c *gin.Context, err error, message string) {
	log.Error().Err(err).Msg(message)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
