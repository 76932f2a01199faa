package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/estiak0001/SUROVI-DASH/internal/api/handlers"
	"github.com/estiak0001/SUROVI-DASH/internal/api/middleware"
	"github.com/estiak0001/SUROVI-DASH/internal/service"
)

type Services struct {
	UploadService    *service.UploadService
	DashboardService *service.DashboardService
	MaxUploadMB      int64
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.UploadService != nil {
			uploadHandler := handlers.NewUploadHandler(services.UploadService, services.MaxUploadMB)
			uploadGroup := apiGroup.Group("/upload")
			{
				uploadGroup.POST("", uploadHandler.Upload)
				uploadGroup.GET("/sample-format", uploadHandler.SampleFormat)
				uploadGroup.GET("/template/:template_type", uploadHandler.DownloadTemplate)
			}
		}

		if services.DashboardService != nil {
			dashboardHandler := handlers.NewDashboardHandler(services.DashboardService)

			apiGroup.GET("/regions", dashboardHandler.GetRegions)
			apiGroup.GET("/regions/:region_id", dashboardHandler.GetRegion)
			apiGroup.GET("/products", dashboardHandler.GetProducts)
			apiGroup.GET("/time-periods", dashboardHandler.GetTimePeriods)
			apiGroup.GET("/sales", dashboardHandler.GetSales)
			apiGroup.GET("/collections", dashboardHandler.GetCollections)
			apiGroup.GET("/product-sales", dashboardHandler.GetProductSales)
			apiGroup.GET("/product-comparison", dashboardHandler.GetProductComparison)
			apiGroup.GET("/dashboard-summary", dashboardHandler.GetDashboardSummary)

			analyticsGroup := apiGroup.Group("/analytics")
			{
				analyticsGroup.GET("/sales-by-zone", dashboardHandler.GetSalesByZone)
				analyticsGroup.GET("/top-products", dashboardHandler.GetTopProducts)
				analyticsGroup.GET("/monthly-trend", dashboardHandler.GetMonthlyTrend)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
