package repository

import (
	"context"

	"github.com/estiak0001/SUROVI-DASH/internal/domain"
)

// DashboardRepository serves the query side of the star schema: dimension
// catalogs, joined fact listings and the aggregations behind the dashboard.
type DashboardRepository interface {
	ListRegions(ctx context.Context) ([]domain.DimRegion, error)
	GetRegion(ctx context.Context, regionID int64) (*domain.DimRegion, error)
	ListProducts(ctx context.Context) ([]domain.DimProduct, error)
	ListTimePeriods(ctx context.Context) ([]domain.DimTime, error)
	GetTimePeriod(ctx context.Context, month, year int) (*domain.DimTime, error)

	ListSales(ctx context.Context, month, year int) ([]domain.SalesRow, error)
	ListCollections(ctx context.Context, month, year int) ([]domain.CollectionRow, error)
	ListProductSales(ctx context.Context, month, year int) ([]domain.ProductSalesRow, error)

	GetDashboardSummary(ctx context.Context, month, year int) (*domain.DashboardSummary, error)
	GetProductComparison(ctx context.Context, currentYear int) ([]domain.ProductComparison, error)
	GetSalesByZone(ctx context.Context, month, year int) ([]domain.ZoneSales, error)
	GetTopProducts(ctx context.Context, year, limit int) ([]domain.TopProduct, error)
	GetMonthlyTrend(ctx context.Context, year int) ([]domain.MonthlyTrendPoint, error)
}
