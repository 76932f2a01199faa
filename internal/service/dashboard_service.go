package service

import (
	"context"
	"fmt"

	"github.com/estiak0001/SUROVI-DASH/internal/cache"
	"github.com/estiak0001/SUROVI-DASH/internal/domain"
	"github.com/estiak0001/SUROVI-DASH/internal/repository"
	"github.com/estiak0001/SUROVI-DASH/pkg/logger"
)

const defaultTopProductsLimit = 10

// DashboardService serves the read side of the dashboard. Only the summary
// is cached; everything else goes straight to the database.
type DashboardService struct {
	repo  repository.DashboardRepository
	cache cache.DashboardSummaryCache
}

func NewDashboardService(repo repository.DashboardRepository, cache cache.DashboardSummaryCache) *DashboardService {
	return &DashboardService{
		repo:  repo,
		cache: cache,
	}
}

func (s *DashboardService) ListRegions(ctx context.Context) ([]domain.DimRegion, error) {
	return s.repo.ListRegions(ctx)
}

func (s *DashboardService) GetRegion(ctx context.Context, regionID int64) (*domain.DimRegion, error) {
	return s.repo.GetRegion(ctx, regionID)
}

func (s *DashboardService) ListProducts(ctx context.Context) ([]domain.DimProduct, error) {
	return s.repo.ListProducts(ctx)
}

func (s *DashboardService) ListTimePeriods(ctx context.Context) ([]domain.DimTime, error) {
	return s.repo.ListTimePeriods(ctx)
}

func (s *DashboardService) ListSales(ctx context.Context, month, year int) ([]domain.SalesRow, error) {
	return s.repo.ListSales(ctx, month, year)
}

func (s *DashboardService) ListCollections(ctx context.Context, month, year int) ([]domain.CollectionRow, error) {
	return s.repo.ListCollections(ctx, month, year)
}

func (s *DashboardService) ListProductSales(ctx context.Context, month, year int) ([]domain.ProductSalesRow, error) {
	return s.repo.ListProductSales(ctx, month, year)
}

// GetSummary answers from the cache when it can. Cache failures degrade to a
// database read rather than an error.
func (s *DashboardService) GetSummary(ctx context.Context, month, year int) (*domain.DashboardSummary, error) {
	cached, found, err := s.cache.GetSummary(ctx, month, year)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("dashboard summary cache read failed")
	}
	if found {
		return cached, nil
	}

	summary, err := s.repo.GetDashboardSummary(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	if err := s.cache.SetSummary(ctx, month, year, summary); err != nil {
		logger.Log.Warn().Err(err).Msg("dashboard summary cache write failed")
	}
	return summary, nil
}

func (s *DashboardService) GetProductComparison(ctx context.Context, currentYear int) ([]domain.ProductComparison, error) {
	return s.repo.GetProductComparison(ctx, currentYear)
}

func (s *DashboardService) GetSalesByZone(ctx context.Context, month, year int) ([]domain.ZoneSales, error) {
	return s.repo.GetSalesByZone(ctx, month, year)
}

func (s *DashboardService) GetTopProducts(ctx context.Context, year, limit int) ([]domain.TopProduct, error) {
	if limit <= 0 {
		limit = defaultTopProductsLimit
	}
	return s.repo.GetTopProducts(ctx, year, limit)
}

func (s *DashboardService) GetMonthlyTrend(ctx context.Context, year int) ([]domain.MonthlyTrendPoint, error) {
	return s.repo.GetMonthlyTrend(ctx, year)
}
