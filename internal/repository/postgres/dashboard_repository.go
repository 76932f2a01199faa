package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/estiak0001/SUROVI-DASH/internal/domain"
	"github.com/estiak0001/SUROVI-DASH/internal/repository"
)

type dashboardRepository struct {
	db *DB
}

// NewDashboardRepository builds the read-side repository over the star
// schema.
func NewDashboardRepository(db *DB) repository.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) ListRegions(ctx context.Context) ([]domain.DimRegion, error) {
	query := `
		SELECT region_id, area_code, area_name, division, zone, region_type, is_active
		FROM dim_region
		WHERE is_active = 1
		ORDER BY area_name
	`
	regions := []domain.DimRegion{}
	if err := r.db.SelectContext(ctx, &regions, query); err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return regions, nil
}

func (r *dashboardRepository) GetRegion(ctx context.Context, regionID int64) (*domain.DimRegion, error) {
	query := `
		SELECT region_id, area_code, area_name, division, zone, region_type, is_active
		FROM dim_region
		WHERE region_id = $1
	`
	var region domain.DimRegion
	if err := r.db.GetContext(ctx, &region, query, regionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get region %d: %w", regionID, err)
	}
	return &region, nil
}

func (r *dashboardRepository) ListProducts(ctx context.Context) ([]domain.DimProduct, error) {
	query := `
		SELECT product_id, product_code, product_name, product_category, product_group,
		       brand, unit_of_measure, unit_price, is_active
		FROM dim_product
		WHERE is_active = 1
		ORDER BY product_name
	`
	products := []domain.DimProduct{}
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *dashboardRepository) ListTimePeriods(ctx context.Context) ([]domain.DimTime, error) {
	query := `
		SELECT time_id, date, day, month, month_name, month_short, quarter, quarter_name,
		       year, fiscal_year, is_current_month, is_current_year
		FROM dim_time
		ORDER BY year DESC, month DESC
	`
	periods := []domain.DimTime{}
	if err := r.db.SelectContext(ctx, &periods, query); err != nil {
		return nil, fmt.Errorf("list time periods: %w", err)
	}
	return periods, nil
}

func (r *dashboardRepository) GetTimePeriod(ctx context.Context, month, year int) (*domain.DimTime, error) {
	query := `
		SELECT time_id, date, day, month, month_name, month_short, quarter, quarter_name,
		       year, fiscal_year, is_current_month, is_current_year
		FROM dim_time
		WHERE month = $1 AND year = $2
	`
	var period domain.DimTime
	if err := r.db.GetContext(ctx, &period, query, month, year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get time period %d/%d: %w", month, year, err)
	}
	return &period, nil
}

// periodFilter appends optional month/year conditions on the joined dim_time
// columns. Zero means "no filter", matching the query parameters of the API.
func periodFilter(query string, month, year int) (string, []any) {
	args := []any{}
	n := 1
	if month != 0 {
		query += fmt.Sprintf(" AND t.month = $%d", n)
		args = append(args, month)
		n++
	}
	if year != 0 {
		query += fmt.Sprintf(" AND t.year = $%d", n)
		args = append(args, year)
	}
	return query, args
}

func (r *dashboardRepository) ListSales(ctx context.Context, month, year int) ([]domain.SalesRow, error) {
	query := `
		SELECT f.fact_id, f.region_id, r.area_name, r.division, r.zone,
		       t.month, t.year, t.month_name,
		       f.sales_target, f.gross_sales, f.sales_return, f.net_sales,
		       f.sales_achievement_pct, f.return_rate_pct
		FROM fact_sales f
		JOIN dim_region r ON f.region_id = r.region_id
		JOIN dim_time t ON f.time_id = t.time_id
		WHERE 1=1
	`
	query, args := periodFilter(query, month, year)

	rows := []domain.SalesRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return rows, nil
}

func (r *dashboardRepository) ListCollections(ctx context.Context, month, year int) ([]domain.CollectionRow, error) {
	query := `
		SELECT f.fact_id, f.region_id, r.area_name, r.division, r.zone,
		       t.month, t.year, t.month_name,
		       f.coll_target, f.total_collection, f.coll_achievement_pct,
		       f.cash_collection, f.credit_collection, f.seed_collection, f.outstanding
		FROM fact_sales f
		JOIN dim_region r ON f.region_id = r.region_id
		JOIN dim_time t ON f.time_id = t.time_id
		WHERE 1=1
	`
	query, args := periodFilter(query, month, year)

	rows := []domain.CollectionRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return rows, nil
}

func (r *dashboardRepository) ListProductSales(ctx context.Context, month, year int) ([]domain.ProductSalesRow, error) {
	query := `
		SELECT f.fact_id, f.product_id, p.product_name, p.product_category,
		       t.month, t.year, t.month_name,
		       f.sales_value, f.sales_volume, f.prev_year_value, f.prev_year_volume,
		       f.value_growth_pct, f.volume_growth_pct
		FROM fact_product_performance f
		JOIN dim_product p ON f.product_id = p.product_id
		JOIN dim_time t ON f.time_id = t.time_id
		WHERE 1=1
	`
	query, args := periodFilter(query, month, year)

	rows := []domain.ProductSalesRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list product sales: %w", err)
	}
	return rows, nil
}

type salesTotalsRow struct {
	Count       int     `db:"count"`
	SalesTarget float64 `db:"total_target"`
	GrossSales  float64 `db:"total_gross"`
	NetSales    float64 `db:"total_net"`
	CollTarget  float64 `db:"coll_target"`
	TotalColl   float64 `db:"total_coll"`
	CashColl    float64 `db:"cash_coll"`
	CreditColl  float64 `db:"credit_coll"`
	SeedColl    float64 `db:"seed_coll"`
}

func (r *dashboardRepository) GetDashboardSummary(ctx context.Context, month, year int) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{Month: month, Year: year}

	period, err := r.GetTimePeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}
	if period == nil {
		// No data loaded for the period; an all-zero summary, not an error.
		return summary, nil
	}
	summary.MonthName = period.MonthName
	summary.FiscalYear = period.FiscalYear

	var totals salesTotalsRow
	query := `
		SELECT COUNT(fact_id) AS count,
		       COALESCE(SUM(sales_target), 0) AS total_target,
		       COALESCE(SUM(gross_sales), 0) AS total_gross,
		       COALESCE(SUM(net_sales), 0) AS total_net,
		       COALESCE(SUM(coll_target), 0) AS coll_target,
		       COALESCE(SUM(total_collection), 0) AS total_coll,
		       COALESCE(SUM(cash_collection), 0) AS cash_coll,
		       COALESCE(SUM(credit_collection), 0) AS credit_coll,
		       COALESCE(SUM(seed_collection), 0) AS seed_coll
		FROM fact_sales
		WHERE time_id = $1
	`
	if err := r.db.GetContext(ctx, &totals, query, period.TimeID); err != nil {
		return nil, fmt.Errorf("dashboard sales totals: %w", err)
	}

	summary.Sales = domain.SalesSummary{
		TotalRegions:          totals.Count,
		TotalSalesTarget:      totals.SalesTarget,
		TotalGrossSales:       totals.GrossSales,
		TotalNetSales:         totals.NetSales,
		OverallAchievementPct: safePct(totals.NetSales, totals.SalesTarget),
	}
	summary.Collection = domain.CollectionSummary{
		TotalCollTarget:   totals.CollTarget,
		TotalCollection:   totals.TotalColl,
		OverallCollAchPct: safePct(totals.TotalColl, totals.CollTarget),
		CashCollection:    totals.CashColl,
		CreditCollection:  totals.CreditColl,
		SeedCollection:    totals.SeedColl,
	}

	var productCount int
	if err := r.db.GetContext(ctx, &productCount,
		`SELECT COUNT(product_id) FROM dim_product WHERE is_active = 1`); err != nil {
		return nil, fmt.Errorf("dashboard product count: %w", err)
	}

	valueCurrent, err := r.yearValueTotal(ctx, year)
	if err != nil {
		return nil, err
	}
	valuePrevious, err := r.yearValueTotal(ctx, year-1)
	if err != nil {
		return nil, err
	}

	summary.Products = domain.ProductSummary{
		TotalProducts:      productCount,
		TotalValueCurrent:  valueCurrent,
		TotalValuePrevious: valuePrevious,
		OverallGrowthPct:   safePct(valueCurrent-valuePrevious, valuePrevious),
	}

	return summary, nil
}

func (r *dashboardRepository) yearValueTotal(ctx context.Context, year int) (float64, error) {
	var total float64
	query := `
		SELECT COALESCE(SUM(f.sales_value), 0)
		FROM fact_product_performance f
		JOIN dim_time t ON f.time_id = t.time_id
		WHERE t.year = $1
	`
	if err := r.db.GetContext(ctx, &total, query, year); err != nil {
		return 0, fmt.Errorf("product value total for %d: %w", year, err)
	}
	return total, nil
}

type comparisonRow struct {
	ProductID   int64   `db:"product_id"`
	ProductName string  `db:"product_name"`
	Category    string  `db:"product_category"`
	ValuePrev   float64 `db:"value_prev"`
	ValueCurr   float64 `db:"value_curr"`
	VolumePrev  float64 `db:"volume_prev"`
	VolumeCurr  float64 `db:"volume_curr"`
}

func (r *dashboardRepository) GetProductComparison(ctx context.Context, currentYear int) ([]domain.ProductComparison, error) {
	query := `
		SELECT p.product_id, p.product_name, p.product_category,
		       COALESCE(SUM(CASE WHEN t.year = $1 THEN f.sales_value ELSE 0 END), 0) AS value_prev,
		       COALESCE(SUM(CASE WHEN t.year = $2 THEN f.sales_value ELSE 0 END), 0) AS value_curr,
		       COALESCE(SUM(CASE WHEN t.year = $1 THEN f.sales_volume ELSE 0 END), 0) AS volume_prev,
		       COALESCE(SUM(CASE WHEN t.year = $2 THEN f.sales_volume ELSE 0 END), 0) AS volume_curr
		FROM dim_product p
		LEFT JOIN fact_product_performance f ON f.product_id = p.product_id
		LEFT JOIN dim_time t ON f.time_id = t.time_id
		WHERE p.is_active = 1
		GROUP BY p.product_id, p.product_name, p.product_category
		ORDER BY p.product_name
	`
	rows := []comparisonRow{}
	if err := r.db.SelectContext(ctx, &rows, query, currentYear-1, currentYear); err != nil {
		return nil, fmt.Errorf("product comparison: %w", err)
	}

	result := make([]domain.ProductComparison, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.ProductComparison{
			ProductID:       row.ProductID,
			ProductName:     row.ProductName,
			Category:        row.Category,
			ValuePrevious:   row.ValuePrev,
			ValueCurrent:    row.ValueCurr,
			ValueGrowthPct:  safePct(row.ValueCurr-row.ValuePrev, row.ValuePrev),
			VolumePrevious:  row.VolumePrev,
			VolumeCurrent:   row.VolumeCurr,
			VolumeGrowthPct: safePct(row.VolumeCurr-row.VolumePrev, row.VolumePrev),
		})
	}
	return result, nil
}

func (r *dashboardRepository) GetSalesByZone(ctx context.Context, month, year int) ([]domain.ZoneSales, error) {
	query := `
		SELECT r.zone,
		       COALESCE(SUM(f.sales_target), 0) AS total_target,
		       COALESCE(SUM(f.net_sales), 0) AS total_sales,
		       COALESCE(SUM(f.total_collection), 0) AS total_collection
		FROM fact_sales f
		JOIN dim_region r ON f.region_id = r.region_id
		JOIN dim_time t ON f.time_id = t.time_id
		WHERE 1=1
	`
	query, args := periodFilter(query, month, year)
	query += " GROUP BY r.zone ORDER BY r.zone"

	zones := []domain.ZoneSales{}
	if err := r.db.SelectContext(ctx, &zones, query, args...); err != nil {
		return nil, fmt.Errorf("sales by zone: %w", err)
	}
	for i := range zones {
		zones[i].AchievementPct = safePct(zones[i].TotalSales, zones[i].TotalTarget)
	}
	return zones, nil
}

func (r *dashboardRepository) GetTopProducts(ctx context.Context, year, limit int) ([]domain.TopProduct, error) {
	query := `
		SELECT p.product_id, p.product_name, p.product_category,
		       COALESCE(SUM(f.sales_value), 0) AS total_value,
		       COALESCE(SUM(f.sales_volume), 0) AS total_volume
		FROM fact_product_performance f
		JOIN dim_product p ON f.product_id = p.product_id
		JOIN dim_time t ON f.time_id = t.time_id
		WHERE t.year = $1
		GROUP BY p.product_id, p.product_name, p.product_category
		ORDER BY SUM(f.sales_value) DESC
		LIMIT $2
	`
	products := []domain.TopProduct{}
	if err := r.db.SelectContext(ctx, &products, query, year, limit); err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	return products, nil
}

func (r *dashboardRepository) GetMonthlyTrend(ctx context.Context, year int) ([]domain.MonthlyTrendPoint, error) {
	query := `
		SELECT t.month, t.month_name,
		       COALESCE(SUM(f.net_sales), 0) AS total_sales,
		       COALESCE(SUM(f.total_collection), 0) AS total_collection
		FROM fact_sales f
		JOIN dim_time t ON f.time_id = t.time_id
		WHERE t.year = $1
		GROUP BY t.month, t.month_name
		ORDER BY t.month
	`
	points := []domain.MonthlyTrendPoint{}
	if err := r.db.SelectContext(ctx, &points, query, year); err != nil {
		return nil, fmt.Errorf("monthly trend: %w", err)
	}
	return points, nil
}

// safePct floors ratio percentages at 0 when the denominator is zero,
// matching the ingestion-side policy.
func safePct(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(part/whole*100*100) / 100
}
