package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/estiak0001/SUROVI-DASH/internal/domain"
	"github.com/estiak0001/SUROVI-DASH/internal/ingest"
	"github.com/estiak0001/SUROVI-DASH/internal/repository"
	"github.com/jmoiron/sqlx"
)

type uploadRepository struct {
	db *DB
}

// NewUploadRepository builds the transactional load-side repository.
func NewUploadRepository(db *DB) repository.UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) InTx(ctx context.Context, fn func(tx repository.UploadTx) error) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		return fn(&uploadTx{tx: tx})
	})
}

type uploadTx struct {
	tx *sqlx.Tx
}

// Dimension lookups are a single insert-or-fetch round trip: the ON CONFLICT
// clause touches only the natural key, so an existing row keeps its original
// attributes while still returning through RETURNING. This also closes the
// check-then-create race between concurrent uploads.

func (t *uploadTx) GetOrCreateTime(ctx context.Context, month, year int, now time.Time) (*domain.DimTime, error) {
	dim := &domain.DimTime{
		Date:        time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		Day:         1,
		Month:       month,
		MonthName:   ingest.MonthName(month),
		MonthShort:  ingest.MonthShort(month),
		Quarter:     ingest.Quarter(month),
		QuarterName: fmt.Sprintf("Q%d", ingest.Quarter(month)),
		Year:        year,
		FiscalYear:  ingest.FiscalYear(month, year),
	}
	if month == int(now.Month()) && year == now.Year() {
		dim.IsCurrentMonth = 1
	}
	if year == now.Year() {
		dim.IsCurrentYear = 1
	}

	query := `
		INSERT INTO dim_time (date, day, month, month_name, month_short, quarter, quarter_name, year, fiscal_year, is_current_month, is_current_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (month, year)
		DO UPDATE SET month = EXCLUDED.month
		RETURNING time_id
	`
	err := t.tx.QueryRowContext(ctx, query,
		dim.Date, dim.Day, dim.Month, dim.MonthName, dim.MonthShort,
		dim.Quarter, dim.QuarterName, dim.Year, dim.FiscalYear,
		dim.IsCurrentMonth, dim.IsCurrentYear,
	).Scan(&dim.TimeID)
	if err != nil {
		return nil, fmt.Errorf("get or create time %d/%d: %w", month, year, err)
	}
	return dim, nil
}

func (t *uploadTx) GetOrCreateRegion(ctx context.Context, areaCode, areaName, division, zone string) (*domain.DimRegion, error) {
	dim := &domain.DimRegion{
		AreaCode:   areaCode,
		AreaName:   areaName,
		Division:   division,
		Zone:       zone,
		RegionType: "Area",
		IsActive:   1,
	}

	query := `
		INSERT INTO dim_region (area_code, area_name, division, zone, region_type, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (area_name)
		DO UPDATE SET area_name = EXCLUDED.area_name
		RETURNING region_id, area_code, division, zone
	`
	err := t.tx.QueryRowContext(ctx, query,
		dim.AreaCode, dim.AreaName, dim.Division, dim.Zone, dim.RegionType, dim.IsActive,
	).Scan(&dim.RegionID, &dim.AreaCode, &dim.Division, &dim.Zone)
	if err != nil {
		return nil, fmt.Errorf("get or create region %q: %w", areaName, err)
	}
	return dim, nil
}

func (t *uploadTx) GetOrCreateProduct(ctx context.Context, name, category string) (*domain.DimProduct, error) {
	if category == "" {
		category = "General"
	}
	dim := &domain.DimProduct{
		ProductName: name,
		Category:    category,
		IsActive:    1,
	}

	query := `
		INSERT INTO dim_product (product_name, product_category, is_active)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_name)
		DO UPDATE SET product_name = EXCLUDED.product_name
		RETURNING product_id, product_category
	`
	err := t.tx.QueryRowContext(ctx, query, dim.ProductName, dim.Category, dim.IsActive).
		Scan(&dim.ProductID, &dim.Category)
	if err != nil {
		return nil, fmt.Errorf("get or create product %q: %w", name, err)
	}
	return dim, nil
}

func (t *uploadTx) DeleteSalesFacts(ctx context.Context, timeID int64) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM fact_sales WHERE time_id = $1`, timeID)
	if err != nil {
		return 0, fmt.Errorf("delete sales facts for time %d: %w", timeID, err)
	}
	return res.RowsAffected()
}

func (t *uploadTx) InsertSalesFact(ctx context.Context, fact *domain.FactSales) error {
	query := `
		INSERT INTO fact_sales (
			region_id, time_id,
			sales_target, gross_sales, sales_return, net_sales, sales_achievement_pct,
			coll_target, total_collection, cash_collection, credit_collection, seed_collection,
			coll_achievement_pct, outstanding, return_rate_pct
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := t.tx.ExecContext(ctx, query,
		fact.RegionID, fact.TimeID,
		fact.SalesTarget, fact.GrossSales, fact.SalesReturn, fact.NetSales, fact.SalesAchievementPct,
		fact.CollTarget, fact.TotalCollection, fact.CashCollection, fact.CreditCollection, fact.SeedCollection,
		fact.CollAchievementPct, fact.Outstanding, fact.ReturnRatePct,
	)
	if err != nil {
		return fmt.Errorf("insert sales fact: %w", err)
	}
	return nil
}

func (t *uploadTx) DeleteProductFacts(ctx context.Context, timeID int64) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM fact_product_performance WHERE time_id = $1`, timeID)
	if err != nil {
		return 0, fmt.Errorf("delete product facts for time %d: %w", timeID, err)
	}
	return res.RowsAffected()
}

func (t *uploadTx) InsertProductFact(ctx context.Context, fact *domain.FactProductPerformance) error {
	query := `
		INSERT INTO fact_product_performance (
			product_id, time_id,
			sales_value, sales_volume, prev_year_value, prev_year_volume,
			value_growth, volume_growth, value_growth_pct, volume_growth_pct
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := t.tx.ExecContext(ctx, query,
		fact.ProductID, fact.TimeID,
		fact.SalesValue, fact.SalesVolume, fact.PrevYearValue, fact.PrevYearVolume,
		fact.ValueGrowth, fact.VolumeGrowth, fact.ValueGrowthPct, fact.VolumeGrowthPct,
	)
	if err != nil {
		return fmt.Errorf("insert product fact: %w", err)
	}
	return nil
}
