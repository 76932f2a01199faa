package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations creates the star schema: three dimension tables with natural
// key uniques, two fact tables with per-grain uniques and foreign keys back
// to the dimensions. Statements are idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS dim_time (
		time_id          SERIAL PRIMARY KEY,
		date             DATE NOT NULL,
		day              SMALLINT NOT NULL DEFAULT 1,
		month            SMALLINT NOT NULL,
		month_name       VARCHAR(20) NOT NULL,
		month_short      VARCHAR(3) NOT NULL,
		quarter          SMALLINT NOT NULL,
		quarter_name     VARCHAR(10) NOT NULL DEFAULT '',
		year             SMALLINT NOT NULL,
		fiscal_year      VARCHAR(10) NOT NULL DEFAULT '',
		is_current_month SMALLINT NOT NULL DEFAULT 0,
		is_current_year  SMALLINT NOT NULL DEFAULT 0,
		CONSTRAINT uq_dim_time_month_year UNIQUE (month, year)
	)`,
	`CREATE TABLE IF NOT EXISTS dim_region (
		region_id   SERIAL PRIMARY KEY,
		area_code   VARCHAR(10) NOT NULL DEFAULT '',
		area_name   VARCHAR(100) NOT NULL,
		division    VARCHAR(100) NOT NULL DEFAULT '',
		zone        VARCHAR(50) NOT NULL DEFAULT '',
		region_type VARCHAR(50) NOT NULL DEFAULT 'Area',
		is_active   SMALLINT NOT NULL DEFAULT 1,
		created_at  TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMP NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_dim_region_area_name UNIQUE (area_name)
	)`,
	`CREATE TABLE IF NOT EXISTS dim_product (
		product_id       SERIAL PRIMARY KEY,
		product_code     VARCHAR(50) NOT NULL DEFAULT '',
		product_name     VARCHAR(200) NOT NULL,
		product_category VARCHAR(100) NOT NULL DEFAULT 'General',
		product_group    VARCHAR(100) NOT NULL DEFAULT '',
		brand            VARCHAR(100) NOT NULL DEFAULT '',
		unit_of_measure  VARCHAR(20) NOT NULL DEFAULT '',
		unit_price       DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_active        SMALLINT NOT NULL DEFAULT 1,
		created_at       TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMP NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_dim_product_name UNIQUE (product_name)
	)`,
	`CREATE TABLE IF NOT EXISTS fact_sales (
		fact_id               SERIAL PRIMARY KEY,
		region_id             INTEGER NOT NULL REFERENCES dim_region(region_id),
		time_id               INTEGER NOT NULL REFERENCES dim_time(time_id),
		sales_target          DOUBLE PRECISION NOT NULL DEFAULT 0,
		gross_sales           DOUBLE PRECISION NOT NULL DEFAULT 0,
		sales_return          DOUBLE PRECISION NOT NULL DEFAULT 0,
		net_sales             DOUBLE PRECISION NOT NULL DEFAULT 0,
		sales_achievement_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
		coll_target           DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_collection      DOUBLE PRECISION NOT NULL DEFAULT 0,
		cash_collection       DOUBLE PRECISION NOT NULL DEFAULT 0,
		credit_collection     DOUBLE PRECISION NOT NULL DEFAULT 0,
		seed_collection       DOUBLE PRECISION NOT NULL DEFAULT 0,
		coll_achievement_pct  DOUBLE PRECISION NOT NULL DEFAULT 0,
		outstanding           DOUBLE PRECISION NOT NULL DEFAULT 0,
		return_rate_pct       DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at            TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at            TIMESTAMP NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_fact_sales_region_time UNIQUE (region_id, time_id)
	)`,
	`CREATE TABLE IF NOT EXISTS fact_product_performance (
		fact_id           SERIAL PRIMARY KEY,
		product_id        INTEGER NOT NULL REFERENCES dim_product(product_id),
		time_id           INTEGER NOT NULL REFERENCES dim_time(time_id),
		sales_value       DOUBLE PRECISION NOT NULL DEFAULT 0,
		sales_volume      DOUBLE PRECISION NOT NULL DEFAULT 0,
		prev_year_value   DOUBLE PRECISION NOT NULL DEFAULT 0,
		prev_year_volume  DOUBLE PRECISION NOT NULL DEFAULT 0,
		value_growth      DOUBLE PRECISION NOT NULL DEFAULT 0,
		volume_growth     DOUBLE PRECISION NOT NULL DEFAULT 0,
		value_growth_pct  DOUBLE PRECISION NOT NULL DEFAULT 0,
		volume_growth_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at        TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMP NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_fact_product_time UNIQUE (product_id, time_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_fact_sales_time ON fact_sales (time_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fact_sales_region ON fact_sales (region_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fact_product_time ON fact_product_performance (time_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fact_product_product ON fact_product_performance (product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_dim_region_zone ON dim_region (zone)`,
	`CREATE INDEX IF NOT EXISTS idx_dim_time_month_year ON dim_time (month, year)`,
}

// Migrate creates the star schema tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
