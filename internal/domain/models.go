package domain

import "time"

// DimTime is the time dimension at monthly grain: one row per (month, year).
// Rows are created lazily on first reference and never updated afterwards.
// The is_current flags reflect the wall clock at creation time only.
type DimTime struct {
	TimeID         int64     `json:"time_id" db:"time_id"`
	Date           time.Time `json:"date" db:"date"`
	Day            int       `json:"day" db:"day"`
	Month          int       `json:"month" db:"month"`
	MonthName      string    `json:"month_name" db:"month_name"`
	MonthShort     string    `json:"month_short" db:"month_short"`
	Quarter        int       `json:"quarter" db:"quarter"`
	QuarterName    string    `json:"quarter_name" db:"quarter_name"`
	Year           int       `json:"year" db:"year"`
	FiscalYear     string    `json:"fiscal_year" db:"fiscal_year"`
	IsCurrentMonth int       `json:"is_current_month" db:"is_current_month"`
	IsCurrentYear  int       `json:"is_current_year" db:"is_current_year"`
}

// DimRegion is the region dimension, keyed by area name. Attributes are
// immutable after first creation: a later upload carrying a different
// division for the same area does not change the stored row.
type DimRegion struct {
	RegionID   int64  `json:"region_id" db:"region_id"`
	AreaCode   string `json:"area_code" db:"area_code"`
	AreaName   string `json:"area_name" db:"area_name"`
	Division   string `json:"division" db:"division"`
	Zone       string `json:"zone" db:"zone"`
	RegionType string `json:"region_type" db:"region_type"`
	IsActive   int    `json:"is_active" db:"is_active"`
}

// DimProduct is the product dimension, keyed by trimmed product name.
type DimProduct struct {
	ProductID     int64   `json:"product_id" db:"product_id"`
	ProductCode   string  `json:"product_code" db:"product_code"`
	ProductName   string  `json:"product_name" db:"product_name"`
	Category      string  `json:"product_category" db:"product_category"`
	ProductGroup  string  `json:"product_group" db:"product_group"`
	Brand         string  `json:"brand" db:"brand"`
	UnitOfMeasure string  `json:"unit_of_measure" db:"unit_of_measure"`
	UnitPrice     float64 `json:"unit_price" db:"unit_price"`
	IsActive      int     `json:"is_active" db:"is_active"`
}

// FactSales holds sales and collection measures, one row per region per month.
// Rows are owned by the most recent successful load for their period and are
// replaced wholesale on re-upload.
type FactSales struct {
	FactID              int64   `json:"fact_id" db:"fact_id"`
	RegionID            int64   `json:"region_id" db:"region_id"`
	TimeID              int64   `json:"time_id" db:"time_id"`
	SalesTarget         float64 `json:"sales_target" db:"sales_target"`
	GrossSales          float64 `json:"gross_sales" db:"gross_sales"`
	SalesReturn         float64 `json:"sales_return" db:"sales_return"`
	NetSales            float64 `json:"net_sales" db:"net_sales"`
	SalesAchievementPct float64 `json:"sales_achievement_pct" db:"sales_achievement_pct"`
	CollTarget          float64 `json:"coll_target" db:"coll_target"`
	TotalCollection     float64 `json:"total_collection" db:"total_collection"`
	CashCollection      float64 `json:"cash_collection" db:"cash_collection"`
	CreditCollection    float64 `json:"credit_collection" db:"credit_collection"`
	SeedCollection      float64 `json:"seed_collection" db:"seed_collection"`
	CollAchievementPct  float64 `json:"coll_achievement_pct" db:"coll_achievement_pct"`
	Outstanding         float64 `json:"outstanding" db:"outstanding"`
	ReturnRatePct       float64 `json:"return_rate_pct" db:"return_rate_pct"`
}

// FactProductPerformance holds value/volume measures, one row per product per
// month. A product-comparison upload emits two rows per product: a previous
// year snapshot (growth fields zero) and a current year row carrying the full
// YoY comparison.
type FactProductPerformance struct {
	FactID          int64   `json:"fact_id" db:"fact_id"`
	ProductID       int64   `json:"product_id" db:"product_id"`
	TimeID          int64   `json:"time_id" db:"time_id"`
	SalesValue      float64 `json:"sales_value" db:"sales_value"`
	SalesVolume     float64 `json:"sales_volume" db:"sales_volume"`
	PrevYearValue   float64 `json:"prev_year_value" db:"prev_year_value"`
	PrevYearVolume  float64 `json:"prev_year_volume" db:"prev_year_volume"`
	ValueGrowth     float64 `json:"value_growth" db:"value_growth"`
	VolumeGrowth    float64 `json:"volume_growth" db:"volume_growth"`
	ValueGrowthPct  float64 `json:"value_growth_pct" db:"value_growth_pct"`
	VolumeGrowthPct float64 `json:"volume_growth_pct" db:"volume_growth_pct"`
}
