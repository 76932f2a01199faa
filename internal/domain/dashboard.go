package domain

// SalesSummary aggregates fact_sales for one period.
type SalesSummary struct {
	TotalRegions          int     `json:"total_regions"`
	TotalSalesTarget      float64 `json:"total_sales_target"`
	TotalGrossSales       float64 `json:"total_gross_sales"`
	TotalNetSales         float64 `json:"total_net_sales"`
	OverallAchievementPct float64 `json:"overall_achievement_pct"`
}

// CollectionSummary aggregates the collection measures for one period.
type CollectionSummary struct {
	TotalCollTarget   float64 `json:"total_coll_target"`
	TotalCollection   float64 `json:"total_collection"`
	OverallCollAchPct float64 `json:"overall_coll_ach_pct"`
	CashCollection    float64 `json:"cash_collection"`
	CreditCollection  float64 `json:"credit_collection"`
	SeedCollection    float64 `json:"seed_collection"`
}

// ProductSummary compares product sales value across the current and previous
// calendar year.
type ProductSummary struct {
	TotalProducts      int     `json:"total_products"`
	TotalValueCurrent  float64 `json:"total_value_current"`
	TotalValuePrevious float64 `json:"total_value_previous"`
	OverallGrowthPct   float64 `json:"overall_growth_pct"`
}

// DashboardSummary is the top-level dashboard payload for one (month, year).
type DashboardSummary struct {
	Sales      SalesSummary      `json:"sales"`
	Collection CollectionSummary `json:"collection"`
	Products   ProductSummary    `json:"products"`
	Month      int               `json:"month"`
	Year       int               `json:"year"`
	MonthName  string            `json:"month_name,omitempty"`
	FiscalYear string            `json:"fiscal_year,omitempty"`
}

// SalesRow is a fact_sales row joined with its region and time dimensions.
type SalesRow struct {
	FactID        int64   `json:"fact_id" db:"fact_id"`
	RegionID      int64   `json:"region_id" db:"region_id"`
	AreaName      string  `json:"area_name" db:"area_name"`
	Division      string  `json:"division" db:"division"`
	Zone          string  `json:"zone" db:"zone"`
	Month         int     `json:"month" db:"month"`
	Year          int     `json:"year" db:"year"`
	MonthName     string  `json:"month_name" db:"month_name"`
	SalesTarget   float64 `json:"sales_target" db:"sales_target"`
	GrossSales    float64 `json:"gross_sales" db:"gross_sales"`
	SalesReturn   float64 `json:"sales_return" db:"sales_return"`
	NetSales      float64 `json:"net_sales" db:"net_sales"`
	SalesAchPct   float64 `json:"sales_ach_pct" db:"sales_achievement_pct"`
	ReturnRatePct float64 `json:"return_rate_pct" db:"return_rate_pct"`
}

// CollectionRow is a fact_sales row projected onto its collection measures.
type CollectionRow struct {
	FactID     int64   `json:"fact_id" db:"fact_id"`
	RegionID   int64   `json:"region_id" db:"region_id"`
	AreaName   string  `json:"area_name" db:"area_name"`
	Division   string  `json:"division" db:"division"`
	Zone       string  `json:"zone" db:"zone"`
	Month      int     `json:"month" db:"month"`
	Year       int     `json:"year" db:"year"`
	MonthName  string  `json:"month_name" db:"month_name"`
	CollTarget float64 `json:"coll_target" db:"coll_target"`
	TotalColl  float64 `json:"total_coll" db:"total_collection"`
	CollAchPct float64 `json:"coll_ach_pct" db:"coll_achievement_pct"`
	CashColl   float64 `json:"cash_coll" db:"cash_collection"`
	CreditColl float64 `json:"credit_coll" db:"credit_collection"`
	SeedColl   float64 `json:"seed_coll" db:"seed_collection"`
	Outstand   float64 `json:"outstanding" db:"outstanding"`
}

// ProductSalesRow is a fact_product_performance row joined with its product
// and time dimensions.
type ProductSalesRow struct {
	FactID          int64   `json:"fact_id" db:"fact_id"`
	ProductID       int64   `json:"product_id" db:"product_id"`
	ProductName     string  `json:"product_name" db:"product_name"`
	Category        string  `json:"product_category" db:"product_category"`
	Month           int     `json:"month" db:"month"`
	Year            int     `json:"year" db:"year"`
	MonthName       string  `json:"month_name" db:"month_name"`
	SalesValue      float64 `json:"sales_value" db:"sales_value"`
	SalesVolume     float64 `json:"sales_volume" db:"sales_volume"`
	PrevYearValue   float64 `json:"prev_year_value" db:"prev_year_value"`
	PrevYearVolume  float64 `json:"prev_year_volume" db:"prev_year_volume"`
	ValueGrowthPct  float64 `json:"value_growth_pct" db:"value_growth_pct"`
	VolumeGrowthPct float64 `json:"volume_growth_pct" db:"volume_growth_pct"`
}

// ProductComparison is a per-product comparison of two calendar years.
type ProductComparison struct {
	ProductID       int64   `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Category        string  `json:"product_category"`
	ValuePrevious   float64 `json:"value_previous"`
	ValueCurrent    float64 `json:"value_current"`
	ValueGrowthPct  float64 `json:"value_growth_pct"`
	VolumePrevious  float64 `json:"volume_previous"`
	VolumeCurrent   float64 `json:"volume_current"`
	VolumeGrowthPct float64 `json:"volume_growth_pct"`
}

// ZoneSales is the zone-level rollup of sales and collection.
type ZoneSales struct {
	Zone            string  `json:"zone" db:"zone"`
	TotalTarget     float64 `json:"total_target" db:"total_target"`
	TotalSales      float64 `json:"total_sales" db:"total_sales"`
	TotalCollection float64 `json:"total_collection" db:"total_collection"`
	AchievementPct  float64 `json:"achievement_pct" db:"-"`
}

// TopProduct is one entry of the top-N products by sales value within a year.
type TopProduct struct {
	ProductID   int64   `json:"product_id" db:"product_id"`
	ProductName string  `json:"product_name" db:"product_name"`
	Category    string  `json:"product_category" db:"product_category"`
	TotalValue  float64 `json:"total_value" db:"total_value"`
	TotalVolume float64 `json:"total_volume" db:"total_volume"`
}

// MonthlyTrendPoint is one month of the sales/collection trend series.
type MonthlyTrendPoint struct {
	Month           int     `json:"month" db:"month"`
	MonthName       string  `json:"month_name" db:"month_name"`
	TotalSales      float64 `json:"total_sales" db:"total_sales"`
	TotalCollection float64 `json:"total_collection" db:"total_collection"`
}
