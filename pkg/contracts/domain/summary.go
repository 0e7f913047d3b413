package domain

// CategorySummary aggregates orders and returns for a single product category.
type CategorySummary struct {
	Category        string  `json:"category" csv:"Category"`
	Orders          int     `json:"orders" csv:"orders"`
	Returns         int     `json:"returns" csv:"returns"`
	ReturnRate      float64 `json:"return_rate" csv:"return_rate"`
	FinalRevenueAbs float64 `json:"final_revenue" csv:"final_revenue"`
	TotalRevenueAbs float64 `json:"total_revenue" csv:"total_revenue"`
	RevenueLoss     float64 `json:"revenue_loss" csv:"revenue_loss"`
}

// MonthlySummary aggregates orders and returns for one calendar month.
// Month is formatted "2006-01" and rows are kept in chronological order.
type MonthlySummary struct {
	Month           string  `json:"month" csv:"year_month"`
	Orders          int     `json:"orders" csv:"orders"`
	Returns         int     `json:"returns" csv:"returns"`
	ReturnRate      float64 `json:"return_rate" csv:"return_rate"`
	FinalRevenueAbs float64 `json:"revenue" csv:"revenue"`
}

// VersionSummary aggregates orders and returns for one normalized version
// (size/color variant). Views over version summaries drop groups at or below
// a minimum order count to suppress noise from rare variants.
type VersionSummary struct {
	VersionClean string  `json:"version_clean" csv:"Version_clean"`
	Orders       int     `json:"orders" csv:"total_orders"`
	Returns      int     `json:"returns" csv:"returns"`
	ReturnRate   float64 `json:"return_rate" csv:"return_rate"`
}

// HighRiskSummary aggregates the high-risk record list per category.
type HighRiskSummary struct {
	Category        string  `json:"category" csv:"Category"`
	HighRiskCount   int     `json:"high_risk_count" csv:"high_risk_count"`
	AvgRiskScore    float64 `json:"avg_risk_score" csv:"avg_risk_score"`
	RevenueExposure float64 `json:"revenue_exposure" csv:"revenue_exposure"`
}

// SummaryStats is the single-row global summary exported for the dashboard.
type SummaryStats struct {
	TotalOrders             int     `json:"total_orders" csv:"total_orders"`
	TotalReturns            int     `json:"total_returns" csv:"total_returns"`
	OverallReturnRate       float64 `json:"overall_return_rate" csv:"overall_return_rate"`
	TotalRevenue            float64 `json:"total_revenue" csv:"total_revenue"`
	RevenueLostToReturns    float64 `json:"revenue_lost_to_returns" csv:"revenue_lost_to_returns"`
	HighRiskProductCount    int     `json:"high_risk_products_count" csv:"high_risk_products_count"`
	HighRiskRevenueExposure float64 `json:"high_risk_revenue_exposure" csv:"high_risk_revenue_exposure"`
}
