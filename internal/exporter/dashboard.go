package exporter

import (
	"strconv"

	"returnsight/pkg/contracts/domain"
)

// Dashboard table schemas. Column names are stable: the downstream BI tool
// binds to them.

// SummaryStatsHeader returns the single-row global summary columns
func SummaryStatsHeader() []string {
	return []string{
		"total_orders", "total_returns", "overall_return_rate",
		"total_revenue", "revenue_lost_to_returns",
		"high_risk_products_count", "high_risk_revenue_exposure",
	}
}

// SummaryStatsRows encodes the global summary as one row
func SummaryStatsRows(s domain.SummaryStats) [][]string {
	return [][]string{{
		strconv.Itoa(s.TotalOrders),
		strconv.Itoa(s.TotalReturns),
		formatFloat(s.OverallReturnRate),
		formatFloat(s.TotalRevenue),
		formatFloat(s.RevenueLostToReturns),
		strconv.Itoa(s.HighRiskProductCount),
		formatFloat(s.HighRiskRevenueExposure),
	}}
}

// CategorySummaryHeader returns the per-category table columns
func CategorySummaryHeader() []string {
	return []string{
		"Category", "orders", "returns", "return_rate",
		"final_revenue", "total_revenue", "revenue_loss",
	}
}

// CategorySummaryRows encodes the per-category table
func CategorySummaryRows(summaries []domain.CategorySummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Category,
			strconv.Itoa(s.Orders),
			strconv.Itoa(s.Returns),
			formatFloat(s.ReturnRate),
			formatFloat(s.FinalRevenueAbs),
			formatFloat(s.TotalRevenueAbs),
			formatFloat(s.RevenueLoss),
		})
	}
	return rows
}

// MonthlySummaryHeader returns the monthly trend table columns
func MonthlySummaryHeader() []string {
	return []string{"year_month", "orders", "returns", "return_rate", "revenue"}
}

// MonthlySummaryRows encodes the monthly trend table
func MonthlySummaryRows(summaries []domain.MonthlySummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Month,
			strconv.Itoa(s.Orders),
			strconv.Itoa(s.Returns),
			formatFloat(s.ReturnRate),
			formatFloat(s.FinalRevenueAbs),
		})
	}
	return rows
}

// VersionSummaryHeader returns the per-version table columns
func VersionSummaryHeader() []string {
	return []string{"Version_clean", "total_orders", "returns", "return_rate"}
}

// VersionSummaryRows encodes the per-version table
func VersionSummaryRows(summaries []domain.VersionSummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.VersionClean,
			strconv.Itoa(s.Orders),
			strconv.Itoa(s.Returns),
			formatFloat(s.ReturnRate),
		})
	}
	return rows
}

// HighRiskSummaryHeader returns the high-risk-by-category table columns
func HighRiskSummaryHeader() []string {
	return []string{"Category", "high_risk_count", "avg_risk_score", "revenue_exposure"}
}

// HighRiskSummaryRows encodes the high-risk-by-category table
func HighRiskSummaryRows(summaries []domain.HighRiskSummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Category,
			strconv.Itoa(s.HighRiskCount),
			formatFloat(s.AvgRiskScore),
			formatFloat(s.RevenueExposure),
		})
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
