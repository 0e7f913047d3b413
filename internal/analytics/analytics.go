package analytics

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"returnsight/pkg/contracts/domain"
)

// OverallMetrics holds the population-level descriptive statistics
type OverallMetrics struct {
	TotalOrders          int
	TotalReturns         int
	ReturnRate           float64
	TotalRevenue         float64
	RevenueLostToReturns float64
}

// Overall computes the population-level metrics over the analysis dataset
func Overall(records []domain.EnhancedRecord) OverallMetrics {
	m := OverallMetrics{TotalOrders: len(records)}
	for _, r := range records {
		m.TotalReturns += r.IsReturn
		m.TotalRevenue += r.TotalRevenueAbs
		m.RevenueLostToReturns += r.RevenueLoss
	}
	if m.TotalOrders > 0 {
		m.ReturnRate = float64(m.TotalReturns) / float64(m.TotalOrders)
	}
	return m
}

// ByCategory groups records by category and ranks groups by return rate,
// highest first. Ties break on category name for deterministic output.
func ByCategory(records []domain.EnhancedRecord) []domain.CategorySummary {
	groups := make(map[string]*domain.CategorySummary)
	for _, r := range records {
		g, ok := groups[r.Category]
		if !ok {
			g = &domain.CategorySummary{Category: r.Category}
			groups[r.Category] = g
		}
		g.Orders++
		g.Returns += r.IsReturn
		g.FinalRevenueAbs += r.FinalRevenueAbs
		g.TotalRevenueAbs += r.TotalRevenueAbs
		g.RevenueLoss += r.RevenueLoss
	}

	out := make([]domain.CategorySummary, 0, len(groups))
	for _, g := range groups {
		g.ReturnRate = rate(g.Returns, g.Orders)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReturnRate != out[j].ReturnRate {
			return out[i].ReturnRate > out[j].ReturnRate
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ByMonth groups records by calendar month in chronological order. Records
// whose date failed to parse carry no month and are excluded from this view
// only.
func ByMonth(records []domain.EnhancedRecord) []domain.MonthlySummary {
	groups := make(map[string]*domain.MonthlySummary)
	skipped := 0
	for _, r := range records {
		if r.OrderMonth == "" {
			skipped++
			continue
		}
		g, ok := groups[r.OrderMonth]
		if !ok {
			g = &domain.MonthlySummary{Month: r.OrderMonth}
			groups[r.OrderMonth] = g
		}
		g.Orders++
		g.Returns += r.IsReturn
		g.FinalRevenueAbs += r.FinalRevenueAbs
	}
	if skipped > 0 {
		slog.Debug("excluded records without a valid date from monthly view",
			slog.Int("skipped", skipped))
	}

	out := make([]domain.MonthlySummary, 0, len(groups))
	for _, g := range groups {
		g.ReturnRate = rate(g.Returns, g.Orders)
		out = append(out, *g)
	}
	// "2006-01" keys sort chronologically as strings.
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ByVersion groups records by normalized version and ranks groups by return
// rate, highest first. Groups with at most minOrders orders are dropped to
// suppress noise from rare variants.
func ByVersion(records []domain.EnhancedRecord, minOrders int) []domain.VersionSummary {
	groups := make(map[string]*domain.VersionSummary)
	for _, r := range records {
		g, ok := groups[r.VersionClean]
		if !ok {
			g = &domain.VersionSummary{VersionClean: r.VersionClean}
			groups[r.VersionClean] = g
		}
		g.Orders++
		g.Returns += r.IsReturn
	}

	out := make([]domain.VersionSummary, 0, len(groups))
	for _, g := range groups {
		if g.Orders <= minOrders {
			continue
		}
		g.ReturnRate = rate(g.Returns, g.Orders)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReturnRate != out[j].ReturnRate {
			return out[i].ReturnRate > out[j].ReturnRate
		}
		return out[i].VersionClean < out[j].VersionClean
	})
	return out
}

// ByHighRiskCategory summarizes the high-risk product list per category,
// largest group first.
func ByHighRiskCategory(records []domain.ScoredRecord) []domain.HighRiskSummary {
	probs := make(map[string][]float64)
	exposure := make(map[string]float64)
	for _, r := range records {
		probs[r.Category] = append(probs[r.Category], r.ReturnProbability)
		exposure[r.Category] += r.FinalRevenueAbs
	}

	out := make([]domain.HighRiskSummary, 0, len(probs))
	for category, p := range probs {
		out = append(out, domain.HighRiskSummary{
			Category:        category,
			HighRiskCount:   len(p),
			AvgRiskScore:    stat.Mean(p, nil),
			RevenueExposure: exposure[category],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HighRiskCount != out[j].HighRiskCount {
			return out[i].HighRiskCount > out[j].HighRiskCount
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// BuildSummaryStats assembles the single-row global summary from the
// analysis dataset and the high-risk product list.
func BuildSummaryStats(records []domain.EnhancedRecord, highRisk []domain.ScoredRecord) domain.SummaryStats {
	overall := Overall(records)

	stats := domain.SummaryStats{
		TotalOrders:          overall.TotalOrders,
		TotalReturns:         overall.TotalReturns,
		OverallReturnRate:    overall.ReturnRate,
		TotalRevenue:         overall.TotalRevenue,
		RevenueLostToReturns: overall.RevenueLostToReturns,
		HighRiskProductCount: len(highRisk),
	}
	for _, r := range highRisk {
		stats.HighRiskRevenueExposure += r.FinalRevenueAbs
	}
	return stats
}

func rate(returns, orders int) float64 {
	if orders == 0 {
		return 0
	}
	return float64(returns) / float64(orders)
}
