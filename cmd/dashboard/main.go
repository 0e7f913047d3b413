package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"returnsight/internal/analytics"
	"returnsight/internal/charts"
	"returnsight/internal/config"
	"returnsight/internal/dataprocessing"
	"returnsight/internal/exporter"
	"returnsight/internal/infrastructure"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	topN := flag.Int("top", 10, "number of categories shown in ranked charts")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.InitializeLogger(cfg.Logging).With(
		slog.String("run_id", infrastructure.NewRunID()),
		slog.String("stage", "dashboard"))

	if err := cfg.EnsureDirs(); err != nil {
		logger.Error("failed to prepare directories", "error", err)
		os.Exit(1)
	}

	enhanced, err := dataprocessing.ReadEnhancedCSV(cfg.Paths.AnalysisFile)
	if err != nil {
		logger.Error("failed to load analysis dataset", "error", err,
			"hint", "run the analyze stage first")
		os.Exit(1)
	}
	highRisk, err := dataprocessing.ReadHighRiskCSV(cfg.Paths.HighRiskFile)
	if err != nil {
		logger.Error("failed to load high-risk product list", "error", err,
			"hint", "run the riskmodel stage first")
		os.Exit(1)
	}

	tables := exporter.DashboardTables{
		Stats:    analytics.BuildSummaryStats(enhanced, highRisk),
		Category: analytics.ByCategory(enhanced),
		Monthly:  analytics.ByMonth(enhanced),
		HighRisk: analytics.ByHighRiskCategory(highRisk),
	}

	exports := []struct {
		file    string
		headers []string
		records [][]string
	}{
		{"dashboard_summary_stats.csv", exporter.SummaryStatsHeader(), exporter.SummaryStatsRows(tables.Stats)},
		{"dashboard_category_summary.csv", exporter.CategorySummaryHeader(), exporter.CategorySummaryRows(tables.Category)},
		{"dashboard_monthly_trends.csv", exporter.MonthlySummaryHeader(), exporter.MonthlySummaryRows(tables.Monthly)},
		{"dashboard_high_risk_summary.csv", exporter.HighRiskSummaryHeader(), exporter.HighRiskSummaryRows(tables.HighRisk)},
	}
	for _, export := range exports {
		path := filepath.Join(cfg.Paths.ReportsDir, export.file)
		if err := exporter.WriteCSV(path, exporter.WriteOptions{
			Headers:   export.headers,
			Records:   export.records,
			BOMPrefix: true,
		}); err != nil {
			logger.Error("failed to write dashboard table", "error", err, "file", path)
			os.Exit(1)
		}
	}

	workbookPath := filepath.Join(cfg.Paths.ReportsDir, "dashboard.xlsx")
	if err := exporter.WriteWorkbook(workbookPath, tables); err != nil {
		logger.Error("failed to write dashboard workbook", "error", err)
		os.Exit(1)
	}

	chartExports := []struct {
		name   string
		render func(string) error
	}{
		{"return_rate_by_category.png", func(p string) error {
			return charts.ReturnRateByCategory(p, tables.Category, *topN)
		}},
		{"monthly_return_trends.png", func(p string) error {
			return charts.MonthlyTrend(p, tables.Monthly)
		}},
		{"high_risk_by_category.png", func(p string) error {
			return charts.HighRiskByCategory(p, tables.HighRisk, *topN)
		}},
	}
	for _, chart := range chartExports {
		path := filepath.Join(cfg.Paths.ChartsDir, chart.name)
		if err := chart.render(path); err != nil {
			logger.Error("failed to render chart", "error", err, "file", path)
			os.Exit(1)
		}
	}

	logger.Info("dashboard export completed",
		slog.Int("total_orders", tables.Stats.TotalOrders),
		slog.Float64("overall_return_rate", tables.Stats.OverallReturnRate),
		slog.Int("high_risk_products", tables.Stats.HighRiskProductCount),
		slog.Float64("high_risk_revenue_exposure", tables.Stats.HighRiskRevenueExposure),
		slog.String("workbook", workbookPath))
}
