package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"returnsight/internal/analytics"
	"returnsight/internal/config"
	"returnsight/internal/dataprocessing"
	"returnsight/internal/exporter"
	"returnsight/internal/infrastructure"
	"returnsight/pkg/contracts/domain"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.InitializeLogger(cfg.Logging).With(
		slog.String("run_id", infrastructure.NewRunID()),
		slog.String("stage", "analyze"))

	if err := cfg.EnsureDirs(); err != nil {
		logger.Error("failed to prepare directories", "error", err)
		os.Exit(1)
	}

	logger.Info("loading cleaned data", slog.String("path", cfg.Paths.CleanedFile))
	cleaned, err := dataprocessing.ReadCleanedCSV(cfg.Paths.CleanedFile)
	if err != nil {
		logger.Error("failed to load cleaned data", "error", err)
		os.Exit(1)
	}

	enhanced := dataprocessing.Enhance(cleaned)

	overall := analytics.Overall(enhanced)
	logger.Info("overall return metrics",
		slog.Int("total_orders", overall.TotalOrders),
		slog.Int("total_returns", overall.TotalReturns),
		slog.Float64("overall_return_rate", overall.ReturnRate),
		slog.Float64("revenue_lost_to_returns", overall.RevenueLostToReturns))

	tables := []struct {
		file    string
		headers []string
		records [][]string
	}{
		{
			"return_analysis_by_category.csv",
			exporter.CategorySummaryHeader(),
			exporter.CategorySummaryRows(analytics.ByCategory(enhanced)),
		},
		{
			"return_analysis_by_month.csv",
			exporter.MonthlySummaryHeader(),
			exporter.MonthlySummaryRows(analytics.ByMonth(enhanced)),
		},
		{
			"return_analysis_by_version.csv",
			exporter.VersionSummaryHeader(),
			exporter.VersionSummaryRows(analytics.ByVersion(enhanced, cfg.Analysis.MinVersionOrders)),
		},
	}
	for _, table := range tables {
		path := filepath.Join(cfg.Paths.ReportsDir, table.file)
		if err := exporter.WriteCSV(path, exporter.WriteOptions{
			Headers: table.headers,
			Records: table.records,
		}); err != nil {
			logger.Error("failed to write aggregate table", "error", err, "file", path)
			os.Exit(1)
		}
	}

	err = exporter.WriteCSV(cfg.Paths.AnalysisFile, exporter.WriteOptions{
		Headers: domain.EnhancedHeader(),
		Records: dataprocessing.EnhancedRows(enhanced),
	})
	if err != nil {
		logger.Error("failed to write analysis dataset", "error", err)
		os.Exit(1)
	}

	logger.Info("return analysis completed",
		slog.String("analysis_dataset", cfg.Paths.AnalysisFile),
		slog.String("reports_dir", cfg.Paths.ReportsDir))
}
