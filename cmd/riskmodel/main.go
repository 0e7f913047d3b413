package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"returnsight/internal/charts"
	"returnsight/internal/config"
	"returnsight/internal/dataprocessing"
	"returnsight/internal/exporter"
	"returnsight/internal/infrastructure"
	"returnsight/internal/riskmodel"
	"returnsight/pkg/contracts/domain"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	strict := flag.Bool("strict", false, "fail scoring on categories absent from the trained encoding")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.InitializeLogger(cfg.Logging).With(
		slog.String("run_id", infrastructure.NewRunID()),
		slog.String("stage", "riskmodel"))

	if err := cfg.EnsureDirs(); err != nil {
		logger.Error("failed to prepare directories", "error", err)
		os.Exit(1)
	}

	logger.Info("loading analysis dataset", slog.String("path", cfg.Paths.AnalysisFile))
	records, err := dataprocessing.ReadEnhancedCSV(cfg.Paths.AnalysisFile)
	if err != nil {
		logger.Error("failed to load analysis dataset", "error", err,
			"hint", "run the analyze stage first")
		os.Exit(1)
	}

	trainer := riskmodel.NewTrainer(cfg.Model, logger)
	result, err := trainer.Train(records)
	if err != nil {
		logger.Error("model training failed", "error", err)
		os.Exit(1)
	}

	var scored []domain.ScoredRecord
	if *strict {
		scored, err = result.ScoreStrict(records)
		if err != nil {
			logger.Error("strict scoring failed", "error", err)
			os.Exit(1)
		}
	} else {
		scored = result.Score(records)
	}

	highRisk := riskmodel.HighRisk(scored)
	logger.Info("identified high-risk products",
		slog.Int("high_risk_count", len(highRisk)),
		slog.Float64("high_risk_rate", float64(len(highRisk))/float64(len(scored))))

	err = exporter.WriteCSV(cfg.Paths.ScoredFile, exporter.WriteOptions{
		Headers: domain.ScoredHeader(),
		Records: dataprocessing.ScoredRows(scored),
	})
	if err != nil {
		logger.Error("failed to write scored table", "error", err)
		os.Exit(1)
	}

	err = exporter.WriteCSV(cfg.Paths.HighRiskFile, exporter.WriteOptions{
		Headers: domain.HighRiskHeader(),
		Records: dataprocessing.HighRiskRows(highRisk),
	})
	if err != nil {
		logger.Error("failed to write high-risk product list", "error", err)
		os.Exit(1)
	}

	metricsPath := filepath.Join(cfg.Paths.ReportsDir, "model_metrics.json")
	if err := exporter.WriteJSON(metricsPath, result.Metrics); err != nil {
		logger.Error("failed to write model metrics", "error", err)
		os.Exit(1)
	}

	matrixPath := filepath.Join(cfg.Paths.ChartsDir, "confusion_matrix.png")
	if err := charts.ConfusionMatrix(matrixPath, result.Metrics.Confusion); err != nil {
		logger.Error("failed to render confusion matrix", "error", err)
		os.Exit(1)
	}

	logger.Info("return prediction completed",
		slog.String("scored_table", cfg.Paths.ScoredFile),
		slog.String("high_risk_list", cfg.Paths.HighRiskFile),
		slog.Float64("roc_auc", result.Metrics.ROCAUC))
}
