package main

import (
	"flag"
	"log/slog"
	"os"

	"returnsight/internal/config"
	"returnsight/internal/dataprocessing"
	"returnsight/internal/exporter"
	"returnsight/internal/infrastructure"
	"returnsight/pkg/contracts/domain"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	input := flag.String("in", "", "raw extract path (overrides configuration)")
	output := flag.String("out", "", "cleaned table path (overrides configuration)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *input != "" {
		cfg.Paths.RawFile = *input
	}
	if *output != "" {
		cfg.Paths.CleanedFile = *output
	}

	logger := infrastructure.InitializeLogger(cfg.Logging).With(
		slog.String("run_id", infrastructure.NewRunID()),
		slog.String("stage", "clean"))

	if err := cfg.EnsureDirs(); err != nil {
		logger.Error("failed to prepare directories", "error", err)
		os.Exit(1)
	}

	logger.Info("loading raw data", slog.String("path", cfg.Paths.RawFile))
	records, err := dataprocessing.ReadRawCSV(cfg.Paths.RawFile)
	if err != nil {
		logger.Error("failed to load raw data", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded raw data", slog.Int("record_count", len(records)))

	cleaned := dataprocessing.NewCleaner(cfg.Cleaning, logger).Clean(records)

	err = exporter.WriteCSV(cfg.Paths.CleanedFile, exporter.WriteOptions{
		Headers: domain.CleanedHeader(),
		Records: dataprocessing.CleanedRows(cleaned),
	})
	if err != nil {
		logger.Error("failed to write cleaned table", "error", err)
		os.Exit(1)
	}

	logger.Info("data cleaning completed",
		slog.String("output", cfg.Paths.CleanedFile),
		slog.Int("record_count", len(cleaned)))
}
