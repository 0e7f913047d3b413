package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "returnsight/internal/errors"
)

// Config represents the complete pipeline configuration. Each stage receives
// this struct explicitly; there is no package-level path state.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Model    ModelConfig    `yaml:"model" envconfig:"MODEL"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
}

// PathsConfig contains every file path the pipeline reads or writes.
// Relative paths are resolved against DataDir.
type PathsConfig struct {
	DataDir      string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data" validate:"required"`
	RawFile      string `yaml:"raw_file" envconfig:"RAW_FILE" default:"raw_orders.csv" validate:"required"`
	CleanedFile  string `yaml:"cleaned_file" envconfig:"CLEANED_FILE" default:"cleaned_orders.csv" validate:"required"`
	AnalysisFile string `yaml:"analysis_file" envconfig:"ANALYSIS_FILE" default:"return_analysis_dataset.csv" validate:"required"`
	ScoredFile   string `yaml:"scored_file" envconfig:"SCORED_FILE" default:"scored_orders.csv" validate:"required"`
	HighRiskFile string `yaml:"high_risk_file" envconfig:"HIGH_RISK_FILE" default:"high_risk_products.csv" validate:"required"`
	ReportsDir   string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"reports" validate:"required"`
	ChartsDir    string `yaml:"charts_dir" envconfig:"CHARTS_DIR" default:"charts" validate:"required"`
}

// CleaningConfig contains the cleaning-stage parameters
type CleaningConfig struct {
	// DateFormat is a Go reference-time layout for the raw Date column.
	DateFormat string `yaml:"date_format" envconfig:"DATE_FORMAT" default:"2006-01-02" validate:"required"`
	// ReturnThreshold marks a row as a return when its final quantity is
	// strictly below this value.
	ReturnThreshold float64 `yaml:"return_threshold" envconfig:"RETURN_THRESHOLD" default:"0"`
}

// AnalysisConfig contains the descriptive-aggregation parameters
type AnalysisConfig struct {
	// MinVersionOrders drops version groups with at most this many orders
	// from the ranked version view.
	MinVersionOrders int `yaml:"min_version_orders" envconfig:"MIN_VERSION_ORDERS" default:"10" validate:"min=0"`
}

// ModelConfig contains the risk-model training parameters
type ModelConfig struct {
	TestFraction float64 `yaml:"test_fraction" envconfig:"TEST_FRACTION" default:"0.2" validate:"gt=0,lt=1"`
	RandomSeed   int64   `yaml:"random_seed" envconfig:"RANDOM_SEED" default:"42"`
	LearningRate float64 `yaml:"learning_rate" envconfig:"LEARNING_RATE" default:"0.1" validate:"gt=0"`
	Iterations   int     `yaml:"iterations" envconfig:"ITERATIONS" default:"1000" validate:"min=1"`
	L2Penalty    float64 `yaml:"l2_penalty" envconfig:"L2_PENALTY" default:"0.0001" validate:"min=0"`
}

// Load loads configuration from environment variables and an optional YAML
// file. Environment variables win over file values.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if configFile != "" {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, apperrors.NewConfigError(
				fmt.Sprintf("failed to load config file %s", configFile), err)
		}
	}

	if err := envconfig.Process("RETURNS", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	cfg.resolvePaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFromFile overlays YAML values onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks structural constraints on the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return apperrors.NewConfigError("config validation failed", err)
	}
	return nil
}

// resolvePaths anchors relative file paths under DataDir and chart/report
// directories under the working directory.
func (c *Config) resolvePaths() {
	for _, p := range []*string{
		&c.Paths.RawFile,
		&c.Paths.CleanedFile,
		&c.Paths.AnalysisFile,
		&c.Paths.ScoredFile,
		&c.Paths.HighRiskFile,
	} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(c.Paths.DataDir, *p)
		}
	}
}

// EnsureDirs creates the data, reports, and charts directories if missing
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.ReportsDir, c.Paths.ChartsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to create directory %s", dir), err)
		}
	}
	return nil
}
