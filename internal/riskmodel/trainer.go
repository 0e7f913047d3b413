package riskmodel

import (
	"log/slog"
	"sort"

	"returnsight/internal/config"
	"returnsight/pkg/contracts/domain"
)

// Trainer orchestrates feature preparation, the train/test split, the model
// fit, and the held-out evaluation.
type Trainer struct {
	cfg    config.ModelConfig
	logger *slog.Logger
}

// NewTrainer creates a trainer with the given model configuration
func NewTrainer(cfg config.ModelConfig, logger *slog.Logger) *Trainer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Trainer{cfg: cfg, logger: logger}
}

// TrainResult bundles the trained model with the frozen artifacts needed to
// score future records consistently, plus the held-out evaluation metrics.
type TrainResult struct {
	Model        *LogisticModel
	Encoder      *Encoder
	Standardizer *Standardizer
	Metrics      Metrics
}

// Train builds the frozen encoder from the full population, splits it
// stratified by the return flag, standardizes on training statistics only,
// fits the classifier, and evaluates on the held-out split.
func (t *Trainer) Train(records []domain.EnhancedRecord) (*TrainResult, error) {
	encoder := FitEncoder(records)
	X := BuildFeatures(records, encoder)
	y := Labels(records)

	t.logger.Info("prepared features for modeling",
		slog.Int("record_count", len(records)),
		slog.Int("feature_count", NumFeatures),
		slog.Int("categories", encoder.Cardinality(FieldCategory)),
		slog.Int("versions", encoder.Cardinality(FieldVersionClean)))

	split, err := StratifiedSplit(X, y, t.cfg.TestFraction, t.cfg.RandomSeed)
	if err != nil {
		return nil, err
	}

	standardizer := FitStandardizer(split.TrainX)
	trainX := standardizer.Transform(split.TrainX)
	testX := standardizer.Transform(split.TestX)

	params := TrainParams{
		LearningRate: t.cfg.LearningRate,
		Iterations:   t.cfg.Iterations,
		L2Penalty:    t.cfg.L2Penalty,
	}
	model, err := TrainLogistic(trainX, split.TrainY, params)
	if err != nil {
		return nil, err
	}

	metrics := Evaluate(model, testX, split.TestY)
	metrics.TrainSize = len(split.TrainY)

	t.logger.Info("model evaluation complete",
		slog.Int("train_size", metrics.TrainSize),
		slog.Int("test_size", metrics.TestSize),
		slog.Float64("accuracy", metrics.Accuracy),
		slog.Float64("roc_auc", metrics.ROCAUC),
		slog.Float64("return_precision", metrics.Return.Precision),
		slog.Float64("return_recall", metrics.Return.Recall))

	return &TrainResult{
		Model:        model,
		Encoder:      encoder,
		Standardizer: standardizer,
		Metrics:      metrics,
	}, nil
}

// Score applies the frozen encoding and standardization to a record
// population (which may include training rows), predicts per-row return
// probability, and buckets each record into a risk tier. Unseen categorical
// values fall into the unknown sentinel bucket.
func (r *TrainResult) Score(records []domain.EnhancedRecord) []domain.ScoredRecord {
	X := r.Standardizer.Transform(BuildFeatures(records, r.Encoder))
	return r.attachScores(records, r.Model.PredictProbaAll(X))
}

// ScoreStrict is Score with the original fatal semantics for unseen
// categorical values.
func (r *TrainResult) ScoreStrict(records []domain.EnhancedRecord) ([]domain.ScoredRecord, error) {
	X, err := BuildFeaturesStrict(records, r.Encoder)
	if err != nil {
		return nil, err
	}
	return r.attachScores(records, r.Model.PredictProbaAll(r.Standardizer.Transform(X))), nil
}

func (r *TrainResult) attachScores(records []domain.EnhancedRecord, probs []float64) []domain.ScoredRecord {
	scored := make([]domain.ScoredRecord, 0, len(records))
	for i, rec := range records {
		scored = append(scored, domain.ScoredRecord{
			EnhancedRecord:    rec,
			ReturnProbability: probs[i],
			RiskTier:          domain.TierForProbability(probs[i]),
		})
	}
	return scored
}

// HighRisk extracts the records whose return probability exceeds the high
// risk threshold, sorted by probability descending.
func HighRisk(scored []domain.ScoredRecord) []domain.ScoredRecord {
	out := make([]domain.ScoredRecord, 0)
	for _, r := range scored {
		if r.ReturnProbability > domain.HighRiskThreshold {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReturnProbability > out[j].ReturnProbability
	})
	return out
}
