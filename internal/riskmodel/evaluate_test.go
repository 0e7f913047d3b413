package riskmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateConfusionMatrixAndClassMetrics(t *testing.T) {
	// A fixed model over one informative feature so predictions are known:
	// p >= 0.5 iff the feature is non-negative.
	m := &LogisticModel{Weights: make([]float64, NumFeatures)}
	m.Weights[FeatFinalRevenueAbs] = 10

	rowWith := func(v float64) []float64 {
		row := make([]float64, NumFeatures)
		row[FeatFinalRevenueAbs] = v
		return row
	}

	X := [][]float64{
		rowWith(1),  // predicted 1, actual 1 -> TP
		rowWith(1),  // predicted 1, actual 0 -> FP
		rowWith(-1), // predicted 0, actual 1 -> FN
		rowWith(-1), // predicted 0, actual 0 -> TN
		rowWith(-1), // predicted 0, actual 0 -> TN
	}
	y := []float64{1, 0, 1, 0, 0}

	metrics := Evaluate(m, X, y)

	assert.Equal(t, 1, metrics.Confusion.TruePositive)
	assert.Equal(t, 1, metrics.Confusion.FalsePositive)
	assert.Equal(t, 1, metrics.Confusion.FalseNegative)
	assert.Equal(t, 2, metrics.Confusion.TrueNegative)

	assert.InDelta(t, 3.0/5.0, metrics.Accuracy, 1e-12)

	assert.InDelta(t, 0.5, metrics.Return.Precision, 1e-12)
	assert.InDelta(t, 0.5, metrics.Return.Recall, 1e-12)
	assert.InDelta(t, 0.5, metrics.Return.F1, 1e-12)
	assert.Equal(t, 2, metrics.Return.Support)

	assert.InDelta(t, 2.0/3.0, metrics.Purchase.Precision, 1e-12)
	assert.InDelta(t, 2.0/3.0, metrics.Purchase.Recall, 1e-12)
	assert.Equal(t, 3, metrics.Purchase.Support)

	assert.Equal(t, 5, metrics.TestSize)
}

func TestROCAUCPerfectRanking(t *testing.T) {
	scores := []float64{0.1, 0.2, 0.8, 0.9}
	y := []float64{0, 0, 1, 1}
	assert.InDelta(t, 1.0, rocAUC(scores, y), 1e-12)
}

func TestROCAUCInvertedRanking(t *testing.T) {
	scores := []float64{0.9, 0.8, 0.2, 0.1}
	y := []float64{0, 0, 1, 1}
	assert.InDelta(t, 0.0, rocAUC(scores, y), 1e-12)
}

func TestROCAUCRandomRankingIsHalf(t *testing.T) {
	scores := []float64{0.5, 0.5, 0.5, 0.5}
	y := []float64{0, 1, 0, 1}
	assert.InDelta(t, 0.5, rocAUC(scores, y), 1e-9)
}

func TestROCAUCBounds(t *testing.T) {
	scores := []float64{0.3, 0.7, 0.4, 0.6, 0.55}
	y := []float64{0, 1, 1, 0, 1}

	auc := rocAUC(scores, y)
	assert.GreaterOrEqual(t, auc, 0.0)
	assert.LessOrEqual(t, auc, 1.0)
}

func TestROCAUCDegenerateLabels(t *testing.T) {
	require.Equal(t, 0.0, rocAUC([]float64{0.5, 0.6}, []float64{1, 1}))
	require.Equal(t, 0.0, rocAUC(nil, nil))
}
