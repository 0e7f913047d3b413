package riskmodel

import (
	"math"

	"gonum.org/v1/gonum/floats"

	apperrors "returnsight/internal/errors"
)

// TrainParams controls the logistic regression fit
type TrainParams struct {
	LearningRate float64
	Iterations   int
	L2Penalty    float64
}

// DefaultTrainParams returns the training parameters used when the
// configuration does not override them
func DefaultTrainParams() TrainParams {
	return TrainParams{
		LearningRate: 0.1,
		Iterations:   1000,
		L2Penalty:    1e-4,
	}
}

// LogisticModel is a fitted binary logistic regression classifier
type LogisticModel struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// TrainLogistic fits a regularized logistic regression on standardized
// features by full-batch gradient descent. Per-sample weights are inversely
// proportional to class frequency so the minority return class is not
// drowned out. Requires both label values present.
func TrainLogistic(X [][]float64, y []float64, params TrainParams) (*LogisticModel, error) {
	if len(X) == 0 {
		return nil, apperrors.NewDataError("empty training set", nil)
	}
	if len(X) != len(y) {
		return nil, apperrors.NewDataError("feature matrix and label vector length mismatch", nil)
	}
	if params.Iterations <= 0 || params.LearningRate <= 0 {
		params = DefaultTrainParams()
	}

	var positives int
	for _, label := range y {
		if label == 1 {
			positives++
		}
	}
	negatives := len(y) - positives
	if positives == 0 || negatives == 0 {
		return nil, apperrors.NewDataError(
			"training population has a single label class; a classifier cannot be fit", nil).
			WithContext("positives", positives).
			WithContext("negatives", negatives)
	}

	// Balanced class weighting: n / (numClasses * count(class)).
	n := float64(len(y))
	weightNeg := n / (2 * float64(negatives))
	weightPos := n / (2 * float64(positives))

	m := &LogisticModel{Weights: make([]float64, len(X[0]))}
	grad := make([]float64, len(m.Weights))

	for iter := 0; iter < params.Iterations; iter++ {
		for j := range grad {
			grad[j] = 0
		}
		var gradBias, totalWeight float64

		for i, row := range X {
			p := m.PredictProba(row)
			w := weightNeg
			if y[i] == 1 {
				w = weightPos
			}
			residual := w * (p - y[i])
			floats.AddScaled(grad, residual, row)
			gradBias += residual
			totalWeight += w
		}

		floats.Scale(1/totalWeight, grad)
		floats.AddScaled(grad, params.L2Penalty, m.Weights)
		floats.AddScaled(m.Weights, -params.LearningRate, grad)
		m.Bias -= params.LearningRate * gradBias / totalWeight
	}

	return m, nil
}

// PredictProba returns the posterior probability of the return class for a
// single feature row. No calibration is applied.
func (m *LogisticModel) PredictProba(row []float64) float64 {
	return sigmoid(floats.Dot(m.Weights, row) + m.Bias)
}

// PredictProbaAll scores every row of a feature matrix
func (m *LogisticModel) PredictProbaAll(X [][]float64) []float64 {
	probs := make([]float64, 0, len(X))
	for _, row := range X {
		probs = append(probs, m.PredictProba(row))
	}
	return probs
}

func sigmoid(z float64) float64 {
	// Split on sign to stay numerically stable for large |z|.
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
