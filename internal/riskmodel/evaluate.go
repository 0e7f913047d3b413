package riskmodel

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// Evaluate computes the held-out metrics for a fitted model: accuracy,
// per-class precision/recall/F1 at the 0.5 decision threshold, ROC-AUC over
// the predicted probabilities, and the confusion matrix.
func Evaluate(m *LogisticModel, X [][]float64, y []float64) Metrics {
	probs := m.PredictProbaAll(X)

	var cm ConfusionMatrix
	for i, p := range probs {
		predicted := p >= 0.5
		actual := y[i] == 1
		switch {
		case actual && predicted:
			cm.TruePositive++
		case actual && !predicted:
			cm.FalseNegative++
		case !actual && predicted:
			cm.FalsePositive++
		default:
			cm.TrueNegative++
		}
	}

	total := len(y)
	metrics := Metrics{
		Confusion: cm,
		ROCAUC:    rocAUC(probs, y),
		TestSize:  total,
	}
	if total > 0 {
		metrics.Accuracy = float64(cm.TruePositive+cm.TrueNegative) / float64(total)
	}

	// Class 1 (return): positives are the positive predictions.
	metrics.Return = classMetrics(cm.TruePositive, cm.FalsePositive, cm.FalseNegative)
	metrics.Return.Support = cm.TruePositive + cm.FalseNegative
	// Class 0 (purchase): mirror the matrix.
	metrics.Purchase = classMetrics(cm.TrueNegative, cm.FalseNegative, cm.FalsePositive)
	metrics.Purchase.Support = cm.TrueNegative + cm.FalsePositive

	return metrics
}

func classMetrics(tp, fp, fn int) ClassMetrics {
	var m ClassMetrics
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// rocAUC computes the area under the ROC curve of scores against binary
// labels. Returns 0 when the labels are degenerate.
func rocAUC(scores, y []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	type pair struct {
		score float64
		pos   bool
	}
	pairs := make([]pair, len(scores))
	var positives int
	for i, s := range scores {
		pairs[i] = pair{score: s, pos: y[i] == 1}
		if pairs[i].pos {
			positives++
		}
	}
	if positives == 0 || positives == len(pairs) {
		return 0
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].score < pairs[j].score })

	sorted := make([]float64, len(pairs))
	classes := make([]bool, len(pairs))
	for i, p := range pairs {
		sorted[i] = p.score
		classes[i] = p.pos
	}

	tpr, fpr, _ := stat.ROC(nil, sorted, classes, nil)
	return integrate.Trapezoidal(fpr, tpr)
}
