package riskmodel

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Standardizer holds the per-feature standardization statistics computed
// from the training split only. The same transform applies to the test
// split and to any future scoring input.
type Standardizer struct {
	Mean []float64
	Std  []float64
}

// FitStandardizer computes per-column mean and population standard
// deviation over the training matrix.
func FitStandardizer(X [][]float64) *Standardizer {
	s := &Standardizer{
		Mean: make([]float64, NumFeatures),
		Std:  make([]float64, NumFeatures),
	}
	if len(X) == 0 {
		for j := range s.Std {
			s.Std[j] = 1
		}
		return s
	}

	col := make([]float64, len(X))
	for j := 0; j < NumFeatures; j++ {
		for i, row := range X {
			col[i] = row[j]
		}
		mean := stat.Mean(col, nil)

		var ss float64
		for _, v := range col {
			d := v - mean
			ss += d * d
		}
		s.Mean[j] = mean
		s.Std[j] = math.Sqrt(ss / float64(len(col)))
	}
	return s
}

// Transform applies the frozen standardization to a feature matrix.
// Zero-variance columns are centered but not scaled.
func (s *Standardizer) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, 0, len(X))
	for _, row := range X {
		scaled := make([]float64, NumFeatures)
		for j, v := range row {
			scaled[j] = v - s.Mean[j]
			if s.Std[j] > 0 {
				scaled[j] /= s.Std[j]
			}
		}
		out = append(out, scaled)
	}
	return out
}
