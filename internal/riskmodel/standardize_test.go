package riskmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantRow(v float64) []float64 {
	row := make([]float64, NumFeatures)
	for j := range row {
		row[j] = v
	}
	return row
}

func TestFitStandardizer(t *testing.T) {
	X := [][]float64{constantRow(2), constantRow(4), constantRow(6)}
	s := FitStandardizer(X)

	for j := 0; j < NumFeatures; j++ {
		assert.InDelta(t, 4.0, s.Mean[j], 1e-12)
		// Population standard deviation of {2,4,6}.
		assert.InDelta(t, 1.632993162, s.Std[j], 1e-6)
	}
}

func TestTransformStandardizesTrainingData(t *testing.T) {
	X := [][]float64{constantRow(2), constantRow(4), constantRow(6)}
	s := FitStandardizer(X)

	scaled := s.Transform(X)
	require.Len(t, scaled, 3)

	// Column means become 0 with unit population variance.
	for j := 0; j < NumFeatures; j++ {
		var sum, ss float64
		for _, row := range scaled {
			sum += row[j]
			ss += row[j] * row[j]
		}
		assert.InDelta(t, 0.0, sum/3, 1e-12)
		assert.InDelta(t, 1.0, ss/3, 1e-12)
	}
}

func TestTransformUsesFrozenStatistics(t *testing.T) {
	s := FitStandardizer([][]float64{constantRow(0), constantRow(10)})

	// New data is scaled with the training statistics, not its own.
	out := s.Transform([][]float64{constantRow(5)})
	require.Len(t, out, 1)
	for j := 0; j < NumFeatures; j++ {
		assert.InDelta(t, 0.0, out[0][j], 1e-12)
	}
}

func TestTransformZeroVarianceColumn(t *testing.T) {
	X := [][]float64{constantRow(7), constantRow(7)}
	s := FitStandardizer(X)

	out := s.Transform(X)
	for _, row := range out {
		for j := range row {
			assert.Equal(t, 0.0, row[j])
		}
	}
}

func TestFitStandardizerEmpty(t *testing.T) {
	s := FitStandardizer(nil)
	out := s.Transform([][]float64{constantRow(3)})
	require.Len(t, out, 1)
	assert.Equal(t, 3.0, out[0][0])
}
