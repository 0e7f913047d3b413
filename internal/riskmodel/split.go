package riskmodel

import (
	"math"
	"math/rand"

	apperrors "returnsight/internal/errors"
)

// Split is a stratified partition of a labeled feature matrix
type Split struct {
	TrainX [][]float64
	TrainY []float64
	TestX  [][]float64
	TestY  []float64
}

// StratifiedSplit partitions (X, y) into train and test sets with a
// deterministic seed. Rows are shuffled within each label class and the
// test fraction is taken per class, so the return-rate proportion of the
// full population is preserved in both splits up to rounding.
func StratifiedSplit(X [][]float64, y []float64, testFraction float64, seed int64) (*Split, error) {
	if len(X) != len(y) {
		return nil, apperrors.NewDataError("feature matrix and label vector length mismatch", nil)
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, apperrors.NewDataError("test fraction must be in (0, 1)", nil).
			WithContext("test_fraction", testFraction)
	}

	byClass := make(map[float64][]int)
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}
	if len(byClass) < 2 {
		return nil, apperrors.NewDataError(
			"training population has a single label class; a classifier cannot be fit", nil).
			WithContext("classes", len(byClass))
	}

	rng := rand.New(rand.NewSource(seed))
	split := &Split{}

	// Iterate classes in a fixed order so the same seed always produces
	// the same partition.
	for _, label := range []float64{0, 1} {
		indices, ok := byClass[label]
		if !ok {
			continue
		}
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		nTest := int(math.Round(float64(len(indices)) * testFraction))
		// Keep at least one row of each class on both sides when the class
		// is large enough to allow it.
		if nTest == 0 && len(indices) > 1 {
			nTest = 1
		}
		if nTest == len(indices) {
			nTest--
		}

		for k, idx := range indices {
			if k < nTest {
				split.TestX = append(split.TestX, X[idx])
				split.TestY = append(split.TestY, y[idx])
			} else {
				split.TrainX = append(split.TrainX, X[idx])
				split.TrainY = append(split.TrainY, y[idx])
			}
		}
	}

	return split, nil
}
