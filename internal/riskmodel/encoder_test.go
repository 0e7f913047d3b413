package riskmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "returnsight/internal/errors"
	"returnsight/pkg/contracts/domain"
)

func recordsWithCategories(pairs ...[2]string) []domain.EnhancedRecord {
	records := make([]domain.EnhancedRecord, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, domain.EnhancedRecord{
			CleanedRecord: domain.CleanedRecord{Category: p[0], VersionClean: p[1]},
		})
	}
	return records
}

func TestFitEncoderFirstSeenOrder(t *testing.T) {
	enc := FitEncoder(recordsWithCategories(
		[2]string{"Apparel", "M"},
		[2]string{"Home", "M"},
		[2]string{"Apparel", "S"},
		[2]string{"Toys", "nan"},
	))

	// Codes follow first-seen order starting at 1; 0 is the unknown sentinel.
	assert.Equal(t, 1, enc.Encode(FieldCategory, "Apparel"))
	assert.Equal(t, 2, enc.Encode(FieldCategory, "Home"))
	assert.Equal(t, 3, enc.Encode(FieldCategory, "Toys"))
	assert.Equal(t, 1, enc.Encode(FieldVersionClean, "M"))
	assert.Equal(t, 2, enc.Encode(FieldVersionClean, "S"))
	assert.Equal(t, 3, enc.Encode(FieldVersionClean, "nan"))

	assert.Equal(t, 3, enc.Cardinality(FieldCategory))
	assert.Equal(t, 3, enc.Cardinality(FieldVersionClean))
}

func TestFitEncoderDeterministic(t *testing.T) {
	records := recordsWithCategories(
		[2]string{"Apparel", "M"},
		[2]string{"Home", "S"},
		[2]string{"Toys", "L"},
	)

	a, b := FitEncoder(records), FitEncoder(records)
	for _, r := range records {
		assert.Equal(t, a.Encode(FieldCategory, r.Category), b.Encode(FieldCategory, r.Category))
		assert.Equal(t, a.Encode(FieldVersionClean, r.VersionClean), b.Encode(FieldVersionClean, r.VersionClean))
	}
}

func TestEncoderBijection(t *testing.T) {
	enc := FitEncoder(recordsWithCategories(
		[2]string{"A", "x"}, [2]string{"B", "y"}, [2]string{"C", "z"}, [2]string{"A", "x"},
	))

	seen := make(map[int]string)
	for _, v := range []string{"A", "B", "C"} {
		code := enc.Encode(FieldCategory, v)
		require.Greater(t, code, UnknownCode)
		require.LessOrEqual(t, code, enc.Cardinality(FieldCategory))
		prev, dup := seen[code]
		require.False(t, dup, "code %d assigned to both %q and %q", code, prev, v)
		seen[code] = v
	}
}

func TestEncodeUnseenUsesSentinel(t *testing.T) {
	enc := FitEncoder(recordsWithCategories([2]string{"Apparel", "M"}))

	assert.Equal(t, UnknownCode, enc.Encode(FieldCategory, "Gadgets"))
	assert.Equal(t, UnknownCode, enc.Encode(FieldVersionClean, "XXL"))
}

func TestEncodeStrictFailsOnUnseen(t *testing.T) {
	enc := FitEncoder(recordsWithCategories([2]string{"Apparel", "M"}))

	code, err := enc.EncodeStrict(FieldCategory, "Apparel")
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	_, err = enc.EncodeStrict(FieldCategory, "Gadgets")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnseenCategory(err))
}
