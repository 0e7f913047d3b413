package dataprocessing

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"returnsight/internal/config"
	"returnsight/internal/shared/testutil"
	"returnsight/pkg/contracts/domain"
)

func testCleaningConfig() config.CleaningConfig {
	return config.CleaningConfig{
		DateFormat:      "2006-01-02",
		ReturnThreshold: 0,
	}
}

func TestCleanReturnFlag(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		threshold float64
		want      int
	}{
		{"negative quantity is a return", -1, 0, 1},
		{"zero quantity at default threshold", 0, 0, 0},
		{"positive quantity", 2, 0, 0},
		{"below raised threshold", 0.5, 1, 1},
		{"at raised threshold", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testCleaningConfig()
			cfg.ReturnThreshold = tt.threshold
			cleaner := NewCleaner(cfg, nil)

			cleaned := cleaner.Clean([]domain.OrderRecord{{FinalQuantity: tt.quantity}})
			require.Len(t, cleaned, 1)
			assert.Equal(t, tt.want, cleaned[0].IsReturn)
		})
	}
}

func TestCleanReturnRateScenario(t *testing.T) {
	// 100 records, 20 with negative quantity: exactly 20 returns, rate 0.20.
	records := make([]domain.OrderRecord, 0, 100)
	for i := 0; i < 100; i++ {
		qty := 1.0
		if i < 20 {
			qty = -1.0
		}
		records = append(records, domain.OrderRecord{
			ItemName:      fmt.Sprintf("item-%d", i),
			FinalQuantity: qty,
		})
	}

	logger, captured := testutil.NewCaptureLogger()
	cleaned := NewCleaner(testCleaningConfig(), logger).Clean(records)

	returns := 0
	for _, r := range cleaned {
		require.Contains(t, []int{0, 1}, r.IsReturn)
		if r.IsReturn == 1 {
			returns++
		}
	}
	assert.Equal(t, 20, returns)

	require.True(t, captured.HasMessage("cleaning pass complete"))
	for _, rec := range captured.Records() {
		if rec.Message == "cleaning pass complete" {
			assert.Equal(t, int64(20), rec.Attrs["return_count"])
			assert.InDelta(t, 0.20, rec.Attrs["return_rate"], 1e-9)
		}
	}
}

func TestCleanScientificNotationIDs(t *testing.T) {
	cleaner := NewCleaner(testCleaningConfig(), nil)

	cleaned := cleaner.Clean([]domain.OrderRecord{
		{TransactionID: "1.23456789e+09", ItemID: "9.8e+03"},
		{TransactionID: "not-a-number", ItemID: ""},
		{TransactionID: "42", ItemID: "17"},
	})
	require.Len(t, cleaned, 3)

	assert.Equal(t, int64(1234567890), cleaned[0].TransactionID)
	assert.True(t, cleaned[0].HasTransactionID)
	assert.Equal(t, int64(9800), cleaned[0].ItemID)

	// Non-numeric and missing identifiers pass through as absent, the row
	// itself survives.
	assert.False(t, cleaned[1].HasTransactionID)
	assert.False(t, cleaned[1].HasItemID)

	assert.Equal(t, int64(42), cleaned[2].TransactionID)
	assert.Equal(t, int64(17), cleaned[2].ItemID)
}

func TestCleanDates(t *testing.T) {
	cleaner := NewCleaner(testCleaningConfig(), nil)

	cleaned := cleaner.Clean([]domain.OrderRecord{
		{Date: "2024-03-05"},
		{Date: "05/03/2024"}, // wrong layout
		{Date: ""},
	})
	require.Len(t, cleaned, 3)

	assert.True(t, cleaned[0].DateValid)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), cleaned[0].Date)
	assert.False(t, cleaned[1].DateValid)
	assert.False(t, cleaned[2].DateValid)
}

func TestCleanZeroFillAndAbsoluteRevenue(t *testing.T) {
	cleaner := NewCleaner(testCleaningConfig(), nil)

	cleaned := cleaner.Clean([]domain.OrderRecord{
		{
			FinalQuantity:   -1,
			FinalRevenue:    -49.99,
			TotalRevenue:    -54.99,
			PriceReductions: math.NaN(),
			SalesTax:        math.NaN(),
		},
	})
	require.Len(t, cleaned, 1)
	r := cleaned[0]

	assert.Equal(t, 0.0, r.PriceReductions)
	assert.Equal(t, 0.0, r.SalesTax)
	assert.Equal(t, 49.99, r.FinalRevenueAbs)
	assert.Equal(t, 54.99, r.TotalRevenueAbs)
	assert.GreaterOrEqual(t, r.FinalRevenueAbs, 0.0)
	assert.Equal(t, math.Abs(r.FinalRevenue), r.FinalRevenueAbs)
	assert.Equal(t, math.Abs(r.TotalRevenue), r.TotalRevenueAbs)
}

func TestCleanVersionNormalization(t *testing.T) {
	cleaner := NewCleaner(testCleaningConfig(), nil)

	cleaned := cleaner.Clean([]domain.OrderRecord{
		{Version: "M / Blue"},
		{Version: ""},
	})
	require.Len(t, cleaned, 2)
	assert.Equal(t, "M", cleaned[0].VersionClean)
	assert.Equal(t, "nan", cleaned[1].VersionClean)
}

func TestEnhance(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	cleaned := []domain.CleanedRecord{
		{Date: date, DateValid: true, IsReturn: 1, FinalRevenueAbs: 25},
		{Date: date, DateValid: true, IsReturn: 0, FinalRevenueAbs: 40},
		{DateValid: false, IsReturn: 1, FinalRevenueAbs: 10},
	}

	enhanced := Enhance(cleaned)
	require.Len(t, enhanced, 3)

	assert.Equal(t, "2024-03", enhanced[0].OrderMonth)
	assert.Equal(t, 10, enhanced[0].OrderWeek)
	assert.Equal(t, "Tuesday", enhanced[0].OrderDay)
	assert.Equal(t, 25.0, enhanced[0].RevenueLoss)

	// Non-return records lose no revenue.
	assert.Equal(t, 0.0, enhanced[1].RevenueLoss)

	// Invalid dates leave time-derived columns empty but keep the loss.
	assert.Empty(t, enhanced[2].OrderMonth)
	assert.Equal(t, 10.0, enhanced[2].RevenueLoss)
}
