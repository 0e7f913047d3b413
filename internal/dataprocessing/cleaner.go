package dataprocessing

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"returnsight/internal/config"
	"returnsight/pkg/contracts/domain"
)

// Cleaner turns raw order records into cleaned records according to the
// configured cleaning rules.
type Cleaner struct {
	cfg    config.CleaningConfig
	logger *slog.Logger
}

// NewCleaner creates a cleaner with the given configuration
func NewCleaner(cfg config.CleaningConfig, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{cfg: cfg, logger: logger}
}

// Clean applies the cleaning pass to every raw record:
//   - identifiers in scientific notation become integers; non-numeric values
//     keep the record with the identifier marked absent
//   - the date column is parsed with the configured layout; unparsable dates
//     survive with DateValid=false
//   - the return flag is set iff the final quantity is below the threshold
//   - the version descriptor is normalized
//   - missing numeric values become 0
//   - absolute revenue fields are derived
//
// Clean never fails on malformed individual values; every input row produces
// exactly one cleaned record.
func (c *Cleaner) Clean(records []domain.OrderRecord) []domain.CleanedRecord {
	cleaned := make([]domain.CleanedRecord, 0, len(records))
	returns := 0

	for _, r := range records {
		txID, hasTxID := parseScientificID(r.TransactionID)
		itemID, hasItemID := parseScientificID(r.ItemID)

		date, dateValid := c.parseDate(r.Date)

		rec := domain.CleanedRecord{
			TransactionID:    txID,
			HasTransactionID: hasTxID,
			ItemID:           itemID,
			HasItemID:        hasItemID,
			ItemName:         r.ItemName,
			Category:         r.Category,
			Version:          r.Version,
			Date:             date,
			DateValid:        dateValid,

			FinalQuantity:      zeroFill(r.FinalQuantity),
			FinalRevenue:       zeroFill(r.FinalRevenue),
			TotalRevenue:       zeroFill(r.TotalRevenue),
			PriceReductions:    zeroFill(r.PriceReductions),
			SalesTax:           zeroFill(r.SalesTax),
			PurchasedItemCount: zeroFill(r.PurchasedItemCount),
			BuyerID:            r.BuyerID,

			VersionClean: domain.NormalizeVersion(r.Version),
		}

		if rec.FinalQuantity < c.cfg.ReturnThreshold {
			rec.IsReturn = 1
			returns++
		}
		rec.FinalRevenueAbs = math.Abs(rec.FinalRevenue)
		rec.TotalRevenueAbs = math.Abs(rec.TotalRevenue)

		cleaned = append(cleaned, rec)
	}

	rate := 0.0
	if len(cleaned) > 0 {
		rate = float64(returns) / float64(len(cleaned))
	}
	c.logger.Info("cleaning pass complete",
		slog.Int("record_count", len(cleaned)),
		slog.Int("return_count", returns),
		slog.Float64("return_rate", rate))

	return cleaned
}

// parseDate parses the raw date cell with the configured layout. A zero time
// with DateValid=false stands in for pandas' NaT.
func (c *Cleaner) parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(c.cfg.DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseScientificID converts an identifier stored in scientific notation
// (e.g. "1.23457e+09") to an integer. Non-numeric or missing values leave
// the identifier absent rather than failing the row.
func parseScientificID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return int64(v), true
}

// zeroFill replaces a missing (NaN) numeric value with 0
func zeroFill(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
