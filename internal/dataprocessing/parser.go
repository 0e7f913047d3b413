package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	apperrors "returnsight/internal/errors"
	"returnsight/pkg/contracts/domain"
)

// ReadRawCSV reads the raw order extract. Columns are located by header name
// so the extract's column order does not matter. Missing numeric cells are
// carried as NaN; the cleaning pass zero-fills them.
func ReadRawCSV(filePath string) ([]domain.OrderRecord, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("failed to open raw data file %s", filePath), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read raw CSV", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewParsingError("raw data file is empty", nil)
	}

	columnMap, err := mapColumns(rows[0], domain.RawHeader())
	if err != nil {
		return nil, err
	}

	records := make([]domain.OrderRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(col string) string {
			idx, ok := columnMap[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		records = append(records, domain.OrderRecord{
			TransactionID:      cell(domain.ColTransactionID),
			ItemID:             cell(domain.ColItemID),
			ItemName:           cell(domain.ColItemName),
			Category:           cell(domain.ColCategory),
			Version:            cell(domain.ColVersion),
			Date:               cell(domain.ColDate),
			FinalQuantity:      parseFloatCell(cell(domain.ColFinalQuantity)),
			FinalRevenue:       parseFloatCell(cell(domain.ColFinalRevenue)),
			TotalRevenue:       parseFloatCell(cell(domain.ColTotalRevenue)),
			PriceReductions:    parseFloatCell(cell(domain.ColPriceReductions)),
			SalesTax:           parseFloatCell(cell(domain.ColSalesTax)),
			PurchasedItemCount: parseFloatCell(cell(domain.ColPurchasedItemCount)),
			BuyerID:            cell(domain.ColBuyerID),
		})
	}

	slog.Debug("parsed raw data file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(records)))

	return records, nil
}

// mapColumns resolves each expected column name to its index in the header
// row. Matching is case-insensitive and ignores surrounding whitespace and a
// UTF-8 BOM on the first cell.
func mapColumns(header []string, expected []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\uFEFF")
		index[normalizeColumnName(name)] = i
	}

	columnMap := make(map[string]int, len(expected))
	var missing []string
	for _, col := range expected {
		idx, ok := index[normalizeColumnName(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		columnMap[col] = idx
	}

	if len(missing) > 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("raw data is missing required columns: %s", strings.Join(missing, ", ")), nil)
	}
	return columnMap, nil
}

func normalizeColumnName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// parseFloatCell parses a numeric cell, returning NaN for empty or
// unparsable values so the cleaning pass can apply its zero-fill policy.
func parseFloatCell(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
