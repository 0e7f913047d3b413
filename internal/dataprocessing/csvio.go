package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "returnsight/internal/errors"
	"returnsight/pkg/contracts/domain"
)

// Row codecs for the intermediate pipeline files. Stages communicate only
// through these files, so the encoders and decoders here are the single
// definition of each stage's on-disk row layout. Header order follows the
// schema contracts in pkg/contracts/domain.

// CleanedRows encodes cleaned records in CleanedHeader order
func CleanedRows(records []domain.CleanedRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, cleanedRow(r))
	}
	return rows
}

// EnhancedRows encodes enhanced records in EnhancedHeader order
func EnhancedRows(records []domain.EnhancedRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, enhancedRow(r))
	}
	return rows
}

// ScoredRows encodes scored records in ScoredHeader order
func ScoredRows(records []domain.ScoredRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := enhancedRow(r.EnhancedRecord)
		row = append(row, formatFloat(r.ReturnProbability), string(r.RiskTier))
		rows = append(rows, row)
	}
	return rows
}

// HighRiskRows encodes the high-risk product list in HighRiskHeader order
func HighRiskRows(records []domain.ScoredRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ItemName,
			r.Category,
			r.Version,
			r.VersionClean,
			formatFloat(r.ReturnProbability),
			string(r.RiskTier),
			formatFloat(r.FinalRevenueAbs),
			strconv.Itoa(r.IsReturn),
			formatDate(r.CleanedRecord),
		})
	}
	return rows
}

func cleanedRow(r domain.CleanedRecord) []string {
	return []string{
		formatID(r.TransactionID, r.HasTransactionID),
		formatID(r.ItemID, r.HasItemID),
		r.ItemName,
		r.Category,
		r.Version,
		formatDate(r),
		formatFloat(r.FinalQuantity),
		formatFloat(r.FinalRevenue),
		formatFloat(r.TotalRevenue),
		formatFloat(r.PriceReductions),
		formatFloat(r.SalesTax),
		formatFloat(r.PurchasedItemCount),
		r.BuyerID,
		strconv.Itoa(r.IsReturn),
		r.VersionClean,
		formatFloat(r.FinalRevenueAbs),
		formatFloat(r.TotalRevenueAbs),
	}
}

func enhancedRow(r domain.EnhancedRecord) []string {
	row := cleanedRow(r.CleanedRecord)
	return append(row,
		r.OrderMonth,
		strconv.Itoa(r.OrderWeek),
		r.OrderDay,
		formatFloat(r.RevenueLoss),
	)
}

// ReadCleanedCSV reads the cleaned table written by the cleaning stage
func ReadCleanedCSV(filePath string) ([]domain.CleanedRecord, error) {
	rows, columnMap, err := readTable(filePath, domain.CleanedHeader())
	if err != nil {
		return nil, err
	}

	records := make([]domain.CleanedRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, decodeCleaned(row, columnMap))
	}
	return records, nil
}

// ReadEnhancedCSV reads the analysis table written by the aggregation stage
func ReadEnhancedCSV(filePath string) ([]domain.EnhancedRecord, error) {
	rows, columnMap, err := readTable(filePath, domain.EnhancedHeader())
	if err != nil {
		return nil, err
	}

	records := make([]domain.EnhancedRecord, 0, len(rows))
	for _, row := range rows {
		cell := cellFunc(row, columnMap)
		records = append(records, domain.EnhancedRecord{
			CleanedRecord: decodeCleaned(row, columnMap),
			OrderMonth:    cell(domain.ColOrderMonth),
			OrderWeek:     parseIntCell(cell(domain.ColOrderWeek)),
			OrderDay:      cell(domain.ColOrderDay),
			RevenueLoss:   zeroFill(parseFloatCell(cell(domain.ColRevenueLoss))),
		})
	}
	return records, nil
}

// ReadHighRiskCSV reads the high-risk product list written by the model
// stage. Only the exported columns are populated.
func ReadHighRiskCSV(filePath string) ([]domain.ScoredRecord, error) {
	rows, columnMap, err := readTable(filePath, domain.HighRiskHeader())
	if err != nil {
		return nil, err
	}

	records := make([]domain.ScoredRecord, 0, len(rows))
	for _, row := range rows {
		cell := cellFunc(row, columnMap)

		var rec domain.ScoredRecord
		rec.ItemName = cell(domain.ColItemName)
		rec.Category = cell(domain.ColCategory)
		rec.Version = cell(domain.ColVersion)
		rec.VersionClean = cell(domain.ColVersionClean)
		rec.ReturnProbability = zeroFill(parseFloatCell(cell(domain.ColReturnProbability)))
		rec.RiskTier = domain.RiskTier(cell(domain.ColRiskTier))
		rec.FinalRevenueAbs = zeroFill(parseFloatCell(cell(domain.ColFinalRevenueAbs)))
		rec.IsReturn = parseIntCell(cell(domain.ColIsReturn))
		rec.Date, rec.DateValid = parseCleanedDate(cell(domain.ColDate))
		records = append(records, rec)
	}
	return records, nil
}

// readTable opens an intermediate CSV and maps its header against the
// expected schema
func readTable(filePath string, expected []string) ([][]string, map[string]int, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, apperrors.NewStorageError(
			fmt.Sprintf("failed to open %s", filePath), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, apperrors.NewParsingError(
			fmt.Sprintf("failed to read %s", filePath), err)
	}
	if len(rows) == 0 {
		return nil, nil, apperrors.NewParsingError(
			fmt.Sprintf("%s is empty", filePath), nil)
	}

	columnMap, err := mapColumns(rows[0], expected)
	if err != nil {
		return nil, nil, err
	}
	return rows[1:], columnMap, nil
}

func decodeCleaned(row []string, columnMap map[string]int) domain.CleanedRecord {
	cell := cellFunc(row, columnMap)

	rec := domain.CleanedRecord{
		ItemName:           cell(domain.ColItemName),
		Category:           cell(domain.ColCategory),
		Version:            cell(domain.ColVersion),
		FinalQuantity:      zeroFill(parseFloatCell(cell(domain.ColFinalQuantity))),
		FinalRevenue:       zeroFill(parseFloatCell(cell(domain.ColFinalRevenue))),
		TotalRevenue:       zeroFill(parseFloatCell(cell(domain.ColTotalRevenue))),
		PriceReductions:    zeroFill(parseFloatCell(cell(domain.ColPriceReductions))),
		SalesTax:           zeroFill(parseFloatCell(cell(domain.ColSalesTax))),
		PurchasedItemCount: zeroFill(parseFloatCell(cell(domain.ColPurchasedItemCount))),
		BuyerID:            cell(domain.ColBuyerID),
		IsReturn:           parseIntCell(cell(domain.ColIsReturn)),
		VersionClean:       cell(domain.ColVersionClean),
		FinalRevenueAbs:    zeroFill(parseFloatCell(cell(domain.ColFinalRevenueAbs))),
		TotalRevenueAbs:    zeroFill(parseFloatCell(cell(domain.ColTotalRevenueAbs))),
	}
	rec.TransactionID, rec.HasTransactionID = parseIDCell(cell(domain.ColTransactionID))
	rec.ItemID, rec.HasItemID = parseIDCell(cell(domain.ColItemID))
	rec.Date, rec.DateValid = parseCleanedDate(cell(domain.ColDate))
	return rec
}

func cellFunc(row []string, columnMap map[string]int) func(string) string {
	return func(col string) string {
		idx, ok := columnMap[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
}

func formatID(id int64, present bool) string {
	if !present {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func formatDate(r domain.CleanedRecord) string {
	if !r.DateValid {
		return ""
	}
	return r.Date.Format(domain.CleanedDateLayout)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseIDCell(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseIntCell(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseCleanedDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(domain.CleanedDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
