package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "returnsight/internal/errors"
	"returnsight/pkg/contracts/domain"
)

// DashboardTables bundles everything the BI workbook carries
type DashboardTables struct {
	Stats    domain.SummaryStats
	Category []domain.CategorySummary
	Monthly  []domain.MonthlySummary
	HighRisk []domain.HighRiskSummary
}

// WriteWorkbook writes the dashboard tables as one Excel workbook with a
// sheet per table, so the BI handoff is a single file.
func WriteWorkbook(filePath string, tables DashboardTables) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"Summary", SummaryStatsHeader(), SummaryStatsRows(tables.Stats)},
		{"Categories", CategorySummaryHeader(), CategorySummaryRows(tables.Category)},
		{"Monthly Trends", MonthlySummaryHeader(), MonthlySummaryRows(tables.Monthly)},
		{"High Risk", HighRiskSummaryHeader(), HighRiskSummaryRows(tables.HighRisk)},
	}

	for i, sheet := range sheets {
		if i == 0 {
			// Reuse the default sheet for the first table.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.name); err != nil {
				return apperrors.NewStorageError("failed to rename workbook sheet", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return apperrors.NewStorageError(
					fmt.Sprintf("failed to create workbook sheet %s", sheet.name), err)
			}
		}
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return apperrors.NewStorageError("failed to create workbook directory", err)
	}
	if err := f.SaveAs(filePath); err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("failed to save workbook %s", filePath), err)
	}

	slog.Info("wrote dashboard workbook",
		slog.String("file_path", filePath),
		slog.Int("sheet_count", len(sheets)))
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	writeRow := func(rowIdx int, cells []string) error {
		for colIdx, value := range cells {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			if err != nil {
				return apperrors.NewStorageError("failed to compute cell coordinates", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return apperrors.NewStorageError(
					fmt.Sprintf("failed to write cell %s!%s", sheet, cell), err)
			}
		}
		return nil
	}

	if err := writeRow(1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(i+2, row); err != nil {
			return err
		}
	}
	return nil
}
