package dataprocessing

import (
	"returnsight/pkg/contracts/domain"
)

// Enhance derives the analysis dataset from cleaned records: calendar month,
// ISO week, weekday name, and the revenue lost when the record is a return.
// Records with an invalid date keep empty time fields.
func Enhance(records []domain.CleanedRecord) []domain.EnhancedRecord {
	enhanced := make([]domain.EnhancedRecord, 0, len(records))
	for _, r := range records {
		e := domain.EnhancedRecord{CleanedRecord: r}

		if r.DateValid {
			e.OrderMonth = r.Date.Format("2006-01")
			_, e.OrderWeek = r.Date.ISOWeek()
			e.OrderDay = r.Date.Weekday().String()
		}
		e.RevenueLoss = float64(r.IsReturn) * r.FinalRevenueAbs

		enhanced = append(enhanced, e)
	}
	return enhanced
}
