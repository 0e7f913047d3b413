package riskmodel

import (
	"returnsight/pkg/contracts/domain"
)

// BuildFeatures derives the fixed-order feature matrix from a record
// population using the frozen encoding. Unseen categorical values map to
// the unknown sentinel.
func BuildFeatures(records []domain.EnhancedRecord, enc *Encoder) [][]float64 {
	X := make([][]float64, 0, len(records))
	for _, r := range records {
		X = append(X, featureRow(r,
			enc.Encode(FieldCategory, r.Category),
			enc.Encode(FieldVersionClean, r.VersionClean)))
	}
	return X
}

// BuildFeaturesStrict is BuildFeatures with the original fatal semantics:
// any categorical value absent from the frozen encoding fails the whole
// population.
func BuildFeaturesStrict(records []domain.EnhancedRecord, enc *Encoder) ([][]float64, error) {
	X := make([][]float64, 0, len(records))
	for _, r := range records {
		catCode, err := enc.EncodeStrict(FieldCategory, r.Category)
		if err != nil {
			return nil, err
		}
		verCode, err := enc.EncodeStrict(FieldVersionClean, r.VersionClean)
		if err != nil {
			return nil, err
		}
		X = append(X, featureRow(r, catCode, verCode))
	}
	return X, nil
}

func featureRow(r domain.EnhancedRecord, catCode, verCode int) []float64 {
	row := make([]float64, NumFeatures)
	row[FeatCategoryEncoded] = float64(catCode)
	row[FeatVersionEncoded] = float64(verCode)
	row[FeatTotalRevenueAbs] = r.TotalRevenueAbs
	row[FeatPriceReductions] = r.PriceReductions
	row[FeatSalesTax] = r.SalesTax
	row[FeatFinalRevenueAbs] = r.FinalRevenueAbs
	row[FeatPurchasedItemCount] = r.PurchasedItemCount
	return row
}

// Labels extracts the return-flag label vector
func Labels(records []domain.EnhancedRecord) []float64 {
	y := make([]float64, 0, len(records))
	for _, r := range records {
		y = append(y, float64(r.IsReturn))
	}
	return y
}
