package domain

// Column names of the raw extract. Stage schemas are append-only supersets:
// cleaned = raw + derived, enhanced = cleaned + time/loss, scored = enhanced
// + probability/tier.
const (
	ColTransactionID      = "Transaction ID"
	ColItemID             = "Item ID"
	ColItemName           = "Item Name"
	ColCategory           = "Category"
	ColVersion            = "Version"
	ColDate               = "Date"
	ColFinalQuantity      = "Final Quantity"
	ColFinalRevenue       = "Final Revenue"
	ColTotalRevenue       = "Total Revenue"
	ColPriceReductions    = "Price Reductions"
	ColSalesTax           = "Sales Tax"
	ColPurchasedItemCount = "Purchased Item Count"
	ColBuyerID            = "Buyer ID"

	ColIsReturn        = "is_return"
	ColVersionClean    = "Version_clean"
	ColFinalRevenueAbs = "Final_Revenue_Abs"
	ColTotalRevenueAbs = "Total_Revenue_Abs"

	ColOrderMonth  = "order_month"
	ColOrderWeek   = "order_week"
	ColOrderDay    = "order_day"
	ColRevenueLoss = "revenue_loss"

	ColReturnProbability = "return_probability"
	ColRiskTier          = "risk_category"
)

// CleanedDateLayout is the normalized date layout of all intermediate files.
// The configurable raw layout applies to the extract only.
const CleanedDateLayout = "2006-01-02"

// RawHeader returns the expected raw extract columns in canonical order.
func RawHeader() []string {
	return []string{
		ColTransactionID, ColItemID, ColItemName, ColCategory, ColVersion,
		ColDate, ColFinalQuantity, ColFinalRevenue, ColTotalRevenue,
		ColPriceReductions, ColSalesTax, ColPurchasedItemCount, ColBuyerID,
	}
}

// CleanedHeader returns the cleaned table columns: the raw header plus the
// derived fields.
func CleanedHeader() []string {
	return append(RawHeader(),
		ColIsReturn, ColVersionClean, ColFinalRevenueAbs, ColTotalRevenueAbs)
}

// EnhancedHeader returns the analysis table columns: the cleaned header plus
// the time-derived and revenue-loss fields.
func EnhancedHeader() []string {
	return append(CleanedHeader(),
		ColOrderMonth, ColOrderWeek, ColOrderDay, ColRevenueLoss)
}

// ScoredHeader returns the scored table columns: the enhanced header plus the
// model outputs.
func ScoredHeader() []string {
	return append(EnhancedHeader(), ColReturnProbability, ColRiskTier)
}

// HighRiskHeader returns the columns of the exported high-risk product list.
func HighRiskHeader() []string {
	return []string{
		ColItemName, ColCategory, ColVersion, ColVersionClean,
		ColReturnProbability, ColRiskTier, ColFinalRevenueAbs,
		ColIsReturn, ColDate,
	}
}
