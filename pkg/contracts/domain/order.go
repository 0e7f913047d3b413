package domain

import (
	"strings"
	"time"
)

// OrderRecord represents one raw transaction line as extracted from the
// source system. Identifier and date fields are kept as strings because the
// extract stores IDs in scientific notation and dates in a configurable
// textual format; parsing happens during cleaning.
type OrderRecord struct {
	TransactionID      string  `json:"transaction_id" csv:"Transaction ID"`
	ItemID             string  `json:"item_id" csv:"Item ID"`
	ItemName           string  `json:"item_name" csv:"Item Name" validate:"required"`
	Category           string  `json:"category" csv:"Category"`
	Version            string  `json:"version" csv:"Version"`
	Date               string  `json:"date" csv:"Date"`
	FinalQuantity      float64 `json:"final_quantity" csv:"Final Quantity"`
	FinalRevenue       float64 `json:"final_revenue" csv:"Final Revenue"`
	TotalRevenue       float64 `json:"total_revenue" csv:"Total Revenue"`
	PriceReductions    float64 `json:"price_reductions" csv:"Price Reductions"`
	SalesTax           float64 `json:"sales_tax" csv:"Sales Tax"`
	PurchasedItemCount float64 `json:"purchased_item_count" csv:"Purchased Item Count"`
	BuyerID            string  `json:"buyer_id" csv:"Buyer ID"`
}

// CleanedRecord is an OrderRecord after the cleaning pass: identifiers parsed
// out of scientific notation, date parsed, the return flag and absolute
// revenue fields derived, and remaining numeric fields zero-filled.
// Instances are immutable once produced.
type CleanedRecord struct {
	TransactionID    int64     `json:"transaction_id" csv:"Transaction ID"`
	HasTransactionID bool      `json:"has_transaction_id" csv:"-"`
	ItemID           int64     `json:"item_id" csv:"Item ID"`
	HasItemID        bool      `json:"has_item_id" csv:"-"`
	ItemName         string    `json:"item_name" csv:"Item Name"`
	Category         string    `json:"category" csv:"Category"`
	Version          string    `json:"version" csv:"Version"`
	Date             time.Time `json:"date" csv:"Date"`
	DateValid        bool      `json:"date_valid" csv:"-"`

	FinalQuantity      float64 `json:"final_quantity" csv:"Final Quantity"`
	FinalRevenue       float64 `json:"final_revenue" csv:"Final Revenue"`
	TotalRevenue       float64 `json:"total_revenue" csv:"Total Revenue"`
	PriceReductions    float64 `json:"price_reductions" csv:"Price Reductions"`
	SalesTax           float64 `json:"sales_tax" csv:"Sales Tax"`
	PurchasedItemCount float64 `json:"purchased_item_count" csv:"Purchased Item Count"`
	BuyerID            string  `json:"buyer_id" csv:"Buyer ID"`

	// Derived fields
	IsReturn        int     `json:"is_return" csv:"is_return"`
	VersionClean    string  `json:"version_clean" csv:"Version_clean"`
	FinalRevenueAbs float64 `json:"final_revenue_abs" csv:"Final_Revenue_Abs"`
	TotalRevenueAbs float64 `json:"total_revenue_abs" csv:"Total_Revenue_Abs"`
}

// EnhancedRecord is a CleanedRecord with the time-derived and revenue-loss
// columns added for the analysis dataset. The column set is a strict superset
// of the cleaned schema.
type EnhancedRecord struct {
	CleanedRecord

	OrderMonth  string  `json:"order_month" csv:"order_month"` // "2006-01"
	OrderWeek   int     `json:"order_week" csv:"order_week"`   // ISO week number
	OrderDay    string  `json:"order_day" csv:"order_day"`     // weekday name
	RevenueLoss float64 `json:"revenue_loss" csv:"revenue_loss"`
}

// ScoredRecord is an EnhancedRecord with the model's return probability and
// the derived risk tier attached. Scores are written to an output copy only,
// never back onto the cleaned table.
type ScoredRecord struct {
	EnhancedRecord

	ReturnProbability float64  `json:"return_probability" csv:"return_probability"`
	RiskTier          RiskTier `json:"risk_category" csv:"risk_category"`
}

// RiskTier is the ordinal risk bucket derived from a return probability.
type RiskTier string

const (
	RiskTierLow    RiskTier = "Low"
	RiskTierMedium RiskTier = "Medium"
	RiskTierHigh   RiskTier = "High"
)

// HighRiskThreshold is the probability above which a record counts as high risk.
const HighRiskThreshold = 0.7

// TierForProbability buckets a probability into a risk tier. Boundaries:
// p <= 0.3 is Low, 0.3 < p <= 0.7 is Medium, p > 0.7 is High.
func TierForProbability(p float64) RiskTier {
	switch {
	case p <= 0.3:
		return RiskTierLow
	case p <= HighRiskThreshold:
		return RiskTierMedium
	default:
		return RiskTierHigh
	}
}

// NormalizeVersion derives the normalized version descriptor: the text before
// the first "/" with surrounding whitespace trimmed. Missing values map to the
// literal "nan", matching the source extract's convention.
func NormalizeVersion(version string) string {
	if version == "" {
		return "nan"
	}
	head, _, _ := strings.Cut(version, "/")
	head = strings.TrimSpace(head)
	if head == "" {
		return "nan"
	}
	return head
}
