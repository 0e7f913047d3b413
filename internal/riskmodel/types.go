package riskmodel

// NumFeatures is the width of the feature vector
const NumFeatures = 7

// Feature vector column positions. The order is fixed; the exported metrics
// and any downstream consumer rely on it.
const (
	FeatCategoryEncoded = iota
	FeatVersionEncoded
	FeatTotalRevenueAbs
	FeatPriceReductions
	FeatSalesTax
	FeatFinalRevenueAbs
	FeatPurchasedItemCount
)

// FeatureNames returns the feature columns in vector order
func FeatureNames() []string {
	return []string{
		"Category_encoded",
		"Version_clean_encoded",
		"Total_Revenue_Abs",
		"Price_Reductions",
		"Sales_Tax",
		"Final_Revenue_Abs",
		"Purchased_Item_Count",
	}
}

// ConfusionMatrix is the 2x2 outcome count table for the held-out split
type ConfusionMatrix struct {
	TrueNegative  int `json:"true_negative"`
	FalsePositive int `json:"false_positive"`
	FalseNegative int `json:"false_negative"`
	TruePositive  int `json:"true_positive"`
}

// ClassMetrics holds per-class evaluation results
type ClassMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Metrics holds the held-out evaluation artifacts. They are reporting
// output only and never feed back into training.
type Metrics struct {
	Accuracy  float64         `json:"accuracy"`
	ROCAUC    float64         `json:"roc_auc"`
	Purchase  ClassMetrics    `json:"purchase"` // label 0
	Return    ClassMetrics    `json:"return"`   // label 1
	Confusion ConfusionMatrix `json:"confusion_matrix"`
	TrainSize int             `json:"train_size"`
	TestSize  int             `json:"test_size"`
}
