package models

// SpendingAnalysis is the response of GET /api/analysis/spending-pattern.
// EmotionalSpendingPattern is a multi-line narrative: the first line is the
// headline, the rest are itemized observations the client renders one by one.
type SpendingAnalysis struct {
	TopCategory              string             `json:"topCategory"`
	SpendingByCategory       map[string]float64 `json:"spendingByCategory"`
	EmotionalSpendingPattern string             `json:"emotionalSpendingPattern"`
	Transactions             []Transaction      `json:"transactions"`
}
