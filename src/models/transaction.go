package models

// NoAccountID is the sentinel the analysis pipeline stamps on transactions
// that could not be attributed to a linked account. The client treats it the
// same as a missing accountId.
const NoAccountID = "NO_ACCOUNT"

// Transaction is a read-only record synced from the aggregator. Date stays a
// string ("2006-01-02" from Plaid): the advice engine parses it on demand and
// drops records it cannot parse instead of failing the whole analysis.
// Positive amounts are expenses, negative amounts are inflows.
type Transaction struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	Category  string  `json:"category"`
	AccountID string  `json:"accountId"`

	// Denormalized for display; filled by the nickname join before the
	// response is written. When present they win over any client-side lookup.
	AccountName     string `json:"accountName,omitempty"`
	AccountMask     string `json:"accountMask,omitempty"`
	AccountNickname string `json:"accountNickname,omitempty"`
}
