package models

// ImportantExpense is a user-declared upcoming expense. ID is zero only for
// client-local drafts; every record the server returns has one. There is no
// update path: the client deletes and recreates.
type ImportantExpense struct {
	ID      int64   `json:"id"`
	UserID  int64   `json:"-"`
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"dueDate"`
	Advice  string  `json:"advice,omitempty"`
}

type CreateExpenseRequest struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"dueDate"`
}
