package models

// Account is the wire shape the app binds to on the account selection and
// home screens. Field names are camelCase because the client interfaces
// declare them that way.
type Account struct {
	AccountID        string  `json:"accountId"`
	ItemID           int64   `json:"-"`
	Name             string  `json:"name"`
	Nickname         string  `json:"nickname,omitempty"`
	Mask             string  `json:"mask,omitempty"`
	Subtype          string  `json:"subtype,omitempty"`
	CurrentBalance   float64 `json:"currentBalance"`
	AvailableBalance float64 `json:"availableBalance"`
}

// AccountSelection is one element of the POST /accounts/save payload.
// The client sends {id, nickname} pairs, nickname already defaulted to the
// institution name when the user typed nothing.
type AccountSelection struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
}
