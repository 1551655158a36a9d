package models

type PlaidItem struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	ItemID      string `json:"item_id"`
	AccessToken string `json:"-"`
	CreatedAt   string `json:"created_at"`
}
