package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"emobudget-server/src/models"
)

func SavePlaidItem(ctx context.Context, pool *pgxpool.Pool, userID int64, itemID, accessToken string) (int64, error) {
	query := `
		INSERT INTO plaid_items (user_id, item_id, access_token)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id) DO UPDATE SET access_token = $3
		RETURNING id
	`
	var id int64
	err := pool.QueryRow(ctx, query, userID, itemID, accessToken).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func GetPlaidItems(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.PlaidItem, error) {
	query := `SELECT id, user_id, item_id, access_token, created_at::text FROM plaid_items WHERE user_id = $1`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.PlaidItem
	for rows.Next() {
		var item models.PlaidItem
		err := rows.Scan(&item.ID, &item.UserID, &item.ItemID, &item.AccessToken, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func GetItemByPlaidItemID(ctx context.Context, pool *pgxpool.Pool, plaidItemID string) (*models.PlaidItem, error) {
	query := `SELECT id, user_id, item_id, access_token, created_at::text FROM plaid_items WHERE item_id = $1`
	var item models.PlaidItem
	err := pool.QueryRow(ctx, query, plaidItemID).
		Scan(&item.ID, &item.UserID, &item.ItemID, &item.AccessToken, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func GetSyncCursor(ctx context.Context, pool *pgxpool.Pool, itemID int64) (string, error) {
	query := `SELECT COALESCE(sync_cursor, '') FROM plaid_items WHERE id = $1`
	var cursor string
	err := pool.QueryRow(ctx, query, itemID).Scan(&cursor)
	if err != nil {
		return "", err
	}
	return cursor, nil
}

func UpdateSyncCursor(ctx context.Context, pool *pgxpool.Pool, itemID int64, cursor string) error {
	query := `UPDATE plaid_items SET sync_cursor = $1 WHERE id = $2`
	_, err := pool.Exec(ctx, query, cursor, itemID)
	return err
}
