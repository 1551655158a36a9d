package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plaid/plaid-go/v41/plaid"

	"emobudget-server/src/models"
)

// GetTransactions returns the user's synced transactions, newest first,
// already decorated with the account name/mask and the selected-set nickname
// so the client does not need its own join.
func GetTransactions(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Transaction, error) {
	query := `
		SELECT t.name, t.amount, t.date::text, t.category,
		       COALESCE(t.account_id, ''),
		       COALESCE(a.name, ''), COALESCE(a.mask, ''), COALESCE(s.nickname, '')
		FROM transactions t
		LEFT JOIN accounts a ON a.account_id = t.account_id
		LEFT JOIN selected_accounts s ON s.account_id = t.account_id AND s.user_id = t.user_id
		WHERE t.user_id = $1
		ORDER BY t.date DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(&tx.Name, &tx.Amount, &tx.Date, &tx.Category,
			&tx.AccountID, &tx.AccountName, &tx.AccountMask, &tx.AccountNickname)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

func SaveTransactions(ctx context.Context, pool *pgxpool.Pool, userID int64, transactions []plaid.Transaction) error {
	for _, txn := range transactions {
		query := `
			INSERT INTO transactions (user_id, account_id, transaction_id, name, amount, date, category, pending)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (transaction_id) DO NOTHING
		`
		_, err := pool.Exec(ctx, query,
			userID,
			txn.GetAccountId(),
			txn.GetTransactionId(),
			txn.GetName(),
			txn.GetAmount(),
			txn.GetDate(),
			txn.GetPersonalFinanceCategory().Primary,
			txn.GetPending(),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
