package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plaid/plaid-go/v41/plaid"

	"emobudget-server/src/models"
)

// GetAllAccounts returns every account the aggregator reports as linked for
// the user, regardless of prior selection. The selected-set nickname is
// joined in when one exists so the selection screen can prefill it.
func GetAllAccounts(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Account, error) {
	query := `
		SELECT a.account_id, a.item_id, a.name, COALESCE(s.nickname, ''), a.mask, a.subtype,
		       a.current_balance, a.available_balance
		FROM accounts a
		JOIN plaid_items p ON a.item_id = p.id
		LEFT JOIN selected_accounts s ON s.account_id = a.account_id AND s.user_id = p.user_id
		WHERE p.user_id = $1
		ORDER BY a.name
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		err := rows.Scan(&account.AccountID, &account.ItemID, &account.Name, &account.Nickname,
			&account.Mask, &account.Subtype, &account.CurrentBalance, &account.AvailableBalance)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// GetSelectedAccounts returns only the subset the user previously saved.
// No selection yet means an empty slice, not an error.
func GetSelectedAccounts(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Account, error) {
	query := `
		SELECT a.account_id, a.item_id, a.name, s.nickname, a.mask, a.subtype,
		       a.current_balance, a.available_balance
		FROM selected_accounts s
		JOIN accounts a ON a.account_id = s.account_id
		WHERE s.user_id = $1
		ORDER BY a.name
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var account models.Account
		err := rows.Scan(&account.AccountID, &account.ItemID, &account.Name, &account.Nickname,
			&account.Mask, &account.Subtype, &account.CurrentBalance, &account.AvailableBalance)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// SaveSelectedAccounts replaces the whole selected set in one transaction.
// Saving an empty selection clears it; there is no incremental merge.
func SaveSelectedAccounts(ctx context.Context, pool *pgxpool.Pool, userID int64, selection []models.AccountSelection) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM selected_accounts WHERE user_id = $1`, userID); err != nil {
		return err
	}

	query := `
		INSERT INTO selected_accounts (user_id, account_id, nickname)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, account_id) DO UPDATE SET nickname = $3
	`
	for _, sel := range selection {
		if _, err := tx.Exec(ctx, query, userID, sel.ID, sel.Nickname); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func SaveAccounts(ctx context.Context, pool *pgxpool.Pool, itemID int64, accounts []plaid.AccountBase) error {
	for _, acc := range accounts {
		query := `
			INSERT INTO accounts (item_id, account_id, name, mask, subtype, current_balance, available_balance)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (account_id) DO UPDATE SET
				name = $3,
				current_balance = $6,
				available_balance = $7,
				updated_at = NOW()
		`
		subtype := ""
		if acc.Subtype.IsSet() && acc.Subtype.Get() != nil {
			subtype = string(*acc.Subtype.Get())
		}
		_, err := pool.Exec(ctx, query,
			itemID,
			acc.GetAccountId(),
			acc.GetName(),
			acc.GetMask(),
			subtype,
			acc.GetBalances().Current.Get(),
			acc.GetBalances().Available.Get(),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
