package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emobudget-server/src/models"
)

func CreateExpense(ctx context.Context, pool *pgxpool.Pool, expense *models.ImportantExpense) (*models.ImportantExpense, error) {
	query := `
		INSERT INTO important_expenses (user_id, name, amount, due_date, advice)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, amount, due_date::text, COALESCE(advice, '')
	`
	var e models.ImportantExpense
	err := pool.QueryRow(ctx, query, expense.UserID, expense.Name, expense.Amount, expense.DueDate, expense.Advice).
		Scan(&e.ID, &e.UserID, &e.Name, &e.Amount, &e.DueDate, &e.Advice)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func GetExpensesForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.ImportantExpense, error) {
	query := `
		SELECT id, user_id, name, amount, due_date::text, COALESCE(advice, '')
		FROM important_expenses
		WHERE user_id = $1
		ORDER BY due_date ASC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.ImportantExpense{}
	for rows.Next() {
		var e models.ImportantExpense
		err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Amount, &e.DueDate, &e.Advice)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// GetNextExpense returns the soonest expense due today or later, or nil when
// the user has none upcoming.
func GetNextExpense(ctx context.Context, pool *pgxpool.Pool, userID int64) (*models.ImportantExpense, error) {
	query := `
		SELECT id, user_id, name, amount, due_date::text, COALESCE(advice, '')
		FROM important_expenses
		WHERE user_id = $1 AND due_date >= CURRENT_DATE
		ORDER BY due_date ASC
		LIMIT 1
	`
	var e models.ImportantExpense
	err := pool.QueryRow(ctx, query, userID).
		Scan(&e.ID, &e.UserID, &e.Name, &e.Amount, &e.DueDate, &e.Advice)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func DeleteExpense(ctx context.Context, pool *pgxpool.Pool, userID, expenseID int64) error {
	query := `DELETE FROM important_expenses WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, expenseID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("expense not found")
	}
	return nil
}
