package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emobudget-server/src/models"
)

func CreateUser(ctx context.Context, pool *pgxpool.Pool, email, hashedPassword, verificationCode string) (*models.User, error) {
	query := `
		INSERT INTO users (email, password_hash, verification_code)
		VALUES ($1, $2, $3)
		RETURNING id, email, verified, created_at
	`
	var user models.User
	err := pool.QueryRow(ctx, query, email, hashedPassword, verificationCode).
		Scan(&user.ID, &user.Email, &user.Verified, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func GetUserByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, email, password_hash, verified, created_at
		FROM users
		WHERE email = $1
	`
	err := pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Verified,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func VerifyUserEmail(ctx context.Context, pool *pgxpool.Pool, email, code string) error {
	query := `
		UPDATE users
		SET verified = TRUE, verification_code = NULL
		WHERE email = $1 AND verification_code = $2
	`
	cmd, err := pool.Exec(ctx, query, email, code)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("invalid verification code")
	}
	return nil
}

func SetResetCode(ctx context.Context, pool *pgxpool.Pool, email, code string) error {
	query := `UPDATE users SET reset_code = $1 WHERE email = $2`
	cmd, err := pool.Exec(ctx, query, code, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("user not found")
	}
	return nil
}

func ResetPassword(ctx context.Context, pool *pgxpool.Pool, email, code, hashedPassword string) error {
	query := `
		UPDATE users
		SET password_hash = $1, reset_code = NULL
		WHERE email = $2 AND reset_code = $3
	`
	cmd, err := pool.Exec(ctx, query, hashedPassword, email, code)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("invalid reset code")
	}
	return nil
}

// DeleteUser removes the user and everything hanging off them. Explicit
// deletes inside one transaction rather than relying on FK cascade so a
// partial failure rolls back to the pre-delete state.
func DeleteUser(ctx context.Context, pool *pgxpool.Pool, userID int64) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	statements := []string{
		`DELETE FROM important_expenses WHERE user_id = $1`,
		`DELETE FROM selected_accounts WHERE user_id = $1`,
		`DELETE FROM transactions WHERE user_id = $1`,
		`DELETE FROM accounts WHERE item_id IN (SELECT id FROM plaid_items WHERE user_id = $1)`,
		`DELETE FROM plaid_items WHERE user_id = $1`,
		`DELETE FROM users WHERE id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, userID); err != nil {
			return fmt.Errorf("failed to delete user data: %w", err)
		}
	}

	return tx.Commit(ctx)
}
