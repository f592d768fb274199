package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type UserRepository interface {
	// GetIDByEmail resolves a user email to its opaque user ID. Returns ""
	// when no user carries the email.
	GetIDByEmail(ctx context.Context, email string) (string, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetIDByEmail(ctx context.Context, email string) (string, error) {
	var userID string
	query := `SELECT user_id FROM users WHERE user_email = $1 LIMIT 1`
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve user email: %w", err)
	}
	return userID, nil
}
