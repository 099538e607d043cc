package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hestiadash/hestia/internal/ledger"
	"github.com/hestiadash/hestia/internal/user"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectUser = `SELECT id, username, api_key, default_uses, bang_uses, created_at FROM users`

func scanUser(s scanner) (*user.User, error) {
	var u user.User
	if err := s.Scan(&u.ID, &u.Username, &u.APIKey, &u.DefaultUses, &u.BangUses, &u.CreatedAt); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *user.User, defaultBangURL string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (username, api_key) VALUES ($1, $2) RETURNING id, created_at`,
		u.Username, u.APIKey,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.ErrDuplicateUsername
		}

		return fmt.Errorf("inserting user: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO bangs (owner, name, url) VALUES ($1, $2, $3)`,
		u.ID, user.DefaultBang, defaultBangURL,
	); err != nil {
		return fmt.Errorf("inserting default bang: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO accounts (owner, name, balance) VALUES ($1, $2, 0)`,
		u.ID, ledger.ExternalAccount,
	); err != nil {
		return fmt.Errorf("inserting external account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing user: %w", err)
	}

	return nil
}

func (s *Store) get(ctx context.Context, where string, arg any) (*user.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, selectUser+" WHERE "+where+" = $1", arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user by %s: %w", where, err)
	}

	return u, nil
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.get(ctx, "id", id)
}

func (s *Store) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.get(ctx, "username", username)
}

func (s *Store) GetByAPIKey(ctx context.Context, apiKey string) (*user.User, error) {
	return s.get(ctx, "api_key", apiKey)
}

func (s *Store) UpdateAPIKey(ctx context.Context, id uuid.UUID, apiKey string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET api_key = $1 WHERE id = $2`, apiKey, id)
	if err != nil {
		return fmt.Errorf("updating api key: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return user.ErrNotFound
	}

	return nil
}
