package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hestiadash/hestia/internal/bang"
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

// Expected column order: id, owner, name, url, uses
func scanBang(s scanner) (*bang.Bang, error) {
	var b bang.Bang
	if err := s.Scan(&b.ID, &b.Owner, &b.Name, &b.URL, &b.Uses); err != nil {
		return nil, err
	}

	return &b, nil
}

func mapWriteError(err error, verb string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return bang.ErrDuplicateName
	}

	return fmt.Errorf("%s bang: %w", verb, err)
}

func (s *Store) ListBangs(ctx context.Context, owner uuid.UUID) ([]*bang.Bang, error) {
	query := `
		SELECT id, owner, name, url, uses
		FROM bangs
		WHERE owner = $1
		ORDER BY uses DESC, name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("listing bangs: %w", err)
	}
	defer rows.Close()

	var bangs []*bang.Bang

	for rows.Next() {
		b, err := scanBang(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bang: %w", err)
		}

		bangs = append(bangs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bang rows: %w", err)
	}

	return bangs, nil
}

func (s *Store) GetBang(ctx context.Context, owner, id uuid.UUID) (*bang.Bang, error) {
	query := `SELECT id, owner, name, url, uses FROM bangs WHERE owner = $1 AND id = $2`

	b, err := scanBang(s.db.QueryRowContext(ctx, query, owner, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bang.ErrNotFound
		}

		return nil, fmt.Errorf("getting bang: %w", err)
	}

	return b, nil
}

func (s *Store) GetBangByName(ctx context.Context, owner uuid.UUID, name string) (*bang.Bang, error) {
	query := `SELECT id, owner, name, url, uses FROM bangs WHERE owner = $1 AND name = $2`

	b, err := scanBang(s.db.QueryRowContext(ctx, query, owner, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bang.ErrNotFound
		}

		return nil, fmt.Errorf("getting bang by name: %w", err)
	}

	return b, nil
}

func (s *Store) CreateBang(ctx context.Context, b *bang.Bang) error {
	query := `
		INSERT INTO bangs (owner, name, url, uses)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, b.Owner, b.Name, b.URL, b.Uses).Scan(&b.ID); err != nil {
		return mapWriteError(err, "creating")
	}

	return nil
}

func (s *Store) UpdateBang(ctx context.Context, b *bang.Bang) error {
	query := `
		UPDATE bangs SET name = $1, url = $2
		WHERE owner = $3 AND id = $4
		RETURNING uses
	`

	err := s.db.QueryRowContext(ctx, query, b.Name, b.URL, b.Owner, b.ID).Scan(&b.Uses)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bang.ErrNotFound
		}

		return mapWriteError(err, "updating")
	}

	return nil
}

func (s *Store) DeleteBang(ctx context.Context, owner, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bangs WHERE owner = $1 AND id = $2`, owner, id)
	if err != nil {
		return fmt.Errorf("deleting bang: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return bang.ErrNotFound
	}

	return nil
}

func (s *Store) RecordUse(ctx context.Context, owner, bangID uuid.UUID, viaDefault bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	counter := `UPDATE users SET bang_uses = bang_uses + 1 WHERE id = $1`
	if viaDefault {
		counter = `UPDATE users SET default_uses = default_uses + 1 WHERE id = $1`
	}

	if _, err := tx.ExecContext(ctx, counter, owner); err != nil {
		return fmt.Errorf("incrementing search counter: %w", err)
	}

	res, err := tx.ExecContext(ctx, `UPDATE bangs SET uses = uses + 1 WHERE owner = $1 AND id = $2`, owner, bangID)
	if err != nil {
		return fmt.Errorf("incrementing bang uses: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return bang.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing search use: %w", err)
	}

	return nil
}
