package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hestiadash/hestia/internal/ledger"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, owner, name, balance
func scanAccount(s scanner) (*ledger.Account, error) {
	var a ledger.Account
	if err := s.Scan(&a.ID, &a.Owner, &a.Name, &a.Balance); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Store) GetAccount(ctx context.Context, owner, id uuid.UUID) (*ledger.Account, error) {
	query := `SELECT id, owner, name, balance FROM accounts WHERE owner = $1 AND id = $2`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, owner, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) GetAccountByName(ctx context.Context, owner uuid.UUID, name string) (*ledger.Account, error) {
	query := `SELECT id, owner, name, balance FROM accounts WHERE owner = $1 AND name = $2`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, owner, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting account by name: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context, owner uuid.UUID) ([]*ledger.Account, error) {
	query := `
		SELECT id, owner, name, balance
		FROM accounts
		WHERE owner = $1 AND name <> $2
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, owner, ledger.ExternalAccount)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*ledger.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) CreateAccount(ctx context.Context, a *ledger.Account) error {
	query := `
		INSERT INTO accounts (owner, name, balance)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, a.Owner, a.Name, a.Balance).Scan(&a.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ledger.ErrDuplicateName
		}

		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

// ApplyTransfer locks every touched account row in ID order, applies the
// balance mutations and inserts the transaction inside one database
// transaction. Concurrent transfers sharing an account serialize on the row
// locks; disjoint ones proceed in parallel.
func (s *Store) ApplyTransfer(ctx context.Context, tx *ledger.Transaction, mutations []ledger.BalanceMutation) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	deltas := make(map[uuid.UUID]int64, len(mutations))
	for _, m := range mutations {
		deltas[m.AccountID] += m.Delta
	}

	ids := make([]uuid.UUID, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})

	for _, id := range ids {
		var locked uuid.UUID

		err := dbTx.QueryRowContext(ctx,
			`SELECT id FROM accounts WHERE owner = $1 AND id = $2 FOR UPDATE`,
			tx.Owner, id,
		).Scan(&locked)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ledger.ErrNotFound
			}

			return fmt.Errorf("locking account %s: %w", id, err)
		}
	}

	for _, id := range ids {
		if _, err := dbTx.ExecContext(ctx,
			`UPDATE accounts SET balance = balance + $1 WHERE owner = $2 AND id = $3`,
			deltas[id], tx.Owner, id,
		); err != nil {
			return fmt.Errorf("updating balance of %s: %w", id, err)
		}
	}

	insert := `
		INSERT INTO transactions (owner, from_account, to_account, amount, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	if err := dbTx.QueryRowContext(ctx, insert,
		tx.Owner,
		tx.From,
		tx.To,
		tx.Amount,
		tx.Reason,
	).Scan(&tx.ID, &tx.CreatedAt); err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transfer: %w", err)
	}

	return nil
}

func (s *Store) ListTransactions(ctx context.Context, owner, accountID uuid.UUID, limit int) ([]*ledger.Transaction, error) {
	query := `
		SELECT id, owner, from_account, to_account, amount, reason, created_at
		FROM transactions
		WHERE owner = $1 AND (from_account = $2 OR to_account = $2)
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, owner, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		var tx ledger.Transaction
		if err := rows.Scan(&tx.ID, &tx.Owner, &tx.From, &tx.To, &tx.Amount, &tx.Reason, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}
