package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/reminder"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateReminder(ctx context.Context, r *reminder.Reminder) error {
	query := `
		INSERT INTO reminders (owner, reason, recurrence, anchor, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.Owner,
		r.Reason,
		string(r.Recurrence.Kind()),
		r.Recurrence.Anchor(),
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating reminder: %w", err)
	}

	return nil
}

func (s *Store) ListReminders(ctx context.Context, owner uuid.UUID) ([]*reminder.Reminder, error) {
	query := `
		SELECT id, owner, reason, recurrence, anchor, created_at
		FROM reminders
		WHERE owner = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*reminder.Reminder

	for rows.Next() {
		var (
			r      reminder.Reminder
			kind   string
			anchor time.Time
		)

		if err := rows.Scan(&r.ID, &r.Owner, &r.Reason, &kind, &anchor, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}

		rec, err := reminder.NewRecurrence(reminder.Kind(kind), anchor)
		if err != nil {
			return nil, fmt.Errorf("decoding reminder %s: %w", r.ID, err)
		}

		r.Recurrence = rec
		reminders = append(reminders, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminder rows: %w", err)
	}

	return reminders, nil
}

func (s *Store) DeleteReminder(ctx context.Context, owner, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reminders WHERE owner = $1 AND id = $2`, owner, id)
	if err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}

	if n == 0 {
		return reminder.ErrNotFound
	}

	return nil
}
