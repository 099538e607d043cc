package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/link"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListLinks(ctx context.Context, owner uuid.UUID) ([]*link.Link, error) {
	query := `SELECT id, owner, name, url FROM quick_links WHERE owner = $1 ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("listing links: %w", err)
	}
	defer rows.Close()

	var links []*link.Link

	for rows.Next() {
		var l link.Link
		if err := rows.Scan(&l.ID, &l.Owner, &l.Name, &l.URL); err != nil {
			return nil, fmt.Errorf("scanning link: %w", err)
		}

		links = append(links, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating link rows: %w", err)
	}

	return links, nil
}

func (s *Store) CreateLink(ctx context.Context, l *link.Link) error {
	query := `INSERT INTO quick_links (owner, name, url) VALUES ($1, $2, $3) RETURNING id`

	if err := s.db.QueryRowContext(ctx, query, l.Owner, l.Name, l.URL).Scan(&l.ID); err != nil {
		return fmt.Errorf("creating link: %w", err)
	}

	return nil
}

func (s *Store) UpdateLink(ctx context.Context, l *link.Link) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE quick_links SET name = $1, url = $2 WHERE owner = $3 AND id = $4`,
		l.Name, l.URL, l.Owner, l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating link: %w", err)
	}

	return expectRow(res)
}

func (s *Store) DeleteLink(ctx context.Context, owner, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quick_links WHERE owner = $1 AND id = $2`, owner, id)
	if err != nil {
		return fmt.Errorf("deleting link: %w", err)
	}

	return expectRow(res)
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return link.ErrNotFound
	}

	return nil
}
