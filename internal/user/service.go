package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	// CreateUser inserts the user together with its default bang pointing at
	// defaultBangURL and its external ledger account, all or nothing.
	CreateUser(ctx context.Context, user *User, defaultBangURL string) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*User, error)
	UpdateAPIKey(ctx context.Context, id uuid.UUID, apiKey string) error
}

type Service struct {
	repo   Repository
	newKey func() (string, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, newKey: NewAPIKey}
}

func (s *Service) Register(ctx context.Context, username, defaultBangURL string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	key, err := s.newKey()
	if err != nil {
		return nil, fmt.Errorf("generating api key: %w", err)
	}

	u := &User{Username: username, APIKey: key}
	if err := s.repo.CreateUser(ctx, u, defaultBangURL); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) ByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) ByAPIKey(ctx context.Context, apiKey string) (*User, error) {
	if apiKey == "" {
		return nil, ErrNotFound
	}

	return s.repo.GetByAPIKey(ctx, apiKey)
}

// RotateAPIKey replaces the user's API key and returns the new one. The old
// key stops identifying the user immediately.
func (s *Service) RotateAPIKey(ctx context.Context, id uuid.UUID) (string, error) {
	key, err := s.newKey()
	if err != nil {
		return "", fmt.Errorf("generating api key: %w", err)
	}

	if err := s.repo.UpdateAPIKey(ctx, id, key); err != nil {
		return "", err
	}

	return key, nil
}
