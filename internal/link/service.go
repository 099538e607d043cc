package link

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=link
type Repository interface {
	ListLinks(ctx context.Context, owner uuid.UUID) ([]*Link, error)
	CreateLink(ctx context.Context, l *Link) error
	UpdateLink(ctx context.Context, l *Link) error
	DeleteLink(ctx context.Context, owner, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]*Link, error) {
	return s.repo.ListLinks(ctx, owner)
}

func (s *Service) Create(ctx context.Context, l *Link) error {
	if err := validate(l); err != nil {
		return err
	}

	return s.repo.CreateLink(ctx, l)
}

func (s *Service) Update(ctx context.Context, l *Link) error {
	if err := validate(l); err != nil {
		return err
	}

	return s.repo.UpdateLink(ctx, l)
}

func (s *Service) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return s.repo.DeleteLink(ctx, owner, id)
}
