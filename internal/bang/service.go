package bang

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bang
type Repository interface {
	ListBangs(ctx context.Context, owner uuid.UUID) ([]*Bang, error)
	GetBang(ctx context.Context, owner, id uuid.UUID) (*Bang, error)
	GetBangByName(ctx context.Context, owner uuid.UUID, name string) (*Bang, error)
	CreateBang(ctx context.Context, b *Bang) error
	UpdateBang(ctx context.Context, b *Bang) error
	DeleteBang(ctx context.Context, owner, id uuid.UUID) error

	// RecordUse increments the bang's use count and the owner's default or
	// bang search counter in one atomic write.
	RecordUse(ctx context.Context, owner, bangID uuid.UUID, viaDefault bool) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]*Bang, error) {
	return s.repo.ListBangs(ctx, owner)
}

func (s *Service) Create(ctx context.Context, b *Bang) error {
	if err := validate(b); err != nil {
		return err
	}

	b.Uses = 0

	return s.repo.CreateBang(ctx, b)
}

func (s *Service) Update(ctx context.Context, b *Bang) error {
	if err := validate(b); err != nil {
		return err
	}

	current, err := s.repo.GetBang(ctx, b.Owner, b.ID)
	if err != nil {
		return err
	}

	if current.IsDefault() && !b.IsDefault() {
		return ErrDefaultBang
	}

	return s.repo.UpdateBang(ctx, b)
}

func (s *Service) Delete(ctx context.Context, owner, id uuid.UUID) error {
	current, err := s.repo.GetBang(ctx, owner, id)
	if err != nil {
		return err
	}

	if current.IsDefault() {
		return ErrDefaultBang
	}

	return s.repo.DeleteBang(ctx, owner, id)
}

// Resolve turns a search query into a destination URL.
//
// "!name terms" uses the owner's bang called name, or the default bang when
// there is none. Any other query goes to the default bang. The terms are
// query-escaped and appended to the bang's URL, and the use is recorded.
func (s *Service) Resolve(ctx context.Context, owner uuid.UUID, query string) (*Resolution, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	name, terms, explicit := DefaultName, query, false

	if rest, ok := strings.CutPrefix(query, Prefix); ok {
		explicit = true
		name, terms, _ = strings.Cut(rest, " ")
		terms = strings.TrimSpace(terms)
	}

	b, err := s.lookup(ctx, owner, name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RecordUse(ctx, owner, b.ID, !explicit); err != nil {
		return nil, fmt.Errorf("recording search use: %w", err)
	}

	return &Resolution{
		URL:     b.URL + url.QueryEscape(terms),
		Bang:    b.Name,
		Default: !explicit,
	}, nil
}

func (s *Service) lookup(ctx context.Context, owner uuid.UUID, name string) (*Bang, error) {
	if name != DefaultName {
		b, err := s.repo.GetBangByName(ctx, owner, name)
		if err == nil {
			return b, nil
		}

		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("getting bang %q: %w", name, err)
		}
	}

	b, err := s.repo.GetBangByName(ctx, owner, DefaultName)
	if err != nil {
		return nil, fmt.Errorf("getting default bang: %w", err)
	}

	return b, nil
}
