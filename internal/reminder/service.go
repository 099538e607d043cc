package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reminder
type Repository interface {
	CreateReminder(ctx context.Context, r *Reminder) error
	ListReminders(ctx context.Context, owner uuid.UUID) ([]*Reminder, error)
	DeleteReminder(ctx context.Context, owner, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Owner  uuid.UUID
	Reason string
	Kind   Kind
	Date   time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Reminder, error) {
	reason := strings.TrimSpace(params.Reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}

	rec, err := NewRecurrence(params.Kind, params.Date)
	if err != nil {
		return nil, err
	}

	r := &Reminder{
		Owner:      params.Owner,
		Reason:     reason,
		Recurrence: rec,
	}
	if err := s.repo.CreateReminder(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]*Reminder, error) {
	return s.repo.ListReminders(ctx, owner)
}

func (s *Service) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return s.repo.DeleteReminder(ctx, owner, id)
}

// Upcoming loads the owner's reminders and projects them around today.
func (s *Service) Upcoming(ctx context.Context, owner uuid.UUID, today time.Time) (Buckets, error) {
	reminders, err := s.repo.ListReminders(ctx, owner)
	if err != nil {
		return Buckets{}, fmt.Errorf("listing reminders: %w", err)
	}

	return Project(today, reminders), nil
}
