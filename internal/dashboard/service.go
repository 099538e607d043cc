package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hestiadash/hestia/internal/ledger"
	"github.com/hestiadash/hestia/internal/link"
	"github.com/hestiadash/hestia/internal/reminder"
	"github.com/hestiadash/hestia/internal/user"
)

type LinkLister interface {
	List(ctx context.Context, owner uuid.UUID) ([]*link.Link, error)
}

type UserGetter interface {
	ByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type ReminderProjector interface {
	Upcoming(ctx context.Context, owner uuid.UUID, today time.Time) (reminder.Buckets, error)
}

type AccountLister interface {
	ListAccounts(ctx context.Context, owner uuid.UUID) ([]ledger.Summary, error)
}

// Home is everything the dashboard front page shows for one owner.
type Home struct {
	Username    string
	APIKey      string
	DefaultUses int64
	BangUses    int64
	Links       []*link.Link
	Reminders   reminder.Buckets
	Accounts    []ledger.Summary
}

type Service struct {
	links     LinkLister
	users     UserGetter
	reminders ReminderProjector
	accounts  AccountLister
}

func NewService(links LinkLister, users UserGetter, reminders ReminderProjector, accounts AccountLister) *Service {
	return &Service{links: links, users: users, reminders: reminders, accounts: accounts}
}

// Home loads the owner's front page. The sources are read concurrently and
// the first failure cancels the rest.
func (s *Service) Home(ctx context.Context, owner uuid.UUID, today time.Time) (*Home, error) {
	var (
		home Home
		u    *user.User
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if u, err = s.users.ByID(ctx, owner); err != nil {
			return fmt.Errorf("getting user: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error
		if home.Links, err = s.links.List(ctx, owner); err != nil {
			return fmt.Errorf("listing links: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error
		if home.Reminders, err = s.reminders.Upcoming(ctx, owner, today); err != nil {
			return fmt.Errorf("projecting reminders: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error
		if home.Accounts, err = s.accounts.ListAccounts(ctx, owner); err != nil {
			return fmt.Errorf("listing accounts: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	home.Username = u.Username
	home.APIKey = u.APIKey
	home.DefaultUses = u.DefaultUses
	home.BangUses = u.BangUses

	return &home, nil
}
