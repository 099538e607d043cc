package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	GetAccount(ctx context.Context, owner, id uuid.UUID) (*Account, error)
	GetAccountByName(ctx context.Context, owner uuid.UUID, name string) (*Account, error)
	ListAccounts(ctx context.Context, owner uuid.UUID) ([]*Account, error)
	CreateAccount(ctx context.Context, account *Account) error

	// ApplyTransfer inserts tx and applies every mutation as one atomic unit.
	// On error nothing is visible.
	ApplyTransfer(ctx context.Context, tx *Transaction, mutations []BalanceMutation) error

	// ListTransactions returns up to limit of the most recent transactions
	// touching the account, newest first.
	ListTransactions(ctx context.Context, owner, accountID uuid.UUID, limit int) ([]*Transaction, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type TransferParams struct {
	Owner  uuid.UUID
	From   string
	To     string
	Amount int64
	Reason string
}

// Transfer moves an amount between two of the owner's accounts, addressed by
// name, and returns the new transaction's ID.
func (s *Service) Transfer(ctx context.Context, params TransferParams) (uuid.UUID, error) {
	if params.Amount < 0 {
		return uuid.Nil, ErrInvalidAmount
	}

	from, err := s.repo.GetAccountByName(ctx, params.Owner, params.From)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolving source account %q: %w", params.From, err)
	}

	to, err := s.repo.GetAccountByName(ctx, params.Owner, params.To)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolving destination account %q: %w", params.To, err)
	}

	tx := &Transaction{
		Owner:  params.Owner,
		From:   from.ID,
		To:     to.ID,
		Amount: params.Amount,
		Reason: params.Reason,
	}

	mutations := []BalanceMutation{
		{AccountID: from.ID, Delta: -params.Amount},
		{AccountID: to.ID, Delta: params.Amount},
	}

	if err := s.repo.ApplyTransfer(ctx, tx, mutations); err != nil {
		return uuid.Nil, fmt.Errorf("applying transfer: %w", err)
	}

	return tx.ID, nil
}

// History builds the display view of an account: its balance and up to
// limit of its most recent transactions with counterpart names resolved.
// A limit of zero or less uses DefaultHistoryLimit.
func (s *Service) History(ctx context.Context, owner, accountID uuid.UUID, limit int) (*History, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	account, err := s.repo.GetAccount(ctx, owner, accountID)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	txs, err := s.repo.ListTransactions(ctx, owner, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	names := newNameCache(s.repo, owner)
	names.put(account)

	entries := make([]Entry, 0, len(txs))

	for _, tx := range txs {
		from, err := names.lookup(ctx, tx.From)
		if err != nil {
			return nil, fmt.Errorf("resolving account %s: %w", tx.From, err)
		}

		to, err := names.lookup(ctx, tx.To)
		if err != nil {
			return nil, fmt.Errorf("resolving account %s: %w", tx.To, err)
		}

		if from == ExternalAccount {
			from = PaymentLabel
		}

		if to == ExternalAccount {
			to = ExpenseLabel
		}

		entries = append(entries, Entry{
			ID:       tx.ID,
			From:     from,
			To:       to,
			Incoming: tx.To == accountID,
			Amount:   TransactionAmount(tx.Amount),
			Reason:   tx.Reason,
			Date:     tx.CreatedAt.Format(timestampLayout),
		})
	}

	return &History{
		AccountID:    account.ID,
		Account:      account.Name,
		Balance:      BalanceAmount(account.Balance),
		Cents:        account.Balance,
		Transactions: entries,
	}, nil
}

const timestampLayout = "2006-01-02 15:04"

// ListAccounts returns the owner's accounts without the external account.
func (s *Service) ListAccounts(ctx context.Context, owner uuid.UUID) ([]Summary, error) {
	accounts, err := s.repo.ListAccounts(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	out := make([]Summary, 0, len(accounts))

	for _, a := range accounts {
		if a.IsExternal() {
			continue
		}

		out = append(out, Summary{
			ID:      a.ID,
			Name:    a.Name,
			Balance: BalanceAmount(a.Balance),
			Cents:   a.Balance,
		})
	}

	return out, nil
}

func (s *Service) CreateAccount(ctx context.Context, owner uuid.UUID, name string) (*Account, error) {
	name = strings.TrimSpace(name)

	switch {
	case name == "":
		return nil, ErrEmptyName
	case name == ExternalAccount:
		return nil, ErrReservedName
	}

	account := &Account{Owner: owner, Name: name}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// nameCache resolves account IDs to names, remembering every account it has
// seen. It lives for a single History call.
type nameCache struct {
	repo  Repository
	owner uuid.UUID
	names map[uuid.UUID]string
}

func newNameCache(repo Repository, owner uuid.UUID) *nameCache {
	return &nameCache{repo: repo, owner: owner, names: make(map[uuid.UUID]string)}
}

func (c *nameCache) put(a *Account) {
	c.names[a.ID] = a.Name
}

func (c *nameCache) lookup(ctx context.Context, id uuid.UUID) (string, error) {
	if name, ok := c.names[id]; ok {
		return name, nil
	}

	a, err := c.repo.GetAccount(ctx, c.owner, id)
	if err != nil {
		return "", err
	}

	c.put(a)

	return a.Name, nil
}
