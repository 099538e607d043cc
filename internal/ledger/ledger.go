package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("account not found")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrReservedName  = errors.New("account name is reserved")
	ErrDuplicateName = errors.New("account name already exists")
	ErrEmptyName     = errors.New("empty account name")
)

// ExternalAccount is the name of the per-owner sentinel account that stands
// for money entering or leaving the ledger. It is never listed.
const ExternalAccount = "__external__"

// Display names of the external account in a history, by direction.
const (
	PaymentLabel = "PAYMENT"
	ExpenseLabel = "EXPENSE"
)

// DefaultHistoryLimit is the number of transactions shown in an account history.
const DefaultHistoryLimit = 1000

// Account holds a balance in cents.
type Account struct {
	ID      uuid.UUID
	Owner   uuid.UUID
	Name    string
	Balance int64
}

// IsExternal reports whether a is the owner's sentinel account.
func (a *Account) IsExternal() bool {
	return a.Name == ExternalAccount
}

// Transaction moves Amount cents from one account to another. Transactions
// are never updated or deleted.
type Transaction struct {
	ID        uuid.UUID
	Owner     uuid.UUID
	From      uuid.UUID
	To        uuid.UUID
	Amount    int64
	Reason    string
	CreatedAt time.Time
}

// BalanceMutation adds Delta cents to an account's balance.
type BalanceMutation struct {
	AccountID uuid.UUID
	Delta     int64
}

// Amount is a cent value split for display.
type Amount struct {
	Dollars int64
	Cents   int64
}

func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", a.Dollars, a.Cents)
}

// BalanceAmount splits a balance. The cents part is taken from the absolute
// value so it is never negative.
func BalanceAmount(cents int64) Amount {
	abs := cents
	if abs < 0 {
		abs = -abs
	}

	return Amount{Dollars: cents / 100, Cents: abs % 100}
}

// TransactionAmount splits a transaction amount with truncated division, so
// a negative amount yields a negative cents part.
func TransactionAmount(cents int64) Amount {
	return Amount{Dollars: cents / 100, Cents: cents % 100}
}

// Entry is a transaction as shown in an account history.
type Entry struct {
	ID       uuid.UUID
	From     string
	To       string
	Incoming bool
	Amount   Amount
	Reason   string
	Date     string
}

// History is the display view of one account.
type History struct {
	AccountID    uuid.UUID
	Account      string
	Balance      Amount
	Cents        int64
	Transactions []Entry
}

// Summary is an account as shown in the account listing.
type Summary struct {
	ID      uuid.UUID
	Name    string
	Balance Amount
	Cents   int64
}
