package finance

import (
	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/ledger"
)

type amountResponse struct {
	Dollars int64  `json:"dollars"`
	Cents   int64  `json:"cents"`
	Display string `json:"display"`
}

func toAmount(a ledger.Amount) amountResponse {
	return amountResponse{Dollars: a.Dollars, Cents: a.Cents, Display: a.String()}
}

type SummaryResponse struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Balance      amountResponse `json:"balance"`
	BalanceCents int64          `json:"balance_cents"`
}

func toSummary(s ledger.Summary) SummaryResponse {
	return SummaryResponse{
		ID:           s.ID,
		Name:         s.Name,
		Balance:      toAmount(s.Balance),
		BalanceCents: s.Cents,
	}
}

func ToSummaryList(accounts []ledger.Summary) []SummaryResponse {
	res := make([]SummaryResponse, len(accounts))
	for i, a := range accounts {
		res[i] = toSummary(a)
	}

	return res
}

type entryResponse struct {
	ID       uuid.UUID      `json:"id"`
	From     string         `json:"from"`
	To       string         `json:"to"`
	Incoming bool           `json:"incoming"`
	Amount   amountResponse `json:"amount"`
	Reason   string         `json:"reason"`
	Date     string         `json:"date"`
}

type historyResponse struct {
	ID           uuid.UUID       `json:"id"`
	Account      string          `json:"account"`
	Balance      amountResponse  `json:"balance"`
	BalanceCents int64           `json:"balance_cents"`
	Transactions []entryResponse `json:"transactions"`
}

func toHistory(h *ledger.History) historyResponse {
	entries := make([]entryResponse, len(h.Transactions))
	for i, e := range h.Transactions {
		entries[i] = entryResponse{
			ID:       e.ID,
			From:     e.From,
			To:       e.To,
			Incoming: e.Incoming,
			Amount:   toAmount(e.Amount),
			Reason:   e.Reason,
			Date:     e.Date,
		}
	}

	return historyResponse{
		ID:           h.AccountID,
		Account:      h.Account,
		Balance:      toAmount(h.Balance),
		BalanceCents: h.Cents,
		Transactions: entries,
	}
}

type transferResponse struct {
	ID uuid.UUID `json:"id"`
}
