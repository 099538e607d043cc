package finance

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/http/owner"
	"github.com/hestiadash/hestia/internal/ledger"
	"github.com/hestiadash/hestia/internal/validator"
)

type Handler struct {
	svc          *ledger.Service
	historyLimit int
}

func NewHandler(svc *ledger.Service, historyLimit int) *Handler {
	return &Handler{svc: svc, historyLimit: historyLimit}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/accounts", h.listAccounts)
	r.Post("/accounts", h.createAccount)
	r.Get("/accounts/{id}", h.history)
	r.Post("/transfers", h.transfer)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context(), owner.ID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ToSummaryList(accounts))
}

type createAccountRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validator.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.svc.CreateAccount(r.Context(), owner.ID(r.Context()), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSummary(ledger.Summary{
		ID:      account.ID,
		Name:    account.Name,
		Balance: ledger.BalanceAmount(account.Balance),
		Cents:   account.Balance,
	}))
}

// history accepts ?limit=N to override the configured history length.
func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	limit := h.historyLimit

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		limit = n
	}

	view, err := h.svc.History(r.Context(), owner.ID(r.Context()), id, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistory(view))
}

type transferRequest struct {
	From   string `json:"from" validate:"required,notblank"`
	To     string `json:"to" validate:"required,notblank"`
	Amount string `json:"amount" validate:"required"`
	Reason string `json:"reason"`
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validator.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cents, err := ledger.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := h.svc.Transfer(r.Context(), ledger.TransferParams{
		Owner:  owner.ID(r.Context()),
		From:   req.From,
		To:     req.To,
		Amount: cents,
		Reason: req.Reason,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("transfer applied", "id", id, "from", req.From, "to", req.To, "cents", cents)

	writeJSON(w, http.StatusCreated, transferResponse{ID: id})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrDuplicateName):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrReservedName),
		errors.Is(err, ledger.ErrEmptyName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("finance request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
