package reminder

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/http/owner"
	"github.com/hestiadash/hestia/internal/reminder"
	"github.com/hestiadash/hestia/internal/validator"
)

type Handler struct {
	svc *reminder.Service
	now func() time.Time
}

func NewHandler(svc *reminder.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/upcoming", h.upcoming)
	r.Delete("/{id}", h.delete)
}

type createReminderRequest struct {
	Reason     string `json:"reason" validate:"required,notblank"`
	Recurrence string `json:"recurrence" validate:"required,oneof=none day week month year"`
	Date       string `json:"date" validate:"required,isodate"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validator.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	rem, err := h.svc.Create(r.Context(), reminder.CreateParams{
		Owner:  owner.ID(r.Context()),
		Reason: req.Reason,
		Kind:   reminder.Kind(req.Recurrence),
		Date:   date,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(rem))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.svc.List(r.Context(), owner.ID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(reminders))
}

// upcoming projects the reminders around ?date=YYYY-MM-DD, or the server's
// current date when the parameter is absent.
func (h *Handler) upcoming(w http.ResponseWriter, r *http.Request) {
	today := h.now()

	if s := r.URL.Query().Get("date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		today = t
	}

	buckets, err := h.svc.Upcoming(r.Context(), owner.ID(r.Context()), today)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ToBucketsResponse(buckets))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), owner.ID(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reminder.ErrNotFound):
		http.Error(w, "reminder not found", http.StatusNotFound)
	case errors.Is(err, reminder.ErrEmptyReason), errors.Is(err, reminder.ErrInvalidRecurrence):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("reminder request failed", "error", err)
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
