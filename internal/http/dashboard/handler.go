package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hestiadash/hestia/internal/dashboard"
	"github.com/hestiadash/hestia/internal/http/owner"
)

type Handler struct {
	svc *dashboard.Service
	now func() time.Time
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.home)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	today := h.now()

	if s := r.URL.Query().Get("date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		today = t
	}

	home, err := h.svc.Home(r.Context(), owner.ID(r.Context()), today)
	if err != nil {
		slog.Error("failed to load dashboard", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(home)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
