package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hestiadash/hestia/internal/http/owner"
	"github.com/hestiadash/hestia/internal/user"
	"github.com/hestiadash/hestia/internal/validator"
)

type Options struct {
	SignupEnabled  bool
	DefaultBangURL string
}

type Handler struct {
	svc  *user.Service
	opts Options
}

func NewHandler(svc *user.Service, opts Options) *Handler {
	return &Handler{svc: svc, opts: opts}
}

// Routes serves the current user's endpoints. It expects the owner
// middleware in front of it.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.me)
	r.Post("/api-key", h.rotateKey)
}

type signupRequest struct {
	Username string `json:"username" validate:"required,notblank,max=64"`
}

// Signup registers a user. It answers 404 while signups are disabled so the
// endpoint looks absent.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if !h.opts.SignupEnabled {
		http.NotFound(w, r)
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validator.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), req.Username, h.opts.DefaultBangURL)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("user registered", "id", u.ID, "username", u.Username)

	writeJSON(w, http.StatusCreated, toResponse(u))
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, ok := owner.FromContext(r.Context())
	if !ok {
		http.Error(w, "unknown api key", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(u))
}

func (h *Handler) rotateKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.svc.RotateAPIKey(r.Context(), owner.ID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apiKeyResponse{APIKey: key})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, user.ErrDuplicateUsername):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, user.ErrEmptyUsername):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("user request failed", "error", err)
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
