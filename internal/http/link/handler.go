package link

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/http/owner"
	"github.com/hestiadash/hestia/internal/link"
	"github.com/hestiadash/hestia/internal/validator"
)

type Handler struct {
	svc *link.Service
}

func NewHandler(svc *link.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type linkRequest struct {
	Name string `json:"name" validate:"required,notblank"`
	URL  string `json:"url" validate:"required,url"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	links, err := h.svc.List(r.Context(), owner.ID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ToResponseList(links))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validator.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l := &link.Link{Owner: owner.ID(r.Context()), Name: req.Name, URL: req.URL}
	if err := h.svc.Create(r.Context(), l); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(l))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validator.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l := &link.Link{ID: id, Owner: owner.ID(r.Context()), Name: req.Name, URL: req.URL}
	if err := h.svc.Update(r.Context(), l); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(l))
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
	case errors.Is(err, link.ErrNotFound):
		http.Error(w, "link not found", http.StatusNotFound)
	case errors.Is(err, link.ErrInvalidLink):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("link request failed", "error", err)
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
