package bang

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/bang"
	"github.com/hestiadash/hestia/internal/http/owner"
	"github.com/hestiadash/hestia/internal/validator"
)

type Handler struct {
	svc     *bang.Service
	appName string
}

func NewHandler(svc *bang.Service, appName string) *Handler {
	return &Handler{svc: svc, appName: appName}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// SearchRoutes expects the owner middleware in front of it.
func (h *Handler) SearchRoutes(r chi.Router) {
	r.Get("/", h.search)
	r.Post("/", h.search)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	bangs, err := h.svc.List(r.Context(), owner.ID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(bangs))
}

type bangRequest struct {
	Name string `json:"name" validate:"required,notblank"`
	URL  string `json:"url" validate:"required,url"`
}

func decode(w http.ResponseWriter, r *http.Request) (*bangRequest, bool) {
	var req bangRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	if err := validator.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	return &req, true
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	req, ok := decode(w, r)
	if !ok {
		return
	}

	b := &bang.Bang{Owner: owner.ID(r.Context()), Name: req.Name, URL: req.URL}
	if err := h.svc.Create(r.Context(), b); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(b))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	req, ok := decode(w, r)
	if !ok {
		return
	}

	b := &bang.Bang{ID: id, Owner: owner.ID(r.Context()), Name: req.Name, URL: req.URL}
	if err := h.svc.Update(r.Context(), b); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(b))
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

// search redirects ?q= (query string or form) to its resolved URL. Explicit
// bangs answer 302 and default searches 307.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Resolve(r.Context(), owner.ID(r.Context()), r.FormValue("q"))
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusFound
	if res.Default {
		status = http.StatusTemporaryRedirect
	}

	http.Redirect(w, r, res.URL, status)
}

// OpenSearch serves a description document that points browsers at the
// search endpoint for the API key in the path.
func (h *Handler) OpenSearch(w http.ResponseWriter, r *http.Request) {
	apiKey := chi.URLParam(r, "apiKey")

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = p
	}

	base := url.URL{Scheme: scheme, Host: r.Host, Path: "/search/" + apiKey + "/"}

	doc := openSearchDescription{
		XMLNS:         "http://a9.com/-/spec/opensearch/1.1/",
		ShortName:     h.appName,
		Description:   h.appName + " search with bangs",
		InputEncoding: "UTF-8",
		URL: openSearchURL{
			Type:     "text/html",
			Method:   "get",
			Template: base.String() + "?q={searchTerms}",
		},
	}

	w.Header().Set("Content-Type", "application/opensearchdescription+xml")

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return
	}

	if err := xml.NewEncoder(w).Encode(doc); err != nil {
		slog.Error("failed to encode opensearch document", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bang.ErrNotFound):
		http.Error(w, "bang not found", http.StatusNotFound)
	case errors.Is(err, bang.ErrDuplicateName), errors.Is(err, bang.ErrDefaultBang):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, bang.ErrInvalidBang), errors.Is(err, bang.ErrEmptyQuery):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("bang request failed", "error", err)
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
