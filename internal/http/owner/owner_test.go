package owner_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hestiadash/hestia/internal/http/owner"
	"github.com/hestiadash/hestia/internal/user"
)

type resolverFunc func(ctx context.Context, key string) (*user.User, error)

func (f resolverFunc) ByAPIKey(ctx context.Context, key string) (*user.User, error) { return f(ctx, key) }

func TestMiddleware(t *testing.T) {
	alice := &user.User{ID: uuid.New(), Username: "alice", APIKey: "good"}

	res := resolverFunc(func(_ context.Context, key string) (*user.User, error) {
		switch key {
		case "good":
			return alice, nil
		case "broken":
			return nil, errors.New("db down")
		default:
			return nil, user.ErrNotFound
		}
	})

	r := chi.NewRouter()
	r.Route("/k/{apiKey}", func(r chi.Router) {
		r.Use(owner.Middleware(res))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(owner.ID(r.Context()).String()))
		})
	})

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{name: "Header", path: "/k/x/", header: "good", wantStatus: http.StatusOK},
		{name: "RouteParam", path: "/k/good/", wantStatus: http.StatusOK},
		{name: "Unknown", path: "/k/nope/", wantStatus: http.StatusUnauthorized},
		{name: "StoreFailure", path: "/k/broken/", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(owner.Header, tt.header)
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, alice.ID.String(), rec.Body.String())
			}
		})
	}
}

func TestID_WithoutUser(t *testing.T) {
	assert.Equal(t, uuid.Nil, owner.ID(context.Background()))
}
