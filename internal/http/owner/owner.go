// Package owner identifies the user a request acts for.
package owner

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/user"
)

// Header carries the API key on API requests. Search and OpenSearch URLs
// carry it as the {apiKey} route parameter instead.
const Header = "X-API-Key"

type Resolver interface {
	ByAPIKey(ctx context.Context, apiKey string) (*user.User, error)
}

type ctxKey struct{}

func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

func FromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*user.User)
	return u, ok
}

// ID returns the ID of the request's user, or uuid.Nil outside Middleware.
func ID(ctx context.Context) uuid.UUID {
	if u, ok := FromContext(ctx); ok {
		return u.ID
	}

	return uuid.Nil
}

// Middleware rejects requests whose API key matches no user with 401 and
// stores the matching user in the request context otherwise.
func Middleware(res Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(Header)
			if key == "" {
				key = chi.URLParam(r, "apiKey")
			}

			u, err := res.ByAPIKey(r.Context(), key)
			if err != nil {
				if errors.Is(err, user.ErrNotFound) {
					http.Error(w, "unknown api key", http.StatusUnauthorized)
					return
				}

				slog.Error("failed to resolve api key", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)

				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}
