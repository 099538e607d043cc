package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hestiadash/hestia/internal/http/owner"
	userHandler "github.com/hestiadash/hestia/internal/http/user"
	"github.com/hestiadash/hestia/internal/user"
)

func newRouter(t *testing.T, opts userHandler.Options) (http.Handler, *user.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	h := userHandler.NewHandler(svc, opts)

	r := chi.NewRouter()
	r.Post("/signup", h.Signup)
	r.Group(func(r chi.Router) {
		r.Use(owner.Middleware(svc))
		r.Route("/me", h.Routes)
	})

	return r, repo
}

func TestHandler_Signup(t *testing.T) {
	opts := userHandler.Options{SignupEnabled: true, DefaultBangURL: "https://duckduckgo.com/?q="}

	t.Run("Disabled", func(t *testing.T) {
		router, _ := newRouter(t, userHandler.Options{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"username":"alice"}`)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Created", func(t *testing.T) {
		router, repo := newRouter(t, opts)
		repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), opts.DefaultBangURL).
			DoAndReturn(func(_ context.Context, u *user.User, _ string) error {
				u.ID = uuid.New()
				return nil
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"username":"alice"}`)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
		assert.Contains(t, rec.Body.String(), `"api_key":"`)
	})

	t.Run("Taken", func(t *testing.T) {
		router, repo := newRouter(t, opts)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(user.ErrDuplicateUsername)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"username":"alice"}`)))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Blank", func(t *testing.T) {
		router, _ := newRouter(t, opts)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"username":" "}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_MeAndRotate(t *testing.T) {
	me := &user.User{ID: uuid.New(), Username: "alice", APIKey: "old", DefaultUses: 4}
	router, repo := newRouter(t, userHandler.Options{})

	repo.EXPECT().GetByAPIKey(gomock.Any(), "old").Return(me, nil).Times(2)
	repo.EXPECT().UpdateAPIKey(gomock.Any(), me.ID, gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/me/", nil)
	req.Header.Set(owner.Header, "old")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"default_uses":4`)

	req = httptest.NewRequest(http.MethodPost, "/me/api-key", nil)
	req.Header.Set(owner.Header, "old")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"old"`)
}
