package finance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hestiadash/hestia/internal/http/finance"
	"github.com/hestiadash/hestia/internal/http/owner"
	"github.com/hestiadash/hestia/internal/ledger"
	"github.com/hestiadash/hestia/internal/user"
)

func newRouter(t *testing.T, me *user.User) (http.Handler, *ledger.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := ledger.NewMockRepository(ctrl)

	h := finance.NewHandler(ledger.NewService(repo), 50)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(owner.WithUser(r.Context(), me)))
		})
	})
	r.Route("/finance", h.Routes)

	return r, repo
}

func TestHandler_Transfer(t *testing.T) {
	me := &user.User{ID: uuid.New()}
	from := &ledger.Account{ID: uuid.New(), Owner: me.ID, Name: "A", Balance: 5000}
	to := &ledger.Account{ID: uuid.New(), Owner: me.ID, Name: "B"}

	type testCase struct {
		name       string
		body       string
		setupMock  func(m *ledger.MockRepository)
		wantStatus int
	}

	tests := []testCase{
		{
			name: "Success",
			body: `{"from":"A","to":"B","amount":"10.00","reason":"rent"}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().GetAccountByName(gomock.Any(), me.ID, "A").Return(from, nil)
				m.EXPECT().GetAccountByName(gomock.Any(), me.ID, "B").Return(to, nil)
				m.EXPECT().
					ApplyTransfer(gomock.Any(), gomock.Any(), []ledger.BalanceMutation{
						{AccountID: from.ID, Delta: -1000},
						{AccountID: to.ID, Delta: 1000},
					}).
					DoAndReturn(func(_ context.Context, tx *ledger.Transaction, _ []ledger.BalanceMutation) error {
						assert.Equal(t, "rent", tx.Reason)
						tx.ID = uuid.New()
						return nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "NegativeAmount",
			body:       `{"from":"A","to":"B","amount":"-1"}`,
			setupMock:  func(m *ledger.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "TooPrecise",
			body:       `{"from":"A","to":"B","amount":"1.001"}`,
			setupMock:  func(m *ledger.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingFrom",
			body:       `{"to":"B","amount":"1"}`,
			setupMock:  func(m *ledger.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "UnknownAccount",
			body: `{"from":"A","to":"nowhere","amount":"1"}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().GetAccountByName(gomock.Any(), me.ID, "A").Return(from, nil)
				m.EXPECT().GetAccountByName(gomock.Any(), me.ID, "nowhere").Return(nil, ledger.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t, me)
			tt.setupMock(repo)

			req := httptest.NewRequest(http.MethodPost, "/finance/transfers", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_History(t *testing.T) {
	me := &user.User{ID: uuid.New()}
	checking := &ledger.Account{ID: uuid.New(), Owner: me.ID, Name: "checking", Balance: -1234}
	external := &ledger.Account{ID: uuid.New(), Owner: me.ID, Name: ledger.ExternalAccount}

	router, repo := newRouter(t, me)
	repo.EXPECT().GetAccount(gomock.Any(), me.ID, checking.ID).Return(checking, nil)
	repo.EXPECT().ListTransactions(gomock.Any(), me.ID, checking.ID, 5).Return([]*ledger.Transaction{
		{
			ID:        uuid.New(),
			Owner:     me.ID,
			From:      checking.ID,
			To:        external.ID,
			Amount:    1999,
			Reason:    "groceries",
			CreatedAt: time.Date(2024, time.March, 1, 18, 30, 0, 0, time.UTC),
		},
	}, nil)
	repo.EXPECT().GetAccount(gomock.Any(), me.ID, external.ID).Return(external, nil)

	req := httptest.NewRequest(http.MethodGet, "/finance/accounts/"+checking.ID.String()+"?limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"account":"checking"`)
	assert.Contains(t, body, `"balance":{"dollars":-12,"cents":34,"display":"-12.34"}`)
	assert.Contains(t, body, `"balance_cents":-1234`)
	assert.Contains(t, body, `"to":"EXPENSE"`)
	assert.Contains(t, body, `"date":"2024-03-01 18:30"`)
}

func TestHandler_History_BadLimit(t *testing.T) {
	router, _ := newRouter(t, &user.User{ID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/finance/accounts/"+uuid.NewString()+"?limit=0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateAccount(t *testing.T) {
	me := &user.User{ID: uuid.New()}

	t.Run("Reserved", func(t *testing.T) {
		router, _ := newRouter(t, me)

		req := httptest.NewRequest(http.MethodPost, "/finance/accounts", strings.NewReader(`{"name":"`+ledger.ExternalAccount+`"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Duplicate", func(t *testing.T) {
		router, repo := newRouter(t, me)
		repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(ledger.ErrDuplicateName)

		req := httptest.NewRequest(http.MethodPost, "/finance/accounts", strings.NewReader(`{"name":"cash"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Created", func(t *testing.T) {
		router, repo := newRouter(t, me)
		repo.EXPECT().
			CreateAccount(gomock.Any(), &ledger.Account{Owner: me.ID, Name: "cash"}).
			DoAndReturn(func(_ context.Context, a *ledger.Account) error {
				a.ID = uuid.New()
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/finance/accounts", strings.NewReader(`{"name":" cash "}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"cash"`)
	})
}
