package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hestiadash/hestia/internal/dashboard"
	dashboardHandler "github.com/hestiadash/hestia/internal/http/dashboard"
	"github.com/hestiadash/hestia/internal/http/owner"
	"github.com/hestiadash/hestia/internal/ledger"
	"github.com/hestiadash/hestia/internal/link"
	"github.com/hestiadash/hestia/internal/reminder"
	"github.com/hestiadash/hestia/internal/user"
)

func TestHandler_Home(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	me := &user.User{ID: uuid.New(), Username: "alice", APIKey: "k3y", DefaultUses: 2, BangUses: 9}

	users := user.NewMockRepository(ctrl)
	links := link.NewMockRepository(ctrl)
	reminders := reminder.NewMockRepository(ctrl)
	accounts := ledger.NewMockRepository(ctrl)

	users.EXPECT().GetByAPIKey(gomock.Any(), "k3y").Return(me, nil)
	users.EXPECT().GetByID(gomock.Any(), me.ID).Return(me, nil)
	links.EXPECT().ListLinks(gomock.Any(), me.ID).Return(nil, nil)
	reminders.EXPECT().ListReminders(gomock.Any(), me.ID).Return([]*reminder.Reminder{
		{Owner: me.ID, Reason: "dentist", Recurrence: reminder.Once{Due: time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)}},
	}, nil)
	accounts.EXPECT().ListAccounts(gomock.Any(), me.ID).Return([]*ledger.Account{
		{ID: uuid.New(), Owner: me.ID, Name: "cash", Balance: 250},
	}, nil)

	userSvc := user.NewService(users)
	svc := dashboard.NewService(
		link.NewService(links),
		userSvc,
		reminder.NewService(reminders),
		ledger.NewService(accounts),
	)

	r := chi.NewRouter()
	r.Use(owner.Middleware(userSvc))
	r.Route("/home", dashboardHandler.NewHandler(svc).Routes)

	req := httptest.NewRequest(http.MethodGet, "/home/?date=2024-06-01", nil)
	req.Header.Set(owner.Header, "k3y")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"search_uses":{"default":2,"bang":9}`)
	assert.Contains(t, body, `"links":[]`)
	assert.Contains(t, body, `"non_recurring":[{"reason":"dentist","label":"2024-06-03"}]`)
	assert.Contains(t, body, `"name":"cash"`)
}
