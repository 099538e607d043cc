package reminder_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hestiadash/hestia/internal/http/owner"
	reminderHandler "github.com/hestiadash/hestia/internal/http/reminder"
	"github.com/hestiadash/hestia/internal/reminder"
	"github.com/hestiadash/hestia/internal/user"
)

func newRouter(t *testing.T, me *user.User) (http.Handler, *reminder.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := reminder.NewMockRepository(ctrl)

	h := reminderHandler.NewHandler(reminder.NewService(repo))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(owner.WithUser(r.Context(), me)))
		})
	})
	r.Route("/reminders", h.Routes)

	return r, repo
}

func TestHandler_Upcoming(t *testing.T) {
	me := &user.User{ID: uuid.New()}
	router, repo := newRouter(t, me)

	repo.EXPECT().ListReminders(gomock.Any(), me.ID).Return([]*reminder.Reminder{
		{Owner: me.ID, Reason: "pay rent", Recurrence: reminder.Monthly{Day: 5}},
		{Owner: me.ID, Reason: "gym", Recurrence: reminder.Monthly{Day: 20}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/reminders/upcoming?date=2024-01-10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got reminderHandler.BucketsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, []reminderHandler.EntryResponse{
		{Reason: "gym", Label: "January 20"},
		{Reason: "pay rent", Label: "February 5"},
	}, got.Monthly)
	assert.NotNil(t, got.Daily)
	assert.Empty(t, got.Daily)
	assert.Contains(t, rec.Body.String(), `"daily":[]`)
}

func TestHandler_Upcoming_BadDate(t *testing.T) {
	router, _ := newRouter(t, &user.User{ID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/reminders/upcoming?date=10/01/2024", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Create(t *testing.T) {
	me := &user.User{ID: uuid.New()}

	tests := []struct {
		name       string
		body       string
		mock       bool
		wantStatus int
	}{
		{
			name:       "Weekly",
			body:       `{"reason":"bins out","recurrence":"week","date":"2024-05-14"}`,
			mock:       true,
			wantStatus: http.StatusCreated,
		},
		{name: "BlankReason", body: `{"reason":"  ","recurrence":"week","date":"2024-05-14"}`, wantStatus: http.StatusBadRequest},
		{name: "UnknownRecurrence", body: `{"reason":"x","recurrence":"hourly","date":"2024-05-14"}`, wantStatus: http.StatusBadRequest},
		{name: "BadDate", body: `{"reason":"x","recurrence":"none","date":"2024-13-01"}`, wantStatus: http.StatusBadRequest},
		{name: "BadJSON", body: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t, me)

			if tt.mock {
				repo.EXPECT().
					CreateReminder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *reminder.Reminder) error {
						assert.Equal(t, me.ID, r.Owner)
						assert.Equal(t, reminder.Weekly{Weekday: 2}, r.Recurrence)
						r.ID = uuid.New()
						return nil
					})
			}

			req := httptest.NewRequest(http.MethodPost, "/reminders/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				assert.Contains(t, rec.Body.String(), `"recurrence":"week"`)
				assert.Contains(t, rec.Body.String(), `"date":"2001-01-02"`)
			}
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	me := &user.User{ID: uuid.New()}
	id := uuid.New()

	router, repo := newRouter(t, me)
	repo.EXPECT().DeleteReminder(gomock.Any(), me.ID, id).Return(reminder.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/reminders/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/reminders/not-a-uuid", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
