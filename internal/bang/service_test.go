package bang_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hestiadash/hestia/internal/bang"
)

func TestService_Resolve(t *testing.T) {
	owner := uuid.New()
	def := &bang.Bang{ID: uuid.New(), Owner: owner, Name: bang.DefaultName, URL: "https://duckduckgo.com/?q="}
	g := &bang.Bang{ID: uuid.New(), Owner: owner, Name: "g", URL: "https://www.google.com/search?q="}

	type testCase struct {
		name      string
		query     string
		setupMock func(m *bang.MockRepository)
		want      *bang.Resolution
		wantErr   error
	}

	tests := []testCase{
		{
			name:  "ExplicitBang",
			query: "!g cute cats",
			setupMock: func(m *bang.MockRepository) {
				m.EXPECT().GetBangByName(gomock.Any(), owner, "g").Return(g, nil)
				m.EXPECT().RecordUse(gomock.Any(), owner, g.ID, false).Return(nil)
			},
			want: &bang.Resolution{URL: "https://www.google.com/search?q=cute+cats", Bang: "g"},
		},
		{
			name:  "UnknownBangFallsBackToDefault",
			query: "!zz golang",
			setupMock: func(m *bang.MockRepository) {
				m.EXPECT().GetBangByName(gomock.Any(), owner, "zz").Return(nil, bang.ErrNotFound)
				m.EXPECT().GetBangByName(gomock.Any(), owner, bang.DefaultName).Return(def, nil)
				m.EXPECT().RecordUse(gomock.Any(), owner, def.ID, false).Return(nil)
			},
			want: &bang.Resolution{URL: "https://duckduckgo.com/?q=golang", Bang: bang.DefaultName},
		},
		{
			name:  "PlainQueryUsesDefault",
			query: "  what is 1+1?  ",
			setupMock: func(m *bang.MockRepository) {
				m.EXPECT().GetBangByName(gomock.Any(), owner, bang.DefaultName).Return(def, nil)
				m.EXPECT().RecordUse(gomock.Any(), owner, def.ID, true).Return(nil)
			},
			want: &bang.Resolution{URL: "https://duckduckgo.com/?q=what+is+1%2B1%3F", Bang: bang.DefaultName, Default: true},
		},
		{
			name:  "BangWithoutTerms",
			query: "!g",
			setupMock: func(m *bang.MockRepository) {
				m.EXPECT().GetBangByName(gomock.Any(), owner, "g").Return(g, nil)
				m.EXPECT().RecordUse(gomock.Any(), owner, g.ID, false).Return(nil)
			},
			want: &bang.Resolution{URL: "https://www.google.com/search?q=", Bang: "g"},
		},
		{
			name:      "EmptyQuery",
			query:     "   ",
			setupMock: func(m *bang.MockRepository) {},
			wantErr:   bang.ErrEmptyQuery,
		},
		{
			name:  "MissingDefault",
			query: "cats",
			setupMock: func(m *bang.MockRepository) {
				m.EXPECT().GetBangByName(gomock.Any(), owner, bang.DefaultName).Return(nil, bang.ErrNotFound)
			},
			wantErr: bang.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := bang.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := bang.NewService(repo).Resolve(context.Background(), owner, tt.query)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Resolve_RecordFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	def := &bang.Bang{ID: uuid.New(), Owner: owner, Name: bang.DefaultName, URL: "https://example.com/?q="}
	dbErr := errors.New("deadlock detected")

	repo := bang.NewMockRepository(ctrl)
	repo.EXPECT().GetBangByName(gomock.Any(), owner, bang.DefaultName).Return(def, nil)
	repo.EXPECT().RecordUse(gomock.Any(), owner, def.ID, true).Return(dbErr)

	got, err := bang.NewService(repo).Resolve(context.Background(), owner, "x")
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, got)
}

func TestService_Create(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name    string
		input   bang.Bang
		wantErr error
	}{
		{name: "Valid", input: bang.Bang{Owner: owner, Name: " w ", URL: "https://en.wikipedia.org/w/index.php?search="}},
		{name: "EmptyName", input: bang.Bang{Owner: owner, URL: "https://x"}, wantErr: bang.ErrInvalidBang},
		{name: "EmptyURL", input: bang.Bang{Owner: owner, Name: "w"}, wantErr: bang.ErrInvalidBang},
		{name: "Whitespace", input: bang.Bang{Owner: owner, Name: "a b", URL: "https://x"}, wantErr: bang.ErrInvalidBang},
		{name: "Prefixed", input: bang.Bang{Owner: owner, Name: "!w", URL: "https://x"}, wantErr: bang.ErrInvalidBang},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := bang.NewMockRepository(ctrl)
			if tt.wantErr == nil {
				repo.EXPECT().CreateBang(gomock.Any(), gomock.Any()).Return(nil)
			}

			b := tt.input
			err := bang.NewService(repo).Create(context.Background(), &b)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "w", b.Name)
		})
	}
}

func TestService_DefaultBangIsProtected(t *testing.T) {
	owner := uuid.New()
	def := &bang.Bang{ID: uuid.New(), Owner: owner, Name: bang.DefaultName, URL: "https://a/?q="}

	t.Run("Delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := bang.NewMockRepository(ctrl)
		repo.EXPECT().GetBang(gomock.Any(), owner, def.ID).Return(def, nil)

		err := bang.NewService(repo).Delete(context.Background(), owner, def.ID)
		assert.ErrorIs(t, err, bang.ErrDefaultBang)
	})

	t.Run("Rename", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := bang.NewMockRepository(ctrl)
		repo.EXPECT().GetBang(gomock.Any(), owner, def.ID).Return(def, nil)

		err := bang.NewService(repo).Update(context.Background(), &bang.Bang{ID: def.ID, Owner: owner, Name: "d", URL: "https://a/?q="})
		assert.ErrorIs(t, err, bang.ErrDefaultBang)
	})

	t.Run("ChangeURL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		updated := &bang.Bang{ID: def.ID, Owner: owner, Name: bang.DefaultName, URL: "https://b/?q="}

		repo := bang.NewMockRepository(ctrl)
		repo.EXPECT().GetBang(gomock.Any(), owner, def.ID).Return(def, nil)
		repo.EXPECT().UpdateBang(gomock.Any(), updated).Return(nil)

		require.NoError(t, bang.NewService(repo).Update(context.Background(), updated))
	})

	t.Run("DeleteOther", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		other := &bang.Bang{ID: uuid.New(), Owner: owner, Name: "g", URL: "https://g/?q="}

		repo := bang.NewMockRepository(ctrl)
		repo.EXPECT().GetBang(gomock.Any(), owner, other.ID).Return(other, nil)
		repo.EXPECT().DeleteBang(gomock.Any(), owner, other.ID).Return(nil)

		require.NoError(t, bang.NewService(repo).Delete(context.Background(), owner, other.ID))
	})
}
