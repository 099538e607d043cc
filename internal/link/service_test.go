package link_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hestiadash/hestia/internal/link"
)

func TestService_Create(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name    string
		input   link.Link
		wantErr error
	}{
		{name: "Valid", input: link.Link{Owner: owner, Name: " Mail ", URL: " https://mail.example.com "}},
		{name: "NoName", input: link.Link{Owner: owner, URL: "https://x"}, wantErr: link.ErrInvalidLink},
		{name: "NoURL", input: link.Link{Owner: owner, Name: "x"}, wantErr: link.ErrInvalidLink},
		{name: "BadURL", input: link.Link{Owner: owner, Name: "x", URL: "http://[::1"}, wantErr: link.ErrInvalidLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := link.NewMockRepository(ctrl)
			if tt.wantErr == nil {
				repo.EXPECT().
					CreateLink(gomock.Any(), &link.Link{Owner: owner, Name: "Mail", URL: "https://mail.example.com"}).
					Return(nil)
			}

			l := tt.input
			err := link.NewService(repo).Create(context.Background(), &l)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner, id := uuid.New(), uuid.New()

	repo := link.NewMockRepository(ctrl)
	repo.EXPECT().UpdateLink(gomock.Any(), &link.Link{ID: id, Owner: owner, Name: "a", URL: "https://a"}).Return(link.ErrNotFound)
	repo.EXPECT().DeleteLink(gomock.Any(), owner, id).Return(nil)

	svc := link.NewService(repo)

	err := svc.Update(context.Background(), &link.Link{ID: id, Owner: owner, Name: "a", URL: "https://a"})
	assert.ErrorIs(t, err, link.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), owner, id))
}
