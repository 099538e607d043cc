package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/user"
)

type userResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	APIKey      string    `json:"api_key"`
	DefaultUses int64     `json:"default_uses"`
	BangUses    int64     `json:"bang_uses"`
	CreatedAt   time.Time `json:"created_at"`
}

func toResponse(u *user.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		APIKey:      u.APIKey,
		DefaultUses: u.DefaultUses,
		BangUses:    u.BangUses,
		CreatedAt:   u.CreatedAt,
	}
}

type apiKeyResponse struct {
	APIKey string `json:"api_key"`
}
