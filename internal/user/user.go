package user

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrEmptyUsername     = errors.New("empty username")
)

// DefaultBang is the name of the bang used for searches without an explicit
// bang. Every user has one from registration on.
const DefaultBang = "default"

type User struct {
	ID          uuid.UUID
	Username    string
	APIKey      string
	DefaultUses int64
	BangUses    int64
	CreatedAt   time.Time
}

const (
	apiKeyLength   = 50
	apiKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// NewAPIKey returns a random string of 50 ASCII letters and digits.
func NewAPIKey() (string, error) {
	limit := big.NewInt(int64(len(apiKeyAlphabet)))
	key := make([]byte, apiKeyLength)

	for i := range key {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}

		key[i] = apiKeyAlphabet[n.Int64()]
	}

	return string(key), nil
}
