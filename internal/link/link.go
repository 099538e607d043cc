package link

import (
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("link not found")
	ErrInvalidLink = errors.New("invalid link")
)

// Link is a named quick link shown on the dashboard.
type Link struct {
	ID    uuid.UUID
	Owner uuid.UUID
	Name  string
	URL   string
}

func validate(l *Link) error {
	l.Name = strings.TrimSpace(l.Name)
	l.URL = strings.TrimSpace(l.URL)

	if l.Name == "" || l.URL == "" {
		return ErrInvalidLink
	}

	if _, err := url.Parse(l.URL); err != nil {
		return ErrInvalidLink
	}

	return nil
}
