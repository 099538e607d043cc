package bang

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("bang not found")
	ErrInvalidBang   = errors.New("invalid bang")
	ErrDuplicateName = errors.New("bang name already exists")
	ErrDefaultBang   = errors.New("the default bang cannot be renamed or deleted")
	ErrEmptyQuery    = errors.New("empty search query")
)

// DefaultName is the bang used when a query names no bang or an unknown one.
const DefaultName = "default"

// Prefix marks the first word of a query as a bang name.
const Prefix = "!"

// Bang is a search shortcut. The escaped search terms are appended to URL.
type Bang struct {
	ID    uuid.UUID
	Owner uuid.UUID
	Name  string
	URL   string
	Uses  int64
}

func (b *Bang) IsDefault() bool {
	return b.Name == DefaultName
}

func validate(b *Bang) error {
	b.Name = strings.TrimSpace(b.Name)
	b.URL = strings.TrimSpace(b.URL)

	switch {
	case b.Name == "", b.URL == "":
		return ErrInvalidBang
	case strings.ContainsAny(b.Name, " \t\n"), strings.HasPrefix(b.Name, Prefix):
		return ErrInvalidBang
	}

	return nil
}

// Resolution is the outcome of resolving a search query.
type Resolution struct {
	URL     string
	Bang    string
	Default bool
}
