package link

import (
	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/link"
)

type Response struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

func toResponse(l *link.Link) Response {
	return Response{ID: l.ID, Name: l.Name, URL: l.URL}
}

func ToResponseList(links []*link.Link) []Response {
	res := make([]Response, len(links))
	for i, l := range links {
		res[i] = toResponse(l)
	}

	return res
}
