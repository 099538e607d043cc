package bang

import (
	"encoding/xml"

	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/bang"
)

type bangResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
	Uses int64     `json:"uses"`
}

func toResponse(b *bang.Bang) bangResponse {
	return bangResponse{ID: b.ID, Name: b.Name, URL: b.URL, Uses: b.Uses}
}

func toResponseList(bangs []*bang.Bang) []bangResponse {
	res := make([]bangResponse, len(bangs))
	for i, b := range bangs {
		res[i] = toResponse(b)
	}

	return res
}

type openSearchDescription struct {
	XMLName       xml.Name      `xml:"OpenSearchDescription"`
	XMLNS         string        `xml:"xmlns,attr"`
	ShortName     string        `xml:"ShortName"`
	Description   string        `xml:"Description"`
	InputEncoding string        `xml:"InputEncoding"`
	URL           openSearchURL `xml:"Url"`
}

type openSearchURL struct {
	Type     string `xml:"type,attr"`
	Method   string `xml:"method,attr"`
	Template string `xml:"template,attr"`
}
