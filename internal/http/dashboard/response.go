package dashboard

import (
	"github.com/hestiadash/hestia/internal/dashboard"
	"github.com/hestiadash/hestia/internal/http/finance"
	"github.com/hestiadash/hestia/internal/http/link"
	"github.com/hestiadash/hestia/internal/http/reminder"
)

type searchUses struct {
	Default int64 `json:"default"`
	Bang    int64 `json:"bang"`
}

type homeResponse struct {
	Username   string                    `json:"username"`
	APIKey     string                    `json:"api_key"`
	SearchUses searchUses                `json:"search_uses"`
	Links      []link.Response           `json:"links"`
	Reminders  reminder.BucketsResponse  `json:"reminders"`
	Accounts   []finance.SummaryResponse `json:"accounts"`
}

func toResponse(h *dashboard.Home) homeResponse {
	return homeResponse{
		Username:   h.Username,
		APIKey:     h.APIKey,
		SearchUses: searchUses{Default: h.DefaultUses, Bang: h.BangUses},
		Links:      link.ToResponseList(h.Links),
		Reminders:  reminder.ToBucketsResponse(h.Reminders),
		Accounts:   finance.ToSummaryList(h.Accounts),
	}
}
