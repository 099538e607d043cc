package reminder

import (
	"time"

	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/reminder"
)

type reminderResponse struct {
	ID         uuid.UUID `json:"id"`
	Reason     string    `json:"reason"`
	Recurrence string    `json:"recurrence"`
	Date       string    `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

func toResponse(r *reminder.Reminder) reminderResponse {
	return reminderResponse{
		ID:         r.ID,
		Reason:     r.Reason,
		Recurrence: string(r.Recurrence.Kind()),
		Date:       r.Recurrence.Anchor().Format(time.DateOnly),
		CreatedAt:  r.CreatedAt,
	}
}

func toResponseList(reminders []*reminder.Reminder) []reminderResponse {
	res := make([]reminderResponse, len(reminders))
	for i, r := range reminders {
		res[i] = toResponse(r)
	}

	return res
}

type EntryResponse struct {
	Reason string `json:"reason"`
	Label  string `json:"label"`
}

type BucketsResponse struct {
	NonRecurring []EntryResponse `json:"non_recurring"`
	Daily        []EntryResponse `json:"daily"`
	Weekly       []EntryResponse `json:"weekly"`
	Monthly      []EntryResponse `json:"monthly"`
	Yearly       []EntryResponse `json:"yearly"`
}

// ToBucketsResponse renders every bucket as a JSON array, never null.
func ToBucketsResponse(b reminder.Buckets) BucketsResponse {
	return BucketsResponse{
		NonRecurring: toEntries(b.NonRecurring),
		Daily:        toEntries(b.Daily),
		Weekly:       toEntries(b.Weekly),
		Monthly:      toEntries(b.Monthly),
		Yearly:       toEntries(b.Yearly),
	}
}

func toEntries(entries []reminder.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = EntryResponse{Reason: e.Reason, Label: e.Label}
	}

	return res
}
