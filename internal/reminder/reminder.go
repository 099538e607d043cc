package reminder

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("reminder not found")
	ErrInvalidRecurrence = errors.New("invalid recurrence")
	ErrEmptyReason       = errors.New("empty reason")
)

// Kind is the recurrence tag used by input forms and storage.
type Kind string

const (
	KindNone  Kind = "none"
	KindDay   Kind = "day"
	KindWeek  Kind = "week"
	KindMonth Kind = "month"
	KindYear  Kind = "year"
)

// Recurrence is the repetition rule of a reminder. The set of implementations
// is closed: Once, Daily, Weekly, Monthly and Yearly.
type Recurrence interface {
	Kind() Kind
	// Anchor returns the date persisted for this rule.
	Anchor() time.Time
	recurrence()
}

// Once is due exactly on Due.
type Once struct {
	Due time.Time
}

// Daily fires every day. Since only records when it was created.
type Daily struct {
	Since time.Time
}

// Weekly fires on the same weekday every week.
type Weekly struct {
	Weekday time.Weekday
}

// Monthly fires on the same day of every month that has that day.
type Monthly struct {
	Day int
}

// Yearly fires on the month and day of Date every year.
type Yearly struct {
	Date time.Time
}

func (Once) Kind() Kind    { return KindNone }
func (Daily) Kind() Kind   { return KindDay }
func (Weekly) Kind() Kind  { return KindWeek }
func (Monthly) Kind() Kind { return KindMonth }
func (Yearly) Kind() Kind  { return KindYear }

func (o Once) Anchor() time.Time  { return o.Due }
func (d Daily) Anchor() time.Time { return d.Since }

// Anchor encodes the weekday on the week of 2001-01-01, which was a Monday.
func (w Weekly) Anchor() time.Time {
	return referenceMonday.AddDate(0, 0, isoWeekday(w.Weekday)-1)
}

// Anchor encodes the day on January 2001 so every day up to 31 is representable.
func (m Monthly) Anchor() time.Time {
	return time.Date(2001, time.January, m.Day, 0, 0, 0, 0, time.UTC)
}

func (y Yearly) Anchor() time.Time { return y.Date }

func (Once) recurrence()    {}
func (Daily) recurrence()   {}
func (Weekly) recurrence()  {}
func (Monthly) recurrence() {}
func (Yearly) recurrence()  {}

var referenceMonday = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// NewRecurrence builds the rule for kind from a calendar date, keeping only
// the parts of the date the rule needs.
func NewRecurrence(kind Kind, anchor time.Time) (Recurrence, error) {
	if anchor.IsZero() {
		return nil, fmt.Errorf("%w: missing date", ErrInvalidRecurrence)
	}

	anchor = dateOf(anchor)

	switch kind {
	case KindNone:
		return Once{Due: anchor}, nil
	case KindDay:
		return Daily{Since: anchor}, nil
	case KindWeek:
		return Weekly{Weekday: anchor.Weekday()}, nil
	case KindMonth:
		return Monthly{Day: anchor.Day()}, nil
	case KindYear:
		return Yearly{Date: anchor}, nil
	}

	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidRecurrence, kind)
}

// Reminder is a user-owned note attached to a recurrence rule.
type Reminder struct {
	ID         uuid.UUID
	Owner      uuid.UUID
	Reason     string
	Recurrence Recurrence
	CreatedAt  time.Time
}

// dateOf truncates t to its calendar date in UTC, keeping t's wall-clock date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// isoWeekday numbers weekdays Monday=1 through Sunday=7.
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}

	return int(d)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonths adds n calendar months, clamping the day to the target month's length.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)

	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}

	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
