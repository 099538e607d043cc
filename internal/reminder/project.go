package reminder

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"time"
)

// Entry is a reminder ready for display.
type Entry struct {
	Reason string
	Label  string
}

// Buckets groups the reminders relevant around a reference date by recurrence.
type Buckets struct {
	NonRecurring []Entry
	Daily        []Entry
	Weekly       []Entry
	Monthly      []Entry
	Yearly       []Entry
}

type onceItem struct {
	reason string
	due    time.Time
}

type weeklyItem struct {
	reason  string
	weekday int
}

type monthlyItem struct {
	reason string
	day    int
}

type yearlyItem struct {
	reason string
	date   time.Time
}

// Project computes the reminder buckets shown for today. It has no side
// effects and returns the same buckets for the same input.
//
// One-off reminders are kept when due within a month from today. Weekly and
// monthly reminders are ordered cyclically starting from today, and yearly
// reminders are kept for the current month plus the part of next month that
// falls inside the lookahead window.
func Project(today time.Time, reminders []*Reminder) Buckets {
	today = dateOf(today)

	var (
		once    []onceItem
		daily   []Entry
		weekly  []weeklyItem
		monthly []monthlyItem
		yearly  []yearlyItem
	)

	for _, r := range reminders {
		switch rec := r.Recurrence.(type) {
		case Once:
			once = append(once, onceItem{reason: r.Reason, due: rec.Due})
		case Daily:
			daily = append(daily, Entry{Reason: r.Reason, Label: rec.Since.Format(time.DateOnly)})
		case Weekly:
			weekly = append(weekly, weeklyItem{reason: r.Reason, weekday: isoWeekday(rec.Weekday)})
		case Monthly:
			monthly = append(monthly, monthlyItem{reason: r.Reason, day: rec.Day})
		case Yearly:
			yearly = append(yearly, yearlyItem{reason: r.Reason, date: rec.Date})
		}
	}

	if daily == nil {
		daily = []Entry{}
	}

	return Buckets{
		NonRecurring: projectOnce(today, once),
		Daily:        daily,
		Weekly:       projectWeekly(today, weekly),
		Monthly:      projectMonthly(today, monthly),
		Yearly:       projectYearly(today, yearly),
	}
}

func projectOnce(today time.Time, items []onceItem) []Entry {
	end := addMonths(today, 1)

	var kept []onceItem

	for _, it := range items {
		due := dateOf(it.due)
		if due.Before(today) || !due.Before(end) {
			continue
		}

		kept = append(kept, onceItem{reason: it.reason, due: due})
	}

	slices.SortStableFunc(kept, func(a, b onceItem) int {
		return a.due.Compare(b.due)
	})

	out := make([]Entry, 0, len(kept))
	for _, it := range kept {
		out = append(out, Entry{Reason: it.reason, Label: it.due.Format(time.DateOnly)})
	}

	return out
}

func projectWeekly(today time.Time, items []weeklyItem) []Entry {
	slices.SortStableFunc(items, func(a, b weeklyItem) int {
		return cmp.Compare(a.weekday, b.weekday)
	})

	current := isoWeekday(today.Weekday())
	pivot := partitionPoint(len(items), func(i int) bool {
		return items[i].weekday < current
	})

	out := make([]Entry, 0, len(items))
	for _, it := range rotateLeft(items, pivot) {
		out = append(out, Entry{Reason: it.reason, Label: weekdayName(it.weekday)})
	}

	return out
}

func projectMonthly(today time.Time, items []monthlyItem) []Entry {
	slices.SortStableFunc(items, func(a, b monthlyItem) int {
		return cmp.Compare(a.day, b.day)
	})

	pivot := partitionPoint(len(items), func(i int) bool {
		return items[i].day < today.Day()
	})

	next := addMonths(time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC), 1)

	labeled := make([]Entry, 0, len(items))
	keep := make([]bool, 0, len(items))

	for i, it := range items {
		year, month := today.Year(), today.Month()
		if i < pivot {
			year, month = next.Year(), next.Month()
		}

		labeled = append(labeled, Entry{Reason: it.reason, Label: fmt.Sprintf("%s %d", month, it.day)})
		keep = append(keep, it.day >= 1 && it.day <= daysIn(year, month))
	}

	labeled = rotateLeft(labeled, pivot)
	keep = rotateLeft(keep, pivot)

	out := make([]Entry, 0, len(labeled))
	for i, e := range labeled {
		if keep[i] {
			out = append(out, e)
		}
	}

	return out
}

func projectYearly(today time.Time, items []yearlyItem) []Entry {
	next := addMonths(time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC), 1)

	var kept []yearlyItem

	for _, it := range items {
		_, month, day := it.date.Date()

		year := today.Year()

		switch {
		case month == today.Month():
		case month == next.Month() && abs(day+30-today.Day()) <= 30:
			year = next.Year()
		default:
			continue
		}

		if day > daysIn(year, month) {
			continue
		}

		kept = append(kept, it)
	}

	slices.SortStableFunc(kept, func(a, b yearlyItem) int {
		return cmp.Compare(a.date.YearDay(), b.date.YearDay())
	})

	out := make([]Entry, 0, len(kept))
	for _, it := range kept {
		out = append(out, Entry{Reason: it.reason, Label: fmt.Sprintf("%s %d", it.date.Month(), it.date.Day())})
	}

	return out
}

// partitionPoint returns the index of the first element for which pred is
// false, assuming pred holds for a prefix of the elements.
func partitionPoint(n int, pred func(int) bool) int {
	return sort.Search(n, func(i int) bool { return !pred(i) })
}

func rotateLeft[T any](s []T, k int) []T {
	out := make([]T, 0, len(s))
	out = append(out, s[k:]...)

	return append(out, s[:k]...)
}

func weekdayName(iso int) string {
	return time.Weekday(iso % 7).String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
