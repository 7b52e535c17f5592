package accounting

import (
	"fmt"
	"sort"
	"time"
)

// PeriodLayout is the calendar-month label format used by depreciation runs.
const PeriodLayout = "2006-01"

// FormatPeriod returns the period label for t's calendar month.
func FormatPeriod(t time.Time) string {
	return t.UTC().Format(PeriodLayout)
}

// ParsePeriod parses a "YYYY-MM" label into the first instant of that month (UTC).
func ParsePeriod(label string) (time.Time, error) {
	t, err := time.Parse(PeriodLayout, label)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid period label %q: %w", label, err)
	}
	return t, nil
}

// PeriodEnd returns the last day of the labelled month, used as the entry
// date of the period's depreciation postings.
func PeriodEnd(label string) (time.Time, error) {
	start, err := ParsePeriod(label)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 1, -1), nil
}

// PendingPeriods computes every calendar month from the month of `from`
// through the month before `now` inclusive, minus the months in `processed`,
// sorted strictly ascending. The current, incomplete month is never included.
func PendingPeriods(from, now time.Time, processed map[string]bool) []string {
	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	boundary := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var pending []string
	for cursor.Before(boundary) {
		label := cursor.Format(PeriodLayout)
		if !processed[label] {
			pending = append(pending, label)
		}
		cursor = cursor.AddDate(0, 1, 0)
	}
	sort.Strings(pending)
	return pending
}
