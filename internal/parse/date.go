package parse

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date form used wherever a date crosses a
// boundary: fleet files, JSON payloads, spreadsheet cells.
const DateLayout = time.DateOnly

// Date parses a calendar date in DateLayout, anchored to UTC.
func Date(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", raw, DateLayout)
	}
	return t, nil
}

// MustDate is Date for fixtures and tests; it panics on malformed input.
func MustDate(raw string) time.Time {
	t, err := Date(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// FormatDate renders t as a calendar date, dropping any time-of-day part.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Midnight truncates t to the start of its UTC calendar day. Lease math
// compares midnights so a partial day can never shift a count by one.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b, negative when
// b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)) / (24 * time.Hour))
}
