package monthwindow

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidMonthKey is returned when a month key does not match YYYY-MM
// or names a month outside 1..12.
var ErrInvalidMonthKey = errors.New("invalid month key, expected YYYY-MM")

const dayKeyLayout = "2006-01-02"

// Window holds the inclusive day-key bounds of a calendar month.
type Window struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TimeRange holds the absolute UTC timestamp bounds of a calendar month,
// from midnight of the first day through 23:59:59.999 of the last day.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

var monthKeyRegex = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

func parseMonthKey(monthKey string) (year int, month int, err error) {
	matches := monthKeyRegex.FindStringSubmatch(monthKey)
	if matches == nil {
		return 0, 0, ErrInvalidMonthKey
	}

	year, _ = strconv.Atoi(matches[1])
	month, _ = strconv.Atoi(matches[2])
	if month < 1 || month > 12 {
		return 0, 0, ErrInvalidMonthKey
	}

	return year, month, nil
}

// Resolve converts a YYYY-MM month key into inclusive start/end day-keys.
// The end day is computed as day zero of the following month, which handles
// variable month lengths and leap years. All arithmetic is done in UTC so
// the result never depends on the server timezone.
func Resolve(monthKey string) (Window, error) {
	year, month, err := parseMonthKey(monthKey)
	if err != nil {
		return Window{}, err
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)

	return Window{
		StartDate: start.Format(dayKeyLayout),
		EndDate:   end.Format(dayKeyLayout),
	}, nil
}

// Bounds converts a YYYY-MM month key into absolute UTC timestamp bounds for
// querying timestamp-indexed records. Both Bounds and Resolve agree on the
// same calendar month for any given key.
func Bounds(monthKey string) (TimeRange, error) {
	year, month, err := parseMonthKey(monthKey)
	if err != nil {
		return TimeRange{}, err
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 999_000_000, time.UTC)

	return TimeRange{Start: start, End: end}, nil
}

// DayKey formats a timestamp as the UTC calendar day it falls on.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// IsValidDayKey reports whether s is a well-formed YYYY-MM-DD day key.
func IsValidDayKey(s string) bool {
	_, err := time.Parse(dayKeyLayout, s)
	return err == nil
}
