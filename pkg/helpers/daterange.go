package helpers

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrBadDate = errors.New("invalid date, expected YYYY-MM-DD")

var errYear = errors.New("invalid year, expected YYYY")

// ParseDay accepts YYYY-MM-DD or RFC3339 and returns that calendar day at UTC midnight.
// For RFC3339 input the day is taken in the timestamp's own offset.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, ErrBadDate
}

// WeekRange returns [day, day+6], both inclusive.
func WeekRange(s string) (time.Time, time.Time, error) {
	from, err := ParseDay(s)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, from.AddDate(0, 0, 6), nil
}

// MonthRange returns the first and last day of the calendar month named by
// YYYY-MM or any YYYY-MM-DD inside it.
func MonthRange(s string) (time.Time, time.Time, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		if t, err = ParseDay(s); err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid month, expected YYYY-MM or YYYY-MM-DD")
		}
	}
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, -1), nil
}

// YearRange returns Jan 1 and Dec 31 of the year named by YYYY.
func YearRange(s string) (time.Time, time.Time, error) {
	if len(s) != 4 || strings.Trim(s, "0123456789") != "" {
		return time.Time{}, time.Time{}, errYear
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1 {
		return time.Time{}, time.Time{}, errYear
	}
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC), nil
}
