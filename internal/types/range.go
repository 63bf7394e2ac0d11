package types

import (
	"math"
	"time"
)

// DateRange is the half-open interval [From, Until).
type DateRange struct {
	From  time.Time `json:"from" example:"2024-03-01T00:00:00Z"`  // First instant in the range
	Until time.Time `json:"until" example:"2024-04-01T00:00:00Z"` // First instant after the range
}

// Day returns the range covering the calendar day t is in.
func Day(t time.Time) DateRange {
	start := StartOfDay(t)
	return DateRange{From: start, Until: start.AddDate(0, 0, 1)}
}

// Week returns the range of the calendar week t is in. Weeks start on Monday.
func Week(t time.Time) DateRange {
	start := StartOfDay(t)

	// time.Sunday is 0, shift so that Monday is the first day
	offset := (int(start.Weekday()) + 6) % 7
	start = start.AddDate(0, 0, -offset)

	return DateRange{From: start, Until: start.AddDate(0, 0, 7)}
}

// Year returns the range covering a calendar year in UTC.
func Year(year int) DateRange {
	return DateRange{
		From:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Until: time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Contains reports whether t is inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.Until)
}

// Valid reports whether the range is non-empty.
func (r DateRange) Valid() bool {
	return r.Until.After(r.From)
}

// Days returns the number of calendar days the range touches, rounded up.
// Empty or inverted ranges have zero days.
func (r DateRange) Days() int {
	if !r.Valid() {
		return 0
	}

	return int(math.Ceil(r.Until.Sub(r.From).Hours() / 24))
}

// Shift moves the range by the specified amount of years, months and days.
func (r DateRange) Shift(years, months, days int) DateRange {
	return DateRange{
		From:  r.From.AddDate(years, months, days),
		Until: r.Until.AddDate(years, months, days),
	}
}
