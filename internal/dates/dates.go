// Package dates holds the pure calendar helpers: service-year boundaries,
// day-key construction and parsing, weekend detection and calendar-day math.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// ServiceYearStartMonth is the month the service year rolls over.
const ServiceYearStartMonth = time.September

const (
	dayKeyLayout = "2006-01-02"

	summarySuffix   = "-SUMMARY"
	carryoverSuffix = "-CARRYOVER"
)

// serviceYearStartYear returns the calendar year in which the service year
// containing t begins.
func serviceYearStartYear(t time.Time) int {
	if t.Month() >= ServiceYearStartMonth {
		return t.Year()
	}
	return t.Year() - 1
}

// ServiceYearLabel returns the archive label for the service year containing t,
// e.g. "2025-2026".
func ServiceYearLabel(t time.Time) string {
	start := serviceYearStartYear(t)
	return fmt.Sprintf("%d-%d", start, start+1)
}

// ServiceYearStart returns midnight on September 1 of the service year
// containing t.
func ServiceYearStart(t time.Time) time.Time {
	return time.Date(serviceYearStartYear(t), ServiceYearStartMonth, 1, 0, 0, 0, 0, t.Location())
}

// DayKey formats t as the canonical YYYY-MM-DD store key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a canonical day key back into a date. Summary and
// carryover keys do not parse as days and are rejected.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(dayKeyLayout, key)
}

// SummaryKey returns the store key for a collapsed historical month.
func SummaryKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d%s", year, int(month), summarySuffix)
}

// CarryoverKey returns the store key for hours carried into a month from
// before the tracker was adopted.
func CarryoverKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d%s", year, int(month), carryoverSuffix)
}

// IsSummaryKey reports whether key names a collapsed month aggregate.
func IsSummaryKey(key string) bool {
	return strings.HasSuffix(key, summarySuffix)
}

// IsCarryoverKey reports whether key names a month carryover aggregate.
func IsCarryoverKey(key string) bool {
	return strings.HasSuffix(key, carryoverSuffix)
}

// IsSpecialKey reports whether key is a month aggregate rather than a day.
func IsSpecialKey(key string) bool {
	return IsSummaryKey(key) || IsCarryoverKey(key)
}

// SpecialKeyMonth extracts the year and month from a summary or carryover key.
func SpecialKeyMonth(key string) (int, time.Month, error) {
	i := strings.IndexByte(key, '-')
	if i < 0 || !IsSpecialKey(key) {
		return 0, 0, fmt.Errorf("not a month aggregate key: %q", key)
	}
	t, err := time.Parse("2006-01", key[:i+3])
	if err != nil {
		return 0, 0, fmt.Errorf("not a month aggregate key: %q", key)
	}
	return t.Year(), t.Month(), nil
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysBetween returns the number of calendar days separating a and b,
// ignoring clock time and location. The result is never negative.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	d := int(au.Sub(bu).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether two times fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
