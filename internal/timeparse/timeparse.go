// Package timeparse converts free-text time strings into decimal hours.
package timeparse

import (
	"math"
	"strconv"
	"strings"
)

// ParseHours reads raw user input as a number of hours.
//
// Accepted forms:
//
//	"1:30"  hours and minutes
//	"1.30"  hours and minutes (dot followed by exactly two digits below 60)
//	"1.5"   decimal hours
//	"1,5"   decimal hours, comma separator
//
// The result is always non-negative; unreadable input yields NaN.
func ParseHours(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return math.NaN()
	}

	if i := strings.IndexByte(s, ':'); i >= 0 {
		return parseClock(s[:i], s[i+1:])
	}

	// A comma is always a decimal separator, never a minutes marker.
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		return parseDecimal(strings.Replace(s, ",", ".", 1))
	}

	// A two-digit fraction below 60 reads as minutes, keeping "7.30"
	// equivalent to "7:30". Anything else is a plain decimal.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac := s[i+1:]
		if len(frac) == 2 {
			if m, err := strconv.Atoi(frac); err == nil && m < 60 {
				return parseClock(s[:i], frac)
			}
		}
	}

	return parseDecimal(s)
}

func parseDecimal(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return math.NaN()
	}
	return f
}

func parseClock(hourPart, minutePart string) float64 {
	h, err := strconv.Atoi(hourPart)
	if err != nil || h < 0 {
		return math.NaN()
	}
	m, err := strconv.Atoi(minutePart)
	if err != nil || m < 0 || m > 59 {
		return math.NaN()
	}
	return float64(h) + float64(m)/60
}
