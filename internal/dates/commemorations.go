package dates

import "time"

// Commemoration is a fixed annual date highlighted in the status view.
type Commemoration struct {
	Name  string
	Month time.Month
	Day   int
}

// Fixed dates observed every year, in calendar order.
var commemorations = []Commemoration{
	{"Memorial season", time.March, 1},
	{"Convention season", time.June, 1},
	{"New service year", ServiceYearStartMonth, 1},
}

// Commemorations returns the fixed commemorative dates for a calendar year.
func Commemorations(year int, loc *time.Location) []time.Time {
	out := make([]time.Time, 0, len(commemorations))
	for _, c := range commemorations {
		out = append(out, time.Date(year, c.Month, c.Day, 0, 0, 0, 0, loc))
	}
	return out
}

// NextCommemoration returns the first commemoration on or after t.
func NextCommemoration(t time.Time) (Commemoration, time.Time) {
	day := StartOfDay(t)
	for _, year := range []int{day.Year(), day.Year() + 1} {
		for _, c := range commemorations {
			when := time.Date(year, c.Month, c.Day, 0, 0, 0, 0, day.Location())
			if !when.Before(day) {
				return c, when
			}
		}
	}
	// Unreachable: next year's first entry always lies ahead.
	return commemorations[0], time.Time{}
}
