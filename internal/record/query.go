package record

import (
	"sort"
	"time"

	"github.com/tmessner/fieldlog/internal/dates"
)

// KeyedEntry pairs a store key with its entry for read-only reporting.
type KeyedEntry struct {
	Key   string
	Entry DayEntry
}

// MonthEntries returns the day entries of the month containing anchor in
// key order, plus any summary or carryover aggregates attributed to that
// month.
func MonthEntries(s AppState, anchor time.Time) (days, aggregates []KeyedEntry) {
	for key, e := range s.Archives[dates.ServiceYearLabel(anchor)] {
		if dates.IsSpecialKey(key) {
			year, month, err := dates.SpecialKeyMonth(key)
			if err == nil && year == anchor.Year() && month == anchor.Month() {
				aggregates = append(aggregates, KeyedEntry{Key: key, Entry: e})
			}
			continue
		}
		day, err := dates.ParseDayKey(key)
		if err != nil || !dates.SameMonth(day, anchor) {
			continue
		}
		days = append(days, KeyedEntry{Key: key, Entry: e})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Key < days[j].Key })
	sort.Slice(aggregates, func(i, j int) bool { return aggregates[i].Key < aggregates[j].Key })
	return days, aggregates
}

// LifetimeHours sums every recorded hour across all service years,
// including the summary and carryover aggregates: historical bulk imports
// are real hours for lifetime milestones even though the monthly caches
// exclude them.
func LifetimeHours(s AppState) float64 {
	var total float64
	for _, yearLog := range s.Archives {
		for _, e := range yearLog {
			total += e.Hours
		}
	}
	return total
}

// ServiceYearHours sums the day hours of one archived service year by label.
func ServiceYearHours(s AppState, label string) float64 {
	var total float64
	for _, e := range s.Archives[label] {
		total += e.Hours
	}
	return total
}
