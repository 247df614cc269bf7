// Package achievements evaluates tiered progress milestones against the
// canonical state. Every predicate is a pure read-only query that can be
// re-evaluated on any valid state, including an empty one; callers persist
// which tier was last shown.
package achievements

import (
	"github.com/tmessner/fieldlog/internal/record"
)

// Progress is the result of evaluating one tier of a definition.
type Progress struct {
	Unlocked bool
	Current  float64
}

// Metric extracts a single progress figure from the state.
type Metric func(record.AppState) float64

// Definition is a named metric with ascending tier thresholds.
type Definition struct {
	ID     string
	Name   string
	Metric Metric
	Tiers  []float64
}

// Definitions lists every achievement the app tracks.
var Definitions = []Definition{
	{ID: "streak", Name: "Consecutive days", Metric: CurrentStreak, Tiers: []float64{7, 14, 30, 60, 100}},
	{ID: "hours", Name: "Lifetime hours", Metric: LifetimeHours, Tiers: []float64{250, 500, 1000, 2000}},
	{ID: "studies", Name: "Studies conducted", Metric: StudiesConducted, Tiers: []float64{1, 5, 10}},
	{ID: "years", Name: "Service years recorded", Metric: YearsRecorded, Tiers: []float64{1, 3, 5}},
}

// Evaluate returns progress toward a single tier threshold.
func Evaluate(s record.AppState, m Metric, threshold float64) Progress {
	cur := m(s)
	return Progress{Unlocked: cur >= threshold, Current: cur}
}

// EvaluateAll returns per-tier progress for one definition.
func (d Definition) EvaluateAll(s record.AppState) []Progress {
	out := make([]Progress, len(d.Tiers))
	for i, tier := range d.Tiers {
		out[i] = Evaluate(s, d.Metric, tier)
	}
	return out
}

// CurrentStreak reads the live streak count.
func CurrentStreak(s record.AppState) float64 {
	return float64(s.Count)
}

// LifetimeHours counts every recorded hour, bulk imports included.
func LifetimeHours(s record.AppState) float64 {
	return record.LifetimeHours(s)
}

// StudiesConducted counts distinct study activities.
func StudiesConducted(s record.AppState) float64 {
	var n int
	for _, a := range s.Activities {
		if a.Type == record.ActivityStudy {
			n++
		}
	}
	return float64(n)
}

// YearsRecorded counts service years with at least one entry.
func YearsRecorded(s record.AppState) float64 {
	var n int
	for _, yearLog := range s.Archives {
		if len(yearLog) > 0 {
			n++
		}
	}
	return float64(n)
}
