// Package record owns the canonical application state: the multi-year
// archive of day entries, the migration pipeline that brings any persisted
// document shape forward, and the mutation operations that keep the cached
// month aggregates and the streak consistent. Every operation takes the
// previous snapshot and returns a new one together with its one-shot
// signals; nothing here mutates shared state.
package record

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tmessner/fieldlog/internal/streak"
)

// Weather tags a day's conditions. The last write per day wins.
type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherBad    Weather = "bad"
)

// Status marks a whole day. A status day cannot carry positive hours.
type Status string

// StatusSick marks a day lost to illness.
const StatusSick Status = "sick"

// DayEntry is one calendar day's record. Optional fields use omitempty so
// that absent and zero values serialize identically; an entry that carries
// nothing at all is pruned from the log rather than stored.
type DayEntry struct {
	Hours      float64 `json:"hours"`
	LdcHours   float64 `json:"ldcHours,omitempty"`
	Weather    Weather `json:"weather,omitempty"`
	Status     Status  `json:"status,omitempty"`
	IsCampaign bool    `json:"isCampaign,omitempty"`
	IsSummary  bool    `json:"isSummary,omitempty"`
}

// Empty reports whether the entry holds nothing worth keeping.
func (e DayEntry) Empty() bool {
	return e.Hours == 0 && e.LdcHours == 0 && e.Weather == "" &&
		e.Status == "" && !e.IsCampaign && !e.IsSummary
}

// HistoryLog maps day keys (plus the month summary and carryover keys) to
// entries within one service year.
type HistoryLog map[string]DayEntry

// ActivityType distinguishes the kinds of qualitative activity.
type ActivityType string

const (
	ActivityVisit ActivityType = "visit"
	ActivityStudy ActivityType = "study"
)

// ActivityItem is a qualitative activity (a return visit or a study),
// independent of the day log; it relates to day entries only by date.
type ActivityItem struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Name      string       `json:"name"`
	Location  string       `json:"location,omitempty"`
	Comments  string       `json:"comments,omitempty"`
	Date      time.Time    `json:"date"`
	Recurring bool         `json:"recurring,omitempty"`
}

// GroupArrangement survives migration for the arrangements screen; the core
// defines no operations on it.
type GroupArrangement struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// AppState is the canonical persisted document. The cached CurrentHours and
// CurrentLdcHours always equal the recomputed totals of the month containing
// CurrentDate; mutations that touch that month refresh them. Streak state is
// embedded so its fields serialize at the top level of the document.
type AppState struct {
	SchemaVersion      int                   `json:"schemaVersion"`
	UserName           string                `json:"userName"`
	Goal               float64               `json:"goal"`
	CurrentDate        time.Time             `json:"currentDate"`
	CurrentHours       float64               `json:"currentHours"`
	CurrentLdcHours    float64               `json:"currentLdcHours"`
	CurrentServiceYear string                `json:"currentServiceYear"`
	Archives           map[string]HistoryLog `json:"archives"`
	Activities         []ActivityItem        `json:"activities"`
	GroupArrangements  []GroupArrangement    `json:"groupArrangements"`

	streak.State
}

// Signals are the one-shot outcomes of a mutation. They are consumed by the
// caller and never persisted; an unconsumed signal is simply dropped.
type Signals struct {
	// GoalReached fires when a mutation moves the month total from below
	// the goal to at or above it. Edge-triggered: staying above the goal
	// does not refire it.
	GoalReached bool
	// StreakSaved fires when a restore was spent to keep the streak alive.
	StreakSaved bool
}

// Encode serializes the canonical document as indented JSON with ISO-8601
// dates, the shape written to the persistence adapter and to backups.
func (s AppState) Encode() (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding state: %w", err)
	}
	return string(data), nil
}

// clone deep-copies the snapshot so mutations never alias a caller's maps.
func (s AppState) clone() AppState {
	out := s
	out.Archives = make(map[string]HistoryLog, len(s.Archives))
	for year, log := range s.Archives {
		yearLog := make(HistoryLog, len(log))
		for key, e := range log {
			yearLog[key] = e
		}
		out.Archives[year] = yearLog
	}
	// make rather than append so empty lists stay non-nil and keep
	// serializing as [].
	out.Activities = make([]ActivityItem, len(s.Activities))
	copy(out.Activities, s.Activities)
	out.GroupArrangements = make([]GroupArrangement, len(s.GroupArrangements))
	copy(out.GroupArrangements, s.GroupArrangements)
	if s.LastLogDate != nil {
		d := *s.LastLogDate
		out.LastLogDate = &d
	}
	if s.ProtectedDay != nil {
		p := *s.ProtectedDay
		out.ProtectedDay = &p
	}
	return out
}
