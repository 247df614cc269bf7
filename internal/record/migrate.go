package record

import (
	"encoding/json"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tmessner/fieldlog/internal/dates"
	"github.com/tmessner/fieldlog/internal/streak"
)

// SchemaVersion is the current persisted document version. Version 0 is the
// untagged legacy shape from the original app.
const SchemaVersion = 1

// StateKey is the persistence-adapter key of the canonical document.
const StateKey = "app-state"

// DefaultGoal is the monthly hour goal a fresh document starts with.
const DefaultGoal float64 = 50

// rawState mirrors AppState with loose typing so that any historical
// document shape decodes without failing: dates as strings, day entries as
// raw JSON (legacy documents stored bare numbers), optional fields as
// pointers to tell "absent" from zero.
type rawState struct {
	SchemaVersion      int                                   `json:"schemaVersion"`
	UserName           string                                `json:"userName"`
	Goal               *float64                              `json:"goal"`
	CurrentDate        string                                `json:"currentDate"`
	CurrentHours       float64                               `json:"currentHours"`
	CurrentLdcHours    *float64                              `json:"currentLdcHours"`
	CurrentServiceYear string                                `json:"currentServiceYear"`
	History            map[string]json.RawMessage            `json:"history"`
	Archives           map[string]map[string]json.RawMessage `json:"archives"`
	Activities         []ActivityItem                        `json:"activities"`
	GroupArrangements  []GroupArrangement                    `json:"groupArrangements"`
	Streak             int                                   `json:"streak"`
	LastLogDate        string                                `json:"lastLogDate"`
	StreakRestores     *int                                  `json:"streakRestores"`
	LastRestoreMonth   *int                                  `json:"lastRestoreMonth"`
	ProtectedDay       *int                                  `json:"protectedDay"`
}

// Load decodes a persisted document of any historical shape into the
// canonical state. Unreadable documents or fields degrade to defaults; Load
// never fails and is a no-op on already-canonical data.
func Load(raw string, now time.Time) AppState {
	if raw == "" {
		return Default(now)
	}
	var doc rawState
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		log.Warn().Err(err).Msg("discarding unreadable state document")
		return Default(now)
	}
	return migrate(&doc, now)
}

// Default returns the canonical state of a fresh install.
func Default(now time.Time) AppState {
	label := dates.ServiceYearLabel(now)
	return AppState{
		SchemaVersion:      SchemaVersion,
		Goal:               DefaultGoal,
		CurrentDate:        dates.StartOfDay(now),
		CurrentServiceYear: label,
		Archives:           map[string]HistoryLog{label: {}},
		Activities:         []ActivityItem{},
		GroupArrangements:  []GroupArrangement{},
		State: streak.State{
			Restores:         streak.MaxRestores,
			LastRestoreMonth: int(now.Month()) - 1,
		},
	}
}

// upgraders[v] upgrades a document in place from version v to v+1.
var upgraders = []func(*rawState, time.Time){
	upgradeLegacy,
}

// upgradeLegacy (version 0 → 1) is the only place legacy shapes are
// sniffed: a single-year history field is wrapped into archives under the
// service year of the document's current date.
func upgradeLegacy(doc *rawState, now time.Time) {
	if doc.Archives == nil {
		doc.Archives = map[string]map[string]json.RawMessage{}
		if doc.History != nil {
			anchor, ok := parseDate(doc.CurrentDate)
			if !ok {
				anchor = now
			}
			doc.Archives[dates.ServiceYearLabel(anchor)] = doc.History
			doc.History = nil
		}
	}
}

func migrate(doc *rawState, now time.Time) AppState {
	for v := doc.SchemaVersion; v >= 0 && v < SchemaVersion && v < len(upgraders); v++ {
		upgraders[v](doc, now)
	}

	cur, ok := parseDate(doc.CurrentDate)
	if !ok {
		cur = now
	}

	s := AppState{
		SchemaVersion:      SchemaVersion,
		UserName:           doc.UserName,
		Goal:               DefaultGoal,
		CurrentDate:        dates.StartOfDay(cur),
		CurrentServiceYear: doc.CurrentServiceYear,
		Archives:           map[string]HistoryLog{},
		Activities:         doc.Activities,
		GroupArrangements:  doc.GroupArrangements,
	}
	if doc.Goal != nil {
		s.Goal = sanitizeHours(*doc.Goal)
	}
	if s.Activities == nil {
		s.Activities = []ActivityItem{}
	}
	if s.GroupArrangements == nil {
		s.GroupArrangements = []GroupArrangement{}
	}

	for year, rawLog := range doc.Archives {
		yearLog := HistoryLog{}
		for key, rawEntry := range rawLog {
			e, ok := decodeEntry(rawEntry)
			if !ok {
				log.Warn().Str("year", year).Str("key", key).Msg("dropping unreadable day entry")
				continue
			}
			if dates.IsSummaryKey(key) {
				e.IsSummary = true
			}
			if !e.Empty() {
				yearLog[key] = e
			}
		}
		s.Archives[year] = yearLog
	}
	if s.CurrentServiceYear == "" {
		s.CurrentServiceYear = dates.ServiceYearLabel(cur)
	}
	if _, ok := s.Archives[s.CurrentServiceYear]; !ok {
		s.Archives[s.CurrentServiceYear] = HistoryLog{}
	}
	if _, ok := s.Archives[dates.ServiceYearLabel(cur)]; !ok {
		s.Archives[dates.ServiceYearLabel(cur)] = HistoryLog{}
	}

	s.State = migrateStreak(doc, cur)
	s.refreshMonth()
	return s
}

func migrateStreak(doc *rawState, cur time.Time) streak.State {
	st := streak.State{
		Count:            doc.Streak,
		Restores:         streak.MaxRestores,
		LastRestoreMonth: int(cur.Month()) - 1,
	}
	if st.Count < 0 {
		st.Count = 0
	}
	if last, ok := parseDate(doc.LastLogDate); ok {
		day := dates.StartOfDay(last)
		st.LastLogDate = &day
	}
	if doc.StreakRestores != nil {
		st.Restores = *doc.StreakRestores
		if st.Restores < 0 {
			st.Restores = 0
		}
		if st.Restores > streak.MaxRestores {
			st.Restores = streak.MaxRestores
		}
	}
	if doc.LastRestoreMonth != nil && *doc.LastRestoreMonth >= 0 && *doc.LastRestoreMonth <= 11 {
		st.LastRestoreMonth = *doc.LastRestoreMonth
	}
	if doc.ProtectedDay != nil && *doc.ProtectedDay >= 0 && *doc.ProtectedDay <= 6 {
		st.ProtectedDay = doc.ProtectedDay
	}
	return st
}

// decodeEntry reads one stored day value. The oldest document format stored
// a bare number of hours; everything newer stores an object.
func decodeEntry(raw json.RawMessage) (DayEntry, bool) {
	var hours float64
	if err := json.Unmarshal(raw, &hours); err == nil {
		return DayEntry{Hours: sanitizeHours(hours)}, true
	}
	var e DayEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return DayEntry{}, false
	}
	e.Hours = sanitizeHours(e.Hours)
	e.LdcHours = sanitizeHours(e.LdcHours)
	return e, true
}

// parseDate reads an ISO-8601 timestamp or plain date string.
func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	log.Warn().Str("value", raw).Msg("ignoring unreadable date")
	return time.Time{}, false
}

// sanitizeHours clamps NaN and negative amounts to 0 so they never reach
// persisted state.
func sanitizeHours(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
