// Package streak implements the consecutive-activity counter: a small state
// machine with weekend/protected-day forgiveness and a monthly budget of
// restores that can absorb an unprotected missed day.
package streak

import (
	"time"

	"github.com/tmessner/fieldlog/internal/dates"
)

// MaxRestores is the monthly restore budget.
const MaxRestores = 3

// State is the full machine state, persisted inline in the app document.
// LastRestoreMonth is a 0–11 month index, kept from the original document
// format.
type State struct {
	Count            int        `json:"streak"`
	LastLogDate      *time.Time `json:"lastLogDate"`
	Restores         int        `json:"streakRestores"`
	LastRestoreMonth int        `json:"lastRestoreMonth"`
	ProtectedDay     *int       `json:"protectedDay"` // 0=Sunday .. 6=Saturday
}

// Result carries the one-shot outcomes of an Update call.
type Result struct {
	SavedByRestore bool
}

// Protected reports whether day may be skipped without breaking the streak:
// weekends always, plus the user's chosen weekday if any.
func (s State) Protected(day time.Time) bool {
	if dates.IsWeekend(day) {
		return true
	}
	return s.ProtectedDay != nil && int(day.Weekday()) == *s.ProtectedDay
}

// Update advances the machine for an activity logged on today's date. It is
// idempotent within a calendar day: a second call on the same day changes
// nothing. The monthly restore refill runs on every call, before the gap
// logic.
func Update(s State, today time.Time) (State, Result) {
	var res Result
	day := dates.StartOfDay(today)

	if monthIndex(day) != s.LastRestoreMonth {
		s.Restores = MaxRestores
		s.LastRestoreMonth = monthIndex(day)
	}

	if s.LastLogDate == nil {
		s.Count = 1
		s.LastLogDate = &day
		return s, res
	}
	if dates.SameDay(*s.LastLogDate, day) || day.Before(*s.LastLogDate) {
		return s, res
	}

	gap := dates.DaysBetween(day, *s.LastLogDate)
	switch {
	case gap == 1:
		s.Count++
	case s.gapProtected(*s.LastLogDate, day):
		s.Count++
	case s.Restores > 0:
		s.Restores--
		s.Count++
		res.SavedByRestore = true
	default:
		// Today's log itself starts a fresh streak.
		s.Count = 1
	}

	s.LastLogDate = &day
	return s, res
}

// NoteBackdated records a positive backfilled entry without running the
// catch-up walk. The streak only moves forward when the day is not in the
// future and is strictly newer than the last recorded log; a zero streak
// becomes 1, any other count is left untouched.
func NoteBackdated(s State, day, today time.Time) State {
	d := dates.StartOfDay(day)
	if d.After(dates.StartOfDay(today)) {
		return s
	}
	if s.LastLogDate != nil && !d.After(*s.LastLogDate) {
		return s
	}
	if s.Count == 0 {
		s.Count = 1
	}
	s.LastLogDate = &d
	return s
}

// gapProtected reports whether every day strictly between from and to is
// protected.
func (s State) gapProtected(from, to time.Time) bool {
	for d := from.AddDate(0, 0, 1); d.Before(to); d = d.AddDate(0, 0, 1) {
		if !s.Protected(d) {
			return false
		}
	}
	return true
}

func monthIndex(t time.Time) int {
	return int(t.Month()) - 1
}
