package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/tmessner/fieldlog/internal/dates"
	"github.com/tmessner/fieldlog/internal/streak"
)

// logFor returns the service-year log owning day, creating it if absent.
func (s *AppState) logFor(day time.Time) HistoryLog {
	label := dates.ServiceYearLabel(day)
	l, ok := s.Archives[label]
	if !ok {
		l = HistoryLog{}
		s.Archives[label] = l
	}
	return l
}

// setEntry stores e under key, deleting the key instead when the entry
// holds nothing. This is the retention invariant: empty entries never
// accumulate in the store.
func (l HistoryLog) setEntry(key string, e DayEntry) {
	if e.Empty() {
		delete(l, key)
		return
	}
	l[key] = e
}

// monthTotals sums hours and LDC hours over the day keys of the month
// containing anchor, skipping the summary and carryover aggregates.
func monthTotals(archives map[string]HistoryLog, anchor time.Time) (hours, ldc float64) {
	for key, e := range archives[dates.ServiceYearLabel(anchor)] {
		if dates.IsSpecialKey(key) {
			continue
		}
		day, err := dates.ParseDayKey(key)
		if err != nil {
			continue
		}
		if dates.SameMonth(day, anchor) {
			hours += e.Hours
			ldc += e.LdcHours
		}
	}
	return hours, ldc
}

// refreshMonth recomputes the cached totals for the displayed month.
func (s *AppState) refreshMonth() {
	s.CurrentHours, s.CurrentLdcHours = monthTotals(s.Archives, s.CurrentDate)
}

// goalCrossed reports the edge trigger: the total moved from below the goal
// to at or above it.
func goalCrossed(goal, before, after float64) bool {
	return goal > 0 && before < goal && after >= goal
}

// AddHours logs amount service hours for today, preserving any existing
// weather tag unless a new one is supplied. The entry lands in the service
// year owning today's date, which may differ from the displayed year around
// the September rollover. Amounts that are not positive are a no-op; a day
// marked sick rejects hours entirely.
func AddHours(s AppState, now time.Time, amount float64, weather Weather) (AppState, Signals) {
	var sig Signals
	amount = sanitizeHours(amount)
	if amount <= 0 {
		return s, sig
	}
	s = s.clone()
	yearLog := s.logFor(now)
	key := dates.DayKey(now)
	e := yearLog[key]
	if e.Status != "" {
		return s, sig
	}
	e.Hours += amount
	if weather != "" {
		e.Weather = weather
	}
	yearLog.setEntry(key, e)

	before := s.CurrentHours
	if dates.SameMonth(now, s.CurrentDate) {
		s.refreshMonth()
		sig.GoalReached = goalCrossed(s.Goal, before, s.CurrentHours)
	}

	var res streak.Result
	s.State, res = streak.Update(s.State, now)
	sig.StreakSaved = res.SavedByRestore
	return s, sig
}

// AddLdcHours logs auxiliary construction hours for today. LDC hours keep
// their own budget line: they feed the streak but never the monthly goal.
func AddLdcHours(s AppState, now time.Time, amount float64) (AppState, Signals) {
	var sig Signals
	amount = sanitizeHours(amount)
	if amount <= 0 {
		return s, sig
	}
	s = s.clone()
	yearLog := s.logFor(now)
	key := dates.DayKey(now)
	e := yearLog[key]
	if e.Status != "" {
		return s, sig
	}
	e.LdcHours += amount
	yearLog.setEntry(key, e)

	if dates.SameMonth(now, s.CurrentDate) {
		s.refreshMonth()
	}

	var res streak.Result
	s.State, res = streak.Update(s.State, now)
	sig.StreakSaved = res.SavedByRestore
	return s, sig
}

// SetHours makes total the displayed month's running figure by applying the
// difference to today's entry. The streak only advances when the new total
// is positive.
func SetHours(s AppState, now time.Time, total float64) (AppState, Signals) {
	var sig Signals
	total = sanitizeHours(total)
	s = s.clone()
	delta := total - s.CurrentHours

	yearLog := s.logFor(now)
	key := dates.DayKey(now)
	e := yearLog[key]
	if e.Status == "" {
		e.Hours += delta
		if e.Hours < 0 {
			e.Hours = 0
		}
	}
	yearLog.setEntry(key, e)

	before := s.CurrentHours
	if dates.SameMonth(now, s.CurrentDate) {
		s.refreshMonth()
		sig.GoalReached = goalCrossed(s.Goal, before, s.CurrentHours)
	}

	if total > 0 {
		var res streak.Result
		s.State, res = streak.Update(s.State, now)
		sig.StreakSaved = res.SavedByRestore
	}
	return s, sig
}

// SetHoursForDate sets the day total for an arbitrary date, resolving the
// service year of that date and creating its log if needed. A sick day
// forces the stored hours to 0 regardless of the requested total. Campaign
// is tri-state: nil leaves the flag alone. Backdated positive days nudge
// the streak through the narrow backfill rule instead of the catch-up walk.
func SetHoursForDate(s AppState, now, day time.Time, total float64, weather Weather, campaign *bool) (AppState, Signals) {
	total = sanitizeHours(total)
	s = s.clone()
	yearLog := s.logFor(day)
	key := dates.DayKey(day)
	e := yearLog[key]
	if e.Status != "" {
		total = 0
	}
	e.Hours = total
	if weather != "" {
		e.Weather = weather
	}
	if campaign != nil {
		e.IsCampaign = *campaign
	}
	yearLog.setEntry(key, e)

	if dates.SameMonth(day, s.CurrentDate) {
		s.refreshMonth()
	}
	if total > 0 {
		s.State = streak.NoteBackdated(s.State, day, now)
	}
	return s, Signals{}
}

// MarkDayStatus sets or clears a whole-day status. Setting a status
// destroys the day's hours and LDC hours; clearing it later does not bring
// them back.
func MarkDayStatus(s AppState, day time.Time, status Status) (AppState, Signals) {
	s = s.clone()
	yearLog := s.logFor(day)
	key := dates.DayKey(day)
	e := yearLog[key]
	if status != "" {
		e.Hours = 0
		e.LdcHours = 0
		e.Status = status
	} else {
		e.Status = ""
	}
	yearLog.setEntry(key, e)

	if dates.SameMonth(day, s.CurrentDate) {
		s.refreshMonth()
	}
	return s, Signals{}
}

// DeleteLdcHoursForMonth strips the LDC hours from every day of the
// displayed month, pruning entries that end up empty.
func DeleteLdcHoursForMonth(s AppState) (AppState, Signals) {
	s = s.clone()
	yearLog := s.logFor(s.CurrentDate)
	for key, e := range yearLog {
		if dates.IsSpecialKey(key) {
			continue
		}
		day, err := dates.ParseDayKey(key)
		if err != nil || !dates.SameMonth(day, s.CurrentDate) {
			continue
		}
		e.LdcHours = 0
		yearLog.setEntry(key, e)
	}
	s.CurrentLdcHours = 0
	return s, Signals{}
}

// ArchiveAndStartNewYear repoints the active service year at the one
// containing now, leaving all prior logs frozen in the archives. This is
// the only operation that changes which year is active.
func ArchiveAndStartNewYear(s AppState, now time.Time) (AppState, Signals) {
	s = s.clone()
	label := dates.ServiceYearLabel(now)
	s.CurrentServiceYear = label
	if _, ok := s.Archives[label]; !ok {
		s.Archives[label] = HistoryLog{}
	}
	s.CurrentHours = 0
	s.CurrentLdcHours = 0
	return s, Signals{}
}

// SetGoal updates the monthly goal.
func SetGoal(s AppState, goal float64) (AppState, Signals) {
	s = s.clone()
	s.Goal = sanitizeHours(goal)
	return s, Signals{}
}

// SetProtectedDay chooses the extra weekday (0=Sunday .. 6=Saturday) that
// never breaks the streak, or clears it with nil.
func SetProtectedDay(s AppState, weekday *int) (AppState, Signals) {
	s = s.clone()
	if weekday == nil || *weekday < 0 || *weekday > 6 {
		s.ProtectedDay = nil
	} else {
		d := *weekday
		s.ProtectedDay = &d
	}
	return s, Signals{}
}

// SetCurrentDate moves the displayed month and refreshes its cached totals.
func SetCurrentDate(s AppState, t time.Time) (AppState, Signals) {
	s = s.clone()
	s.CurrentDate = dates.StartOfDay(t)
	s.refreshMonth()
	return s, Signals{}
}

// AddActivity appends a visit or study, minting an ID when none is given.
func AddActivity(s AppState, item ActivityItem) (AppState, Signals) {
	s = s.clone()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Date.IsZero() {
		item.Date = s.CurrentDate
	}
	s.Activities = append(s.Activities, item)
	return s, Signals{}
}

// RemoveActivity deletes the activity with the given ID, reporting whether
// it existed.
func RemoveActivity(s AppState, id string) (AppState, bool) {
	s = s.clone()
	for i, a := range s.Activities {
		if a.ID == id {
			s.Activities = append(s.Activities[:i], s.Activities[i+1:]...)
			return s, true
		}
	}
	return s, false
}

// ImportMonthSummary records a collapsed historical month as a single
// aggregate. Summary months are excluded from the displayed month's cached
// totals and are not editable at day granularity.
func ImportMonthSummary(s AppState, year int, month time.Month, hours float64) (AppState, Signals) {
	s = s.clone()
	anchor := time.Date(year, month, 1, 0, 0, 0, 0, s.CurrentDate.Location())
	yearLog := s.logFor(anchor)
	yearLog.setEntry(dates.SummaryKey(year, month), DayEntry{
		Hours:     sanitizeHours(hours),
		IsSummary: true,
	})
	return s, Signals{}
}

// SetCarryover attributes hours earned before the tracker was adopted to a
// month without day-level detail. Zero hours removes the carryover.
func SetCarryover(s AppState, year int, month time.Month, hours float64) (AppState, Signals) {
	s = s.clone()
	anchor := time.Date(year, month, 1, 0, 0, 0, 0, s.CurrentDate.Location())
	yearLog := s.logFor(anchor)
	yearLog.setEntry(dates.CarryoverKey(year, month), DayEntry{Hours: sanitizeHours(hours)})
	return s, Signals{}
}
