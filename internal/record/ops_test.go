package record_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tmessner/fieldlog/internal/record"
)

// now is 2026-03-04, a Wednesday (see migrate_test.go).

func TestAddHoursFirstEntry(t *testing.T) {
	s := record.Default(now)

	s, sig := record.AddHours(s, now, 2, record.WeatherSunny)

	require.Equal(t, 2.0, s.CurrentHours)
	require.Equal(t,
		record.DayEntry{Hours: 2, Weather: record.WeatherSunny},
		s.Archives["2025-2026"]["2026-03-04"])
	require.Equal(t, 1, s.Count)
	require.NotNil(t, s.LastLogDate)
	require.Equal(t, "2026-03-04", s.LastLogDate.Format("2006-01-02"))
	require.False(t, sig.GoalReached)
	require.False(t, sig.StreakSaved)
}

func TestAddHoursPreservesWeather(t *testing.T) {
	s := record.Default(now)
	s, _ = record.AddHours(s, now, 1, record.WeatherCloudy)
	s, _ = record.AddHours(s, now, 1, "")

	e := s.Archives["2025-2026"]["2026-03-04"]
	require.Equal(t, record.WeatherCloudy, e.Weather)
	require.Equal(t, 2.0, e.Hours)
}

func TestAddHoursRejectsBadAmounts(t *testing.T) {
	s := record.Default(now)

	for _, amount := range []float64{0, -3, math.NaN()} {
		next, sig := record.AddHours(s, now, amount, "")
		require.Equal(t, s, next)
		require.Equal(t, record.Signals{}, sig)
	}
}

func TestAddHoursDoesNotMutateInput(t *testing.T) {
	s := record.Default(now)
	record.AddHours(s, now, 2, "")

	require.Empty(t, s.Archives["2025-2026"])
	require.Equal(t, 0.0, s.CurrentHours)
	require.Equal(t, 0, s.Count)
}

func TestGoalReachedIsEdgeTriggered(t *testing.T) {
	s := record.Default(now)
	s, _ = record.SetGoal(s, 10)

	s, sig := record.AddHours(s, now, 6, "")
	require.False(t, sig.GoalReached)

	s, sig = record.AddHours(s, now, 5, "")
	require.True(t, sig.GoalReached)

	// Already past the goal: no refire.
	s, sig = record.AddHours(s, now, 2, "")
	require.False(t, sig.GoalReached)
	require.Equal(t, 13.0, s.CurrentHours)
}

func TestSetHoursAppliesDelta(t *testing.T) {
	s := record.Default(now)
	s, _ = record.AddHours(s, now, 2, "")

	s, _ = record.SetHours(s, now, 5)

	require.Equal(t, 5.0, s.CurrentHours)
	require.Equal(t, 5.0, s.Archives["2025-2026"]["2026-03-04"].Hours)
}

func TestSetHoursToZeroPrunesAndSkipsStreak(t *testing.T) {
	s := record.Default(now)
	s, _ = record.SetHours(s, now, 0)

	require.NotContains(t, s.Archives["2025-2026"], "2026-03-04")
	require.Equal(t, 0, s.Count)
	require.Nil(t, s.LastLogDate)
}

func TestSetHoursForDateResolvesServiceYear(t *testing.T) {
	s := record.Default(now)
	past := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC) // previous service year

	s, _ = record.SetHoursForDate(s, now, past, 3, "", nil)

	require.Equal(t, 3.0, s.Archives["2024-2025"]["2025-07-10"].Hours)
	// Outside the displayed month: the cached total is untouched.
	require.Equal(t, 0.0, s.CurrentHours)
}

func TestSetHoursForDateBackfillStreakRule(t *testing.T) {
	s := record.Default(now)
	past := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// Backfilling a positive day on a zero streak sets it to 1.
	s, _ = record.SetHoursForDate(s, now, past, 2, "", nil)
	require.Equal(t, 1, s.Count)
	require.Equal(t, "2026-03-02", s.LastLogDate.Format("2006-01-02"))

	// Backfilling an even older day leaves the streak alone.
	older := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	s, _ = record.SetHoursForDate(s, now, older, 2, "", nil)
	require.Equal(t, 1, s.Count)
	require.Equal(t, "2026-03-02", s.LastLogDate.Format("2006-01-02"))

	// A future date never advances the streak.
	future := now.AddDate(0, 0, 3)
	s, _ = record.SetHoursForDate(s, now, future, 2, "", nil)
	require.Equal(t, "2026-03-02", s.LastLogDate.Format("2006-01-02"))
}

func TestSetHoursForDateCampaignFlag(t *testing.T) {
	s := record.Default(now)
	yes, no := true, false

	s, _ = record.SetHoursForDate(s, now, now, 2, "", &yes)
	require.True(t, s.Archives["2025-2026"]["2026-03-04"].IsCampaign)

	// nil leaves the flag alone.
	s, _ = record.SetHoursForDate(s, now, now, 3, "", nil)
	require.True(t, s.Archives["2025-2026"]["2026-03-04"].IsCampaign)

	s, _ = record.SetHoursForDate(s, now, now, 3, "", &no)
	require.False(t, s.Archives["2025-2026"]["2026-03-04"].IsCampaign)
}

func TestSickDayDestroysAndBlocksHours(t *testing.T) {
	s := record.Default(now)
	s, _ = record.AddHours(s, now, 3, "")

	s, _ = record.MarkDayStatus(s, now, record.StatusSick)

	e := s.Archives["2025-2026"]["2026-03-04"]
	require.Equal(t, record.DayEntry{Status: record.StatusSick}, e)
	require.Equal(t, 0.0, s.CurrentHours)

	// Hours cannot be set while the day is sick.
	s, _ = record.SetHoursForDate(s, now, now, 5, "", nil)
	require.Equal(t, 0.0, s.Archives["2025-2026"]["2026-03-04"].Hours)
	require.Equal(t, record.StatusSick, s.Archives["2025-2026"]["2026-03-04"].Status)

	// Clearing the status does not bring destroyed hours back; the empty
	// entry is pruned.
	s, _ = record.MarkDayStatus(s, now, "")
	require.NotContains(t, s.Archives["2025-2026"], "2026-03-04")
}

func TestRetentionInvariant(t *testing.T) {
	s := record.Default(now)

	// Weather alone keeps an entry alive.
	s, _ = record.SetHoursForDate(s, now, now, 0, record.WeatherBad, nil)
	require.Contains(t, s.Archives["2025-2026"], "2026-03-04")

	// Removing the last meaningful field prunes the key.
	s, _ = record.MarkDayStatus(s, now, record.StatusSick)
	s, _ = record.MarkDayStatus(s, now, "")
	require.NotContains(t, s.Archives["2025-2026"], "2026-03-04")
}

func TestAggregateConsistencyExcludesBulkKeys(t *testing.T) {
	s := record.Default(now)
	s, _ = record.AddHours(s, now, 4, "")
	s, _ = record.ImportMonthSummary(s, 2026, time.March, 70)
	s, _ = record.SetCarryover(s, 2026, time.March, 12)

	s, _ = record.SetCurrentDate(s, now)

	require.Equal(t, 4.0, s.CurrentHours)
	require.Equal(t, 82.0, record.LifetimeHours(s)-4) // bulk hours still count for lifetime
}

func TestAddLdcHoursKeepsOwnBudgetLine(t *testing.T) {
	s := record.Default(now)
	s, _ = record.SetGoal(s, 5)

	s, sig := record.AddLdcHours(s, now, 6)

	require.Equal(t, 6.0, s.CurrentLdcHours)
	require.Equal(t, 0.0, s.CurrentHours)
	require.False(t, sig.GoalReached) // LDC hours never feed the goal
	require.Equal(t, 1, s.Count)     // but they are logged activity
}

func TestDeleteLdcHoursForMonth(t *testing.T) {
	s := record.Default(now)
	s, _ = record.AddHours(s, now, 2, "")
	s, _ = record.AddLdcHours(s, now, 3)
	yesterday := now.AddDate(0, 0, -1)
	s, _ = record.SetHoursForDate(s, now, yesterday, 1, "", nil)

	s, _ = record.DeleteLdcHoursForMonth(s)

	require.Equal(t, 0.0, s.CurrentLdcHours)
	require.Equal(t, 0.0, s.Archives["2025-2026"]["2026-03-04"].LdcHours)
	// Service hours survive.
	require.Equal(t, 3.0, s.CurrentHours)
}

func TestArchiveAndStartNewYear(t *testing.T) {
	s := record.Default(now)
	s, _ = record.AddHours(s, now, 8, "")

	later := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	s, _ = record.ArchiveAndStartNewYear(s, later)

	require.Equal(t, "2026-2027", s.CurrentServiceYear)
	require.Contains(t, s.Archives, "2026-2027")
	require.Equal(t, 0.0, s.CurrentHours)
	require.Equal(t, 0.0, s.CurrentLdcHours)
	// The prior year stays frozen.
	require.Equal(t, 8.0, s.Archives["2025-2026"]["2026-03-04"].Hours)
}

func TestActivities(t *testing.T) {
	s := record.Default(now)

	s, _ = record.AddActivity(s, record.ActivityItem{Type: record.ActivityStudy, Name: "Maria"})
	require.Len(t, s.Activities, 1)
	require.NotEmpty(t, s.Activities[0].ID)
	require.False(t, s.Activities[0].Date.IsZero())

	s, found := record.RemoveActivity(s, s.Activities[0].ID)
	require.True(t, found)
	require.Empty(t, s.Activities)

	_, found = record.RemoveActivity(s, "missing")
	require.False(t, found)
}

func TestSetCarryoverZeroRemoves(t *testing.T) {
	s := record.Default(now)
	s, _ = record.SetCarryover(s, 2026, time.January, 10)
	require.Contains(t, s.Archives["2025-2026"], "2026-01-CARRYOVER")

	s, _ = record.SetCarryover(s, 2026, time.January, 0)
	require.NotContains(t, s.Archives["2025-2026"], "2026-01-CARRYOVER")
}
