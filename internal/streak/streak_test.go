package streak_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tmessner/fieldlog/internal/streak"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(n int) *int { return &n }

func TestUpdateFirstLog(t *testing.T) {
	st, res := streak.Update(streak.State{Restores: streak.MaxRestores, LastRestoreMonth: 2}, day("2026-03-04"))

	require.Equal(t, 1, st.Count)
	require.NotNil(t, st.LastLogDate)
	require.True(t, st.LastLogDate.Equal(day("2026-03-04")))
	require.False(t, res.SavedByRestore)
}

func TestUpdateSameDayIsIdempotent(t *testing.T) {
	st, _ := streak.Update(streak.State{Restores: streak.MaxRestores, LastRestoreMonth: 2}, day("2026-03-04"))
	again, res := streak.Update(st, day("2026-03-04"))

	require.Equal(t, st, again)
	require.False(t, res.SavedByRestore)
}

func TestUpdateConsecutiveDay(t *testing.T) {
	last := day("2026-03-03")
	st := streak.State{Count: 5, LastLogDate: &last, Restores: 2, LastRestoreMonth: 2}

	st, res := streak.Update(st, day("2026-03-04"))

	require.Equal(t, 6, st.Count)
	require.Equal(t, 2, st.Restores)
	require.False(t, res.SavedByRestore)
}

func TestUpdateProtectedGapSpendsNothing(t *testing.T) {
	// Friday → Tuesday: skipped Sat, Sun and a protected Monday.
	last := day("2026-03-06")
	st := streak.State{Count: 5, LastLogDate: &last, Restores: 3, LastRestoreMonth: 2, ProtectedDay: ptr(1)}

	st, res := streak.Update(st, day("2026-03-10"))

	require.Equal(t, 6, st.Count)
	require.Equal(t, 3, st.Restores)
	require.False(t, res.SavedByRestore)
}

func TestUpdateUnprotectedGapSpendsRestore(t *testing.T) {
	// Friday → Tuesday with Monday unprotected.
	last := day("2026-03-06")
	st := streak.State{Count: 5, LastLogDate: &last, Restores: 1, LastRestoreMonth: 2}

	st, res := streak.Update(st, day("2026-03-10"))

	require.Equal(t, 6, st.Count)
	require.Equal(t, 0, st.Restores)
	require.True(t, res.SavedByRestore)
}

func TestUpdateUnprotectedGapWithoutRestoresResets(t *testing.T) {
	last := day("2026-03-06")
	st := streak.State{Count: 5, LastLogDate: &last, Restores: 0, LastRestoreMonth: 2}

	st, res := streak.Update(st, day("2026-03-10"))

	require.Equal(t, 1, st.Count)
	require.False(t, res.SavedByRestore)
}

func TestUpdateMonthlyRefill(t *testing.T) {
	last := day("2026-02-27")
	st := streak.State{Count: 3, LastLogDate: &last, Restores: 0, LastRestoreMonth: 1}

	// First call in March refills the budget before the gap logic. The
	// skipped days (Feb 28, Mar 1) are a weekend, so the streak also
	// continues without spending anything.
	st, res := streak.Update(st, day("2026-03-02"))

	require.Equal(t, 2, st.LastRestoreMonth)
	require.Equal(t, streak.MaxRestores, st.Restores)
	require.Equal(t, 4, st.Count)
	require.False(t, res.SavedByRestore)
}

func TestUpdateRefillCanBeSpentSameCall(t *testing.T) {
	// Gap contains an unprotected Wednesday; the March refill happens
	// first, so one fresh restore is spent even though February ended
	// with none.
	last := day("2026-02-24")
	st := streak.State{Count: 9, LastLogDate: &last, Restores: 0, LastRestoreMonth: 1}

	st, res := streak.Update(st, day("2026-03-02"))

	require.Equal(t, 10, st.Count)
	require.Equal(t, streak.MaxRestores-1, st.Restores)
	require.True(t, res.SavedByRestore)
}

func TestUpdateRestoresStayInBudget(t *testing.T) {
	last := day("2026-03-02")
	st := streak.State{Count: 1, LastLogDate: &last, Restores: 3, LastRestoreMonth: 2}

	for _, d := range []string{"2026-03-04", "2026-03-06", "2026-03-11", "2026-03-13"} {
		st, _ = streak.Update(st, day(d))
		require.GreaterOrEqual(t, st.Restores, 0)
		require.LessOrEqual(t, st.Restores, streak.MaxRestores)
	}
	// Three mid-week gaps spend the whole budget; the fourth resets.
	require.Equal(t, 0, st.Restores)
	require.Equal(t, 1, st.Count)
}

func TestProtected(t *testing.T) {
	st := streak.State{ProtectedDay: ptr(3)} // Wednesday

	require.True(t, st.Protected(day("2026-03-07")))  // Saturday
	require.True(t, st.Protected(day("2026-03-08")))  // Sunday
	require.True(t, st.Protected(day("2026-03-04")))  // Wednesday
	require.False(t, st.Protected(day("2026-03-05"))) // Thursday
}

func TestNoteBackdated(t *testing.T) {
	today := day("2026-03-10")

	// Future days are ignored.
	st := streak.NoteBackdated(streak.State{}, day("2026-03-11"), today)
	require.Nil(t, st.LastLogDate)

	// A zero streak becomes 1.
	st = streak.NoteBackdated(streak.State{}, day("2026-03-08"), today)
	require.Equal(t, 1, st.Count)
	require.True(t, st.LastLogDate.Equal(day("2026-03-08")))

	// Days at or before the last log change nothing.
	prev := *st.LastLogDate
	st2 := streak.NoteBackdated(st, day("2026-03-07"), today)
	require.Equal(t, st, st2)
	require.True(t, st2.LastLogDate.Equal(prev))

	// A newer day moves lastLogDate but never re-runs the catch-up walk:
	// an existing count is left untouched.
	st.Count = 4
	st = streak.NoteBackdated(st, day("2026-03-09"), today)
	require.Equal(t, 4, st.Count)
	require.True(t, st.LastLogDate.Equal(day("2026-03-09")))
}
