package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekWindow_RollingFromAnchor(t *testing.T) {
	// Среда: окно начинается с якоря, без привязки к понедельнику
	anchor := time.Date(2026, 9, 2, 14, 30, 0, 0, time.UTC)

	days := WeekWindow(anchor)
	require.Len(t, days, DaysPerWeek)

	require.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), days[0])
	for i := 1; i < len(days); i++ {
		require.Equal(t, days[i-1].AddDate(0, 0, 1), days[i], "days must be consecutive")
	}
	require.Equal(t, time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), days[6])
}

func TestWeekWindow_CrossesMonthBoundary(t *testing.T) {
	anchor := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	days := WeekWindow(anchor)
	require.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), days[0])
	require.Equal(t, time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), days[6])
}

func TestNavigateWeek_RoundTrip(t *testing.T) {
	anchor := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	cursor := anchor
	for i := 0; i < 10; i++ {
		cursor = NavigateWeek(cursor, 1)
	}
	for i := 0; i < 10; i++ {
		cursor = NavigateWeek(cursor, -1)
	}

	require.True(t, cursor.Equal(anchor), "navigation must return to the original anchor, got %s", cursor)
}

func TestNavigateWeek_ShiftsSevenDays(t *testing.T) {
	anchor := time.Date(2026, 2, 26, 0, 0, 0, 0, time.UTC)

	next := NavigateWeek(anchor, 1)
	require.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), next)

	prev := NavigateWeek(anchor, -1)
	require.Equal(t, time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC), prev)
}

func TestSameDate(t *testing.T) {
	a := time.Date(2026, 9, 2, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 9, 2, 0, 1, 0, 0, time.UTC)
	c := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	require.True(t, SameDate(a, b))
	require.False(t, SameDate(a, c))
}
