package domain

import "time"

// WeekWindow returns the 7 consecutive calendar dates starting at anchor.
// The window is a rolling range from whatever date the anchor holds, it does
// not snap to a canonical week start. Dates are normalized to midnight in the
// anchor's location.
func WeekWindow(anchor time.Time) []time.Time {
	start := truncateToDate(anchor)
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// NavigateWeek shifts the anchor by direction*7 days, direction being -1 or +1.
// AddDate is exact calendar arithmetic: navigating forward k times then
// backward k times returns exactly the original anchor, no drift.
func NavigateWeek(anchor time.Time, direction int) time.Time {
	return truncateToDate(anchor).AddDate(0, 0, direction*DaysPerWeek)
}

// truncateToDate обнуляет компонент времени
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate returns true if both timestamps fall on the same calendar date
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
