// Package report rolls rosters and dated entries into derived reports:
// weekly/monthly rankings, attendance matrices and missing-submission lists.
// Everything here is pure; callers resolve "now" and pass concrete period
// boundaries, so each function is total over well-formed input.
package report

import "time"

const dayFormat = "2006-01-02"

// Day strips the time-of-day component, bucketing t to its calendar day.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DayKey formats t as the "yyyy-mm-dd" key used for day-granular comparison.
func DayKey(t time.Time) string {
	return t.Format(dayFormat)
}

// WeekBounds returns the Monday and Sunday of the ISO week containing t,
// both day-bucketed.
func WeekBounds(t time.Time) (weekStart, weekEnd time.Time) {
	day := Day(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	weekStart = day.AddDate(0, 0, -offset)
	return weekStart, weekStart.AddDate(0, 0, 6)
}

// WeekDays lists the seven days of the week starting at weekStart.
func WeekDays(weekStart time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = weekStart.AddDate(0, 0, i)
	}
	return days
}

// MonthBounds returns the first and last day of the given calendar month.
func MonthBounds(year int, month time.Month) (monthStart, monthEnd time.Time) {
	monthStart = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd = monthStart.AddDate(0, 1, -1)
	return monthStart, monthEnd
}

// MonthDays lists every calendar day of the given month.
func MonthDays(year int, month time.Month) []time.Time {
	start, end := MonthBounds(year, month)
	days := make([]time.Time, 0, end.Day())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
