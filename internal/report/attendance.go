package report

import (
	"math"
	"time"

	"github.com/harismriti/sadhna-api/internal/domain"
)

type DayStatus struct {
	Date      string `json:"date"`
	Submitted bool   `json:"submitted"`
}

type AttendanceRow struct {
	Devotee       domain.UserSummary `json:"devotee"`
	DailyStatus   []DayStatus        `json:"dailyStatus"`
	DaysSubmitted int                `json:"daysSubmitted"`
	TotalDays     int                `json:"totalDays"`
	Percentage    int                `json:"percentage"`
}

// BuildAttendance answers "who submitted when" for each devotee over the
// given days. A day counts as submitted when an entry exists for that
// devotee on that calendar date, ignoring time-of-day. Rows keep the roster
// order; no ranking is applied.
func BuildAttendance(roster []domain.User, entries []domain.DailyEntry, days []time.Time) []AttendanceRow {
	submitted := make(map[uint]map[string]bool, len(roster))
	for _, e := range entries {
		if submitted[e.UserID] == nil {
			submitted[e.UserID] = make(map[string]bool)
		}
		submitted[e.UserID][DayKey(e.Date)] = true
	}

	rows := make([]AttendanceRow, 0, len(roster))
	for _, devotee := range roster {
		row := AttendanceRow{
			Devotee:     devotee.Summary(),
			DailyStatus: make([]DayStatus, 0, len(days)),
			TotalDays:   len(days),
		}
		for _, day := range days {
			key := DayKey(day)
			ok := submitted[devotee.ID][key]
			if ok {
				row.DaysSubmitted++
			}
			row.DailyStatus = append(row.DailyStatus, DayStatus{Date: key, Submitted: ok})
		}
		if len(days) > 0 {
			row.Percentage = int(math.Round(float64(row.DaysSubmitted) / float64(len(days)) * 100))
		}

		rows = append(rows, row)
	}

	return rows
}
