package report

import (
	"time"

	"github.com/harismriti/sadhna-api/internal/domain"
)

type MissingReport struct {
	Date            string               `json:"date"`
	MissingDevotees []domain.UserSummary `json:"missingDevotees"`
	Total           int                  `json:"total"`
}

// MissingSubmissions lists the roster members with no entry on the target
// date.
func MissingSubmissions(roster []domain.User, entries []domain.DailyEntry, date time.Time) MissingReport {
	key := DayKey(date)

	submitted := make(map[uint]bool, len(entries))
	for _, e := range entries {
		if DayKey(e.Date) == key {
			submitted[e.UserID] = true
		}
	}

	missing := make([]domain.UserSummary, 0, len(roster))
	for _, devotee := range roster {
		if !submitted[devotee.ID] {
			missing = append(missing, devotee.Summary())
		}
	}

	return MissingReport{
		Date:            key,
		MissingDevotees: missing,
		Total:           len(missing),
	}
}
