package report

import (
	"math"
	"sort"

	"github.com/harismriti/sadhna-api/internal/domain"
	"github.com/harismriti/sadhna-api/internal/scoring"
)

type AvgStats struct {
	AvgSleepHrs   float64 `json:"avgSleepHrs"`
	AvgReadingMin int     `json:"avgReadingMin"`
	AvgHearingHrs float64 `json:"avgHearingHrs"`
	AvgServiceHrs float64 `json:"avgServiceHrs"`
}

type RankingRow struct {
	User           domain.UserSummary  `json:"user"`
	TotalScore     float64             `json:"totalScore"`
	Entries        []domain.DailyEntry `json:"entries"`
	DaysSubmitted  int                 `json:"daysSubmitted"`
	TotalDays      int                 `json:"totalDays,omitempty"`
	AvgScorePerDay int                 `json:"avgScorePerDay"`
	AvgStats       *AvgStats           `json:"avgStats"`
}

// BuildRankings groups entries by devotee and reduces them to one ranked row
// per roster member. Every devotee in the roster appears, even with zero
// entries (score 0, no averages) — the report is about the whole roster, not
// just submitters. Rows are sorted descending by total score; ties keep the
// roster order (stable sort, no secondary key). The winner is the top row if
// and only if its score is positive.
//
// totalDays, when non-zero, is echoed on each row (monthly reports).
func BuildRankings(roster []domain.User, entries []domain.DailyEntry, totalDays int) (rankings []RankingRow, winner *RankingRow) {
	byUser := make(map[uint][]domain.DailyEntry, len(roster))
	for _, e := range entries {
		byUser[e.UserID] = append(byUser[e.UserID], e)
	}

	rankings = make([]RankingRow, 0, len(roster))
	for _, devotee := range roster {
		own := byUser[devotee.ID]
		if own == nil {
			own = []domain.DailyEntry{}
		}

		row := RankingRow{
			User:          devotee.Summary(),
			Entries:       own,
			DaysSubmitted: len(own),
			TotalDays:     totalDays,
		}
		for _, e := range own {
			row.TotalScore += e.TotalScore
		}
		if row.DaysSubmitted > 0 {
			row.AvgScorePerDay = int(math.Round(row.TotalScore / float64(row.DaysSubmitted)))
			row.AvgStats = averageStats(own)
		}

		rankings = append(rankings, row)
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].TotalScore > rankings[j].TotalScore
	})

	if len(rankings) > 0 && rankings[0].TotalScore > 0 {
		winner = &rankings[0]
	}

	return rankings, winner
}

// averageStats computes per-day means over a devotee's entries. Entries
// without a computable sleep duration are left out of the sleep sum, but the
// divisor stays the submitted-day count; that asymmetry matches the figures
// the dashboard has always displayed.
func averageStats(entries []domain.DailyEntry) *AvgStats {
	days := float64(len(entries))

	var sleepSum, readingSum, hearingSum, serviceSum float64
	for _, e := range entries {
		if hrs, ok := scoring.SleepHours(e.WakeUpTime, e.SleepTime); ok {
			sleepSum += hrs
		}
		readingSum += e.ReadingDuration
		hearingSum += e.HearingDuration
		serviceSum += e.ServiceDuration
	}

	return &AvgStats{
		AvgSleepHrs:   scoring.RoundTenth(sleepSum / days),
		AvgReadingMin: int(math.Round(readingSum / days)),
		AvgHearingHrs: scoring.RoundTenth(hearingSum / days),
		AvgServiceHrs: scoring.RoundTenth(serviceSum / days),
	}
}
