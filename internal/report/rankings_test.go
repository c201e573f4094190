package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harismriti/sadhna-api/internal/domain"
)

func devotee(id uint, name string) domain.User {
	return domain.User{ID: id, Name: name, Role: domain.RoleDevotee, IsActive: true}
}

func entryFor(userID uint, day time.Time, score float64) domain.DailyEntry {
	return domain.DailyEntry{
		UserID:     userID,
		Date:       day,
		WakeUpTime: "05:00",
		SleepTime:  "22:00",
		TotalScore: score,
	}
}

func TestBuildRankingsIncludesWholeRoster(t *testing.T) {
	roster := []domain.User{devotee(1, "D1"), devotee(2, "D2")}
	monday := date(2026, time.August, 24)
	entries := []domain.DailyEntry{
		entryFor(1, monday, 100),
		entryFor(1, monday.AddDate(0, 0, 1), 100),
		entryFor(1, monday.AddDate(0, 0, 2), 100),
	}

	rankings, winner := BuildRankings(roster, entries, 0)

	require.Len(t, rankings, 2)

	assert.Equal(t, uint(1), rankings[0].User.ID)
	assert.Equal(t, float64(300), rankings[0].TotalScore)
	assert.Equal(t, 3, rankings[0].DaysSubmitted)
	assert.Equal(t, 100, rankings[0].AvgScorePerDay)
	assert.NotNil(t, rankings[0].AvgStats)

	assert.Equal(t, uint(2), rankings[1].User.ID)
	assert.Zero(t, rankings[1].TotalScore)
	assert.Zero(t, rankings[1].DaysSubmitted)
	assert.Zero(t, rankings[1].AvgScorePerDay)
	assert.Nil(t, rankings[1].AvgStats)
	assert.NotNil(t, rankings[1].Entries, "zero-entry devotees still carry an empty entries list")

	require.NotNil(t, winner)
	assert.Equal(t, uint(1), winner.User.ID)
}

func TestBuildRankingsSuppressesWinnerAtZero(t *testing.T) {
	roster := []domain.User{devotee(1, "D1"), devotee(2, "D2")}

	rankings, winner := BuildRankings(roster, nil, 0)

	assert.Len(t, rankings, 2)
	assert.Nil(t, winner, "no winner when every score is zero, even with a non-empty roster")
}

func TestBuildRankingsTiesKeepRosterOrder(t *testing.T) {
	roster := []domain.User{devotee(3, "late"), devotee(1, "first"), devotee(2, "second")}
	day := date(2026, time.August, 24)
	entries := []domain.DailyEntry{
		entryFor(1, day, 120),
		entryFor(2, day, 120),
		entryFor(3, day, 80),
	}

	rankings, winner := BuildRankings(roster, entries, 0)

	require.Len(t, rankings, 3)
	assert.Equal(t, uint(1), rankings[0].User.ID)
	assert.Equal(t, uint(2), rankings[1].User.ID)
	assert.Equal(t, uint(3), rankings[2].User.ID)

	require.NotNil(t, winner)
	assert.Equal(t, uint(1), winner.User.ID)
}

func TestBuildRankingsAverageStats(t *testing.T) {
	roster := []domain.User{devotee(1, "D1")}
	day := date(2026, time.August, 24)
	entries := []domain.DailyEntry{
		{
			UserID:          1,
			Date:            day,
			WakeUpTime:      "05:00",
			SleepTime:       "22:00", // 7.0h sleep
			ReadingDuration: 30,
			HearingDuration: 1,
			ServiceDuration: 2,
			TotalScore:      100,
		},
		{
			UserID:          1,
			Date:            day.AddDate(0, 0, 1),
			WakeUpTime:      "06:00",
			SleepTime:       "22:00", // 8.0h sleep
			ReadingDuration: 45,
			HearingDuration: 2,
			ServiceDuration: 1,
			TotalScore:      150,
		},
	}

	rankings, _ := BuildRankings(roster, entries, 0)

	require.Len(t, rankings, 1)
	stats := rankings[0].AvgStats
	require.NotNil(t, stats)

	assert.Equal(t, 7.5, stats.AvgSleepHrs)
	assert.Equal(t, 38, stats.AvgReadingMin) // round(75 / 2)
	assert.Equal(t, 1.5, stats.AvgHearingHrs)
	assert.Equal(t, 1.5, stats.AvgServiceHrs)
	assert.Equal(t, 125, rankings[0].AvgScorePerDay)
}

func TestBuildRankingsSleepAverageDividesBySubmittedDays(t *testing.T) {
	// One of the two entries has no computable sleep duration. Its hours are
	// left out of the sum, but the divisor stays 2; the average deflates to
	// 3.5 instead of 7.0. This mirrors what the dashboard has always shown.
	roster := []domain.User{devotee(1, "D1")}
	day := date(2026, time.August, 24)
	entries := []domain.DailyEntry{
		{UserID: 1, Date: day, WakeUpTime: "05:00", SleepTime: "22:00", TotalScore: 10},
		{UserID: 1, Date: day.AddDate(0, 0, 1), WakeUpTime: "05:00", SleepTime: "", TotalScore: 10},
	}

	rankings, _ := BuildRankings(roster, entries, 0)

	require.Len(t, rankings, 1)
	require.NotNil(t, rankings[0].AvgStats)
	assert.Equal(t, 3.5, rankings[0].AvgStats.AvgSleepHrs)
}

func TestBuildRankingsEchoesTotalDays(t *testing.T) {
	roster := []domain.User{devotee(1, "D1")}

	rankings, _ := BuildRankings(roster, nil, 31)

	require.Len(t, rankings, 1)
	assert.Equal(t, 31, rankings[0].TotalDays)
}

func TestBuildRankingsEmptyRoster(t *testing.T) {
	rankings, winner := BuildRankings(nil, nil, 0)

	assert.Empty(t, rankings)
	assert.Nil(t, winner)
}
