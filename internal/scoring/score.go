// Package scoring holds the pure scoring rules for daily practice entries.
package scoring

import "github.com/harismriti/sadhna-api/internal/domain"

// earlyWakeCutoff is compared lexicographically against the zero-padded
// "HH:MM" wake-up time. The cutoff is inclusive: waking at exactly 04:00
// still earns the bonus.
const (
	earlyWakeCutoff = "04:00"
	earlyWakeBonus  = 50
)

// TotalScore maps one entry's raw fields to its score. Deterministic, no
// side effects; callers must overwrite any stored score with this value on
// every create or edit and never trust a client-supplied score.
func TotalScore(e domain.DailyEntry) float64 {
	score := float64(e.RoundsChanted)*10 + // 10 points per round
		e.ReadingDuration*0.5 + // 0.5 points per minute of reading
		e.ServiceDuration*20 + // 20 points per hour of service
		e.HearingDuration*15 + // 15 points per hour of hearing
		e.StudyDuration*10 // 10 points per hour of study (students)

	if IsEarlyRiser(e.WakeUpTime) {
		score += earlyWakeBonus
	}

	return score
}

// IsEarlyRiser reports whether the wake-up time qualifies for the early
// rising bonus. The comparison is a plain string compare, which is correct
// only for zero-padded 24h "HH:MM" values.
func IsEarlyRiser(wakeUpTime string) bool {
	return wakeUpTime != "" && wakeUpTime <= earlyWakeCutoff
}
