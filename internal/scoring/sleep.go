package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTime reports whether value is a 24h "HH:MM" clock time.
func IsValidTime(value string) bool {
	return timePattern.MatchString(value)
}

// SleepHours computes the sleep duration in hours between a sleep time and a
// wake-up time, both "HH:MM". A negative raw difference means the person
// slept before midnight and woke after, so a full day is added back. The
// result is rounded to one decimal place.
//
// ok is false when either time is missing or malformed; callers must treat
// that as "cannot compute", not as zero.
func SleepHours(wakeUpTime, sleepTime string) (hours float64, ok bool) {
	wakeMin, ok := minutesOf(wakeUpTime)
	if !ok {
		return 0, false
	}
	sleepMin, ok := minutesOf(sleepTime)
	if !ok {
		return 0, false
	}

	diff := wakeMin - sleepMin
	if diff < 0 {
		diff += 24 * 60 // crossed midnight
	}

	return RoundTenth(float64(diff) / 60), true
}

// RoundTenth rounds to one decimal place, half away from zero.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func minutesOf(value string) (int, bool) {
	if !timePattern.MatchString(value) {
		return 0, false
	}

	parts := strings.SplitN(value, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])

	return h*60 + m, true
}
