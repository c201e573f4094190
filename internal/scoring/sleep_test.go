package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSleepHours(t *testing.T) {
	tests := []struct {
		name       string
		wakeUpTime string
		sleepTime  string
		wantHours  float64
		wantOK     bool
	}{
		{
			name:       "overnight wraparound",
			wakeUpTime: "05:00",
			sleepTime:  "22:00",
			wantHours:  7.0,
			wantOK:     true,
		},
		{
			name:       "same morning, no wraparound",
			wakeUpTime: "08:00",
			sleepTime:  "06:00",
			wantHours:  2.0,
			wantOK:     true,
		},
		{
			name:       "just before midnight to early morning",
			wakeUpTime: "04:00",
			sleepTime:  "23:30",
			wantHours:  4.5,
			wantOK:     true,
		},
		{
			name:       "rounded to one decimal",
			wakeUpTime: "05:10",
			sleepTime:  "22:00",
			wantHours:  7.2, // 430 minutes = 7.1666…
			wantOK:     true,
		},
		{
			name:       "identical times collapse to zero",
			wakeUpTime: "06:00",
			sleepTime:  "06:00",
			wantHours:  0,
			wantOK:     true,
		},
		{
			name:       "missing wake time",
			wakeUpTime: "",
			sleepTime:  "22:00",
			wantOK:     false,
		},
		{
			name:       "missing sleep time",
			wakeUpTime: "05:00",
			sleepTime:  "",
			wantOK:     false,
		},
		{
			name:       "malformed wake time",
			wakeUpTime: "25:00",
			sleepTime:  "22:00",
			wantOK:     false,
		},
		{
			name:       "malformed sleep minutes",
			wakeUpTime: "05:00",
			sleepTime:  "22:75",
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, ok := SleepHours(tt.wakeUpTime, tt.sleepTime)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantHours, hours)
			}
		})
	}
}

func TestIsValidTime(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"00:00", true},
		{"4:05", true}, // hour padding is optional on input
		{"04:05", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"noon", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTime(tt.value))
		})
	}
}
