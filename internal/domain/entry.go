package domain

import "time"

// DailyEntry is one devotee's practice record for one calendar day.
// Date is day-bucketed (midnight); TotalScore is always computed server-side.
type DailyEntry struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"userId"`
	Date            time.Time `json:"date"`
	WakeUpTime      string    `json:"wakeUpTime"`
	SleepTime       string    `json:"sleepTime"`
	RoundsChanted   int       `json:"roundsChanted"`
	BookName        string    `json:"bookName"`
	ReadingDuration float64   `json:"readingDuration"`
	ServiceDuration float64   `json:"serviceDuration"`
	ServiceType     string    `json:"serviceType"`
	HearingDuration float64   `json:"hearingDuration"`
	StudyDuration   float64   `json:"studyDuration"`
	StudyTopic      string    `json:"studyTopic"`
	TotalScore      float64   `json:"totalScore"`

	// Owner is populated on mentor and peer views, where entries of several
	// devotees are listed together.
	Owner *UserSummary `json:"owner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
