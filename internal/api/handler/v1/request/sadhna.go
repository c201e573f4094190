package request

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/harismriti/sadhna-api/internal/domain"
)

var (
	timeRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

	errInvalidBookName = errors.New("invalid book name")
	errInvalidDate     = errors.New("please enter a valid date")
)

// UpsertEntryRequest creates or overwrites one day's entry. ID, when set,
// selects the entry to overwrite (owner-scoped); otherwise the (owner, date)
// pair does. There is intentionally no totalScore field: the score is
// always computed server-side.
type UpsertEntryRequest struct {
	ID              uint    `json:"id"`
	Date            string  `json:"date"`
	WakeUpTime      string  `json:"wakeUpTime"`
	SleepTime       string  `json:"sleepTime"`
	RoundsChanted   int     `json:"roundsChanted"`
	BookName        string  `json:"bookName"`
	ReadingDuration float64 `json:"readingDuration"`
	ServiceDuration float64 `json:"serviceDuration"`
	ServiceType     string  `json:"serviceType"`
	HearingDuration float64 `json:"hearingDuration"`
	StudyDuration   float64 `json:"studyDuration"`
	StudyTopic      string  `json:"studyTopic"`
}

func (req *UpsertEntryRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.WakeUpTime, validation.Required, validation.Match(timeRegex)),
		validation.Field(&req.SleepTime, validation.Required, validation.Match(timeRegex)),
		validation.Field(&req.RoundsChanted, validation.Min(0)),
		validation.Field(&req.BookName, validation.Required),
		validation.Field(&req.ReadingDuration, validation.Min(0.0), validation.Max(1440.0)),
		validation.Field(&req.ServiceDuration, validation.Min(0.0), validation.Max(24.0)),
		validation.Field(&req.ServiceType, validation.Length(0, 100)),
		validation.Field(&req.HearingDuration, validation.Min(0.0), validation.Max(24.0)),
		validation.Field(&req.StudyDuration, validation.Min(0.0), validation.Max(24.0)),
		validation.Field(&req.StudyTopic, validation.Length(0, 200)),
	)
	if err != nil {
		return err
	}

	if !domain.IsValidBookName(req.BookName) {
		return errInvalidBookName
	}

	if _, err := req.ParsedDate(); err != nil {
		return errInvalidDate
	}

	return nil
}

// ParsedDate accepts both plain "2006-01-02" dates and full RFC 3339
// timestamps, which is what the dashboard sends.
func (req *UpsertEntryRequest) ParsedDate() (time.Time, error) {
	if t, err := time.Parse("2006-01-02", req.Date); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, req.Date)
}

// ToDomain maps the request onto a domain entry; date must already be
// validated.
func (req *UpsertEntryRequest) ToDomain() domain.DailyEntry {
	date, _ := req.ParsedDate()

	return domain.DailyEntry{
		Date:            date,
		WakeUpTime:      req.WakeUpTime,
		SleepTime:       req.SleepTime,
		RoundsChanted:   req.RoundsChanted,
		BookName:        req.BookName,
		ReadingDuration: req.ReadingDuration,
		ServiceDuration: req.ServiceDuration,
		ServiceType:     req.ServiceType,
		HearingDuration: req.HearingDuration,
		StudyDuration:   req.StudyDuration,
		StudyTopic:      req.StudyTopic,
	}
}
