package service

import (
	"context"
	"fmt"
	"time"

	"github.com/harismriti/sadhna-api/internal/domain"
	"github.com/harismriti/sadhna-api/internal/report"
)

type ReportEntryRepository interface {
	FindByUsersInRange(ctx context.Context, userIDs []uint, start, end time.Time) ([]domain.DailyEntry, error)
}

type ReportUserRepository interface {
	FindDevoteesByMentorID(ctx context.Context, mentorID uint, activeOnly bool) ([]domain.User, error)
}

// ReportService fetches a mentor's roster and entries for a period and hands
// both to the pure report builders. Period boundaries are always resolved by
// the caller; nothing here reads the clock.
type ReportService struct {
	entries ReportEntryRepository
	users   ReportUserRepository
}

func NewReportService(entries ReportEntryRepository, users ReportUserRepository) *ReportService {
	return &ReportService{
		entries: entries,
		users:   users,
	}
}

type WeeklyWinnerReport struct {
	WeekStart string              `json:"weekStart"`
	WeekEnd   string              `json:"weekEnd"`
	Rankings  []report.RankingRow `json:"rankings"`
	Winner    *report.RankingRow  `json:"winner"`
}

// WeeklyWinner ranks every devotee under the mentor over the ISO week
// containing ref. Inactive and zero-entry devotees are still ranked.
func (s *ReportService) WeeklyWinner(ctx context.Context, mentorID uint, ref time.Time) (WeeklyWinnerReport, error) {
	weekStart, weekEnd := report.WeekBounds(ref)

	roster, entries, err := s.fetch(ctx, mentorID, false, weekStart, weekEnd)
	if err != nil {
		return WeeklyWinnerReport{}, err
	}

	rankings, winner := report.BuildRankings(roster, entries, 0)

	return WeeklyWinnerReport{
		WeekStart: report.DayKey(weekStart),
		WeekEnd:   report.DayKey(weekEnd),
		Rankings:  rankings,
		Winner:    winner,
	}, nil
}

type MonthlyWinnerReport struct {
	Year      int                 `json:"year"`
	Month     int                 `json:"month"`
	TotalDays int                 `json:"totalDays"`
	Rankings  []report.RankingRow `json:"rankings"`
	Winner    *report.RankingRow  `json:"winner"`
}

func (s *ReportService) MonthlyWinner(ctx context.Context, mentorID uint, year int, month time.Month) (MonthlyWinnerReport, error) {
	monthStart, monthEnd := report.MonthBounds(year, month)
	totalDays := monthEnd.Day()

	roster, entries, err := s.fetch(ctx, mentorID, false, monthStart, monthEnd)
	if err != nil {
		return MonthlyWinnerReport{}, err
	}

	rankings, winner := report.BuildRankings(roster, entries, totalDays)

	return MonthlyWinnerReport{
		Year:      year,
		Month:     int(month),
		TotalDays: totalDays,
		Rankings:  rankings,
		Winner:    winner,
	}, nil
}

type WeeklyAttendanceReport struct {
	WeekStart  string                 `json:"weekStart"`
	WeekEnd    string                 `json:"weekEnd"`
	Days       []string               `json:"days"`
	Attendance []report.AttendanceRow `json:"attendance"`
}

// WeeklyAttendance builds the Mon–Sun submission matrix for the mentor's
// active devotees.
func (s *ReportService) WeeklyAttendance(ctx context.Context, mentorID uint, ref time.Time) (WeeklyAttendanceReport, error) {
	weekStart, weekEnd := report.WeekBounds(ref)
	days := report.WeekDays(weekStart)

	roster, entries, err := s.fetch(ctx, mentorID, true, weekStart, weekEnd)
	if err != nil {
		return WeeklyAttendanceReport{}, err
	}

	return WeeklyAttendanceReport{
		WeekStart:  report.DayKey(weekStart),
		WeekEnd:    report.DayKey(weekEnd),
		Days:       dayKeys(days),
		Attendance: report.BuildAttendance(roster, entries, days),
	}, nil
}

type MonthlyAttendanceReport struct {
	Year       int                    `json:"year"`
	Month      int                    `json:"month"`
	TotalDays  int                    `json:"totalDays"`
	Days       []string               `json:"days"`
	Attendance []report.AttendanceRow `json:"attendance"`
}

func (s *ReportService) MonthlyAttendance(ctx context.Context, mentorID uint, year int, month time.Month) (MonthlyAttendanceReport, error) {
	monthStart, monthEnd := report.MonthBounds(year, month)
	days := report.MonthDays(year, month)

	roster, entries, err := s.fetch(ctx, mentorID, true, monthStart, monthEnd)
	if err != nil {
		return MonthlyAttendanceReport{}, err
	}

	return MonthlyAttendanceReport{
		Year:       year,
		Month:      int(month),
		TotalDays:  len(days),
		Days:       dayKeys(days),
		Attendance: report.BuildAttendance(roster, entries, days),
	}, nil
}

// MissingSubmissions lists the mentor's active devotees without an entry on
// the target date.
func (s *ReportService) MissingSubmissions(ctx context.Context, mentorID uint, date time.Time) (report.MissingReport, error) {
	day := report.Day(date)

	roster, entries, err := s.fetch(ctx, mentorID, true, day, day)
	if err != nil {
		return report.MissingReport{}, err
	}

	return report.MissingSubmissions(roster, entries, day), nil
}

func (s *ReportService) fetch(ctx context.Context, mentorID uint, activeOnly bool, start, end time.Time) ([]domain.User, []domain.DailyEntry, error) {
	roster, err := s.users.FindDevoteesByMentorID(ctx, mentorID, activeOnly)
	if err != nil {
		return nil, nil, fmt.Errorf("s.users.FindDevoteesByMentorID -> %w", err)
	}

	entries, err := s.entries.FindByUsersInRange(ctx, userIDs(roster), start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("s.entries.FindByUsersInRange -> %w", err)
	}

	return roster, entries, nil
}

func dayKeys(days []time.Time) []string {
	keys := make([]string, 0, len(days))
	for _, d := range days {
		keys = append(keys, report.DayKey(d))
	}
	return keys
}
