package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harismriti/sadhna-api/internal/domain"
	"github.com/harismriti/sadhna-api/internal/report"
	"github.com/harismriti/sadhna-api/internal/repository"
	"github.com/harismriti/sadhna-api/internal/scoring"
)

var (
	ErrEntryNotFound    = repository.ErrEntryNotFound
	ErrNotEntryOwner    = errors.New("not authorized to delete this entry")
	ErrNotYourDevotee   = errors.New("not authorized to view this devotee")
	ErrNoMentorAssigned = errors.New("no mentor assigned to this devotee")
)

const (
	defaultEntryLimit = 100
	historyLimit      = 365
)

type SadhnaEntryRepository interface {
	Create(ctx context.Context, entry domain.DailyEntry) (domain.DailyEntry, error)
	Update(ctx context.Context, entry domain.DailyEntry) (domain.DailyEntry, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (domain.DailyEntry, error)
	FindByIDForUser(ctx context.Context, id, userID uint) (domain.DailyEntry, error)
	FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (domain.DailyEntry, error)
	FindByUser(ctx context.Context, userID uint, start, end time.Time, limit int) ([]domain.DailyEntry, error)
	FindByUsers(ctx context.Context, userIDs []uint, date time.Time) ([]domain.DailyEntry, error)
}

type SadhnaUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindDevoteesByMentorID(ctx context.Context, mentorID uint, activeOnly bool) ([]domain.User, error)
	FindPeers(ctx context.Context, mentorIDs []uint) ([]domain.User, error)
}

type SadhnaService struct {
	entries SadhnaEntryRepository
	users   SadhnaUserRepository
}

func NewSadhnaService(entries SadhnaEntryRepository, users SadhnaUserRepository) *SadhnaService {
	return &SadhnaService{
		entries: entries,
		users:   users,
	}
}

// UpsertEntry creates or overwrites the caller's entry for one day. An
// explicit entryID (owner-scoped) wins over the (owner, date) match, and a
// row selected by id keeps its stored date. The
// score is recomputed here on every path — a client-supplied score is never
// trusted. created reports whether a new row was written.
func (s *SadhnaService) UpsertEntry(ctx context.Context, userID, entryID uint, input domain.DailyEntry) (entry domain.DailyEntry, created bool, err error) {
	input.UserID = userID
	input.Date = report.Day(input.Date)
	input.TotalScore = scoring.TotalScore(input)

	existing, matchedByID, err := s.findExisting(ctx, userID, entryID, input.Date)
	if err != nil {
		return domain.DailyEntry{}, false, err
	}

	if existing != nil {
		input.ID = existing.ID
		input.CreatedAt = existing.CreatedAt
		if matchedByID {
			// The id picked the row; the stored date stays, so the edit can
			// never collide with another of the caller's days.
			input.Date = existing.Date
		}
		updated, err := s.entries.Update(ctx, input)
		if err != nil {
			return domain.DailyEntry{}, false, fmt.Errorf("s.entries.Update -> %w", err)
		}
		return updated, false, nil
	}

	inserted, err := s.entries.Create(ctx, input)
	if err != nil {
		if errors.Is(err, repository.ErrEntryExists) {
			// Lost a create race for the same (owner, date); redo as update.
			return s.retryAsUpdate(ctx, userID, input)
		}
		return domain.DailyEntry{}, false, fmt.Errorf("s.entries.Create -> %w", err)
	}

	return inserted, true, nil
}

func (s *SadhnaService) findExisting(ctx context.Context, userID, entryID uint, date time.Time) (existing *domain.DailyEntry, matchedByID bool, err error) {
	if entryID != 0 {
		found, err := s.entries.FindByIDForUser(ctx, entryID, userID)
		if err == nil {
			return &found, true, nil
		}
		if !errors.Is(err, repository.ErrEntryNotFound) {
			return nil, false, fmt.Errorf("s.entries.FindByIDForUser -> %w", err)
		}
	}

	found, err := s.entries.FindByUserAndDate(ctx, userID, date)
	if err == nil {
		return &found, false, nil
	}
	if !errors.Is(err, repository.ErrEntryNotFound) {
		return nil, false, fmt.Errorf("s.entries.FindByUserAndDate -> %w", err)
	}

	return nil, false, nil
}

func (s *SadhnaService) retryAsUpdate(ctx context.Context, userID uint, input domain.DailyEntry) (domain.DailyEntry, bool, error) {
	found, err := s.entries.FindByUserAndDate(ctx, userID, input.Date)
	if err != nil {
		return domain.DailyEntry{}, false, fmt.Errorf("s.entries.FindByUserAndDate -> %w", err)
	}

	input.ID = found.ID
	input.CreatedAt = found.CreatedAt
	updated, err := s.entries.Update(ctx, input)
	if err != nil {
		return domain.DailyEntry{}, false, fmt.Errorf("s.entries.Update -> %w", err)
	}

	return updated, false, nil
}

// MyEntries lists the caller's own entries, newest first. A zero start/end
// pair means no date filter; limit 0 falls back to the default.
func (s *SadhnaService) MyEntries(ctx context.Context, userID uint, start, end time.Time, limit int) ([]domain.DailyEntry, error) {
	if limit <= 0 {
		limit = defaultEntryLimit
	}
	if !start.IsZero() {
		start = report.Day(start)
	}
	if !end.IsZero() {
		end = report.Day(end)
	}

	entries, err := s.entries.FindByUser(ctx, userID, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("s.entries.FindByUser -> %w", err)
	}

	return entries, nil
}

// DeleteEntry removes an entry, owners only.
func (s *SadhnaService) DeleteEntry(ctx context.Context, userID, entryID uint) error {
	entry, err := s.entries.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("s.entries.FindByID -> %w", err)
	}

	if entry.UserID != userID {
		return ErrNotEntryOwner
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("s.entries.Delete -> %w", err)
	}

	return nil
}

// DevoteesEntries lists entries of every devotee under the mentor, owners
// attached, optionally narrowed to one day.
func (s *SadhnaService) DevoteesEntries(ctx context.Context, mentorID uint, date time.Time) ([]domain.DailyEntry, error) {
	devotees, err := s.users.FindDevoteesByMentorID(ctx, mentorID, false)
	if err != nil {
		return nil, fmt.Errorf("s.users.FindDevoteesByMentorID -> %w", err)
	}

	if !date.IsZero() {
		date = report.Day(date)
	}

	entries, err := s.entries.FindByUsers(ctx, userIDs(devotees), date)
	if err != nil {
		return nil, fmt.Errorf("s.entries.FindByUsers -> %w", err)
	}

	return entries, nil
}

// DevoteeHistory returns a devotee's record for a mentor who supervises them.
func (s *SadhnaService) DevoteeHistory(ctx context.Context, mentorID, devoteeID uint) (domain.User, []domain.DailyEntry, error) {
	devotee, err := s.users.FindByID(ctx, devoteeID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, nil, ErrNotYourDevotee
		}
		return domain.User{}, nil, fmt.Errorf("s.users.FindByID -> %w", err)
	}
	if !devotee.HasMentor(mentorID) {
		return domain.User{}, nil, ErrNotYourDevotee
	}

	entries, err := s.entries.FindByUser(ctx, devoteeID, time.Time{}, time.Time{}, historyLimit)
	if err != nil {
		return domain.User{}, nil, fmt.Errorf("s.entries.FindByUser -> %w", err)
	}

	return devotee, entries, nil
}

// PeerDevotees lists the caller's peer group: active devotees sharing at
// least one mentor, the caller included.
func (s *SadhnaService) PeerDevotees(ctx context.Context, requester domain.User) ([]domain.User, error) {
	if len(requester.MentorIDs) == 0 {
		return nil, ErrNoMentorAssigned
	}

	peers, err := s.users.FindPeers(ctx, requester.MentorIDs)
	if err != nil {
		return nil, fmt.Errorf("s.users.FindPeers -> %w", err)
	}

	return peers, nil
}

// PeerEntries lists entries across the caller's peer group, optionally for
// one day.
func (s *SadhnaService) PeerEntries(ctx context.Context, requester domain.User, date time.Time) ([]domain.DailyEntry, error) {
	peers, err := s.PeerDevotees(ctx, requester)
	if err != nil {
		return nil, err
	}

	if !date.IsZero() {
		date = report.Day(date)
	}

	entries, err := s.entries.FindByUsers(ctx, userIDs(peers), date)
	if err != nil {
		return nil, fmt.Errorf("s.entries.FindByUsers -> %w", err)
	}

	return entries, nil
}

// PeerHistory returns a peer devotee's record, provided the target shares a
// mentor with the caller.
func (s *SadhnaService) PeerHistory(ctx context.Context, requester domain.User, peerID uint) (domain.User, []domain.DailyEntry, error) {
	if len(requester.MentorIDs) == 0 {
		return domain.User{}, nil, ErrNoMentorAssigned
	}

	peer, err := s.users.FindByID(ctx, peerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, nil, ErrNotYourDevotee
		}
		return domain.User{}, nil, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	if !sharesAnyMentor(requester.MentorIDs, peer.MentorIDs) {
		return domain.User{}, nil, ErrNotYourDevotee
	}

	entries, err := s.entries.FindByUser(ctx, peerID, time.Time{}, time.Time{}, historyLimit)
	if err != nil {
		return domain.User{}, nil, fmt.Errorf("s.entries.FindByUser -> %w", err)
	}

	return peer, entries, nil
}

func userIDs(users []domain.User) []uint {
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func sharesAnyMentor(a, b []uint) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
