package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/harismriti/sadhna-api/internal/domain"
	"github.com/harismriti/sadhna-api/internal/repository/dao"
)

var (
	ErrEntryExists   = dao.ErrEntryExists
	ErrEntryNotFound = dao.ErrEntryNotFound
)

type EntryDAO interface {
	Insert(ctx context.Context, entry dao.SadhnaEntry) (dao.SadhnaEntry, error)
	Update(ctx context.Context, entry dao.SadhnaEntry) (dao.SadhnaEntry, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (dao.SadhnaEntry, error)
	FindByIDForUser(ctx context.Context, id, userID uint) (dao.SadhnaEntry, error)
	FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (dao.SadhnaEntry, error)
	FindByUser(ctx context.Context, userID uint, start, end time.Time, limit int) ([]dao.SadhnaEntry, error)
	FindByUsers(ctx context.Context, userIDs []uint, date time.Time) ([]dao.SadhnaEntry, error)
	FindByUsersInRange(ctx context.Context, userIDs []uint, start, end time.Time) ([]dao.SadhnaEntry, error)
}

type EntryRepository struct {
	dao EntryDAO
}

func NewEntryRepository(dao EntryDAO) *EntryRepository {
	return &EntryRepository{
		dao: dao,
	}
}

func (r *EntryRepository) Create(ctx context.Context, entry domain.DailyEntry) (domain.DailyEntry, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(entry))
	if err != nil {
		return domain.DailyEntry{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EntryRepository) Update(ctx context.Context, entry domain.DailyEntry) (domain.DailyEntry, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(entry))
	if err != nil {
		return domain.DailyEntry{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EntryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id uint) (domain.DailyEntry, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.DailyEntry{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EntryRepository) FindByIDForUser(ctx context.Context, id, userID uint) (domain.DailyEntry, error) {
	found, err := r.dao.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return domain.DailyEntry{}, fmt.Errorf("r.dao.FindByIDForUser -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EntryRepository) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (domain.DailyEntry, error) {
	found, err := r.dao.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return domain.DailyEntry{}, fmt.Errorf("r.dao.FindByUserAndDate -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EntryRepository) FindByUser(ctx context.Context, userID uint, start, end time.Time, limit int) ([]domain.DailyEntry, error) {
	entries, err := r.dao.FindByUser(ctx, userID, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUser -> %w", err)
	}

	return r.daoSliceToDomain(entries), nil
}

func (r *EntryRepository) FindByUsers(ctx context.Context, userIDs []uint, date time.Time) ([]domain.DailyEntry, error) {
	entries, err := r.dao.FindByUsers(ctx, userIDs, date)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUsers -> %w", err)
	}

	return r.daoSliceToDomain(entries), nil
}

func (r *EntryRepository) FindByUsersInRange(ctx context.Context, userIDs []uint, start, end time.Time) ([]domain.DailyEntry, error) {
	entries, err := r.dao.FindByUsersInRange(ctx, userIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUsersInRange -> %w", err)
	}

	return r.daoSliceToDomain(entries), nil
}

func (r *EntryRepository) domainToDAO(e domain.DailyEntry) dao.SadhnaEntry {
	return dao.SadhnaEntry{
		ID:              e.ID,
		UserID:          e.UserID,
		Date:            e.Date,
		WakeUpTime:      e.WakeUpTime,
		SleepTime:       e.SleepTime,
		RoundsChanted:   e.RoundsChanted,
		BookName:        e.BookName,
		ReadingDuration: e.ReadingDuration,
		ServiceDuration: e.ServiceDuration,
		ServiceType:     e.ServiceType,
		HearingDuration: e.HearingDuration,
		StudyDuration:   e.StudyDuration,
		StudyTopic:      e.StudyTopic,
		TotalScore:      e.TotalScore,
		CreatedAt:       e.CreatedAt,
	}
}

func (r *EntryRepository) daoToDomain(e dao.SadhnaEntry) domain.DailyEntry {
	entry := domain.DailyEntry{
		ID:              e.ID,
		UserID:          e.UserID,
		Date:            e.Date,
		WakeUpTime:      e.WakeUpTime,
		SleepTime:       e.SleepTime,
		RoundsChanted:   e.RoundsChanted,
		BookName:        e.BookName,
		ReadingDuration: e.ReadingDuration,
		ServiceDuration: e.ServiceDuration,
		ServiceType:     e.ServiceType,
		HearingDuration: e.HearingDuration,
		StudyDuration:   e.StudyDuration,
		StudyTopic:      e.StudyTopic,
		TotalScore:      e.TotalScore,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.User.ID != 0 {
		summary := e.User
		entry.Owner = &domain.UserSummary{
			ID:    summary.ID,
			Name:  summary.Name,
			Email: summary.Email,
			Phone: summary.Phone,
		}
	}

	return entry
}

func (r *EntryRepository) daoSliceToDomain(entries []dao.SadhnaEntry) []domain.DailyEntry {
	converted := make([]domain.DailyEntry, 0, len(entries))
	for _, e := range entries {
		converted = append(converted, r.daoToDomain(e))
	}
	return converted
}
