package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEntryExists   = errors.New("entry already exists for this date")
	ErrEntryNotFound = errors.New("entry not found")
)

// SadhnaEntry carries one devotee's practice record for one calendar day.
// The (user_id, date) pair is unique: a second submission for the same day
// must update the first row, never add another.
type SadhnaEntry struct {
	ID uint `gorm:"primaryKey"`

	UserID uint      `gorm:"not null;index;uniqueIndex:idx_entries_user_date"`
	Date   time.Time `gorm:"not null;index;uniqueIndex:idx_entries_user_date"`

	WakeUpTime string `gorm:"not null"`
	SleepTime  string `gorm:"not null"`

	RoundsChanted   int     `gorm:"not null"`
	BookName        string  `gorm:"not null"`
	ReadingDuration float64 `gorm:"not null"`
	ServiceDuration float64 `gorm:"not null"`
	ServiceType     string  `gorm:"size:100"`
	HearingDuration float64 `gorm:"not null"`
	StudyDuration   float64 `gorm:"not null;default:0"`
	StudyTopic      string  `gorm:"size:200"`

	TotalScore float64 `gorm:"not null;default:0"`

	User User `gorm:"foreignKey:UserID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EntryDAO struct {
	db *gorm.DB
}

func NewEntryDAO(db *gorm.DB) *EntryDAO {
	return &EntryDAO{
		db: db,
	}
}

func (d *EntryDAO) Insert(ctx context.Context, entry SadhnaEntry) (SadhnaEntry, error) {
	result := d.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return SadhnaEntry{}, ErrEntryExists
		}

		return SadhnaEntry{}, result.Error
	}

	return entry, nil
}

func (d *EntryDAO) Update(ctx context.Context, entry SadhnaEntry) (SadhnaEntry, error) {
	result := d.db.WithContext(ctx).Save(&entry)
	if result.Error != nil {
		return SadhnaEntry{}, result.Error
	}

	return entry, nil
}

func (d *EntryDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&SadhnaEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (d *EntryDAO) FindByID(ctx context.Context, id uint) (SadhnaEntry, error) {
	var entry SadhnaEntry

	result := d.db.WithContext(ctx).First(&entry, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SadhnaEntry{}, ErrEntryNotFound
		}

		return SadhnaEntry{}, result.Error
	}

	return entry, nil
}

func (d *EntryDAO) FindByIDForUser(ctx context.Context, id, userID uint) (SadhnaEntry, error) {
	var entry SadhnaEntry

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&entry, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SadhnaEntry{}, ErrEntryNotFound
		}

		return SadhnaEntry{}, result.Error
	}

	return entry, nil
}

func (d *EntryDAO) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (SadhnaEntry, error) {
	var entry SadhnaEntry

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date = ?", date).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SadhnaEntry{}, ErrEntryNotFound
		}

		return SadhnaEntry{}, result.Error
	}

	return entry, nil
}

// FindByUser lists a user's entries date-descending, optionally bounded to
// [start, end]. A zero start/end pair means no date filter.
func (d *EntryDAO) FindByUser(ctx context.Context, userID uint, start, end time.Time, limit int) ([]SadhnaEntry, error) {
	var entries []SadhnaEntry

	query := d.db.WithContext(ctx).Where("user_id = ?", userID)
	if !start.IsZero() && !end.IsZero() {
		query = query.Where("date BETWEEN ? AND ?", start, end)
	}

	result := query.Order("date DESC").Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// FindByUsers lists entries of several users with owners preloaded, newest
// first, highest score first within a day. A zero date means all dates.
func (d *EntryDAO) FindByUsers(ctx context.Context, userIDs []uint, date time.Time) ([]SadhnaEntry, error) {
	var entries []SadhnaEntry

	if len(userIDs) == 0 {
		return entries, nil
	}

	query := d.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", userIDs)
	if !date.IsZero() {
		query = query.Where("date = ?", date)
	}

	result := query.Order("date DESC").Order("total_score DESC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// FindByUsersInRange lists entries of several users within [start, end],
// owners preloaded.
func (d *EntryDAO) FindByUsersInRange(ctx context.Context, userIDs []uint, start, end time.Time) ([]SadhnaEntry, error) {
	var entries []SadhnaEntry

	if len(userIDs) == 0 {
		return entries, nil
	}

	result := d.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", userIDs).
		Where("date BETWEEN ? AND ?", start, end).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}
