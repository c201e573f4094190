package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Phone    string `gorm:"not null"`

	Role        string `gorm:"not null;index"` // "mentor" or "devotee"
	DevoteeType string // set for devotees only
	IsActive    bool   `gorm:"not null;default:true"`

	// Devotee side of the devotee↔mentor many-to-many.
	Mentors []*User `gorm:"many2many:user_mentors;joinForeignKey:devotee_id;joinReferences:mentor_id"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

// isUniqueViolation matches unique-constraint failures from postgres and
// from the embedded sqlite database the tests run against.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Save(&user)
	if result.Error != nil {
		return User{}, result.Error
	}

	return user, nil
}

// ReplaceMentors swaps the devotee's mentor set wholesale.
func (d *UserDAO) ReplaceMentors(ctx context.Context, user User, mentors []*User) error {
	return d.db.WithContext(ctx).Model(&user).Association("Mentors").Replace(mentors)
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).Preload("Mentors").First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).Preload("Mentors").First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// FindMentorsByIDs returns the subset of ids that are actual mentor users.
func (d *UserDAO) FindMentorsByIDs(ctx context.Context, ids []uint) ([]User, error) {
	var mentors []User

	result := d.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("role = ?", "mentor").
		Find(&mentors)
	if result.Error != nil {
		return nil, result.Error
	}

	return mentors, nil
}

func (d *UserDAO) FindActiveMentors(ctx context.Context) ([]User, error) {
	var mentors []User

	result := d.db.WithContext(ctx).
		Where("role = ?", "mentor").
		Where("is_active = ?", true).
		Order("name").
		Find(&mentors)
	if result.Error != nil {
		return nil, result.Error
	}

	return mentors, nil
}

// FindDevoteesByMentorID lists devotees assigned to the given mentor.
func (d *UserDAO) FindDevoteesByMentorID(ctx context.Context, mentorID uint, activeOnly bool) ([]User, error) {
	var devotees []User

	query := d.db.WithContext(ctx).
		Joins("JOIN user_mentors ON user_mentors.devotee_id = users.id").
		Where("user_mentors.mentor_id = ?", mentorID)
	if activeOnly {
		query = query.Where("users.is_active = ?", true)
	}

	result := query.Find(&devotees)
	if result.Error != nil {
		return nil, result.Error
	}

	return devotees, nil
}

// FindPeers lists active devotees sharing at least one of the given mentors,
// the requesting devotee included.
func (d *UserDAO) FindPeers(ctx context.Context, mentorIDs []uint) ([]User, error) {
	var peers []User

	result := d.db.WithContext(ctx).
		Distinct("users.*").
		Joins("JOIN user_mentors ON user_mentors.devotee_id = users.id").
		Where("user_mentors.mentor_id IN ?", mentorIDs).
		Where("users.is_active = ?", true).
		Find(&peers)
	if result.Error != nil {
		return nil, result.Error
	}

	return peers, nil
}
