package repository

import (
	"context"
	"fmt"

	"github.com/harismriti/sadhna-api/internal/domain"
	"github.com/harismriti/sadhna-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	Update(ctx context.Context, user dao.User) (dao.User, error)
	ReplaceMentors(ctx context.Context, user dao.User, mentors []*dao.User) error
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindMentorsByIDs(ctx context.Context, ids []uint) ([]dao.User, error)
	FindActiveMentors(ctx context.Context) ([]dao.User, error)
	FindDevoteesByMentorID(ctx context.Context, mentorID uint, activeOnly bool) ([]dao.User, error)
	FindPeers(ctx context.Context, mentorIDs []uint) ([]dao.User, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	daoUser := dao.User{
		Name:        user.Name,
		Email:       user.Email,
		Password:    user.Password,
		Phone:       user.Phone,
		Role:        user.Role,
		DevoteeType: user.DevoteeType,
		IsActive:    true,
	}
	for _, mentorID := range user.MentorIDs {
		daoUser.Mentors = append(daoUser.Mentors, &dao.User{ID: mentorID})
	}

	created, err := r.dao.Insert(ctx, daoUser)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

// UpdateProfile persists the mutable profile fields. Role and email never
// change after creation. A non-nil mentorIDs replaces the mentor set.
func (r *UserRepository) UpdateProfile(ctx context.Context, user domain.User, mentorIDs []uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, user.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	found.Name = user.Name
	found.Phone = user.Phone
	found.DevoteeType = user.DevoteeType
	// Drop the preloaded association so Save touches columns only; the
	// mentor set is replaced separately below.
	found.Mentors = nil

	updated, err := r.dao.Update(ctx, found)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	if mentorIDs != nil {
		mentors := make([]*dao.User, 0, len(mentorIDs))
		for _, id := range mentorIDs {
			mentors = append(mentors, &dao.User{ID: id})
		}
		if err = r.dao.ReplaceMentors(ctx, updated, mentors); err != nil {
			return domain.User{}, fmt.Errorf("r.dao.ReplaceMentors -> %w", err)
		}
	}

	// Re-read so the mentor association reflects the replacement.
	fresh, err := r.dao.FindByID(ctx, updated.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(fresh), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// CountMentors returns how many of the given ids are existing mentor users.
func (r *UserRepository) CountMentors(ctx context.Context, ids []uint) (int, error) {
	mentors, err := r.dao.FindMentorsByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("r.dao.FindMentorsByIDs -> %w", err)
	}

	return len(mentors), nil
}

func (r *UserRepository) FindActiveMentors(ctx context.Context) ([]domain.User, error) {
	mentors, err := r.dao.FindActiveMentors(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActiveMentors -> %w", err)
	}

	return r.daoSliceToDomain(mentors), nil
}

func (r *UserRepository) FindDevoteesByMentorID(ctx context.Context, mentorID uint, activeOnly bool) ([]domain.User, error) {
	devotees, err := r.dao.FindDevoteesByMentorID(ctx, mentorID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindDevoteesByMentorID -> %w", err)
	}

	return r.daoSliceToDomain(devotees), nil
}

func (r *UserRepository) FindPeers(ctx context.Context, mentorIDs []uint) ([]domain.User, error) {
	peers, err := r.dao.FindPeers(ctx, mentorIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPeers -> %w", err)
	}

	return r.daoSliceToDomain(peers), nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	mentorIDs := make([]uint, 0, len(u.Mentors))
	for _, m := range u.Mentors {
		mentorIDs = append(mentorIDs, m.ID)
	}

	return domain.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Password:    u.Password,
		Phone:       u.Phone,
		Role:        u.Role,
		MentorIDs:   mentorIDs,
		DevoteeType: u.DevoteeType,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (r *UserRepository) daoSliceToDomain(users []dao.User) []domain.User {
	converted := make([]domain.User, 0, len(users))
	for _, u := range users {
		converted = append(converted, r.daoToDomain(u))
	}
	return converted
}
