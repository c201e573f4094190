package service

import (
	"context"
	"fmt"

	"github.com/harismriti/sadhna-api/internal/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	UpdateProfile(ctx context.Context, user domain.User, mentorIDs []uint) (domain.User, error)
	CountMentors(ctx context.Context, ids []uint) (int, error)
	FindActiveMentors(ctx context.Context) ([]domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// ProfileUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged"; MentorIDs non-nil replaces the whole mentor set.
type ProfileUpdate struct {
	Name        *string
	Phone       *string
	DevoteeType *string
	MentorIDs   []uint
}

// UpdateProfile mutates name, phone, devotee type and the mentor list of the
// owning user. Role and email stay as created. Devotee-only fields are
// ignored for mentors.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}

	var mentorIDs []uint
	if user.Role == domain.RoleDevotee {
		if update.DevoteeType != nil {
			user.DevoteeType = *update.DevoteeType
		}
		if update.MentorIDs != nil {
			mentorIDs = update.MentorIDs
			if len(mentorIDs) > 0 {
				count, err := s.repo.CountMentors(ctx, mentorIDs)
				if err != nil {
					return domain.User{}, fmt.Errorf("s.repo.CountMentors -> %w", err)
				}
				if count != len(mentorIDs) {
					return domain.User{}, ErrInvalidMentors
				}
			}
		}
	}

	updated, err := s.repo.UpdateProfile(ctx, user, mentorIDs)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.UpdateProfile -> %w", err)
	}

	return updated, nil
}

// GetMentors lists active mentors for the registration form.
func (s *UserService) GetMentors(ctx context.Context) ([]domain.User, error) {
	mentors, err := s.repo.FindActiveMentors(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActiveMentors -> %w", err)
	}

	return mentors, nil
}
