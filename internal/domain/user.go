package domain

import "time"

const (
	RoleMentor  = "mentor"
	RoleDevotee = "devotee"
)

const (
	DevoteeTypeFullTimeService = "full_time_service"
	DevoteeTypeStudent         = "student"
)

type User struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	MentorIDs   []uint    `json:"mentorId"`
	DevoteeType string    `json:"devoteeType,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserSummary is the slice of a user exposed inside reports and peer listings.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

// HasMentor reports whether the given mentor is one of the devotee's mentors.
func (u User) HasMentor(mentorID uint) bool {
	for _, id := range u.MentorIDs {
		if id == mentorID {
			return true
		}
	}
	return false
}
