package response

import "github.com/harismriti/sadhna-api/internal/domain"

type AuthResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	MentorIDs   []uint `json:"mentorId"`
	DevoteeType string `json:"devoteeType,omitempty"`
	Token       string `json:"token,omitempty"`
}

func NewAuthResponse(user domain.User, token string) AuthResponse {
	mentorIDs := user.MentorIDs
	if mentorIDs == nil {
		mentorIDs = []uint{}
	}

	return AuthResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		Role:        user.Role,
		MentorIDs:   mentorIDs,
		DevoteeType: user.DevoteeType,
		Token:       token,
	}
}
