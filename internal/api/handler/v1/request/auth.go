package request

import (
	"errors"
	"regexp"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/harismriti/sadhna-api/internal/domain"
)

// passwordRegexPattern needs lookaheads, which the stdlib engine rejects.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{6,}$`

var (
	phoneRegex  = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword      = errors.New("the password must be at least 6 characters and contain a letter and a number")
	errMentorsOnDevoteeOnly = errors.New("mentor list is only valid for devotees")
)

type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	MentorIDs   []uint `json:"mentorId"`
	DevoteeType string `json:"devoteeType"`
}

func (req *RegisterRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Phone, validation.Required, validation.Match(phoneRegex)),
		validation.Field(&req.Role, validation.Required, validation.In(domain.RoleMentor, domain.RoleDevotee)),
		validation.Field(&req.DevoteeType, validation.In(domain.DevoteeTypeFullTimeService, domain.DevoteeTypeStudent)),
	)
	if err != nil {
		return err
	}

	if ok, _ := passwordExp.MatchString(req.Password); !ok {
		return errInvalidPassword
	}

	if req.Role == domain.RoleMentor && (len(req.MentorIDs) > 0 || req.DevoteeType != "") {
		return errMentorsOnDevoteeOnly
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

// UpdateProfileRequest mutates only the mutable profile fields; role and
// email have no endpoint that changes them. Nil pointers leave a field as
// is; a non-nil MentorIDs replaces the devotee's mentor set wholesale.
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	DevoteeType *string `json:"devoteeType"`
	MentorIDs   []uint  `json:"mentorIds"`
}

func (req *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Phone, validation.NilOrNotEmpty, validation.Match(phoneRegex)),
		validation.Field(&req.DevoteeType, validation.In(domain.DevoteeTypeFullTimeService, domain.DevoteeTypeStudent)),
	)
}
