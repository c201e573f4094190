package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/harismriti/sadhna-api/internal/domain"
)

func TestRegister_Devotee(t *testing.T) {
	db := openTestDB(t)
	userRepo := newUserRepo(db)
	svc := NewAuthService(userRepo)

	mentor := seedMentor(t, userRepo, "gaura")

	created, err := svc.Register(context.Background(), domain.User{
		Name:      "Nitai Das",
		Email:     "nitai@example.com",
		Password:  "sadhna108",
		Phone:     "+919876543210",
		Role:      domain.RoleDevotee,
		MentorIDs: []uint{mentor.ID},
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, []uint{mentor.ID}, created.MentorIDs)
	assert.Equal(t, domain.DevoteeTypeFullTimeService, created.DevoteeType) // default
	assert.True(t, created.IsActive)

	// Stored password is a bcrypt hash of the submitted one.
	assert.NotEqual(t, "sadhna108", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("sadhna108")))
}

func TestRegister_MentorClearsDevoteeFields(t *testing.T) {
	db := openTestDB(t)
	userRepo := newUserRepo(db)
	svc := NewAuthService(userRepo)

	existing := seedMentor(t, userRepo, "gaura")

	created, err := svc.Register(context.Background(), domain.User{
		Name:        "Advaita Das",
		Email:       "advaita@example.com",
		Password:    "sadhna108",
		Role:        domain.RoleMentor,
		MentorIDs:   []uint{existing.ID},
		DevoteeType: domain.DevoteeTypeStudent,
	})
	require.NoError(t, err)

	assert.Empty(t, created.MentorIDs)
	assert.Empty(t, created.DevoteeType)
}

func TestRegister_RejectsInvalidMentors(t *testing.T) {
	db := openTestDB(t)
	userRepo := newUserRepo(db)
	svc := NewAuthService(userRepo)

	mentor := seedMentor(t, userRepo, "gaura")
	fellow := seedDevotee(t, userRepo, "madhava", mentor.ID)

	tests := []struct {
		name      string
		mentorIDs []uint
	}{
		{name: "nonexistent ID", mentorIDs: []uint{9999}},
		{name: "devotee posing as mentor", mentorIDs: []uint{fellow.ID}},
		{name: "one good one bad", mentorIDs: []uint{mentor.ID, 9999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), domain.User{
				Name:      "Nitai Das",
				Email:     "nitai@example.com",
				Password:  "sadhna108",
				Role:      domain.RoleDevotee,
				MentorIDs: tt.mentorIDs,
			})
			assert.ErrorIs(t, err, ErrInvalidMentors)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	userRepo := newUserRepo(db)
	svc := NewAuthService(userRepo)

	mentor := seedMentor(t, userRepo, "gaura")

	_, err := svc.Register(context.Background(), domain.User{
		Name:     "Nitai Das",
		Email:    mentor.Email,
		Password: "sadhna108",
		Role:     domain.RoleDevotee,
	})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestLogin(t *testing.T) {
	db := openTestDB(t)
	userRepo := newUserRepo(db)
	svc := NewAuthService(userRepo)

	_, err := svc.Register(context.Background(), domain.User{
		Name:     "Nitai Das",
		Email:    "nitai@example.com",
		Password: "sadhna108",
		Role:     domain.RoleMentor,
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "nitai@example.com", "sadhna108")
	require.NoError(t, err)
	assert.Equal(t, "Nitai Das", user.Name)

	_, err = svc.Login(context.Background(), "nitai@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(context.Background(), "nobody@example.com", "sadhna108")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
