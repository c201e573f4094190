package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harismriti/sadhna-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfile_Devotee(t *testing.T) {
	db := openTestDB(t)
	userRepo := newUserRepo(db)
	svc := NewUserService(userRepo)

	m1 := seedMentor(t, userRepo, "gaura")
	m2 := seedMentor(t, userRepo, "advaita")
	devotee := seedDevotee(t, userRepo, "nitai", m1.ID)

	updated, err := svc.UpdateProfile(context.Background(), devotee.ID, ProfileUpdate{
		Name:        strPtr("Nitai Das Adhikari"),
		Phone:       strPtr("+919812345678"),
		DevoteeType: strPtr(domain.DevoteeTypeStudent),
		MentorIDs:   []uint{m2.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "Nitai Das Adhikari", updated.Name)
	assert.Equal(t, "+919812345678", updated.Phone)
	assert.Equal(t, domain.DevoteeTypeStudent, updated.DevoteeType)
	assert.Equal(t, []uint{m2.ID}, updated.MentorIDs)

	// Email and role never change through the profile.
	assert.Equal(t, devotee.Email, updated.Email)
	assert.Equal(t, domain.RoleDevotee, updated.Role)
}

func TestUpdateProfile_PartialLeavesRestUntouched(t *testing.T) {
	db := openTestDB(t)
	userRepo := newUserRepo(db)
	svc := NewUserService(userRepo)

	mentor := seedMentor(t, userRepo, "gaura")
	devotee := seedDevotee(t, userRepo, "nitai", mentor.ID)

	updated, err := svc.UpdateProfile(context.Background(), devotee.ID, ProfileUpdate{
		Name: strPtr("Nitai Das Adhikari"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Nitai Das Adhikari", updated.Name)
	assert.Equal(t, devotee.DevoteeType, updated.DevoteeType)
	assert.Equal(t, []uint{mentor.ID}, updated.MentorIDs)
}

func TestUpdateProfile_MentorIgnoresDevoteeFields(t *testing.T) {
	db := openTestDB(t)
	userRepo := newUserRepo(db)
	svc := NewUserService(userRepo)

	mentor := seedMentor(t, userRepo, "gaura")
	other := seedMentor(t, userRepo, "advaita")

	updated, err := svc.UpdateProfile(context.Background(), mentor.ID, ProfileUpdate{
		Name:        strPtr("Gaura Das"),
		DevoteeType: strPtr(domain.DevoteeTypeStudent),
		MentorIDs:   []uint{other.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "Gaura Das", updated.Name)
	assert.Empty(t, updated.DevoteeType)
	assert.Empty(t, updated.MentorIDs)
}

func TestUpdateProfile_RejectsInvalidMentors(t *testing.T) {
	db := openTestDB(t)
	userRepo := newUserRepo(db)
	svc := NewUserService(userRepo)

	mentor := seedMentor(t, userRepo, "gaura")
	devotee := seedDevotee(t, userRepo, "nitai", mentor.ID)

	_, err := svc.UpdateProfile(context.Background(), devotee.ID, ProfileUpdate{
		MentorIDs: []uint{9999},
	})
	assert.ErrorIs(t, err, ErrInvalidMentors)
}

func TestGetMentors_ActiveOnlyOrderedByName(t *testing.T) {
	db := openTestDB(t)
	userRepo := newUserRepo(db)
	svc := NewUserService(userRepo)

	seedMentor(t, userRepo, "gaura")
	seedMentor(t, userRepo, "advaita")
	seedDevotee(t, userRepo, "nitai")

	mentors, err := svc.GetMentors(context.Background())
	require.NoError(t, err)

	require.Len(t, mentors, 2)
	assert.Equal(t, "advaita", mentors[0].Name)
	assert.Equal(t, "gaura", mentors[1].Name)
}
