package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Name:     "Nitai Das",
		Email:    "nitai@example.com",
		Password: "sadhna108",
		Phone:    "+919876543210",
		Role:     "devotee",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr bool
	}{
		{
			name:   "valid devotee",
			mutate: func(r *RegisterRequest) {},
		},
		{
			name: "valid mentor",
			mutate: func(r *RegisterRequest) {
				r.Role = "mentor"
			},
		},
		{
			name: "devotee with mentors and type",
			mutate: func(r *RegisterRequest) {
				r.MentorIDs = []uint{1, 2}
				r.DevoteeType = "student"
			},
		},
		{
			name:    "missing name",
			mutate:  func(r *RegisterRequest) { r.Name = "" },
			wantErr: true,
		},
		{
			name:    "single letter name",
			mutate:  func(r *RegisterRequest) { r.Name = "N" },
			wantErr: true,
		},
		{
			name:    "bad email",
			mutate:  func(r *RegisterRequest) { r.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "password too short",
			mutate:  func(r *RegisterRequest) { r.Password = "ab1" },
			wantErr: true,
		},
		{
			name:    "password without a digit",
			mutate:  func(r *RegisterRequest) { r.Password = "onlyletters" },
			wantErr: true,
		},
		{
			name:    "password without a letter",
			mutate:  func(r *RegisterRequest) { r.Password = "12345678" },
			wantErr: true,
		},
		{
			name:    "phone with letters",
			mutate:  func(r *RegisterRequest) { r.Phone = "not-a-phone" },
			wantErr: true,
		},
		{
			name:    "phone leading zero",
			mutate:  func(r *RegisterRequest) { r.Phone = "0123456789" },
			wantErr: true,
		},
		{
			name:    "unknown role",
			mutate:  func(r *RegisterRequest) { r.Role = "admin" },
			wantErr: true,
		},
		{
			name:    "unknown devotee type",
			mutate:  func(r *RegisterRequest) { r.DevoteeType = "wanderer" },
			wantErr: true,
		},
		{
			name: "mentor with a mentor list",
			mutate: func(r *RegisterRequest) {
				r.Role = "mentor"
				r.MentorIDs = []uint{1}
			},
			wantErr: true,
		},
		{
			name: "mentor with a devotee type",
			mutate: func(r *RegisterRequest) {
				r.Role = "mentor"
				r.DevoteeType = "student"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "nitai@example.com", Password: "sadhna108"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "", Password: "sadhna108"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "nope", Password: "sadhna108"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "nitai@example.com", Password: ""}).Validate())
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	name := "Nitai Das Adhikari"
	phone := "+919812345678"
	devoteeType := "student"
	empty := ""
	badPhone := "abc"

	assert.NoError(t, (&UpdateProfileRequest{}).Validate())
	assert.NoError(t, (&UpdateProfileRequest{Name: &name, Phone: &phone, DevoteeType: &devoteeType, MentorIDs: []uint{1}}).Validate())
	assert.Error(t, (&UpdateProfileRequest{Name: &empty}).Validate())
	assert.Error(t, (&UpdateProfileRequest{Phone: &badPhone}).Validate())
}
