package dto

import "lmsadmin/internal/model"

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the signup payload. Role defaults to student when empty.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=student instructor"`
}

// ProfileInput is the profile update payload. Photo, when set, carries a
// freshly selected upload and takes precedence over the stored PhotoURL.
type ProfileInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"profilePhoto,omitempty" validate:"omitempty,url"`

	Photo *FileRef `json:"-"`
}

// ProfileInputFromModel pre-fills a profile input from the current profile.
func ProfileInputFromModel(u model.UserProfile) ProfileInput {
	return ProfileInput{
		Name:     u.Name,
		Email:    u.Email,
		PhotoURL: u.ProfilePhoto,
	}
}
