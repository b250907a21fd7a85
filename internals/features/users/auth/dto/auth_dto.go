package dto

import (
	"time"

	"github.com/google/uuid"
)

// Register selalu membuat role teacher; admin diangkat lewat endpoint admin.
type RegisterRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=100"`
	Email       string   `json:"email" validate:"required,email,max=255"`
	Password    string   `json:"password" validate:"required,min=8,max=72"`
	Age         int      `json:"age" validate:"required,min=18,max=100"`
	SchoolName  string   `json:"school_name" validate:"required,min=2,max=150"`
	ClassName   string   `json:"class_name" validate:"required,max=100"`
	Position    string   `json:"position" validate:"required,max=100"`
	Gender      string   `json:"gender" validate:"required,oneof=male female other"`
	Religion    string   `json:"religion" validate:"required,max=50"`
	Subjects    []string `json:"subjects" validate:"omitempty,max=20,dive,min=1,max=100"`
	Fingerprint *string  `json:"fingerprint" validate:"omitempty,max=512"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type AuthUser struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	SchoolName string    `json:"school_name"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        AuthUser  `json:"user"`
}
