package model

import "time"

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,phone"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Grade    int    `json:"grade" validate:"required,min=1,max=12"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type LoginRequest struct {
	// Email doubles as the login identifier; a phone number is accepted here
	// as well and matched against the phone column.
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type SignupResponse struct {
	UserID int64  `json:"userId"`
	Token  string `json:"token"`
}

type LoginResponse struct {
	UserID       int64  `json:"userId"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LogoutResponse struct {
	Msg string `json:"msg"`
}

// AuthUser is the identity the auth middleware attaches to the request
// context after verifying a bearer token.
type AuthUser struct {
	ID int64
}

type RefreshToken struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
