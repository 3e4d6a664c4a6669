package model

import "time"

// User represents a registered account in the database.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Height       *string
	Weight       *string
	Age          *string
	Gender       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest carries a refresh token to exchange for a new access token.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// UpdateProfileRequest is a partial profile update. Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,max=150"`
	Email    *string `json:"email" validate:"omitempty,email,max=254"`
	Height   *string `json:"height" validate:"omitempty,max=10"`
	Weight   *string `json:"weight" validate:"omitempty,max=10"`
	Age      *string `json:"age" validate:"omitempty,max=5"`
	Gender   *string `json:"gender" validate:"omitempty,max=10"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
}

// RefreshResponse holds a freshly issued access token.
type RefreshResponse struct {
	Access string `json:"access"`
}

// UserResponse is the public user schema. The password hash is never part of it.
type UserResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Height   *string `json:"height"`
	Weight   *string `json:"weight"`
	Age      *string `json:"age"`
	Gender   *string `json:"gender"`
}

// NewUserResponse builds the public view of a user.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Height:   u.Height,
		Weight:   u.Weight,
		Age:      u.Age,
		Gender:   u.Gender,
	}
}
