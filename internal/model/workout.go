package model

import "time"

// Workout represents a logged workout owned by a single user.
type Workout struct {
	ID        int64
	UserID    int64
	Type      string
	Duration  string
	Intensity string
	Notes     *string
	Date      time.Time
}

// CreateWorkoutRequest represents a new workout. Owner and date are assigned by the server.
type CreateWorkoutRequest struct {
	Type      string  `json:"type" validate:"required,max=50"`
	Duration  string  `json:"duration" validate:"required,max=20"`
	Intensity string  `json:"intensity" validate:"required,max=20"`
	Notes     *string `json:"notes"`
}

// UpdateWorkoutRequest is a partial workout update. Date and owner cannot be changed.
type UpdateWorkoutRequest struct {
	Type      *string `json:"type" validate:"omitempty,max=50"`
	Duration  *string `json:"duration" validate:"omitempty,max=20"`
	Intensity *string `json:"intensity" validate:"omitempty,max=20"`
	Notes     *string `json:"notes"`
}

// WorkoutResponse is the public workout schema with the owner nested under "user".
type WorkoutResponse struct {
	ID        int64        `json:"id"`
	User      UserResponse `json:"user"`
	Type      string       `json:"type"`
	Duration  string       `json:"duration"`
	Intensity string       `json:"intensity"`
	Notes     *string      `json:"notes"`
	Date      time.Time    `json:"date"`
}
