package repository

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrStatsNotFound     = errors.New("health stats not found")
	ErrWorkoutNotFound   = errors.New("workout not found")
)
