package service

import (
	"context"
	"errors"

	"github.com/fittrack/fittrack-go/internal/model"
	"github.com/fittrack/fittrack-go/internal/repository"
)

// ProfileService reads and updates the caller's own account.
type ProfileService struct {
	users UserStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(users UserStore) *ProfileService {
	return &ProfileService{users: users}
}

// GetProfile returns the caller's public profile.
func (s *ProfileService) GetProfile(ctx context.Context, callerID int64) (model.UserResponse, error) {
	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return model.NewUserResponse(user), nil
}

// UpdateProfile applies the non-nil fields of req to the caller's account.
func (s *ProfileService) UpdateProfile(ctx context.Context, callerID int64, req model.UpdateProfileRequest) (model.UserResponse, error) {
	req.Username = trimmed(req.Username)
	req.Email = trimmed(req.Email)
	if err := validateRequest(req); err != nil {
		return model.UserResponse{}, err
	}

	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return model.UserResponse{}, err
	}

	if req.Username != nil {
		if *req.Username == "" {
			return model.UserResponse{}, blank("username")
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		if *req.Email == "" {
			return model.UserResponse{}, blank("email")
		}
		user.Email = *req.Email
	}
	if req.Height != nil {
		user.Height = req.Height
	}
	if req.Weight != nil {
		user.Weight = req.Weight
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return model.UserResponse{}, invalid("username", "A user with that username already exists.")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.UserResponse{}, invalid("email", "user with this email already exists.")
		case errors.Is(err, repository.ErrUserNotFound):
			return model.UserResponse{}, ErrUnauthenticated
		}
		return model.UserResponse{}, err
	}

	return model.NewUserResponse(user), nil
}
