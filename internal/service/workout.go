package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fittrack/fittrack-go/internal/model"
	"github.com/fittrack/fittrack-go/internal/observability"
	"github.com/fittrack/fittrack-go/internal/repository"
)

// WorkoutService manages the caller's workouts.
type WorkoutService struct {
	workouts WorkoutStore
	users    UserStore
	now      func() time.Time
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(workouts WorkoutStore, users UserStore) *WorkoutService {
	return &WorkoutService{workouts: workouts, users: users, now: time.Now}
}

// ListWorkouts returns every workout owned by the caller in insertion order.
func (s *WorkoutService) ListWorkouts(ctx context.Context, callerID int64) ([]model.WorkoutResponse, error) {
	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}

	workouts, err := s.workouts.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	return workoutsToResponse(workouts, user), nil
}

// CreateWorkout logs a workout for the caller, dated now.
func (s *WorkoutService) CreateWorkout(ctx context.Context, callerID int64, req model.CreateWorkoutRequest) (model.WorkoutResponse, error) {
	req.Type = strings.TrimSpace(req.Type)
	req.Duration = strings.TrimSpace(req.Duration)
	req.Intensity = strings.TrimSpace(req.Intensity)
	if err := validateRequest(req); err != nil {
		return model.WorkoutResponse{}, err
	}

	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return model.WorkoutResponse{}, err
	}

	w := &model.Workout{
		UserID:    callerID,
		Type:      req.Type,
		Duration:  req.Duration,
		Intensity: req.Intensity,
		Notes:     req.Notes,
		Date:      s.now().UTC().Truncate(time.Microsecond),
	}

	if err := s.workouts.Create(ctx, w); err != nil {
		return model.WorkoutResponse{}, err
	}

	observability.RecordWorkoutChange("create")
	return workoutToResponse(*w, user), nil
}

// GetWorkout returns one of the caller's workouts.
func (s *WorkoutService) GetWorkout(ctx context.Context, callerID, id int64) (model.WorkoutResponse, error) {
	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return model.WorkoutResponse{}, err
	}

	w, err := s.find(ctx, callerID, id)
	if err != nil {
		return model.WorkoutResponse{}, err
	}

	return workoutToResponse(*w, user), nil
}

// UpdateWorkout applies the non-nil fields of req. Date and owner never change.
func (s *WorkoutService) UpdateWorkout(ctx context.Context, callerID, id int64, req model.UpdateWorkoutRequest) (model.WorkoutResponse, error) {
	req.Type = trimmed(req.Type)
	req.Duration = trimmed(req.Duration)
	req.Intensity = trimmed(req.Intensity)
	if err := validateRequest(req); err != nil {
		return model.WorkoutResponse{}, err
	}

	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return model.WorkoutResponse{}, err
	}

	w, err := s.find(ctx, callerID, id)
	if err != nil {
		return model.WorkoutResponse{}, err
	}

	fields := []struct {
		name string
		src  *string
		dst  *string
	}{
		{"type", req.Type, &w.Type},
		{"duration", req.Duration, &w.Duration},
		{"intensity", req.Intensity, &w.Intensity},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		if *f.src == "" {
			return model.WorkoutResponse{}, blank(f.name)
		}
		*f.dst = *f.src
	}
	if req.Notes != nil {
		w.Notes = req.Notes
	}

	if err := s.workouts.Update(ctx, w); err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return model.WorkoutResponse{}, ErrWorkoutNotFound
		}
		return model.WorkoutResponse{}, err
	}

	observability.RecordWorkoutChange("update")
	return workoutToResponse(*w, user), nil
}

// DeleteWorkout removes one of the caller's workouts.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, callerID, id int64) error {
	if _, err := loadCaller(ctx, s.users, callerID); err != nil {
		return err
	}

	if err := s.workouts.Delete(ctx, callerID, id); err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}

	observability.RecordWorkoutChange("delete")
	return nil
}

func (s *WorkoutService) find(ctx context.Context, callerID, id int64) (*model.Workout, error) {
	w, err := s.workouts.GetByID(ctx, callerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return w, nil
}

func workoutToResponse(w model.Workout, owner *model.User) model.WorkoutResponse {
	return model.WorkoutResponse{
		ID:        w.ID,
		User:      model.NewUserResponse(owner),
		Type:      w.Type,
		Duration:  w.Duration,
		Intensity: w.Intensity,
		Notes:     w.Notes,
		Date:      w.Date,
	}
}

// workoutsToResponse never returns nil so an empty list encodes as [].
func workoutsToResponse(workouts []model.Workout, owner *model.User) []model.WorkoutResponse {
	result := make([]model.WorkoutResponse, len(workouts))
	for i, w := range workouts {
		result[i] = workoutToResponse(w, owner)
	}
	return result
}
