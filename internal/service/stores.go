package service

import (
	"context"
	"errors"

	"github.com/fittrack/fittrack-go/internal/model"
	"github.com/fittrack/fittrack-go/internal/repository"
)

// UserStore persists accounts. Create also provisions the user's health stats row.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// HealthStatsStore persists the per-user stats row.
type HealthStatsStore interface {
	GetByUser(ctx context.Context, userID int64) (*model.HealthStats, error)
	Update(ctx context.Context, stats *model.HealthStats) error
}

// WorkoutStore persists workouts. Lookups take the owner so foreign rows are never returned.
type WorkoutStore interface {
	Create(ctx context.Context, w *model.Workout) error
	GetByID(ctx context.Context, userID, id int64) (*model.Workout, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Workout, error)
	Update(ctx context.Context, w *model.Workout) error
	Delete(ctx context.Context, userID, id int64) error
}

// loadCaller fetches the authenticated user. A token for a user that no longer exists
// is treated as unauthenticated.
func loadCaller(ctx context.Context, users UserStore, callerID int64) (*model.User, error) {
	user, err := users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
