package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fittrack/fittrack-go/internal/model"
	"github.com/fittrack/fittrack-go/internal/repository"
)

func TestUpdateStats_Partial(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "u1", "e1@example.com", "p1")

	got, err := env.stats.UpdateStats(context.Background(), user.ID, model.UpdateStatsRequest{
		Steps: intPtr(8000),
		Water: intPtr(6),
	})
	if err != nil {
		t.Fatalf("UpdateStats() unexpected error: %v", err)
	}
	if got.Steps != 8000 || got.Water != 6 || got.Calories != 0 || got.Sleep != 0 {
		t.Errorf("UpdateStats() = %+v", got)
	}
	if got.User.ID != user.ID || got.User.Username != "u1" {
		t.Errorf("nested user = %+v, want caller", got.User)
	}

	got, err = env.stats.UpdateStats(context.Background(), user.ID, model.UpdateStatsRequest{Sleep: intPtr(0)})
	if err != nil {
		t.Fatalf("UpdateStats() unexpected error: %v", err)
	}
	if got.Steps != 8000 || got.Sleep != 0 {
		t.Errorf("second update lost earlier values: %+v", got)
	}
}

func TestUpdateStats_RejectsNegative(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "u1", "e1@example.com", "p1")

	_, err := env.stats.UpdateStats(context.Background(), user.ID, model.UpdateStatsRequest{Calories: intPtr(-1)})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "calories" {
		t.Fatalf("expected calories ValidationError, got %v", err)
	}
}

func TestUpdateStats_RejectsOutOfRange(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "u1", "e1@example.com", "p1")

	_, err := env.stats.UpdateStats(context.Background(), user.ID, model.UpdateStatsRequest{Steps: intPtr(3000000000)})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "steps" {
		t.Fatalf("expected steps ValidationError, got %v", err)
	}

	got, err := env.stats.UpdateStats(context.Background(), user.ID, model.UpdateStatsRequest{Steps: intPtr(2147483647)})
	if err != nil {
		t.Fatalf("UpdateStats() unexpected error at column limit: %v", err)
	}
	if got.Steps != 2147483647 {
		t.Errorf("Steps = %d, want 2147483647", got.Steps)
	}
}

// statsWithoutRows behaves like a store where no user has a stats row.
type statsWithoutRows struct{}

func (statsWithoutRows) GetByUser(ctx context.Context, userID int64) (*model.HealthStats, error) {
	return nil, repository.ErrStatsNotFound
}

func (statsWithoutRows) Update(ctx context.Context, stats *model.HealthStats) error {
	return repository.ErrStatsNotFound
}

func TestGetStats_NotFound(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "u1", "e1@example.com", "p1")
	svc := NewStatsService(statsWithoutRows{}, env.store.Users())

	if _, err := svc.GetStats(context.Background(), user.ID); err != ErrStatsNotFound {
		t.Errorf("GetStats() expected ErrStatsNotFound, got %v", err)
	}
	if _, err := svc.UpdateStats(context.Background(), user.ID, model.UpdateStatsRequest{Steps: intPtr(1)}); err != ErrStatsNotFound {
		t.Errorf("UpdateStats() expected ErrStatsNotFound, got %v", err)
	}

	// Reads never create the row.
	if _, err := svc.GetStats(context.Background(), user.ID); err != ErrStatsNotFound {
		t.Errorf("GetStats() expected ErrStatsNotFound on second read, got %v", err)
	}
}
