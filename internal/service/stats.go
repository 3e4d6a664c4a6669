package service

import (
	"context"
	"errors"

	"github.com/fittrack/fittrack-go/internal/model"
	"github.com/fittrack/fittrack-go/internal/repository"
)

// StatsService reads and updates the caller's health stats row.
type StatsService struct {
	stats HealthStatsStore
	users UserStore
}

// NewStatsService creates a new StatsService.
func NewStatsService(stats HealthStatsStore, users UserStore) *StatsService {
	return &StatsService{stats: stats, users: users}
}

// GetStats returns the caller's stats. A missing row is reported as ErrStatsNotFound;
// it is never created on read.
func (s *StatsService) GetStats(ctx context.Context, callerID int64) (model.HealthStatsResponse, error) {
	user, stats, err := s.load(ctx, callerID)
	if err != nil {
		return model.HealthStatsResponse{}, err
	}
	return statsToResponse(stats, user), nil
}

// UpdateStats applies the non-nil fields of req. Negative values are rejected.
func (s *StatsService) UpdateStats(ctx context.Context, callerID int64, req model.UpdateStatsRequest) (model.HealthStatsResponse, error) {
	if err := validateRequest(req); err != nil {
		return model.HealthStatsResponse{}, err
	}

	user, stats, err := s.load(ctx, callerID)
	if err != nil {
		return model.HealthStatsResponse{}, err
	}

	if req.Steps != nil {
		stats.Steps = *req.Steps
	}
	if req.Calories != nil {
		stats.Calories = *req.Calories
	}
	if req.Water != nil {
		stats.Water = *req.Water
	}
	if req.Sleep != nil {
		stats.Sleep = *req.Sleep
	}

	if err := s.stats.Update(ctx, stats); err != nil {
		if errors.Is(err, repository.ErrStatsNotFound) {
			return model.HealthStatsResponse{}, ErrStatsNotFound
		}
		return model.HealthStatsResponse{}, err
	}

	return statsToResponse(stats, user), nil
}

func (s *StatsService) load(ctx context.Context, callerID int64) (*model.User, *model.HealthStats, error) {
	user, err := loadCaller(ctx, s.users, callerID)
	if err != nil {
		return nil, nil, err
	}

	stats, err := s.stats.GetByUser(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrStatsNotFound) {
			return nil, nil, ErrStatsNotFound
		}
		return nil, nil, err
	}
	return user, stats, nil
}

func statsToResponse(stats *model.HealthStats, owner *model.User) model.HealthStatsResponse {
	return model.HealthStatsResponse{
		ID:       stats.ID,
		User:     model.NewUserResponse(owner),
		Steps:    stats.Steps,
		Calories: stats.Calories,
		Water:    stats.Water,
		Sleep:    stats.Sleep,
	}
}
