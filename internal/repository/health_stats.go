package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fittrack/fittrack-go/internal/model"
)

// HealthStatsRepository handles health stats persistence operations.
type HealthStatsRepository struct {
	db *sql.DB
}

// NewHealthStatsRepository creates a new HealthStatsRepository.
func NewHealthStatsRepository(db *sql.DB) *HealthStatsRepository {
	return &HealthStatsRepository{db: db}
}

// GetByUser retrieves the stats row owned by userID.
func (r *HealthStatsRepository) GetByUser(ctx context.Context, userID int64) (*model.HealthStats, error) {
	query := `SELECT id, user_id, steps, calories, water, sleep FROM health_stats WHERE user_id = ?`

	stats := &model.HealthStats{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.ID, &stats.UserID, &stats.Steps, &stats.Calories, &stats.Water, &stats.Sleep,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatsNotFound
		}
		return nil, err
	}

	return stats, nil
}

// Update writes the metric columns of the stats row owned by stats.UserID.
func (r *HealthStatsRepository) Update(ctx context.Context, stats *model.HealthStats) error {
	query := `UPDATE health_stats SET steps = ?, calories = ?, water = ?, sleep = ? WHERE user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		stats.Steps, stats.Calories, stats.Water, stats.Sleep, stats.UserID,
	)
	return err
}
