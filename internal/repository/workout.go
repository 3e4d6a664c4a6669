package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fittrack/fittrack-go/internal/model"
)

const workoutColumns = `id, user_id, type, duration, intensity, notes, date`

// WorkoutRepository handles workout persistence operations. Every query is scoped by owner.
type WorkoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository creates a new WorkoutRepository.
func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Create inserts a new workout and sets the generated ID on the workout struct.
func (r *WorkoutRepository) Create(ctx context.Context, w *model.Workout) error {
	query := `INSERT INTO workouts (user_id, type, duration, intensity, notes, date) VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, w.UserID, w.Type, w.Duration, w.Intensity, w.Notes, w.Date)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	w.ID = id
	return nil
}

// GetByID retrieves a workout by ID, only if it belongs to userID.
func (r *WorkoutRepository) GetByID(ctx context.Context, userID, id int64) (*model.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = ? AND user_id = ?`

	w := &model.Workout{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&w.ID, &w.UserID, &w.Type, &w.Duration, &w.Intensity, &w.Notes, &w.Date,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	return w, nil
}

// ListByUser retrieves all workouts owned by userID in insertion order.
func (r *WorkoutRepository) ListByUser(ctx context.Context, userID int64) ([]model.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []model.Workout
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Type, &w.Duration, &w.Intensity, &w.Notes, &w.Date,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

// Update writes the mutable columns of a workout. Date and owner are never touched.
func (r *WorkoutRepository) Update(ctx context.Context, w *model.Workout) error {
	query := `UPDATE workouts SET type = ?, duration = ?, intensity = ?, notes = ? WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query, w.Type, w.Duration, w.Intensity, w.Notes, w.ID, w.UserID)
	return err
}

// Delete removes a workout owned by userID.
func (r *WorkoutRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}
