package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fittrack/fittrack-go/internal/model"
)

const userColumns = `id, username, email, password_hash, height, weight, age, gender, created_at, updated_at`

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user together with its zeroed health stats row in one transaction,
// and sets the generated ID on the user struct.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, height, weight, age, gender) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.Email, user.PasswordHash, user.Height, user.Weight, user.Age, user.Gender,
	)
	if err != nil {
		return userConflict(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO health_stats (user_id) VALUES (?)`, id); err != nil {
		return fmt.Errorf("create health stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// Update writes the mutable profile columns of an existing user.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET username = ?, email = ?, height = ?, weight = ?, age = ?, gender = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		user.Username, user.Email, user.Height, user.Weight, user.Age, user.Gender, user.ID,
	)
	if err != nil {
		return userConflict(err)
	}
	return nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Height, &user.Weight, &user.Age, &user.Gender,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// userConflict maps unique key violations on users to the matching sentinel error.
func userConflict(err error) error {
	key, ok := duplicateKey(err)
	if !ok {
		return err
	}
	switch {
	case strings.Contains(key, "uq_users_username"):
		return ErrDuplicateUsername
	case strings.Contains(key, "uq_users_email"):
		return ErrDuplicateEmail
	default:
		return err
	}
}
