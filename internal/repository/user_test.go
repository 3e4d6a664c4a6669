package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/fittrack/fittrack-go/internal/model"
)

func newMockDB(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(db), mock
}

func TestUserCreateProvisionsStats(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("u1", "e1@example.com", "hash", nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO health_stats (user_id) VALUES (?)`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user := &model.User{Username: "u1", Email: "e1@example.com", PasswordHash: "hash"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("Create() ID = %d, want 7", user.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUserCreateDuplicates(t *testing.T) {
	cases := []struct {
		key  string
		want error
	}{
		{"Duplicate entry 'e1@example.com' for key 'users.uq_users_email'", ErrDuplicateEmail},
		{"Duplicate entry 'u1' for key 'users.uq_users_username'", ErrDuplicateUsername},
	}

	for _, tc := range cases {
		repo, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: tc.key})
		mock.ExpectRollback()

		err := repo.Create(context.Background(), &model.User{Username: "u1", Email: "e1@example.com"})
		if !errors.Is(err, tc.want) {
			t.Errorf("Create() error = %v, want %v", err, tc.want)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("expectations: %v", err)
		}
	}
}

func TestUserGetByEmail(t *testing.T) {
	repo, mock := newMockDB(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "username", "email", "password_hash", "height", "weight", "age", "gender", "created_at", "updated_at",
	}).AddRow(3, "u1", "e1@example.com", "hash", "180", nil, nil, "f", now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = ?`)).
		WithArgs("e1@example.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "e1@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}
	if user.ID != 3 || user.Username != "u1" {
		t.Errorf("GetByEmail() = %+v", user)
	}
	if user.Height == nil || *user.Height != "180" {
		t.Errorf("Height = %v, want 180", user.Height)
	}
	if user.Weight != nil {
		t.Errorf("Weight = %v, want nil", *user.Weight)
	}
}

func TestUserGetByIDNotFound(t *testing.T) {
	repo, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = ?`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("GetByID() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserUpdate(t *testing.T) {
	repo, mock := newMockDB(t)
	height := "175"

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET username = ?, email = ?, height = ?, weight = ?, age = ?, gender = ? WHERE id = ?`)).
		WithArgs("u2", "e2@example.com", "175", nil, nil, nil, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &model.User{ID: 3, Username: "u2", Email: "e2@example.com", Height: &height})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUserConflictPassesOtherErrors(t *testing.T) {
	plain := errors.New("boom")
	if userConflict(plain) != plain {
		t.Fatal("non-MySQL errors should pass through")
	}
	other := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1' for key 'PRIMARY'"}
	if userConflict(other) != other {
		t.Fatal("unknown unique keys should pass through")
	}
}
