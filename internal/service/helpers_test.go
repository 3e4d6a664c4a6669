package service

import (
	"context"
	"testing"
	"time"

	"github.com/fittrack/fittrack-go/internal/crypto"
	"github.com/fittrack/fittrack-go/internal/model"
	"github.com/fittrack/fittrack-go/internal/repository"
)

type testEnv struct {
	store    *repository.MemoryStore
	tokens   *crypto.TokenIssuer
	auth     *AuthService
	profile  *ProfileService
	stats    *StatsService
	workouts *WorkoutService
}

func newTestEnv() *testEnv {
	store := repository.NewMemoryStore()
	tokens := crypto.NewTokenIssuer("test-secret", time.Minute, time.Hour)
	users := store.Users()
	return &testEnv{
		store:    store,
		tokens:   tokens,
		auth:     NewAuthService(users, crypto.NewPasswordHasher(1024, 1), tokens),
		profile:  NewProfileService(users),
		stats:    NewStatsService(store.HealthStats(), users),
		workouts: NewWorkoutService(store.Workouts(), users),
	}
}

func (e *testEnv) register(t *testing.T, username, email, password string) model.UserResponse {
	t.Helper()
	user, err := e.auth.Register(context.Background(), model.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("Register(%s) unexpected error: %v", email, err)
	}
	return user
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
