package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fittrack/fittrack-go/internal/model"
)

// MemoryStore is an in-process store with the same semantics as the MySQL repositories:
// unique username/email, one stats row per user, owner-scoped workouts. It backs local
// development when no database is reachable, and the HTTP tests.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[int64]model.User
	stats     map[int64]model.HealthStats // keyed by user ID
	workouts  map[int64]model.Workout
	lastUser  int64
	lastStats int64
	lastWork  int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[int64]model.User),
		stats:    make(map[int64]model.HealthStats),
		workouts: make(map[int64]model.Workout),
	}
}

// PingContext always succeeds; it lets the store serve readiness checks.
func (s *MemoryStore) PingContext(ctx context.Context) error {
	return ctx.Err()
}

// Users returns the identity store view.
func (s *MemoryStore) Users() *MemoryUserRepository { return &MemoryUserRepository{s: s} }

// HealthStats returns the health stats store view.
func (s *MemoryStore) HealthStats() *MemoryHealthStatsRepository {
	return &MemoryHealthStatsRepository{s: s}
}

// Workouts returns the workout store view.
func (s *MemoryStore) Workouts() *MemoryWorkoutRepository { return &MemoryWorkoutRepository{s: s} }

// MemoryUserRepository is the user view over a MemoryStore.
type MemoryUserRepository struct{ s *MemoryStore }

// Create inserts a new user with a zeroed stats row and sets the generated ID on the user struct.
func (r *MemoryUserRepository) Create(ctx context.Context, user *model.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUniqueLocked(0, user.Username, user.Email); err != nil {
		return err
	}

	now := time.Now().UTC()
	s.lastUser++
	user.ID = s.lastUser
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = cloneUser(*user)

	s.lastStats++
	s.stats[user.ID] = model.HealthStats{ID: s.lastStats, UserID: user.ID}
	return nil
}

// GetByEmail retrieves a user by their email address, ignoring case.
func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			found := cloneUser(u)
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByID retrieves a user by their ID.
func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	found := cloneUser(u)
	return &found, nil
}

// Update writes the mutable profile fields of an existing user.
func (r *MemoryUserRepository) Update(ctx context.Context, user *model.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok {
		return ErrUserNotFound
	}
	if err := s.checkUniqueLocked(user.ID, user.Username, user.Email); err != nil {
		return err
	}

	existing.Username = user.Username
	existing.Email = user.Email
	existing.Height = user.Height
	existing.Weight = user.Weight
	existing.Age = user.Age
	existing.Gender = user.Gender
	existing.UpdatedAt = time.Now().UTC()
	s.users[user.ID] = cloneUser(existing)
	return nil
}

// checkUniqueLocked mirrors the unique keys on users. MySQL's default collation is case
// insensitive, so comparisons here are too. An email conflict wins over a username conflict.
func (s *MemoryStore) checkUniqueLocked(selfID int64, username, email string) error {
	for id, u := range s.users {
		if id != selfID && strings.EqualFold(u.Email, email) {
			return ErrDuplicateEmail
		}
	}
	for id, u := range s.users {
		if id != selfID && strings.EqualFold(u.Username, username) {
			return ErrDuplicateUsername
		}
	}
	return nil
}

// MemoryHealthStatsRepository is the health stats view over a MemoryStore.
type MemoryHealthStatsRepository struct{ s *MemoryStore }

// GetByUser retrieves the stats row owned by userID.
func (r *MemoryHealthStatsRepository) GetByUser(ctx context.Context, userID int64) (*model.HealthStats, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats, ok := s.stats[userID]
	if !ok {
		return nil, ErrStatsNotFound
	}
	return &stats, nil
}

// Update writes the metric fields of the stats row owned by stats.UserID.
func (r *MemoryHealthStatsRepository) Update(ctx context.Context, stats *model.HealthStats) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.stats[stats.UserID]
	if !ok {
		return ErrStatsNotFound
	}
	existing.Steps = stats.Steps
	existing.Calories = stats.Calories
	existing.Water = stats.Water
	existing.Sleep = stats.Sleep
	s.stats[stats.UserID] = existing
	return nil
}

// MemoryWorkoutRepository is the workout view over a MemoryStore.
type MemoryWorkoutRepository struct{ s *MemoryStore }

// Create inserts a new workout and sets the generated ID on the workout struct.
func (r *MemoryWorkoutRepository) Create(ctx context.Context, w *model.Workout) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[w.UserID]; !ok {
		return ErrUserNotFound
	}
	s.lastWork++
	w.ID = s.lastWork
	s.workouts[w.ID] = cloneWorkout(*w)
	return nil
}

// GetByID retrieves a workout by ID, only if it belongs to userID.
func (r *MemoryWorkoutRepository) GetByID(ctx context.Context, userID, id int64) (*model.Workout, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.workouts[id]
	if !ok || w.UserID != userID {
		return nil, ErrWorkoutNotFound
	}
	found := cloneWorkout(w)
	return &found, nil
}

// ListByUser retrieves all workouts owned by userID in insertion order.
func (r *MemoryWorkoutRepository) ListByUser(ctx context.Context, userID int64) ([]model.Workout, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Workout
	for _, w := range s.workouts {
		if w.UserID == userID {
			out = append(out, cloneWorkout(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update writes the mutable fields of a workout. Date and owner are never touched.
func (r *MemoryWorkoutRepository) Update(ctx context.Context, w *model.Workout) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.workouts[w.ID]
	if !ok || existing.UserID != w.UserID {
		return ErrWorkoutNotFound
	}
	existing.Type = w.Type
	existing.Duration = w.Duration
	existing.Intensity = w.Intensity
	existing.Notes = w.Notes
	s.workouts[w.ID] = cloneWorkout(existing)
	return nil
}

// Delete removes a workout owned by userID.
func (r *MemoryWorkoutRepository) Delete(ctx context.Context, userID, id int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.workouts[id]
	if !ok || w.UserID != userID {
		return ErrWorkoutNotFound
	}
	delete(s.workouts, id)
	return nil
}

func cloneUser(u model.User) model.User {
	u.Height = cloneString(u.Height)
	u.Weight = cloneString(u.Weight)
	u.Age = cloneString(u.Age)
	u.Gender = cloneString(u.Gender)
	return u
}

func cloneWorkout(w model.Workout) model.Workout {
	w.Notes = cloneString(w.Notes)
	return w
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
