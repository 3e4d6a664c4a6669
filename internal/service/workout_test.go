package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fittrack/fittrack-go/internal/model"
)

func TestCreateWorkout_StampsDateAndOwner(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "u1", "e1@example.com", "p1")
	fixed := time.Date(2026, 10, 19, 7, 30, 0, 0, time.UTC)
	env.workouts.now = func() time.Time { return fixed }

	got, err := env.workouts.CreateWorkout(context.Background(), user.ID, model.CreateWorkoutRequest{
		Type:      "run",
		Duration:  "30",
		Intensity: "high",
	})
	if err != nil {
		t.Fatalf("CreateWorkout() unexpected error: %v", err)
	}
	if !got.Date.Equal(fixed) {
		t.Errorf("Date = %v, want %v", got.Date, fixed)
	}
	if got.User.ID != user.ID {
		t.Errorf("owner = %d, want %d", got.User.ID, user.ID)
	}
	if got.Notes != nil {
		t.Errorf("Notes = %q, want nil", *got.Notes)
	}
}

func TestCreateWorkout_Validation(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "u1", "e1@example.com", "p1")

	cases := []struct {
		req   model.CreateWorkoutRequest
		field string
	}{
		{model.CreateWorkoutRequest{Duration: "30", Intensity: "high"}, "type"},
		{model.CreateWorkoutRequest{Type: "run", Intensity: "high"}, "duration"},
		{model.CreateWorkoutRequest{Type: "run", Duration: "30"}, "intensity"},
		{model.CreateWorkoutRequest{Type: "run", Duration: "123456789012345678901", Intensity: "high"}, "duration"},
	}

	for _, tc := range cases {
		_, err := env.workouts.CreateWorkout(context.Background(), user.ID, tc.req)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != tc.field {
			t.Errorf("expected %s ValidationError, got %v", tc.field, err)
		}
	}
}

func TestWorkouts_OwnershipScoping(t *testing.T) {
	env := newTestEnv()
	a := env.register(t, "a", "a@example.com", "pa")
	b := env.register(t, "b", "b@example.com", "pb")

	w, err := env.workouts.CreateWorkout(context.Background(), a.ID, model.CreateWorkoutRequest{
		Type: "run", Duration: "30", Intensity: "high",
	})
	if err != nil {
		t.Fatalf("CreateWorkout() unexpected error: %v", err)
	}

	if _, err := env.workouts.GetWorkout(context.Background(), b.ID, w.ID); err != ErrWorkoutNotFound {
		t.Errorf("GetWorkout() by other user: expected ErrWorkoutNotFound, got %v", err)
	}
	if _, err := env.workouts.GetWorkout(context.Background(), b.ID, 9999); err != ErrWorkoutNotFound {
		t.Errorf("GetWorkout() missing: expected ErrWorkoutNotFound, got %v", err)
	}
	if _, err := env.workouts.UpdateWorkout(context.Background(), b.ID, w.ID, model.UpdateWorkoutRequest{Type: strPtr("x")}); err != ErrWorkoutNotFound {
		t.Errorf("UpdateWorkout() by other user: expected ErrWorkoutNotFound, got %v", err)
	}
	if err := env.workouts.DeleteWorkout(context.Background(), b.ID, w.ID); err != ErrWorkoutNotFound {
		t.Errorf("DeleteWorkout() by other user: expected ErrWorkoutNotFound, got %v", err)
	}

	listB, err := env.workouts.ListWorkouts(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("ListWorkouts() unexpected error: %v", err)
	}
	if listB == nil || len(listB) != 0 {
		t.Errorf("ListWorkouts() for b = %v, want empty non-nil slice", listB)
	}

	listA, _ := env.workouts.ListWorkouts(context.Background(), a.ID)
	if len(listA) != 1 || listA[0].ID != w.ID {
		t.Errorf("ListWorkouts() for a = %+v", listA)
	}
}

func TestUpdateWorkout_KeepsDate(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "u1", "e1@example.com", "p1")
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	env.workouts.now = func() time.Time { return created }

	w, _ := env.workouts.CreateWorkout(context.Background(), user.ID, model.CreateWorkoutRequest{
		Type: "run", Duration: "30", Intensity: "high",
	})

	env.workouts.now = func() time.Time { return created.Add(48 * time.Hour) }
	got, err := env.workouts.UpdateWorkout(context.Background(), user.ID, w.ID, model.UpdateWorkoutRequest{
		Intensity: strPtr("low"),
		Notes:     strPtr("easy day"),
	})
	if err != nil {
		t.Fatalf("UpdateWorkout() unexpected error: %v", err)
	}
	if !got.Date.Equal(created) {
		t.Errorf("Date changed to %v", got.Date)
	}
	if got.Type != "run" || got.Intensity != "low" || got.Notes == nil || *got.Notes != "easy day" {
		t.Errorf("UpdateWorkout() = %+v", got)
	}

	if _, err := env.workouts.UpdateWorkout(context.Background(), user.ID, w.ID, model.UpdateWorkoutRequest{Type: strPtr(" ")}); err == nil {
		t.Error("UpdateWorkout() expected error for blank type")
	}
}

func TestUpdateWorkout_TrimsBeforeLengthCheck(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "u1", "e1@example.com", "p1")
	padded := "run" + strings.Repeat(" ", 60)

	created, err := env.workouts.CreateWorkout(context.Background(), user.ID, model.CreateWorkoutRequest{
		Type:      padded,
		Duration:  "30",
		Intensity: "high",
	})
	if err != nil {
		t.Fatalf("CreateWorkout() unexpected error: %v", err)
	}

	got, err := env.workouts.UpdateWorkout(context.Background(), user.ID, created.ID, model.UpdateWorkoutRequest{
		Type:      strPtr(padded),
		Intensity: strPtr("  low "),
	})
	if err != nil {
		t.Fatalf("UpdateWorkout() unexpected error: %v", err)
	}
	if got.Type != "run" || got.Intensity != "low" {
		t.Errorf("UpdateWorkout() = %+v, want trimmed type and intensity", got)
	}

	_, err = env.workouts.UpdateWorkout(context.Background(), user.ID, created.ID, model.UpdateWorkoutRequest{
		Duration: strPtr("   "),
	})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "duration" {
		t.Errorf("expected duration ValidationError, got %v", err)
	}
}

func TestDeleteWorkout(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "u1", "e1@example.com", "p1")
	w, _ := env.workouts.CreateWorkout(context.Background(), user.ID, model.CreateWorkoutRequest{
		Type: "run", Duration: "30", Intensity: "high",
	})

	if err := env.workouts.DeleteWorkout(context.Background(), user.ID, w.ID); err != nil {
		t.Fatalf("DeleteWorkout() unexpected error: %v", err)
	}
	if _, err := env.workouts.GetWorkout(context.Background(), user.ID, w.ID); err != ErrWorkoutNotFound {
		t.Errorf("GetWorkout() after delete: expected ErrWorkoutNotFound, got %v", err)
	}
}
