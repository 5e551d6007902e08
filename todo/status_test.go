package todo

import (
	"errors"
	"testing"
	"time"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusOpen, StatusDone, true},
		{StatusOpen, StatusOverdue, true},
		{StatusOverdue, StatusDone, true},
		{StatusOverdue, StatusOpen, false},
		{StatusDone, StatusOpen, false},
		{StatusDone, StatusOverdue, false},
		{StatusDone, StatusDone, false},
		{StatusOpen, StatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := Transition(tt.from, tt.to)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestEveryStatusHasTransitionEntry(t *testing.T) {
	for _, s := range ValidStatuses() {
		if _, ok := transitions[s]; !ok {
			t.Errorf("status %q missing from transition table", s)
		}
	}
}

func TestIsExpiredIsStrict(t *testing.T) {
	created := mustTime(t, "2025-01-01T00:00:00Z")
	item := Todo{CreatedAt: created, Lifespan: Lifespan{Amount: 1, Unit: UnitDay}}

	if IsExpired(item, created.Add(24*time.Hour)) {
		t.Fatal("expected todo to be open exactly at expiry")
	}
	if !IsExpired(item, created.Add(24*time.Hour+time.Nanosecond)) {
		t.Fatal("expected todo to be expired just after expiry")
	}
}

func TestCompleteSpawnsSuccessorForRecurringTodo(t *testing.T) {
	created := mustTime(t, "2025-01-01T07:00:00Z")
	item := Todo{
		Title:       "Stretch",
		Description: "ten minutes",
		CreatedAt:   created,
		Status:      StatusOverdue,
		Lifespan:    Lifespan{Amount: 2, Unit: UnitDay},
		Lifecycle:   LifecycleDaily,
	}

	done, successor, err := complete(item)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if done.Status != StatusDone {
		t.Fatalf("expected done status, got %s", done.Status)
	}
	if !done.CreatedAt.Equal(created) {
		t.Fatalf("expected created date to be preserved, got %s", done.CreatedAt)
	}
	if successor == nil {
		t.Fatal("expected successor")
	}
	want := Todo{
		Title:       "Stretch",
		Description: "ten minutes",
		CreatedAt:   created.AddDate(0, 0, 1),
		Status:      StatusOpen,
		Lifespan:    Lifespan{Amount: 2, Unit: UnitDay},
		Lifecycle:   LifecycleDaily,
	}
	if !sameTodo(*successor, want) {
		t.Fatalf("expected successor %+v, got %+v", want, *successor)
	}
}

func TestCompleteOnceHasNoSuccessor(t *testing.T) {
	item := Todo{
		Title:     "File taxes",
		CreatedAt: mustTime(t, "2025-04-01T07:00:00Z"),
		Status:    StatusOpen,
		Lifespan:  Lifespan{Amount: 2, Unit: UnitWeek},
		Lifecycle: LifecycleOnce,
	}

	_, successor, err := complete(item)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if successor != nil {
		t.Fatalf("expected no successor, got %+v", successor)
	}
}

func TestCompleteRejectsDoneTodo(t *testing.T) {
	item := Todo{
		Title:     "Already done",
		CreatedAt: mustTime(t, "2025-04-01T07:00:00Z"),
		Status:    StatusDone,
		Lifespan:  Lifespan{Amount: 1, Unit: UnitDay},
		Lifecycle: LifecycleDaily,
	}

	if _, _, err := complete(item); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

// sameTodo compares todos using time.Equal for the creation date.
func sameTodo(a, b Todo) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return false
	}
	a.CreatedAt, b.CreatedAt = time.Time{}, time.Time{}
	return a == b
}

func TestIsCompletableMatchesTransitionTable(t *testing.T) {
	for _, s := range ValidStatuses() {
		allowed := Transition(s, StatusDone) == nil
		if s.IsCompletable() != allowed {
			t.Errorf("Status(%q).IsCompletable() = %v, transition table allows Done = %v", s, s.IsCompletable(), allowed)
		}
	}
}
