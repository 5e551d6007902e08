package todo

import (
	"strings"
	"time"
)

// Todo represents a single task.
type Todo struct {
	// Title is the short summary of the todo (max 500 chars).
	Title string `json:"title" yaml:"title"`

	// Description provides additional context about the todo.
	Description string `json:"description" yaml:"description"`

	// CreatedAt is when this instance of the todo began. It never changes.
	CreatedAt time.Time `json:"date" yaml:"date"`

	// Status is the current state of the todo.
	Status Status `json:"status" yaml:"status"`

	// Lifespan is how long after CreatedAt the todo stays open.
	Lifespan Lifespan `json:"lifespan" yaml:"lifespan"`

	// Lifecycle is the recurrence policy applied on completion.
	Lifecycle Lifecycle `json:"lifecycle" yaml:"lifecycle"`
}

// NewOptions configures a new todo.
type NewOptions struct {
	Description string
	Lifespan    Lifespan
	Lifecycle   Lifecycle
}

// New returns a validated open todo created at now.
// A zero Lifespan defaults to one day and an empty Lifecycle to Once.
func New(title string, opts NewOptions, now time.Time) (Todo, error) {
	lifespan := opts.Lifespan
	if lifespan == (Lifespan{}) {
		lifespan = DefaultLifespan
	}
	lifecycle := opts.Lifecycle
	if lifecycle == "" {
		lifecycle = LifecycleOnce
	}

	item := Todo{
		Title:       strings.TrimSpace(title),
		Description: opts.Description,
		CreatedAt:   now,
		Status:      StatusOpen,
		Lifespan:    lifespan,
		Lifecycle:   lifecycle,
	}
	if err := ValidateTodo(&item); err != nil {
		return Todo{}, err
	}
	return item, nil
}
