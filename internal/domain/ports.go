package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the task table if it doesn't exist. Safe to call on every startup.
	Initialize(ctx context.Context) error
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// Insert stores a new task and returns its assigned ID.
	Insert(ctx context.Context, description string, created time.Time) (int64, error)

	// Get retrieves a task by ID. Returns NotFoundError if absent.
	Get(ctx context.Context, id int64) (*Task, error)

	// List retrieves all tasks ordered by ID ascending.
	List(ctx context.Context) ([]*Task, error)

	// MarkDone sets done=true. Returns NotFoundError if absent.
	MarkDone(ctx context.Context, id int64) error

	// Delete removes a task permanently. Returns NotFoundError if absent.
	Delete(ctx context.Context, id int64) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over defaults.
	Load() (*Config, error)
}

// Logger writes operational log entries.
// taskID 0 means the entry is not tied to a task.
type Logger interface {
	Debug(taskID int64, category, msg string)
	Info(taskID int64, category, msg string)
	Warn(taskID int64, category, msg string)
	Error(taskID int64, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
