// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Errors set on the mock are returned before any state is touched.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks       map[int64]*domain.Task
	InsertErr   error
	GetErr      error
	ListErr     error
	MarkDoneErr error
	DeleteErr   error
	NextIDN     int64
	WriteCount  int // Number of successful mutating calls
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:   make(map[int64]*domain.Task),
		NextIDN: 1,
	}
}

// Insert stores a new task.
func (m *MockTaskRepository) Insert(_ context.Context, description string, created time.Time) (int64, error) {
	if m.InsertErr != nil {
		return 0, m.InsertErr
	}
	id := m.NextIDN
	m.NextIDN++
	m.Tasks[id] = &domain.Task{
		ID:          id,
		Description: description,
		Created:     domain.NewTimestamp(created),
	}
	m.WriteCount++
	return id, nil
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(_ context.Context, id int64) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}
	return task, nil
}

// List returns all tasks ordered by ID.
func (m *MockTaskRepository) List(_ context.Context) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		tasks = append(tasks, t)
	}
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return int(a.ID - b.ID)
	})
	return tasks, nil
}

// MarkDone sets done=true.
func (m *MockTaskRepository) MarkDone(_ context.Context, id int64) error {
	if m.MarkDoneErr != nil {
		return m.MarkDoneErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return &domain.NotFoundError{ID: id}
	}
	task.Done = true
	m.WriteCount++
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(_ context.Context, id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.Tasks[id]; !ok {
		return &domain.NotFoundError{ID: id}
	}
	delete(m.Tasks, id)
	m.WriteCount++
	return nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	Err         error
	Initialized bool
}

// Initialize marks the store as initialized.
func (m *MockStoreInitializer) Initialize(_ context.Context) error {
	if m.Err != nil {
		return m.Err
	}
	m.Initialized = true
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config, or defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LogEntry is a captured log call.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int64
}

// String renders the entry for assertion messages.
func (e LogEntry) String() string {
	return fmt.Sprintf("%s task-%d [%s] %s", e.Level, e.TaskID, e.Category, e.Msg)
}

// RecordingLogger is a domain.Logger that keeps entries in memory.
type RecordingLogger struct {
	Entries []LogEntry
}

func (l *RecordingLogger) record(level string, taskID int64, category, msg string) {
	l.Entries = append(l.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (l *RecordingLogger) Debug(taskID int64, category, msg string) {
	l.record("DEBUG", taskID, category, msg)
}

// Info records an info entry.
func (l *RecordingLogger) Info(taskID int64, category, msg string) {
	l.record("INFO", taskID, category, msg)
}

// Warn records a warning entry.
func (l *RecordingLogger) Warn(taskID int64, category, msg string) {
	l.record("WARN", taskID, category, msg)
}

// Error records an error entry.
func (l *RecordingLogger) Error(taskID int64, category, msg string) {
	l.record("ERROR", taskID, category, msg)
}
