package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks        []*domain.Task // All tasks ordered by ID (never nil)
	InvalidTimes int            // Number of tasks whose stored timestamp could not be parsed
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, logger domain.Logger) *ListTasks {
	return &ListTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute lists all tasks.
func (uc *ListTasks) Execute(ctx context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	out := &ListTasksOutput{Tasks: tasks}
	for _, t := range tasks {
		if !t.Created.Valid {
			out.InvalidTimes++
			uc.logger.Warn(t.ID, "task", fmt.Sprintf("malformed created_at: %q", t.Created.Raw))
		}
	}
	return out, nil
}
