// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Description string // Task description (required, trimmed)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	TaskID int64 // The ID assigned by the store
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute validates the description and stores a new task.
func (uc *AddTask) Execute(ctx context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	description, err := domain.ValidateDescription(in.Description)
	if err != nil {
		return nil, err
	}

	id, err := uc.tasks.Insert(ctx, description, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	uc.logger.Info(id, "task", fmt.Sprintf("task added: %q", description))
	return &AddTaskOutput{TaskID: id}, nil
}
