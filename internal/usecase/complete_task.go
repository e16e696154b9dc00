package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// CompleteTaskInput contains the parameters for marking a task as done.
type CompleteTaskInput struct {
	TaskID int64 // Task ID to complete
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task        *domain.Task // The task after completion
	AlreadyDone bool         // True if the task was done before this call
}

// CompleteTask is the use case for marking a task as done.
// Completing an already-done task succeeds without writing.
type CompleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute marks the task as done.
func (uc *CompleteTask) Execute(ctx context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	if err := domain.ValidateTaskID(in.TaskID); err != nil {
		return nil, err
	}

	task, err := uc.tasks.Get(ctx, in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task.Done {
		return &CompleteTaskOutput{Task: task, AlreadyDone: true}, nil
	}

	if err := uc.tasks.MarkDone(ctx, in.TaskID); err != nil {
		return nil, fmt.Errorf("mark task done: %w", err)
	}
	task.Done = true

	uc.logger.Info(task.ID, "task", "task marked as done")
	return &CompleteTaskOutput{Task: task}, nil
}
