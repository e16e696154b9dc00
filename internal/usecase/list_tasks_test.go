package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_Execute_Empty(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewListTasks(repo, &testutil.RecordingLogger{})

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	assert.NotNil(t, out.Tasks)
	assert.Empty(t, out.Tasks)
}

func TestListTasks_Execute_OrderedByID(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[3] = &domain.Task{ID: 3, Description: "third", Created: domain.ParseTimestamp("2025-01-01 00:00:03")}
	repo.Tasks[1] = &domain.Task{ID: 1, Description: "first", Created: domain.ParseTimestamp("2025-01-01 00:00:01")}
	repo.Tasks[2] = &domain.Task{ID: 2, Description: "second", Done: true, Created: domain.ParseTimestamp("2025-01-01 00:00:02")}
	uc := NewListTasks(repo, &testutil.RecordingLogger{})

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, int64(1), out.Tasks[0].ID)
	assert.Equal(t, int64(2), out.Tasks[1].ID)
	assert.Equal(t, int64(3), out.Tasks[2].ID)
	assert.Zero(t, out.InvalidTimes)
}

func TestListTasks_Execute_MalformedTimestamp(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Description: "ok", Created: domain.ParseTimestamp("2025-01-01 00:00:01")}
	repo.Tasks[2] = &domain.Task{ID: 2, Description: "corrupt", Created: domain.ParseTimestamp("??")}
	logger := &testutil.RecordingLogger{}
	uc := NewListTasks(repo, logger)

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, 1, out.InvalidTimes)
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "WARN", logger.Entries[0].Level)
	assert.Equal(t, int64(2), logger.Entries[0].TaskID)
}

func TestListTasks_Execute_Error(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.ListErr = &domain.StorageError{Op: "list tasks", Err: assert.AnError}
	uc := NewListTasks(repo, &testutil.RecordingLogger{})

	_, err := uc.Execute(context.Background(), ListTasksInput{})

	assert.ErrorIs(t, err, assert.AnError)
}
