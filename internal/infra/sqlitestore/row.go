package sqlitestore

import (
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// taskRow is the stored representation of a task.
// created_at is kept as text and parsed on read.
type taskRow struct {
	Description string
	CreatedAt   string
	ID          int64
	Done        bool
}

func newTaskRow(description string, created time.Time) taskRow {
	return taskRow{
		Description: description,
		CreatedAt:   domain.FormatTimestamp(created),
	}
}

// fields returns scan destinations in column order: id, description, done, created_at.
func (r *taskRow) fields() []any {
	return []any{&r.ID, &r.Description, &r.Done, &r.CreatedAt}
}

func (r *taskRow) toTask() *domain.Task {
	return &domain.Task{
		ID:          r.ID,
		Description: r.Description,
		Done:        r.Done,
		Created:     domain.ParseTimestamp(r.CreatedAt),
	}
}
