// Package sqlitestore provides a SQLite-backed implementation of TaskRepository.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"github.com/runoshun/todo/internal/domain"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
)

const driverName = "sqlite3"

// busyTimeoutMillis bounds how long a writer waits on another process's lock.
const busyTimeoutMillis = 5000

const (
	createTaskTable = `CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT NOT NULL,
	done BOOLEAN NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
)`
	insertTask     = `INSERT INTO tasks (description, done, created_at) VALUES (?, 0, ?)`
	selectTask     = `SELECT id, description, done, created_at FROM tasks WHERE id = ?`
	selectAllTasks = `SELECT id, description, done, created_at FROM tasks ORDER BY id ASC`
	updateTaskDone = `UPDATE tasks SET done = 1 WHERE id = ?`
	deleteTask     = `DELETE FROM tasks WHERE id = ?`
)

// Ensure Store implements the domain ports.
var (
	_ domain.TaskRepository   = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)

// Store implements domain.TaskRepository on a single SQLite database file.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if absent) the database file at path.
// The caller must Close the returned Store.
func Open(path string) (*Store, error) {
	dsn, err := fileDSN(path)
	if err != nil {
		return nil, &domain.StorageError{Op: "open database", Err: err}
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, &domain.StorageError{Op: "open database", Err: err}
	}
	// One connection per process.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &domain.StorageError{Op: "open database", Err: err}
	}
	return &Store{db: db, path: path}, nil
}

// fileDSN builds a file: URI for path. SQLite decodes the URI path, so
// characters such as '#', '?' and '%' must be escaped.
func fileDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: "_busy_timeout=" + strconv.Itoa(busyTimeoutMillis),
	}
	return u.String(), nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return &domain.StorageError{Op: "close database", Err: err}
	}
	return nil
}

// Initialize creates the task table if it doesn't exist.
func (s *Store) Initialize(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTaskTable); err != nil {
		return &domain.StorageError{Op: "create tasks table", Err: err}
	}
	return nil
}

// Insert stores a new task and returns its assigned ID.
func (s *Store) Insert(ctx context.Context, description string, created time.Time) (int64, error) {
	description, err := domain.ValidateDescription(description)
	if err != nil {
		return 0, err
	}

	row := newTaskRow(description, created)
	res, err := s.db.ExecContext(ctx, insertTask, row.Description, row.CreatedAt)
	if err != nil {
		return 0, &domain.StorageError{Op: "insert task", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &domain.StorageError{Op: "insert task", Err: err}
	}
	return id, nil
}

// Get retrieves a task by ID.
func (s *Store) Get(ctx context.Context, id int64) (*domain.Task, error) {
	var row taskRow
	err := s.db.QueryRowContext(ctx, selectTask, id).Scan(row.fields()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "get task", Err: err}
	}
	return row.toTask(), nil
}

// List retrieves all tasks ordered by ID.
// A row with a malformed timestamp is returned with an invalid Created value.
func (s *Store) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, selectAllTasks)
	if err != nil {
		return nil, &domain.StorageError{Op: "list tasks", Err: err}
	}
	defer func() { _ = rows.Close() }()

	tasks := []*domain.Task{}
	for rows.Next() {
		var row taskRow
		if err := rows.Scan(row.fields()...); err != nil {
			return nil, &domain.StorageError{Op: "scan task", Err: err}
		}
		tasks = append(tasks, row.toTask())
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list tasks", Err: err}
	}
	return tasks, nil
}

// MarkDone sets done=true. Marking an already-done task again is not an error.
func (s *Store) MarkDone(ctx context.Context, id int64) error {
	return s.execByID(ctx, "mark task done", updateTaskDone, id)
}

// Delete removes a task permanently.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.execByID(ctx, "delete task", deleteTask, id)
}

// execByID runs a single-row statement and reports NotFoundError when no row matched.
func (s *Store) execByID(ctx context.Context, op, query string, id int64) error {
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return &domain.StorageError{Op: op, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &domain.StorageError{Op: op, Err: err}
	}
	if n == 0 {
		return &domain.NotFoundError{ID: id}
	}
	return nil
}
