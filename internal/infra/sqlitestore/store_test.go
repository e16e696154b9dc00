package sqlitestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return store
}

func TestStore_Initialize(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}

	// Initialize again should be idempotent
	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() second call error = %v", err)
	}
}

func TestStore_ListEmpty(t *testing.T) {
	store := newTestStore(t)

	tasks, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if tasks == nil {
		t.Error("List() = nil, want empty slice")
	}
	if len(tasks) != 0 {
		t.Errorf("List() returned %d tasks, want 0", len(tasks))
	}
}

func TestStore_InsertAndList(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	start := time.Now().Truncate(time.Second)

	id, err := store.Insert(ctx, "Buy groceries", time.Now())
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if id != 1 {
		t.Errorf("Insert() id = %d, want 1", id)
	}

	tasks, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("List() returned %d tasks, want 1", len(tasks))
	}

	got := tasks[0]
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Description != "Buy groceries" {
		t.Errorf("Description = %q, want %q", got.Description, "Buy groceries")
	}
	if got.Done {
		t.Error("Done = true, want false")
	}
	if !got.Created.Valid {
		t.Fatalf("Created invalid: %q", got.Created.Raw)
	}
	if got.Created.Time.Before(start) {
		t.Errorf("Created = %v, want not before %v", got.Created.Time, start)
	}
}

func TestStore_InsertRejectsBlankDescription(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, desc := range []string{"", "   ", "\t\n"} {
		_, err := store.Insert(ctx, desc, time.Now())
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Insert(%q) error = %v, want ValidationError", desc, err)
		}
	}

	tasks, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("List() returned %d tasks, want 0 after rejected inserts", len(tasks))
	}
}

func TestStore_IDsIncreaseAndAreNotReused(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id1, _ := store.Insert(ctx, "first", time.Now())
	id2, _ := store.Insert(ctx, "second", time.Now())
	if id2 <= id1 {
		t.Fatalf("ids not increasing: %d then %d", id1, id2)
	}

	if err := store.Delete(ctx, id2); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	id3, err := store.Insert(ctx, "third", time.Now())
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if id3 <= id2 {
		t.Errorf("Insert() after delete id = %d, want > %d", id3, id2)
	}
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, _ := store.Insert(ctx, "Read book", time.Now())

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Description != "Read book" {
		t.Errorf("Description = %q, want %q", got.Description, "Read book")
	}

	_, err = store.Get(ctx, 999)
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("Get(999) error = %v, want ErrTaskNotFound", err)
	}
}

func TestStore_MarkDone(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, _ := store.Insert(ctx, "Finish report", time.Now())

	if err := store.MarkDone(ctx, id); err != nil {
		t.Fatalf("MarkDone() error = %v", err)
	}
	got, _ := store.Get(ctx, id)
	if !got.Done {
		t.Error("Done = false after MarkDone")
	}

	// Idempotent
	if err := store.MarkDone(ctx, id); err != nil {
		t.Fatalf("MarkDone() second call error = %v", err)
	}
	got, _ = store.Get(ctx, id)
	if !got.Done {
		t.Error("Done = false after second MarkDone")
	}
}

func TestStore_MarkDoneNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.MarkDone(context.Background(), 42)

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("MarkDone(42) error = %v, want NotFoundError", err)
	}
	if nf.ID != 42 {
		t.Errorf("NotFoundError.ID = %d, want 42", nf.ID)
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id1, _ := store.Insert(ctx, "keep", time.Now())
	id2, _ := store.Insert(ctx, "drop", time.Now())

	if err := store.Delete(ctx, id2); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	tasks, _ := store.List(ctx)
	if len(tasks) != 1 || tasks[0].ID != id1 {
		t.Errorf("List() after Delete = %v, want only id %d", tasks, id1)
	}

	// Deleting again reports not found
	if err := store.Delete(ctx, id2); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("Delete() second call error = %v, want ErrTaskNotFound", err)
	}
}

func TestStore_ListMalformedTimestamp(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.Insert(ctx, "good row", time.Now()); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if _, err := store.db.ExecContext(ctx,
		`INSERT INTO tasks (description, done, created_at) VALUES (?, 0, ?)`, "bad row", "yesterday-ish"); err != nil {
		t.Fatalf("raw insert error = %v", err)
	}

	tasks, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("List() returned %d tasks, want 2", len(tasks))
	}
	if !tasks[0].Created.Valid {
		t.Error("first task timestamp should be valid")
	}
	if tasks[1].Created.Valid {
		t.Error("second task timestamp should be invalid")
	}
	if tasks[1].Created.Raw != "yesterday-ish" {
		t.Errorf("Created.Raw = %q, want %q", tasks[1].Created.Raw, "yesterday-ish")
	}
	if tasks[1].Created.String() != domain.InvalidTimestampText {
		t.Errorf("Created.String() = %q, want placeholder", tasks[1].Created.String())
	}
}

func TestStore_Scenario(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id1, _ := store.Insert(ctx, "Buy groceries", time.Now())
	id2, _ := store.Insert(ctx, "Finish report", time.Now())
	if id1 != 1 || id2 != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", id1, id2)
	}

	tasks, _ := store.List(ctx)
	if len(tasks) != 2 || tasks[0].Done || tasks[1].Done {
		t.Fatalf("unexpected initial list: %+v", tasks)
	}

	if err := store.MarkDone(ctx, 1); err != nil {
		t.Fatalf("MarkDone(1) error = %v", err)
	}
	tasks, _ = store.List(ctx)
	if !tasks[0].Done || tasks[1].Done {
		t.Errorf("after done(1): done flags = %v, %v; want true, false", tasks[0].Done, tasks[1].Done)
	}

	if err := store.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete(2) error = %v", err)
	}
	tasks, _ = store.List(ctx)
	if len(tasks) != 1 || tasks[0].ID != 1 || !tasks[0].Done {
		t.Errorf("after remove(2): %+v, want only done task 1", tasks)
	}
}

func TestStore_OperationsAfterCloseReturnStorageError(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	_, err = store.List(context.Background())
	var serr *domain.StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("List() after Close error = %v, want StorageError", err)
	}
	if serr.Op != "list tasks" {
		t.Errorf("StorageError.Op = %q, want %q", serr.Op, "list tasks")
	}
}

func TestOpen_PathWithURIMetacharacters(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"a#b", "a%20b", "a?b", "with space"} {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			dir := filepath.Join(root, name)
			if err := os.Mkdir(dir, 0o750); err != nil {
				t.Fatalf("Mkdir() error = %v", err)
			}
			path := filepath.Join(dir, "tasks.db")

			store, err := Open(path)
			if err != nil {
				t.Fatalf("Open(%q) error = %v", path, err)
			}
			defer func() { _ = store.Close() }()

			if err := store.Initialize(ctx); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}
			if _, err := store.Insert(ctx, "inside", time.Now()); err != nil {
				t.Fatalf("Insert() error = %v", err)
			}

			if _, err := os.Stat(path); err != nil {
				t.Errorf("database not created at %q: %v", path, err)
			}
			entries, err := os.ReadDir(root)
			if err != nil {
				t.Fatalf("ReadDir() error = %v", err)
			}
			if len(entries) != 1 || entries[0].Name() != name {
				t.Errorf("unexpected entries next to %q: %v", name, entries)
			}
		})
	}
}

func TestFileDSN(t *testing.T) {
	got, err := fileDSN("/tmp/a#b/100%/tasks.db")
	if err != nil {
		t.Fatalf("fileDSN() error = %v", err)
	}
	want := "file:///tmp/a%23b/100%25/tasks.db?_busy_timeout=5000"
	if got != want {
		t.Errorf("fileDSN() = %q, want %q", got, want)
	}
}
