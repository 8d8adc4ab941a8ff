package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/store"
	"github.com/nhle/todo/tests/testutil"
)

func mustAppend(t *testing.T, s *store.SQLiteStore, todo model.Todo) int {
	t.Helper()

	index, err := s.Append(context.Background(), todo)
	if err != nil {
		t.Fatalf("appending %q: %v", todo.Name, err)
	}
	return index
}

func TestAppendReturnsPositionalIndex(t *testing.T) {
	s := testutil.NewTestStore(t)

	first := mustAppend(t, s, model.Todo{ID: "1", Name: "Buy milk"})
	second := mustAppend(t, s, model.Todo{ID: "2", Name: "Call mom"})

	if first != 0 {
		t.Errorf("first index = %d, want 0", first)
	}
	if second != 1 {
		t.Errorf("second index = %d, want 1", second)
	}
}

func TestTodosPreserveInsertionOrder(t *testing.T) {
	s := testutil.NewTestStore(t)

	names := []string{"first", "second", "third"}
	for i, name := range names {
		mustAppend(t, s, model.Todo{ID: string(rune('a' + i)), Name: name})
	}

	todos, err := s.Todos(context.Background())
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}
	if len(todos) != len(names) {
		t.Fatalf("got %d todos, want %d", len(todos), len(names))
	}
	for i, name := range names {
		if todos[i].Name != name {
			t.Errorf("todos[%d].Name = %q, want %q", i, todos[i].Name, name)
		}
	}
}

func TestAppendDefaultsEmptyID(t *testing.T) {
	s := testutil.NewTestStore(t)

	mustAppend(t, s, model.Todo{Name: "no id"})

	todos, err := s.Todos(context.Background())
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("got %d todos, want 1", len(todos))
	}
	if todos[0].ID == "" {
		t.Error("expected a generated id, got empty string")
	}
}

func TestPutAtOverwritesRecord(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	mustAppend(t, s, model.Todo{ID: "1", Name: "old name"})

	updated := model.Todo{ID: "1", Name: "new name", Completed: true}
	if err := s.PutAt(ctx, 0, updated); err != nil {
		t.Fatalf("putting at index 0: %v", err)
	}

	todos, err := s.Todos(ctx)
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}
	if todos[0].Name != "new name" || !todos[0].Completed {
		t.Errorf("got %+v, want name %q and completed", todos[0], "new name")
	}
}

func TestPutAtStaleIndex(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	mustAppend(t, s, model.Todo{ID: "1", Name: "only"})

	err := s.PutAt(ctx, 1, model.Todo{ID: "1", Name: "x"})
	if !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Errorf("PutAt(1) error = %v, want ErrIndexOutOfRange", err)
	}

	err = s.PutAt(ctx, -1, model.Todo{ID: "1", Name: "x"})
	if !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Errorf("PutAt(-1) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestDeleteAtShiftsLaterIndices(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	mustAppend(t, s, model.Todo{ID: "1", Name: "first"})
	mustAppend(t, s, model.Todo{ID: "2", Name: "second"})
	mustAppend(t, s, model.Todo{ID: "3", Name: "third"})

	if err := s.DeleteAt(ctx, 1); err != nil {
		t.Fatalf("deleting at index 1: %v", err)
	}

	todos, err := s.Todos(ctx)
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("got %d todos, want 2", len(todos))
	}
	if todos[0].Name != "first" || todos[1].Name != "third" {
		t.Errorf("got [%q, %q], want [first, third]", todos[0].Name, todos[1].Name)
	}

	// Index 2 no longer exists after the shift.
	if err := s.DeleteAt(ctx, 2); !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Errorf("DeleteAt(2) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestUpdateByID(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	mustAppend(t, s, model.Todo{ID: "1", Name: "task", CreatedAt: created})

	todo, err := s.TodoByID(ctx, "1")
	if err != nil {
		t.Fatalf("getting todo: %v", err)
	}

	todo.Completed = true
	if err := s.Update(ctx, *todo); err != nil {
		t.Fatalf("updating todo: %v", err)
	}

	got, err := s.TodoByID(ctx, "1")
	if err != nil {
		t.Fatalf("re-getting todo: %v", err)
	}
	if !got.Completed {
		t.Error("expected todo to be completed after update")
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
}

func TestUpdateMissingID(t *testing.T) {
	s := testutil.NewTestStore(t)

	err := s.Update(context.Background(), model.Todo{ID: "ghost", Name: "x"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Update error = %v, want ErrNotFound", err)
	}
}

func TestDeleteByID(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	mustAppend(t, s, model.Todo{ID: "1", Name: "keep"})
	mustAppend(t, s, model.Todo{ID: "2", Name: "remove"})

	if err := s.Delete(ctx, "2"); err != nil {
		t.Fatalf("deleting todo: %v", err)
	}

	todos, err := s.Todos(ctx)
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}
	if len(todos) != 1 || todos[0].ID != "1" {
		t.Errorf("got %+v, want only todo 1", todos)
	}

	if err := s.Delete(ctx, "2"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestTodoByIDMissing(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.TodoByID(context.Background(), "ghost")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("TodoByID error = %v, want ErrNotFound", err)
	}
}

func TestCount(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if count != 0 {
		t.Errorf("empty count = %d, want 0", count)
	}

	mustAppend(t, s, model.Todo{ID: "1", Name: "a"})
	mustAppend(t, s, model.Todo{ID: "2", Name: "b"})

	count, err = s.Count(ctx)
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestReopenRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "todo.db")
	ctx := context.Background()

	want := []model.Todo{
		{ID: "1", Name: "first", Completed: false, CreatedAt: time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "second", Completed: true, CreatedAt: time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)},
		{ID: "3", Name: "no created time"},
	}

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	for _, todo := range want {
		if _, err := s.Append(ctx, todo); err != nil {
			t.Fatalf("appending %q: %v", todo.Name, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("closing store: %v", err)
	}

	reopened, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Todos(ctx)
	if err != nil {
		t.Fatalf("listing after reopen: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d todos after reopen, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("todos[%d].ID = %q, want %q", i, got[i].ID, want[i].ID)
		}
		if got[i].Name != want[i].Name {
			t.Errorf("todos[%d].Name = %q, want %q", i, got[i].Name, want[i].Name)
		}
		if got[i].Completed != want[i].Completed {
			t.Errorf("todos[%d].Completed = %v, want %v", i, got[i].Completed, want[i].Completed)
		}
		if !got[i].CreatedAt.Equal(want[i].CreatedAt) {
			t.Errorf("todos[%d].CreatedAt = %v, want %v", i, got[i].CreatedAt, want[i].CreatedAt)
		}
	}
}
