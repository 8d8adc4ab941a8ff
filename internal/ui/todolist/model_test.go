package todolist

import (
	"context"
	"errors"
	"testing"

	"github.com/nhle/todo/internal/keys"
	"github.com/nhle/todo/internal/logging"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/viewmodel"
)

// failingStore reports the same error from every operation.
type failingStore struct{ err error }

func (s failingStore) Append(context.Context, model.Todo) (int, error) { return 0, s.err }
func (s failingStore) Todos(context.Context) ([]model.Todo, error)     { return nil, s.err }
func (s failingStore) PutAt(context.Context, int, model.Todo) error    { return s.err }
func (s failingStore) DeleteAt(context.Context, int) error             { return s.err }
func (s failingStore) TodoByID(context.Context, string) (*model.Todo, error) {
	return nil, s.err
}
func (s failingStore) Update(context.Context, model.Todo) error { return s.err }
func (s failingStore) Delete(context.Context, string) error     { return s.err }
func (s failingStore) Count(context.Context) (int, error)       { return 0, s.err }
func (s failingStore) Close() error                             { return nil }

func TestLoadTodosCarriesReadError(t *testing.T) {
	vm := viewmodel.New(failingStore{err: errors.New("disk read failed")}, logging.Discard())
	m := New(vm, keys.DefaultKeyMap(), 80, 24)

	msg := m.LoadTodos()()

	loaded, ok := msg.(TodosLoadedMsg)
	if !ok {
		t.Fatalf("LoadTodos returned %T, want TodosLoadedMsg", msg)
	}
	if loaded.Err == nil {
		t.Error("expected a read failure to be carried in the message")
	}
}

func TestLoadErrorKeepsExistingItems(t *testing.T) {
	vm := viewmodel.New(failingStore{err: errors.New("disk read failed")}, logging.Discard())
	m := New(vm, keys.DefaultKeyMap(), 80, 24)

	m, _ = m.Update(TodosLoadedMsg{
		Todos: []model.Todo{{ID: "1", Name: "already shown"}},
		All:   1,
	})

	m, _ = m.Update(TodosLoadedMsg{Err: errors.New("disk read failed")})

	if got := len(m.list.Items()); got != 1 {
		t.Errorf("list has %d items after failed reload, want 1", got)
	}
}
