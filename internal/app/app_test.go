package app

import (
	"context"
	"errors"
	"testing"

	"github.com/nhle/todo/internal/logging"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/ui/todolist"
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

func newFailingModel() (Model, *viewmodel.ViewModel) {
	vm := viewmodel.New(failingStore{err: errors.New("disk read failed")}, logging.Discard())
	return New(vm), vm
}

func TestLoadErrorSurfacesInStatusBar(t *testing.T) {
	m, vm := newFailingModel()

	readErr := errors.New("disk read failed")
	updated, _ := m.Update(todolist.TodosLoadedMsg{Err: readErr})

	got, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	if got.statusMessage != vm.UserMessage(readErr) {
		t.Errorf("statusMessage = %q, want %q", got.statusMessage, vm.UserMessage(readErr))
	}
	if !got.statusIsError {
		t.Error("expected statusIsError after a failed load")
	}
}

func TestSuccessfulLoadKeepsPendingErrorMessage(t *testing.T) {
	m, _ := newFailingModel()

	updated, _ := m.Update(todolist.TodosLoadedMsg{Err: errors.New("disk read failed")})
	m = updated.(Model)

	// A mutation failure triggers a reload; the reload succeeding must
	// not wipe the message before the user has seen it.
	updated, _ = m.Update(todolist.TodosLoadedMsg{Todos: nil, All: 0, Today: 0})
	m = updated.(Model)

	if m.statusMessage == "" {
		t.Error("status message cleared by a successful load")
	}
}

func TestMutationFailureSetsStatusMessage(t *testing.T) {
	m, vm := newFailingModel()

	writeErr := errors.New("disk full")
	updated, _ := m.finishMutation(writeErr)

	got := updated.(Model)
	if got.statusMessage != vm.UserMessage(writeErr) {
		t.Errorf("statusMessage = %q, want %q", got.statusMessage, vm.UserMessage(writeErr))
	}

	updated, _ = got.finishMutation(nil)
	got = updated.(Model)
	if got.statusMessage != "" {
		t.Errorf("statusMessage = %q after success, want empty", got.statusMessage)
	}
}
