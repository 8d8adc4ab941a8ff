// Package viewmodel exposes the operations the UI invokes: add, toggle,
// edit, delete, and the filtered read-only projection of the store's
// contents. It owns validation and converts every failure into a short
// user-displayable message; no structured errors cross this boundary.
package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/store"
)

// ValidationError reports input rejected before it reaches the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ViewModel presents a filtered projection of the store's contents and
// serializes all mutations through it. It holds no copy of the records
// beyond the snapshot materialized per read.
type ViewModel struct {
	store  store.Store
	logger *log.Logger
	filter model.FilterMode

	// now is swapped out in tests that pin the calendar date.
	now func() time.Time
}

// New creates a ViewModel over the given store.
func New(s store.Store, logger *log.Logger) *ViewModel {
	return &ViewModel{
		store:  s,
		logger: logger,
		filter: model.FilterAll,
		now:    time.Now,
	}
}

// Add validates the name and appends the new todo. The id is derived
// from the current instant, never from the supplied createdAt, so
// backdated todos still get distinct ids. A zero createdAt defaults
// to now.
func (vm *ViewModel) Add(ctx context.Context, name string, createdAt time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Message: "todo name must not be empty"}
	}

	now := vm.now()
	if createdAt.IsZero() {
		createdAt = now
	}

	todo := model.Todo{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Name:      name,
		Completed: false,
		CreatedAt: createdAt,
	}

	if _, err := vm.store.Append(ctx, todo); err != nil {
		vm.logger.Error("adding todo failed", "name", name, "err", err)
		return fmt.Errorf("adding todo: %w", err)
	}
	return nil
}

// Toggle flips the completion state of the todo with the given id.
// The mutation is applied to a copy and persisted before any caller
// sees the change, so a failed write leaves the visible state intact.
func (vm *ViewModel) Toggle(ctx context.Context, id string) error {
	todo, err := vm.store.TodoByID(ctx, id)
	if err != nil {
		vm.logger.Error("loading todo for toggle failed", "id", id, "err", err)
		return fmt.Errorf("toggling todo: %w", err)
	}

	updated := *todo
	updated.Completed = !updated.Completed

	if err := vm.store.Update(ctx, updated); err != nil {
		vm.logger.Error("toggling todo failed", "id", id, "err", err)
		return fmt.Errorf("toggling todo: %w", err)
	}
	return nil
}

// Edit replaces the name of the todo with the given id. The id and
// creation time are never changed by an edit.
func (vm *ViewModel) Edit(ctx context.Context, id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return &ValidationError{Message: "todo name must not be empty"}
	}

	todo, err := vm.store.TodoByID(ctx, id)
	if err != nil {
		vm.logger.Error("loading todo for edit failed", "id", id, "err", err)
		return fmt.Errorf("editing todo: %w", err)
	}

	updated := *todo
	updated.Name = newName

	if err := vm.store.Update(ctx, updated); err != nil {
		vm.logger.Error("editing todo failed", "id", id, "err", err)
		return fmt.Errorf("editing todo: %w", err)
	}
	return nil
}

// Delete removes the todo with the given id.
func (vm *ViewModel) Delete(ctx context.Context, id string) error {
	if err := vm.store.Delete(ctx, id); err != nil {
		vm.logger.Error("deleting todo failed", "id", id, "err", err)
		return fmt.Errorf("deleting todo: %w", err)
	}
	return nil
}

// SetFilter switches the active filter mode. Transitions are immediate;
// the next List call reflects the new mode.
func (vm *ViewModel) SetFilter(mode model.FilterMode) {
	vm.filter = mode
}

// Filter returns the active filter mode.
func (vm *ViewModel) Filter() model.FilterMode {
	return vm.filter
}

// List returns the current snapshot under the active filter mode, in
// insertion order. Under Today, only todos created on the current local
// calendar date are included; todos without a creation time never are.
func (vm *ViewModel) List(ctx context.Context) ([]model.Todo, error) {
	todos, err := vm.store.Todos(ctx)
	if err != nil {
		vm.logger.Error("listing todos failed", "err", err)
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	if vm.filter == model.FilterAll {
		return todos, nil
	}

	ref := vm.now()
	var filtered []model.Todo
	for _, t := range todos {
		if t.CreatedOn(ref) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Counts returns the total record count and the size of the Today
// projection. Both are recomputed from a fresh snapshot on every call.
func (vm *ViewModel) Counts(ctx context.Context) (all, today int, err error) {
	todos, err := vm.store.Todos(ctx)
	if err != nil {
		vm.logger.Error("counting todos failed", "err", err)
		return 0, 0, fmt.Errorf("counting todos: %w", err)
	}

	ref := vm.now()
	for _, t := range todos {
		if t.CreatedOn(ref) {
			today++
		}
	}
	return len(todos), today, nil
}

// UserMessage converts an operation error into the short human-readable
// string shown in the status bar. A nil error yields an empty string.
func (vm *ViewModel) UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, store.ErrNotFound):
		return "that todo no longer exists"
	case errors.Is(err, store.ErrIndexOutOfRange):
		return "that todo no longer exists"
	default:
		return "could not access your todos"
	}
}
