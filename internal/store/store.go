package store

import (
	"context"
	"errors"

	"github.com/nhle/todo/internal/model"
)

// ErrIndexOutOfRange is returned by positional operations when the given
// index does not address a record in the current sequence, typically
// because a record was deleted after the index was observed.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrNotFound is returned by id-keyed operations when no record with the
// given id exists.
var ErrNotFound = errors.New("todo not found")

// Store defines the persistence interface for the ordered todo sequence.
//
// Records live in a single insertion-ordered sequence. They can be
// addressed either positionally (Append/PutAt/DeleteAt, where the index
// is the record's current offset and shifts on deletion) or directly by
// id (TodoByID/Update/Delete, backed by the primary key so mutations
// never re-scan the sequence).
type Store interface {
	// Append adds a todo to the end of the sequence and returns its
	// positional index.
	Append(ctx context.Context, todo model.Todo) (int, error)

	// Todos returns the current snapshot in insertion order.
	Todos(ctx context.Context) ([]model.Todo, error)

	// PutAt overwrites the record at a previously observed index.
	PutAt(ctx context.Context, index int, todo model.Todo) error

	// DeleteAt removes the record at index. Subsequent indices shift
	// down by one.
	DeleteAt(ctx context.Context, index int) error

	// TodoByID returns the record with the given id.
	TodoByID(ctx context.Context, id string) (*model.Todo, error)

	// Update overwrites the record whose id matches todo.ID.
	Update(ctx context.Context, todo model.Todo) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error

	// Count returns the number of records in the sequence.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying storage handle.
	Close() error
}
