package model

import "time"

// Todo is a single task item persisted in the local store.
type Todo struct {
	// ID is assigned once when the todo is created and never changed
	// by later edits. It is derived from the creation instant; the
	// store does not enforce uniqueness.
	ID string `json:"id" db:"id"`

	// Name is the task text. The viewmodel rejects names that are
	// empty after trimming before they ever reach the store.
	Name string `json:"name" db:"name"`

	Completed bool `json:"completed" db:"completed"`

	// CreatedAt is the creation instant. A zero value means the todo
	// carries no creation time and is excluded from the Today filter.
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
}

// CreatedOn reports whether the todo was created on the same local
// calendar date as ref. Todos without a creation time never match.
func (t Todo) CreatedOn(ref time.Time) bool {
	if t.CreatedAt.IsZero() {
		return false
	}
	y1, m1, d1 := t.CreatedAt.Local().Date()
	y2, m2, d2 := ref.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FilterMode selects which subset of todos the list view shows.
// It is pure UI state and is never persisted.
type FilterMode int

const (
	// FilterAll shows every todo in insertion order.
	FilterAll FilterMode = iota
	// FilterToday shows only todos created on the current calendar date.
	FilterToday
)

// String returns the display label for the filter mode.
func (f FilterMode) String() string {
	switch f {
	case FilterToday:
		return "Today"
	default:
		return "All"
	}
}
