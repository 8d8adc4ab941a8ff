package testutil

import (
	"testing"

	"github.com/nhle/todo/internal/store"
)

// NewTestStore opens a SQLiteStore on a ":memory:" database with the
// todos schema migrated. The store's single-connection pool keeps the
// in-memory database alive between queries; the handle is released when
// the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
