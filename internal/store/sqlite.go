package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/todo/internal/model"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// The store has exactly one writer; a single pooled connection also
	// keeps :memory: databases coherent across queries.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better durability of sequential writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Append adds a todo to the end of the sequence and returns its
// positional index. Generates a UUID if the id is empty; ids are
// otherwise taken as-is with no uniqueness check beyond the primary key.
func (s *SQLiteStore) Append(ctx context.Context, todo model.Todo) (int, error) {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var maxPosition int
	if err := tx.GetContext(ctx, &maxPosition,
		"SELECT COALESCE(MAX(position), 0) FROM todos"); err != nil {
		return 0, fmt.Errorf("getting max position: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO todos (id, name, completed, created_at, position)
		VALUES (?, ?, ?, ?, ?)`,
		todo.ID, todo.Name, boolToInt(todo.Completed),
		nullableTime(todo.CreatedAt), maxPosition+1,
	)
	if err != nil {
		return 0, fmt.Errorf("appending todo: %w", err)
	}

	var count int
	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM todos"); err != nil {
		return 0, fmt.Errorf("counting todos: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing append: %w", err)
	}

	return count - 1, nil
}

// Todos returns the current snapshot in insertion order.
func (s *SQLiteStore) Todos(ctx context.Context) ([]model.Todo, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, name, completed, created_at FROM todos ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

// PutAt overwrites the record at a previously observed positional index.
func (s *SQLiteStore) PutAt(ctx context.Context, index int, todo model.Todo) error {
	id, err := s.idAtIndex(ctx, index)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE todos SET id = ?, name = ?, completed = ?, created_at = ?
		WHERE id = ?`,
		todo.ID, todo.Name, boolToInt(todo.Completed),
		nullableTime(todo.CreatedAt), id,
	)
	if err != nil {
		return fmt.Errorf("putting todo at index %d: %w", index, err)
	}
	return nil
}

// DeleteAt removes the record at index. The positions of later records
// are untouched; their indices shift down because the index is an offset
// into the ordered sequence, not a stored value.
func (s *SQLiteStore) DeleteAt(ctx context.Context, index int) error {
	id, err := s.idAtIndex(ctx, index)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting todo at index %d: %w", index, err)
	}
	return nil
}

// TodoByID returns the record with the given id.
func (s *SQLiteStore) TodoByID(ctx context.Context, id string) (*model.Todo, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT id, name, completed, created_at FROM todos WHERE id = ?", id)

	todo, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("getting todo %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting todo %s: %w", id, err)
	}

	return &todo, nil
}

// Update overwrites the record whose id matches todo.ID.
func (s *SQLiteStore) Update(ctx context.Context, todo model.Todo) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE todos SET name = ?, completed = ?, created_at = ?
		WHERE id = ?`,
		todo.Name, boolToInt(todo.Completed),
		nullableTime(todo.CreatedAt), todo.ID,
	)
	if err != nil {
		return fmt.Errorf("updating todo %s: %w", todo.ID, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("updating todo %s: %w", todo.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the record with the given id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting todo %s: %w", id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("deleting todo %s: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of records in the sequence.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM todos"); err != nil {
		return 0, fmt.Errorf("counting todos: %w", err)
	}
	return count, nil
}

// idAtIndex resolves a positional index to the id of the record at that
// offset in the ordered sequence.
func (s *SQLiteStore) idAtIndex(ctx context.Context, index int) (string, error) {
	if index < 0 {
		return "", ErrIndexOutOfRange
	}

	var id string
	err := s.db.GetContext(ctx, &id,
		"SELECT id FROM todos ORDER BY position LIMIT 1 OFFSET ?", index)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrIndexOutOfRange
		}
		return "", fmt.Errorf("resolving index %d: %w", index, err)
	}
	return id, nil
}

// scanTodo scans a todo row in the fixed column order
// (id, name, completed, created_at).
func scanTodo(row interface{ Scan(dest ...interface{}) error }) (model.Todo, error) {
	var (
		todo         model.Todo
		completedInt int
		createdAt    *time.Time
	)

	err := row.Scan(&todo.ID, &todo.Name, &completedInt, &createdAt)
	if err != nil {
		return model.Todo{}, fmt.Errorf("scanning todo row: %w", err)
	}

	todo.Completed = completedInt != 0
	if createdAt != nil {
		todo.CreatedAt = *createdAt
	}

	return todo, nil
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullableTime maps the zero time to NULL so todos without a creation
// time stay distinguishable after a round-trip.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}
