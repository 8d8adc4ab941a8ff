package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
//
// The todos column order (id, name, completed, created_at) is the
// compatibility contract for stored data; any reimplementation must
// read and write the same four fields in the same order.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS todos (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	completed  INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1)),
	created_at DATETIME,
	position   INTEGER NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_todos_position ON todos(position);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
