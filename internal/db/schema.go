package db

// SchemaSQL is the current schema of the history database.
//
// Tests load it through GetSchemaSQL instead of declaring their own tables, so repository
// code referencing a missing column fails at test time.
//
// When changing it, add a migration in migrations.go that brings existing databases to
// the same shape.
const SchemaSQL = `
-- Generations (one row per command run that wrote files)
CREATE TABLE IF NOT EXISTS generations (
	id TEXT PRIMARY KEY,
	command TEXT NOT NULL,
	target TEXT NOT NULL,
	files TEXT NOT NULL DEFAULT '[]',
	module_path TEXT,
	warnings TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_generations_command ON generations(command);
CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
