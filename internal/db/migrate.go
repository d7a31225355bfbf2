package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so it
// runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS nodes (
		id          TEXT PRIMARY KEY,
		parent_id   TEXT REFERENCES nodes(id) ON DELETE CASCADE,
		kind        TEXT NOT NULL
		            CHECK(kind IN ('box','receipt','tool','electronic','accessory')),
		order_index INTEGER NOT NULL DEFAULT 0,
		label       TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		amount      REAL NOT NULL DEFAULT 0,
		date        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_nodes_parent ON nodes(parent_id, order_index)`,

	// Only boxes may be parents.
	`CREATE TRIGGER IF NOT EXISTS trg_nodes_parent_is_box
		BEFORE INSERT ON nodes
		WHEN NEW.parent_id IS NOT NULL
		 AND (SELECT kind FROM nodes WHERE id = NEW.parent_id) <> 'box'
		BEGIN
			SELECT RAISE(ABORT, 'parent node is not a box');
		END`,

	`CREATE TRIGGER IF NOT EXISTS trg_nodes_reparent_is_box
		BEFORE UPDATE OF parent_id ON nodes
		WHEN NEW.parent_id IS NOT NULL
		 AND (SELECT kind FROM nodes WHERE id = NEW.parent_id) <> 'box'
		BEGIN
			SELECT RAISE(ABORT, 'parent node is not a box');
		END`,
}
