package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesSchemaObjects(t *testing.T) {
	db := openTestDB(t)

	expected := map[string]string{
		"nodes":                     "table",
		"idx_nodes_parent":          "index",
		"trg_nodes_parent_is_box":   "trigger",
		"trg_nodes_reparent_is_box": "trigger",
	}
	for name, typ := range expected {
		var got string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type=? AND name=?`, typ, name).Scan(&got)
		require.NoError(t, err, "%s %s should exist", typ, name)
		assert.Equal(t, name, got)
	}
}

func TestMigrate_KindConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO nodes (id, kind, created_at) VALUES ('n1', 'crate', '2024-01-01T00:00:00Z')`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHECK")
}

func TestMigrate_ParentMustBeBox(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO nodes (id, kind, name, created_at) VALUES ('tool', 'tool', 'Saw', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO nodes (id, parent_id, kind, name, created_at) VALUES ('child', 'tool', 'tool', 'Axe', '2024-01-01T00:00:00Z')`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a box")
}

func TestMigrate_DeleteCascadesToChildren(t *testing.T) {
	db := openTestDB(t)

	stmts := []string{
		`INSERT INTO nodes (id, kind, created_at) VALUES ('root', 'box', '2024-01-01T00:00:00Z')`,
		`INSERT INTO nodes (id, parent_id, kind, created_at) VALUES ('inner', 'root', 'box', '2024-01-01T00:00:00Z')`,
		`INSERT INTO nodes (id, parent_id, kind, name, created_at) VALUES ('leaf', 'inner', 'tool', 'Saw', '2024-01-01T00:00:00Z')`,
	}
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err)
	}

	_, err := db.Exec(`DELETE FROM nodes WHERE id = 'root'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM nodes`).Scan(&count))
	assert.Equal(t, 0, count)
}
