package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/parcel/internal/db"
	"github.com/alexanderramin/parcel/internal/domain"
)

// nodeColumns is the canonical SELECT column list for nodes.
const nodeColumns = `id, parent_id, kind, order_index, label, name, description,
		amount, date, created_at`

// SQLiteNodeRepo implements NodeRepo on top of a *sql.DB or an open *sql.Tx.
type SQLiteNodeRepo struct {
	db db.DBTX
}

// NewSQLiteNodeRepo creates a new SQLiteNodeRepo.
func NewSQLiteNodeRepo(conn db.DBTX) *SQLiteNodeRepo {
	return &SQLiteNodeRepo{db: conn}
}

func (r *SQLiteNodeRepo) Create(ctx context.Context, n *domain.NodeRecord) error {
	query := `INSERT INTO nodes (id, parent_id, kind, order_index, label, name, description,
		amount, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		nullableString(n.ParentID),
		string(n.Kind),
		n.OrderIndex,
		n.Label,
		n.Name,
		n.Description,
		n.Amount,
		n.Date,
		formatTime(n.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting node: %w", err)
	}
	return nil
}

func (r *SQLiteNodeRepo) GetByID(ctx context.Context, id string) (*domain.NodeRecord, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	n, err := scanNode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("node %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning node: %w", err)
	}
	return n, nil
}

// ResolvePrefix expands a full ID or a unique ID prefix into the full ID.
func (r *SQLiteNodeRepo) ResolvePrefix(ctx context.Context, prefix string) (string, error) {
	query := `SELECT id FROM nodes WHERE id LIKE ? ESCAPE '\' ORDER BY id LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, escapeLike(prefix)+"%")
	if err != nil {
		return "", fmt.Errorf("resolving node id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scanning node id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating node ids: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("node %q: %w", prefix, ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		if ids[0] == prefix {
			return ids[0], nil
		}
		return "", fmt.Errorf("node %q: %w", prefix, ErrAmbiguous)
	}
}

func (r *SQLiteNodeRepo) ListChildren(ctx context.Context, parentID string) ([]*domain.NodeRecord, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes WHERE parent_id = ? ORDER BY order_index, rowid`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing child nodes: %w", err)
	}
	defer rows.Close()
	return scanNodes(rows)
}

func (r *SQLiteNodeRepo) ListRoots(ctx context.Context) ([]*domain.NodeRecord, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes WHERE parent_id IS NULL ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing root nodes: %w", err)
	}
	defer rows.Close()
	return scanNodes(rows)
}

func (r *SQLiteNodeRepo) CountChildren(ctx context.Context, parentID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM nodes WHERE parent_id = ?`, parentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting children of %s: %w", parentID, err)
	}
	return n, nil
}

// CountSubtree returns the number of rows in the subtree rooted at id, the
// root included. An unknown id counts as 0.
func (r *SQLiteNodeRepo) CountSubtree(ctx context.Context, id string) (int, error) {
	query := `WITH RECURSIVE subtree(id) AS (
			SELECT id FROM nodes WHERE id = ?
			UNION ALL
			SELECT n.id FROM nodes n JOIN subtree s ON n.parent_id = s.id
		)
		SELECT COUNT(*) FROM subtree`
	var n int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting subtree of %s: %w", id, err)
	}
	return n, nil
}

// NextOrderIndex returns the order index that appends after the last child.
func (r *SQLiteNodeRepo) NextOrderIndex(ctx context.Context, parentID string) (int, error) {
	query := `SELECT COALESCE(MAX(order_index), -1) + 1 FROM nodes WHERE parent_id = ?`
	var next int
	if err := r.db.QueryRowContext(ctx, query, parentID).Scan(&next); err != nil {
		return 0, fmt.Errorf("computing next order index for %s: %w", parentID, err)
	}
	return next, nil
}

// IsDescendant reports whether id sits anywhere in the subtree rooted at
// ancestorID, ancestorID itself included.
func (r *SQLiteNodeRepo) IsDescendant(ctx context.Context, ancestorID, id string) (bool, error) {
	query := `WITH RECURSIVE subtree(id) AS (
			SELECT id FROM nodes WHERE id = ?
			UNION ALL
			SELECT n.id FROM nodes n JOIN subtree s ON n.parent_id = s.id
		)
		SELECT EXISTS(SELECT 1 FROM subtree WHERE id = ?)`
	var found int
	if err := r.db.QueryRowContext(ctx, query, ancestorID, id).Scan(&found); err != nil {
		return false, fmt.Errorf("walking subtree of %s: %w", ancestorID, err)
	}
	return found != 0, nil
}

func (r *SQLiteNodeRepo) SetParent(ctx context.Context, id string, parentID *string, orderIndex int) error {
	query := `UPDATE nodes SET parent_id = ?, order_index = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nullableString(parentID), orderIndex, id)
	if err != nil {
		return fmt.Errorf("moving node: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("node %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a node; ON DELETE CASCADE takes its whole subtree with it.
func (r *SQLiteNodeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM nodes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting node: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("node %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNode(row rowScanner) (*domain.NodeRecord, error) {
	var n domain.NodeRecord
	var parentID sql.NullString
	var kindStr, createdAtStr string

	if err := row.Scan(
		&n.ID, &parentID, &kindStr, &n.OrderIndex, &n.Label, &n.Name, &n.Description,
		&n.Amount, &n.Date, &createdAtStr,
	); err != nil {
		return nil, err
	}

	n.ParentID = stringPtr(parentID)
	n.Kind = domain.NodeKind(kindStr)

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	n.CreatedAt = createdAt
	return &n, nil
}

func scanNodes(rows *sql.Rows) ([]*domain.NodeRecord, error) {
	var nodes []*domain.NodeRecord
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning node row: %w", err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nodes: %w", err)
	}
	return nodes, nil
}
