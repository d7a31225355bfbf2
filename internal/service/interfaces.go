package service

import (
	"context"

	"github.com/alexanderramin/parcel/internal/domain"
)

// OutlineEntry is one stored node in pre-order, with its depth below the root.
type OutlineEntry struct {
	Record *domain.NodeRecord
	Depth  int
	IsLast bool
}

type TreeService interface {
	Save(ctx context.Context, root *domain.Box) (string, error)
	Load(ctx context.Context, boxID string) (*domain.Box, error)
	Describe(ctx context.Context, boxID string) (string, error)
	Outline(ctx context.Context, boxID string) ([]OutlineEntry, error)
	ListRoots(ctx context.Context) ([]*domain.NodeRecord, error)
	ChildCount(ctx context.Context, boxID string) (int, error)
	Resolve(ctx context.Context, idOrPrefix string) (string, error)
	AddNode(ctx context.Context, boxID string, node domain.Node) (string, error)
	Move(ctx context.Context, boxID, childID string) error
	RemoveChild(ctx context.Context, boxID, childID string) (bool, error)
	Delete(ctx context.Context, id string) error
}
