package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/parcel/internal/domain"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrAmbiguous = errors.New("ambiguous id prefix")
)

type NodeRepo interface {
	Create(ctx context.Context, n *domain.NodeRecord) error
	GetByID(ctx context.Context, id string) (*domain.NodeRecord, error)
	ResolvePrefix(ctx context.Context, prefix string) (string, error)
	ListChildren(ctx context.Context, parentID string) ([]*domain.NodeRecord, error)
	ListRoots(ctx context.Context) ([]*domain.NodeRecord, error)
	CountChildren(ctx context.Context, parentID string) (int, error)
	CountSubtree(ctx context.Context, id string) (int, error)
	NextOrderIndex(ctx context.Context, parentID string) (int, error)
	IsDescendant(ctx context.Context, ancestorID, id string) (bool, error)
	SetParent(ctx context.Context, id string, parentID *string, orderIndex int) error
	Delete(ctx context.Context, id string) error
}
