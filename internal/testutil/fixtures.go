package testutil

import (
	"time"

	"github.com/alexanderramin/parcel/internal/domain"
	"github.com/google/uuid"
)

// Node record options
type NodeOption func(*domain.NodeRecord)

func WithParentID(id string) NodeOption {
	return func(n *domain.NodeRecord) {
		n.ParentID = &id
	}
}

func WithOrderIndex(i int) NodeOption {
	return func(n *domain.NodeRecord) {
		n.OrderIndex = i
	}
}

func WithCreatedAt(t time.Time) NodeOption {
	return func(n *domain.NodeRecord) {
		n.CreatedAt = t
	}
}

// NewTestBox returns a box record with a fresh ID.
func NewTestBox(label string, opts ...NodeOption) *domain.NodeRecord {
	return newRecord(&domain.NodeRecord{Kind: domain.KindBox, Label: label}, opts)
}

// NewTestTool returns a tool leaf record with a fresh ID.
func NewTestTool(name string, opts ...NodeOption) *domain.NodeRecord {
	return newRecord(&domain.NodeRecord{Kind: domain.KindTool, Name: name}, opts)
}

// NewTestReceipt returns a receipt leaf record with a fresh ID.
func NewTestReceipt(amount float64, date string, opts ...NodeOption) *domain.NodeRecord {
	return newRecord(&domain.NodeRecord{Kind: domain.KindReceipt, Amount: amount, Date: date}, opts)
}

func newRecord(n *domain.NodeRecord, opts []NodeOption) *domain.NodeRecord {
	n.ID = uuid.New().String()
	n.CreatedAt = time.Now().UTC().Truncate(time.Second)
	for _, opt := range opts {
		opt(n)
	}
	return n
}
