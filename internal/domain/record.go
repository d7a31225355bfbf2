package domain

import (
	"fmt"
	"time"
)

// NodeRecord is the flat, persisted form of a single tree node. Only the
// fields that belong to Kind are meaningful.
type NodeRecord struct {
	ID          string
	ParentID    *string
	Kind        NodeKind
	OrderIndex  int
	Label       string
	Name        string
	Description string
	Amount      float64
	Date        string
	CreatedAt   time.Time
}

// Title returns the one-line caption used in listings and tree views.
func (r *NodeRecord) Title() string {
	switch r.Kind {
	case KindBox:
		return CoalesceStr(r.Label, "(unlabelled box)")
	case KindReceipt:
		return fmt.Sprintf("Receipt %s on %s", FormatAmount(r.Amount), r.Date)
	case KindAccessory:
		return r.Description
	default:
		return r.Name
	}
}

// ToNode builds the domain node for a record. Boxes come back empty; the
// caller attaches children.
func (r *NodeRecord) ToNode() (Node, error) {
	switch r.Kind {
	case KindBox:
		return NewBox(r.Label), nil
	case KindReceipt:
		return NewReceipt(r.Amount, r.Date), nil
	case KindTool:
		return NewToolItem(r.Name), nil
	case KindElectronic:
		return NewElectronicItem(r.Name), nil
	case KindAccessory:
		return NewAccessoryItem(r.Description), nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", r.Kind)
	}
}

// RecordFromNode copies the node's own fields into a record. Identity,
// parent and order are left for the caller.
func RecordFromNode(n Node) (*NodeRecord, error) {
	if isNil(n) {
		return nil, ErrNilNode
	}
	r := &NodeRecord{Kind: n.Kind()}
	switch v := n.(type) {
	case *Box:
		r.Label = v.Label()
	case *Receipt:
		r.Amount = v.Amount()
		r.Date = v.Date()
	case *ToolItem:
		r.Name = v.Name()
	case *ElectronicItem:
		r.Name = v.Name()
	case *AccessoryItem:
		r.Description = v.Description()
	default:
		return nil, fmt.Errorf("unsupported node type %T", n)
	}
	return r, nil
}
