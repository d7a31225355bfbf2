package domain

import "errors"

var (
	ErrNilNode = errors.New("node must not be nil")
	ErrCycle   = errors.New("box cannot contain itself")
	ErrNotABox = errors.New("node is not a box")
)

// Describer is anything that can render itself as human-readable text.
type Describer interface {
	Describe() string
}

// Node is a member of a box tree: either a leaf item or a Box.
type Node interface {
	Describer
	Kind() NodeKind
}

// isNil catches typed nil pointers hidden inside a non-nil interface.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Box:
		return v == nil
	case *Receipt:
		return v == nil
	case *ToolItem:
		return v == nil
	case *ElectronicItem:
		return v == nil
	case *AccessoryItem:
		return v == nil
	}
	return false
}
