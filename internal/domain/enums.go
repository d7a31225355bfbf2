package domain

type NodeKind string

const (
	KindBox        NodeKind = "box"
	KindReceipt    NodeKind = "receipt"
	KindTool       NodeKind = "tool"
	KindElectronic NodeKind = "electronic"
	KindAccessory  NodeKind = "accessory"
)

// ValidNodeKinds is the canonical set of accepted node kind strings.
var ValidNodeKinds = map[string]bool{
	"box": true, "receipt": true, "tool": true,
	"electronic": true, "accessory": true,
}

// IsLeaf reports whether nodes of this kind can never hold children.
func (k NodeKind) IsLeaf() bool {
	return k != KindBox
}
