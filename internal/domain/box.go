package domain

import "strings"

const (
	boxHeader    = "Box Components:\n"
	boxSeparator = "\n"
)

// Box is a container node. It owns its children: dropping the root drops
// the whole tree, so there is no separate cleanup step.
type Box struct {
	label    string
	children []Node
}

func NewBox(label string) *Box {
	return &Box{label: label}
}

func (b *Box) Kind() NodeKind { return KindBox }
func (b *Box) Label() string  { return b.label }
func (b *Box) Len() int       { return len(b.children) }

// Children returns a copy of the child list in insertion order.
func (b *Box) Children() []Node {
	out := make([]Node, len(b.children))
	copy(out, b.children)
	return out
}

// Add appends node to the box. The same node may be added more than once,
// but a box may never end up inside itself.
func (b *Box) Add(node Node) error {
	if isNil(node) {
		return ErrNilNode
	}
	if inner, ok := node.(*Box); ok && (inner == b || inner.Contains(b)) {
		return ErrCycle
	}
	b.children = append(b.children, node)
	return nil
}

// Remove drops every entry identical to node and reports how many went.
func (b *Box) Remove(node Node) int {
	if isNil(node) {
		return 0
	}
	kept := b.children[:0]
	removed := 0
	for _, c := range b.children {
		if c == node {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(b.children); i++ {
		b.children[i] = nil
	}
	b.children = kept
	return removed
}

// Contains reports whether node sits anywhere below b.
func (b *Box) Contains(node Node) bool {
	found := false
	b.Walk(func(n Node, depth int) bool {
		if depth > 0 && n == node {
			found = true
			return false
		}
		return true
	})
	return found
}

// Walk visits b and every descendant in pre-order. The root has depth 0.
// Returning false from fn stops the walk.
func (b *Box) Walk(fn func(n Node, depth int) bool) {
	type frame struct {
		node  Node
		depth int
	}
	stack := []frame{{node: b}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.node, f.depth) {
			return
		}
		if box, ok := f.node.(*Box); ok {
			for i := len(box.children) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: box.children[i], depth: f.depth + 1})
			}
		}
	}
}

// Describe renders the header, every child in insertion order and a closing
// separator. Nested boxes are expanded with an explicit stack.
func (b *Box) Describe() string {
	type step struct {
		node  Node
		close bool
	}
	var sb strings.Builder
	stack := []step{{node: b}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.close {
			sb.WriteString(boxSeparator)
			continue
		}
		box, ok := s.node.(*Box)
		if !ok {
			sb.WriteString(s.node.Describe())
			continue
		}
		sb.WriteString(boxHeader)
		stack = append(stack, step{close: true})
		for i := len(box.children) - 1; i >= 0; i-- {
			stack = append(stack, step{node: box.children[i]})
		}
	}
	return sb.String()
}
