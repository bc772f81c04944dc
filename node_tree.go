package shadow

import (
	"fmt"
	"slices"
)

// AddChild appends children and marks this node dirty.
// It fails without attaching anything if any child is nil, already has a
// parent, is a root, or is this node or one of its ancestors.
func (n *Node) AddChild(children ...*Node) error {
	return n.InsertChild(len(n.children), children...)
}

// InsertChild inserts children before index and marks this node dirty.
// The same rules as AddChild apply.
func (n *Node) InsertChild(index int, children ...*Node) error {
	if index < 0 || index > len(n.children) {
		return fmt.Errorf("shadow: insert index %d out of range [0, %d]", index, len(n.children))
	}
	for i, child := range children {
		if err := n.checkAttachable(child); err != nil {
			return err
		}
		if slices.Contains(children[:i], child) {
			return fmt.Errorf("%w: %q listed twice", ErrNodeAttached, child.name)
		}
	}
	if len(children) == 0 {
		return nil
	}

	for _, child := range children {
		child.parent = n
		// A re-attached subtree carries layouts solved under another
		// parent. Drop them so the whole subtree is solved and reported
		// as new.
		child.Walk(func(d *Node) {
			d.layout = LayoutResult{}
		})
		child.dirty = true
	}
	n.children = slices.Insert(n.children, index, children...)
	n.MarkDirty()
	return nil
}

func (n *Node) checkAttachable(child *Node) error {
	switch {
	case child == nil:
		return fmt.Errorf("shadow: nil child")
	case child.root:
		return fmt.Errorf("%w: %q is a root", ErrNodeAttached, child.name)
	case child.parent != nil:
		return fmt.Errorf("%w: %q already has parent %q", ErrNodeAttached, child.name, child.parent.name)
	}
	for a := n; a != nil; a = a.parent {
		if a == child {
			return fmt.Errorf("%w: %q is an ancestor of %q", ErrNodeAttached, child.name, n.name)
		}
	}
	return nil
}

// RemoveChild detaches child, keeping the order of the remaining children,
// and marks this node dirty. Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	n.MarkDirty()
	return true
}

// RemoveAllChildren detaches every child and marks this node dirty.
func (n *Node) RemoveAllChildren() {
	if len(n.children) == 0 {
		return
	}
	for _, child := range n.children {
		child.parent = nil
	}
	n.children = nil
	n.MarkDirty()
}

// Children returns the child nodes. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Walk calls fn for n and every descendant in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.Walk(fn)
	}
}
