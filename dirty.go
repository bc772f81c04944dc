package shadow

// MarkDirty marks this node and all ancestors as needing layout.
// Propagation stops at the first ancestor that is already dirty, since
// dirty ancestors guarantee a dirty path to the root.
// Called automatically by SetStyle, AddChild, SetText, etc.
// Can also be called manually for custom mutations.
func (n *Node) MarkDirty() {
	if n == nil {
		panic("shadow: nil node in MarkDirty")
	}
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}
